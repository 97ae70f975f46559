package app

import "errors"

var (
	// ErrNoSource はコピー元ファイルが指定されていない場合のエラー
	ErrNoSource = errors.New("コピー元の .osu ファイルを指定してください")

	// ErrSourceRead はコピー元ファイルの読み込みに失敗した場合のエラー
	ErrSourceRead = errors.New("コピー元ファイルの読み込みに失敗しました")

	// ErrSourceParse はコピー元ファイルの解析に失敗した場合のエラー
	ErrSourceParse = errors.New("コピー元ファイルの解析に失敗しました")

	// ErrTargetRead はターゲットファイルの読み込みに失敗した場合のエラー
	ErrTargetRead = errors.New("ターゲットファイルの読み込みに失敗しました")

	// ErrTargetParse はターゲットファイルの解析に失敗した場合のエラー
	ErrTargetParse = errors.New("ターゲットファイルの解析に失敗しました")

	// ErrTargetWrite はターゲットファイルの書き込みに失敗した場合のエラー
	ErrTargetWrite = errors.New("ターゲットファイルの書き込みに失敗しました")
)

package fileutil

import "errors"

var (
	// ErrDecodeText はテキストのエンコーディング変換に失敗した場合のエラー
	ErrDecodeText = errors.New("文字コード変換エラー")

	// ErrWriteFile はファイルの書き込みに失敗した場合のエラー
	ErrWriteFile = errors.New("ファイルの書き込みに失敗しました")

	// ErrResolvePath はパスの解決に失敗した場合のエラー
	ErrResolvePath = errors.New("パスを解決できませんでした")

	// ErrReadDirectory はディレクトリ内のファイル一覧を取得できなかった場合のエラー
	ErrReadDirectory = errors.New("ディレクトリ内のファイル一覧を取得できませんでした")
)

package watcher

import "errors"

var (
	// ErrWatchFailed は監視の開始に失敗した場合のエラー
	ErrWatchFailed = errors.New("ファイルの監視を開始できませんでした")

	// ErrWatchClosed は監視が予期せず終了した場合のエラー
	ErrWatchClosed = errors.New("ファイルの監視が終了しました")
)

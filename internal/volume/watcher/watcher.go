// Package watcher はコピー元ファイルの変更監視を行います
package watcher

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/shiroemons/go-osu-volume/internal/volume/interfaces"
)

// debounceDelay は変更イベントをまとめるまでの待ち時間。
// エディタの保存は書き込みとリネームが連続して届くため、落ち着いてから
// 1回だけ再適用します。
const debounceDelay = 200 * time.Millisecond

// Watcher はfsnotifyでファイルの変更を監視します
type Watcher struct {
	logger   interfaces.Logger
	debounce time.Duration
}

// New は新しいWatcherを作成します
func New(logger interfaces.Logger) *Watcher {
	return &Watcher{
		logger:   logger,
		debounce: debounceDelay,
	}
}

// Watch はpathの変更を監視し、変更が落ち着くたびにonChangeを呼び出します。
// onChangeのエラーは警告として表示し、監視は継続します。
// コンテキストがキャンセルされるまでブロックします。
func (w *Watcher) Watch(ctx context.Context, path string, onChange func() error) error {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("%w: %s: %w", ErrWatchFailed, path, err)
	}

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrWatchFailed, err)
	}
	defer fw.Close()

	// エディタはファイルを置き換えて保存することが多いため、
	// ファイル自体ではなくディレクトリを監視します
	if err := fw.Add(filepath.Dir(absPath)); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrWatchFailed, filepath.Dir(absPath), err)
	}

	timer := time.NewTimer(w.debounce)
	if !timer.Stop() {
		<-timer.C
	}
	defer timer.Stop()

	base := filepath.Base(absPath)
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case event, ok := <-fw.Events:
			if !ok {
				return ErrWatchClosed
			}
			if filepath.Base(event.Name) != base {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
				continue
			}
			w.logger.Printf("変更を検出: %s (%s)\n", base, event.Op)
			timer.Reset(w.debounce)

		case err, ok := <-fw.Errors:
			if !ok {
				return ErrWatchClosed
			}
			fmt.Fprintf(os.Stderr, "警告: 監視エラー: %v\n", err)

		case <-timer.C:
			if err := onChange(); err != nil {
				fmt.Fprintf(os.Stderr, "警告: 再適用に失敗しました: %v\n", err)
			}
		}
	}
}

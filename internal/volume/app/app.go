// Package app はアプリケーションのメインロジックを実装します
package app

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/shiroemons/go-osu-volume/internal/volume/config"
	"github.com/shiroemons/go-osu-volume/internal/volume/fileutil"
	"github.com/shiroemons/go-osu-volume/internal/volume/interfaces"
	"github.com/shiroemons/go-osu-volume/internal/volume/models"
	"github.com/shiroemons/go-osu-volume/internal/volume/watcher"
	"github.com/shiroemons/go-osu-volume/pkg/osu"
)

// filePerm はターゲットファイルとバックアップの書き込み権限
const filePerm = 0644

// App はアプリケーションのメインロジックを管理します
type App struct {
	config  *config.Config
	logger  *config.DebugLogger
	fs      interfaces.FileSystem
	finder  interfaces.SiblingFinder
	watcher interfaces.Watcher
}

// Options はAppの設定オプション
type Options struct {
	FileSystem    interfaces.FileSystem
	SiblingFinder interfaces.SiblingFinder
	Watcher       interfaces.Watcher
}

// New は新しいAppを作成します
func New(cfg *config.Config) *App {
	return NewWithOptions(cfg, Options{})
}

// NewWithOptions は新しいAppをオプション付きで作成します
func NewWithOptions(cfg *config.Config, opts Options) *App {
	logger := config.NewDebugLogger(cfg.DebugMode)

	// デフォルトのファイルシステムを設定
	fs := opts.FileSystem
	if fs == nil {
		fs = fileutil.NewOSFileSystem()
	}

	// デフォルトのSiblingFinderを設定
	var finder interfaces.SiblingFinder
	if opts.SiblingFinder != nil {
		finder = opts.SiblingFinder
	} else {
		finder = fileutil.NewSiblingFinder(fs)
	}

	// デフォルトのWatcherを設定
	var w interfaces.Watcher
	if opts.Watcher != nil {
		w = opts.Watcher
	} else {
		w = watcher.New(logger)
	}

	return &App{
		config:  cfg,
		logger:  logger,
		fs:      fs,
		finder:  finder,
		watcher: w,
	}
}

// Run はアプリケーションを実行します。
// 監視モードの場合は一度適用した後、コンテキストがキャンセルされるまで
// コピー元の変更を監視して再適用を繰り返します。
func (a *App) Run(ctx context.Context) error {
	if a.config.SourcePath == "" {
		return ErrNoSource
	}

	if _, err := a.Propagate(ctx); err != nil {
		return err
	}

	if !a.config.Watch {
		return nil
	}

	fmt.Printf("%s の変更を監視しています (Ctrl+C で終了)\n", filepath.Base(a.config.SourcePath))
	return a.watcher.Watch(ctx, a.config.SourcePath, func() error {
		_, err := a.Propagate(ctx)
		return err
	})
}

// Propagate はコピー元の音量プロファイルを各ターゲットに適用します。
// ターゲット単位のエラーは警告として報告して処理を続行し、
// コピー元のエラーのみを返します。
func (a *App) Propagate(ctx context.Context) (models.Summary, error) {
	var summary models.Summary

	// コンテキストのキャンセルチェック
	select {
	case <-ctx.Done():
		return summary, ctx.Err()
	default:
	}

	profile, err := a.loadProfile()
	if err != nil {
		return summary, err
	}
	a.logger.Printf("音量プロファイル: %d 点\n", len(profile.Points))

	targets, err := a.resolveTargets()
	if err != nil {
		return summary, err
	}

	if len(targets) == 0 {
		fmt.Println("同じマップセット内に他の難易度ファイルはありません")
		return summary, nil
	}

	for _, target := range targets {
		select {
		case <-ctx.Done():
			return summary, ctx.Err()
		default:
		}

		result := a.patchTarget(target, profile)
		if result.Err != nil {
			fmt.Fprintf(os.Stderr, "警告: %s をスキップしました: %v\n", filepath.Base(target), result.Err)
		} else {
			a.logger.Printf("%s: updated=%v\n", filepath.Base(target), result.Updated)
		}
		summary.Add(result)
	}

	a.printSummary(summary)
	return summary, nil
}

// loadProfile はコピー元ファイルから音量プロファイルを読み込みます
func (a *App) loadProfile() (osu.Profile, error) {
	data, err := a.fs.ReadFile(a.config.SourcePath)
	if err != nil {
		return osu.Profile{}, fmt.Errorf("%w: %s: %w", ErrSourceRead, a.config.SourcePath, err)
	}

	text, _, err := fileutil.DecodeText(data)
	if err != nil {
		return osu.Profile{}, fmt.Errorf("%w: %s: %w", ErrSourceRead, a.config.SourcePath, err)
	}

	beatmap, err := osu.Parse(text)
	if err != nil {
		return osu.Profile{}, fmt.Errorf("%w: %s: %w", ErrSourceParse, a.config.SourcePath, err)
	}

	return beatmap.VolumeProfile(), nil
}

// resolveTargets はターゲットファイルの一覧を決定します
func (a *App) resolveTargets() ([]string, error) {
	if a.config.DestPath != "" {
		return []string{a.config.DestPath}, nil
	}
	return a.finder.Find(a.config.SourcePath)
}

// patchTarget は1つのターゲットファイルに音量プロファイルを適用します
func (a *App) patchTarget(path string, profile osu.Profile) models.TargetResult {
	result := models.TargetResult{Path: path}

	raw, err := a.fs.ReadFile(path)
	if err != nil {
		result.Err = fmt.Errorf("%w: %w", ErrTargetRead, err)
		return result
	}

	text, enc, err := fileutil.DecodeText(raw)
	if err != nil {
		result.Err = fmt.Errorf("%w: %w", ErrTargetRead, err)
		return result
	}

	beatmap, err := osu.Parse(text)
	if err != nil {
		result.Err = fmt.Errorf("%w: %w", ErrTargetParse, err)
		return result
	}

	profile.Apply(beatmap)
	patched := fileutil.EncodeText(beatmap.Serialize(), enc)

	if bytes.Equal(patched, raw) {
		result.Unchanged = true
		return result
	}
	result.Updated = true

	if a.config.DryRun {
		return result
	}

	if a.config.Backup {
		if err := a.fs.WriteFile(fileutil.BackupPath(path), raw, filePerm); err != nil {
			result.Updated = false
			result.Err = fmt.Errorf("%w: %w", ErrTargetWrite, err)
			return result
		}
	}

	if err := fileutil.WriteFileAtomic(a.fs, path, patched, filePerm); err != nil {
		result.Updated = false
		result.Err = fmt.Errorf("%w: %w", ErrTargetWrite, err)
		return result
	}

	return result
}

// printSummary はバッチ処理の集計を表示します
func (a *App) printSummary(summary models.Summary) {
	if a.config.DryRun {
		fmt.Printf("更新予定 %d 件、変更なし %d 件、スキップ %d 件 (ドライラン)\n",
			summary.Updated, summary.Unchanged, summary.Skipped)
		return
	}
	fmt.Printf("更新 %d 件、変更なし %d 件、スキップ %d 件\n",
		summary.Updated, summary.Unchanged, summary.Skipped)
}

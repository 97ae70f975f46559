// Package config はosuvolumeコマンドの設定管理を行います
package config

import (
	"flag"
	"fmt"
	"os"
)

const Version = "0.1.0"

// Config はアプリケーションの設定を保持します
type Config struct {
	SourcePath  string // コピー元の .osu ファイル
	DestPath    string // 指定された場合、このファイルのみをターゲットにする
	DryRun      bool
	Backup      bool
	Watch       bool
	DebugMode   bool
	ShowVersion bool
}

// ParseFlags はコマンドライン引数を解析して設定を返します
func ParseFlags() *Config {
	config := &Config{}

	// カスタムUsage関数を設定（ダブルハイフン表示）
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage: %s [options] <source.osu>\n", os.Args[0])
		fmt.Fprintln(flag.CommandLine.Output(), "  <source.osu>")
		fmt.Fprintln(flag.CommandLine.Output(), "    \tthe .osu file to copy the volume profile from")
		fmt.Fprintln(flag.CommandLine.Output(), "  --dest string")
		fmt.Fprintln(flag.CommandLine.Output(), "    \tcopy to this .osu file only instead of every other difficulty in the mapset")
		fmt.Fprintln(flag.CommandLine.Output(), "  -D string")
		fmt.Fprintln(flag.CommandLine.Output(), "    \tcopy to this .osu file only (shorthand)")
		fmt.Fprintln(flag.CommandLine.Output(), "  --dry-run")
		fmt.Fprintln(flag.CommandLine.Output(), "    \treport what would change without writing any files")
		fmt.Fprintln(flag.CommandLine.Output(), "  -n\treport what would change without writing any files (shorthand)")
		fmt.Fprintln(flag.CommandLine.Output(), "  --backup")
		fmt.Fprintln(flag.CommandLine.Output(), "    \twrite a .bak copy of each target before rewriting it")
		fmt.Fprintln(flag.CommandLine.Output(), "  -b\twrite a .bak copy of each target before rewriting it (shorthand)")
		fmt.Fprintln(flag.CommandLine.Output(), "  --watch")
		fmt.Fprintln(flag.CommandLine.Output(), "    \tkeep running and re-apply whenever the source file changes")
		fmt.Fprintln(flag.CommandLine.Output(), "  -w\tkeep running and re-apply whenever the source file changes (shorthand)")
		fmt.Fprintln(flag.CommandLine.Output(), "  --debug")
		fmt.Fprintln(flag.CommandLine.Output(), "    \tenable debug output")
		fmt.Fprintln(flag.CommandLine.Output(), "  -d\tenable debug output (shorthand)")
		fmt.Fprintln(flag.CommandLine.Output(), "  --version")
		fmt.Fprintln(flag.CommandLine.Output(), "    \tshow version information")
		fmt.Fprintln(flag.CommandLine.Output(), "  -v\tshow version information (shorthand)")
	}

	// コピー先フラグ
	flag.StringVar(&config.DestPath, "dest", "", "copy to this .osu file only")
	flag.StringVar(&config.DestPath, "D", "", "copy to this .osu file only (shorthand)")

	// ドライランモード
	flag.BoolVar(&config.DryRun, "dry-run", false, "report what would change without writing any files")
	flag.BoolVar(&config.DryRun, "n", false, "report what would change without writing any files (shorthand)")

	// バックアップモード
	flag.BoolVar(&config.Backup, "backup", false, "write a .bak copy of each target before rewriting it")
	flag.BoolVar(&config.Backup, "b", false, "write a .bak copy of each target before rewriting it (shorthand)")

	// 監視モード
	flag.BoolVar(&config.Watch, "watch", false, "keep running and re-apply whenever the source file changes")
	flag.BoolVar(&config.Watch, "w", false, "keep running and re-apply whenever the source file changes (shorthand)")

	// デバッグモード
	flag.BoolVar(&config.DebugMode, "debug", false, "enable debug output")
	flag.BoolVar(&config.DebugMode, "d", false, "enable debug output (shorthand)")

	// バージョン表示
	flag.BoolVar(&config.ShowVersion, "version", false, "show version information")
	flag.BoolVar(&config.ShowVersion, "v", false, "show version information (shorthand)")

	flag.Parse()

	config.SourcePath = flag.Arg(0)

	return config
}

// HandleVersion はバージョン表示を処理します
func HandleVersion(showVersion bool) {
	if showVersion {
		fmt.Printf("osuvolume version %s\n", Version)
		os.Exit(0)
	}
}

// DebugLogger はデバッグ出力を管理します
type DebugLogger struct {
	enabled bool
}

// NewDebugLogger は新しいDebugLoggerを作成します
func NewDebugLogger(enabled bool) *DebugLogger {
	return &DebugLogger{enabled: enabled}
}

// Printf はデバッグモードが有効な場合のみメッセージを表示します
func (d *DebugLogger) Printf(format string, a ...any) {
	if d.enabled {
		fmt.Printf(format, a...)
	}
}

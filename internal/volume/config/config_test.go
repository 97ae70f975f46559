package config

import (
	"flag"
	"os"
	"testing"
)

func TestParseFlags(t *testing.T) {
	// フラグをリセット
	flag.CommandLine = flag.NewFlagSet(os.Args[0], flag.ContinueOnError)

	// テスト用の引数を設定
	os.Args = []string{"cmd", "-dest", "other.osu", "-n", "-b", "-w", "-d", "source.osu"}

	cfg := ParseFlags()

	if cfg.SourcePath != "source.osu" {
		t.Errorf("Expected SourcePath 'source.osu', got '%s'", cfg.SourcePath)
	}
	if cfg.DestPath != "other.osu" {
		t.Errorf("Expected DestPath 'other.osu', got '%s'", cfg.DestPath)
	}
	if !cfg.DryRun {
		t.Error("Expected DryRun to be true")
	}
	if !cfg.Backup {
		t.Error("Expected Backup to be true")
	}
	if !cfg.Watch {
		t.Error("Expected Watch to be true")
	}
	if !cfg.DebugMode {
		t.Error("Expected DebugMode to be true")
	}
}

func TestParseFlags_Defaults(t *testing.T) {
	// フラグをリセット
	flag.CommandLine = flag.NewFlagSet(os.Args[0], flag.ContinueOnError)

	os.Args = []string{"cmd", "source.osu"}

	cfg := ParseFlags()

	if cfg.SourcePath != "source.osu" {
		t.Errorf("Expected SourcePath 'source.osu', got '%s'", cfg.SourcePath)
	}
	if cfg.DestPath != "" || cfg.DryRun || cfg.Backup || cfg.Watch || cfg.DebugMode || cfg.ShowVersion {
		t.Errorf("Expected default config, got %+v", cfg)
	}
}

func TestDebugLogger(t *testing.T) {
	// 出力をキャプチャするためのパイプ
	oldStdout := os.Stdout
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatal(err)
	}
	os.Stdout = w

	// デバッグモード有効
	NewDebugLogger(true).Printf("enabled %d\n", 1)
	// デバッグモード無効
	NewDebugLogger(false).Printf("disabled %d\n", 2)

	w.Close()
	os.Stdout = oldStdout

	buf := make([]byte, 1024)
	n, _ := r.Read(buf)
	output := string(buf[:n])

	if output != "enabled 1\n" {
		t.Errorf("Expected only enabled output, got %q", output)
	}
}

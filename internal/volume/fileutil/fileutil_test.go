package fileutil

import (
	"errors"
	"strings"
	"testing"

	"github.com/shiroemons/go-osu-volume/internal/volume/mocks"
)

func TestDecodeText(t *testing.T) {
	tests := []struct {
		name     string
		data     []byte
		expected string
		enc      Encoding
	}{
		{
			name:     "BOMなしUTF-8",
			data:     []byte("osu file format v14"),
			expected: "osu file format v14",
			enc:      EncodingUTF8,
		},
		{
			name:     "BOMありUTF-8",
			data:     []byte{0xEF, 0xBB, 0xBF, 'o', 's', 'u'},
			expected: "osu",
			enc:      EncodingUTF8BOM,
		},
		{
			name:     "UTF-16 LE",
			data:     []byte{0xFF, 0xFE, 'o', 0x00, 's', 0x00, 'u', 0x00},
			expected: "osu",
			enc:      EncodingUTF16,
		},
		{
			name:     "UTF-16 BE",
			data:     []byte{0xFE, 0xFF, 0x00, 'o', 0x00, 's', 0x00, 'u'},
			expected: "osu",
			enc:      EncodingUTF16,
		},
		{
			name:     "空のファイル",
			data:     []byte{},
			expected: "",
			enc:      EncodingUTF8,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			text, enc, err := DecodeText(tt.data)
			if err != nil {
				t.Fatalf("DecodeText failed: %v", err)
			}
			if text != tt.expected {
				t.Errorf("DecodeText = %q; want %q", text, tt.expected)
			}
			if enc != tt.enc {
				t.Errorf("Encoding = %v; want %v", enc, tt.enc)
			}
		})
	}
}

func TestEncodeText_RoundTrip(t *testing.T) {
	withBOM := []byte{0xEF, 0xBB, 0xBF, '[', 'G', 'e', 'n', 'e', 'r', 'a', 'l', ']'}
	text, enc, err := DecodeText(withBOM)
	if err != nil {
		t.Fatalf("DecodeText failed: %v", err)
	}

	// BOMありで読んだファイルはBOMありで書き戻される
	if got := EncodeText(text, enc); string(got) != string(withBOM) {
		t.Errorf("EncodeText = %v; want %v", got, withBOM)
	}

	// BOMなしはそのまま
	if got := EncodeText("[General]", EncodingUTF8); string(got) != "[General]" {
		t.Errorf("EncodeText = %q; want %q", got, "[General]")
	}
}

func TestWriteFileAtomic(t *testing.T) {
	fs := mocks.NewMockFileSystem()
	fs.Files["/maps/diff.osu"] = []byte("old")

	if err := WriteFileAtomic(fs, "/maps/diff.osu", []byte("new"), 0644); err != nil {
		t.Fatalf("WriteFileAtomic failed: %v", err)
	}

	if string(fs.Files["/maps/diff.osu"]) != "new" {
		t.Errorf("Expected content 'new', got %q", fs.Files["/maps/diff.osu"])
	}
	// 一時ファイルが残らない
	for path := range fs.Files {
		if strings.HasSuffix(path, ".tmp") {
			t.Errorf("Temporary file left behind: %s", path)
		}
	}
}

func TestWriteFileAtomic_RenameError(t *testing.T) {
	fs := mocks.NewMockFileSystem()
	fs.Files["/maps/diff.osu"] = []byte("old")
	fs.RenameErr = errors.New("permission denied")

	err := WriteFileAtomic(fs, "/maps/diff.osu", []byte("new"), 0644)
	if !errors.Is(err, ErrWriteFile) {
		t.Fatalf("Expected ErrWriteFile, got %v", err)
	}

	// 元のファイルは壊れず、一時ファイルも残らない
	if string(fs.Files["/maps/diff.osu"]) != "old" {
		t.Errorf("Original file modified: %q", fs.Files["/maps/diff.osu"])
	}
	for path := range fs.Files {
		if strings.HasSuffix(path, ".tmp") {
			t.Errorf("Temporary file left behind: %s", path)
		}
	}
}

func TestSiblingFinder_Find(t *testing.T) {
	fs := mocks.NewMockFileSystem()
	fs.Files = map[string][]byte{
		"/maps/source.osu": []byte("a"),
		"/maps/easy.osu":   []byte("b"),
		"/maps/hard.OSU":   []byte("c"), // 拡張子は大文字小文字を区別しない
		"/maps/audio.mp3":  []byte("d"),
		"/maps/bg.jpg":     []byte("e"),
	}

	siblings, err := NewSiblingFinder(fs).Find("/maps/source.osu")
	if err != nil {
		t.Fatalf("Find failed: %v", err)
	}

	expected := []string{"/maps/easy.osu", "/maps/hard.OSU"}
	if len(siblings) != len(expected) {
		t.Fatalf("Expected %d siblings, got %d: %v", len(expected), len(siblings), siblings)
	}
	for i, want := range expected {
		if siblings[i] != want {
			t.Errorf("siblings[%d] = %s; want %s", i, siblings[i], want)
		}
	}
}

func TestSiblingFinder_Find_DirectoryError(t *testing.T) {
	fs := mocks.NewMockFileSystem()

	_, err := NewSiblingFinder(fs).Find("/nonexistent/source.osu")
	if !errors.Is(err, ErrReadDirectory) {
		t.Errorf("Expected ErrReadDirectory, got %v", err)
	}
}

func TestBackupPath(t *testing.T) {
	if got := BackupPath("/maps/diff.osu"); got != "/maps/diff.osu.bak" {
		t.Errorf("BackupPath = %s; want /maps/diff.osu.bak", got)
	}
}

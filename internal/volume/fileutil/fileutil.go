// Package fileutil はファイル操作のユーティリティを提供します
package fileutil

import (
	"bytes"
	"fmt"
	"io"
	"path/filepath"
	"sort"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"github.com/shiroemons/go-osu-volume/internal/volume/interfaces"
)

// BeatmapExt はビートマップファイルの拡張子
const BeatmapExt = ".osu"

// Encoding は読み込んだテキストのエンコーディングを表します
type Encoding int

const (
	// EncodingUTF8 はBOMなしUTF-8
	EncodingUTF8 Encoding = iota
	// EncodingUTF8BOM はBOMありUTF-8
	EncodingUTF8BOM
	// EncodingUTF16 はBOMありUTF-16（書き戻しはBOMありUTF-8になります）
	EncodingUTF16
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// DecodeText はファイル内容をBOMを基にUTF-8テキストへ変換します。
// 一部のエディタが保存するUTF-16のファイルも読み込めます。
func DecodeText(data []byte) (string, Encoding, error) {
	switch {
	case bytes.HasPrefix(data, utf8BOM):
		return string(data[len(utf8BOM):]), EncodingUTF8BOM, nil
	case len(data) >= 2 && (data[0] == 0xFE && data[1] == 0xFF || data[0] == 0xFF && data[1] == 0xFE):
		decoder := unicode.UTF16(unicode.LittleEndian, unicode.UseBOM).NewDecoder()
		decoded, err := io.ReadAll(transform.NewReader(bytes.NewReader(data), decoder))
		if err != nil {
			return "", EncodingUTF16, fmt.Errorf("%w: %w", ErrDecodeText, err)
		}
		return string(decoded), EncodingUTF16, nil
	default:
		return string(data), EncodingUTF8, nil
	}
}

// EncodeText はテキストを読み込み時のエンコーディングに合わせてバイト列へ
// 戻します。BOMのあったファイルにはBOMを付け直します。
func EncodeText(text string, enc Encoding) []byte {
	if enc == EncodingUTF8 {
		return []byte(text)
	}
	encoded := make([]byte, 0, len(utf8BOM)+len(text))
	encoded = append(encoded, utf8BOM...)
	return append(encoded, text...)
}

// WriteFileAtomic はファイルを一時ファイル経由で書き込みます。
// 同じディレクトリに一時ファイルを作成してからリネームするため、
// 書き込みの途中で失敗しても元のファイルは壊れません。
func WriteFileAtomic(fs interfaces.FileSystem, path string, data []byte, perm uint32) error {
	dir := filepath.Dir(path)
	base := filepath.Base(path)
	tmpPath := filepath.Join(dir, fmt.Sprintf(".%s.%s.tmp", base, uuid.NewString()))

	if err := fs.WriteFile(tmpPath, data, perm); err != nil {
		return fmt.Errorf("%w: %w", ErrWriteFile, err)
	}
	if err := fs.Rename(tmpPath, path); err != nil {
		// リネームに失敗した一時ファイルは残さない
		_ = fs.Remove(tmpPath)
		return fmt.Errorf("%w: %w", ErrWriteFile, err)
	}
	return nil
}

// BackupPath はターゲットファイルのバックアップ先パスを返します
func BackupPath(path string) string {
	return path + ".bak"
}

// SiblingFinder は同じマップセットフォルダ内の他の .osu ファイルを検索します
type SiblingFinder struct {
	fs interfaces.FileSystem
}

// NewSiblingFinder は新しいSiblingFinderを作成します
func NewSiblingFinder(fs interfaces.FileSystem) *SiblingFinder {
	return &SiblingFinder{fs: fs}
}

// Find はコピー元と同じディレクトリにある他の .osu ファイルのパスを返します。
// コピー元自身は含まれません。
func (f *SiblingFinder) Find(sourcePath string) ([]string, error) {
	absSource, err := filepath.Abs(sourcePath)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrResolvePath, sourcePath, err)
	}

	dir := filepath.Dir(absSource)
	entries, err := f.fs.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrReadDirectory, dir, err)
	}

	var siblings []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if !strings.EqualFold(filepath.Ext(name), BeatmapExt) {
			continue
		}
		path := filepath.Join(dir, name)
		if path == absSource {
			continue
		}
		siblings = append(siblings, path)
	}

	sort.Strings(siblings)
	return siblings, nil
}

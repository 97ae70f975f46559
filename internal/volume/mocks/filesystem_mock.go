// Package mocks はテスト用のモック実装を提供します
package mocks

import (
	"errors"
	"path/filepath"
	"sort"

	"github.com/shiroemons/go-osu-volume/internal/volume/interfaces"
)

// MockFileSystem はテスト用のファイルシステムモック
type MockFileSystem struct {
	Files     map[string][]byte
	ReadErr   error // 設定されている場合、ReadFile が失敗します
	WriteErr  error // 設定されている場合、WriteFile が失敗します
	RenameErr error // 設定されている場合、Rename が失敗します

	Writes  []string // WriteFile されたパスの記録
	Renames []string // Rename の移動先パスの記録
}

// NewMockFileSystem は新しいMockFileSystemを作成します
func NewMockFileSystem() *MockFileSystem {
	return &MockFileSystem{
		Files: make(map[string][]byte),
	}
}

// FileExists はファイルが存在するか確認します
func (fs *MockFileSystem) FileExists(filename string) bool {
	_, exists := fs.Files[filename]
	return exists
}

// ReadFile はファイルを読み込みます
func (fs *MockFileSystem) ReadFile(filename string) ([]byte, error) {
	if fs.ReadErr != nil {
		return nil, fs.ReadErr
	}
	data, exists := fs.Files[filename]
	if !exists {
		return nil, errors.New("file not found")
	}
	return data, nil
}

// WriteFile はファイルを書き込みます
func (fs *MockFileSystem) WriteFile(filename string, data []byte, perm uint32) error {
	if fs.WriteErr != nil {
		return fs.WriteErr
	}
	fs.Files[filename] = data
	fs.Writes = append(fs.Writes, filename)
	return nil
}

// Rename はファイルをリネームします
func (fs *MockFileSystem) Rename(oldpath, newpath string) error {
	if fs.RenameErr != nil {
		return fs.RenameErr
	}
	data, exists := fs.Files[oldpath]
	if !exists {
		return errors.New("file not found")
	}
	delete(fs.Files, oldpath)
	fs.Files[newpath] = data
	fs.Renames = append(fs.Renames, newpath)
	return nil
}

// Remove はファイルを削除します
func (fs *MockFileSystem) Remove(name string) error {
	if _, exists := fs.Files[name]; !exists {
		return errors.New("file not found")
	}
	delete(fs.Files, name)
	return nil
}

// ReadDir は登録されたファイルからディレクトリエントリの一覧を作成します
func (fs *MockFileSystem) ReadDir(dirname string) ([]interfaces.DirEntry, error) {
	var names []string
	for path := range fs.Files {
		if filepath.Dir(path) == dirname {
			names = append(names, filepath.Base(path))
		}
	}
	if len(names) == 0 {
		return nil, errors.New("directory not found")
	}

	sort.Strings(names)
	entries := make([]interfaces.DirEntry, len(names))
	for i, name := range names {
		entries[i] = &mockDirEntry{name: name}
	}
	return entries, nil
}

// mockDirEntry はテスト用のディレクトリエントリ
type mockDirEntry struct {
	name string
}

// Name はエントリ名を返します
func (de *mockDirEntry) Name() string {
	return de.name
}

// IsDir はディレクトリかどうかを返します
func (de *mockDirEntry) IsDir() bool {
	return false
}

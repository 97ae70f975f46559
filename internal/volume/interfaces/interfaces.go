// Package interfaces は osuvolume コマンドで使用するインターフェースを定義します
package interfaces

import "context"

// FileSystem はファイルシステム操作のインターフェース
type FileSystem interface {
	FileExists(filename string) bool
	ReadFile(filename string) ([]byte, error)
	WriteFile(filename string, data []byte, perm uint32) error
	Rename(oldpath, newpath string) error
	Remove(name string) error
	ReadDir(dirname string) ([]DirEntry, error)
}

// DirEntry はディレクトリエントリのインターフェース
type DirEntry interface {
	Name() string
	IsDir() bool
}

// SiblingFinder は同じマップセット内の他の難易度ファイルを検索するインターフェースです
type SiblingFinder interface {
	Find(sourcePath string) ([]string, error)
}

// Watcher はファイルの変更を監視するインターフェースです
type Watcher interface {
	Watch(ctx context.Context, path string, onChange func() error) error
}

// Logger はログ出力のインターフェース
type Logger interface {
	Printf(format string, a ...any)
}

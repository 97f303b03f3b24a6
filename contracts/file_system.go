package contracts

import (
	"io"
	"time"
)

type FileChecker interface {
	Stat(path string) (FileInfo, error)
}

type FileOpener interface {
	Open(path string) (io.ReadCloser, error)
}

type FileCreator interface {
	Create(path string) (io.WriteCloser, error)
}

type DirectoryCreator interface {
	MkdirAll(path string) error
}

type DirectoryLister interface {
	ListDirectory(path string) (filenames []string, err error)
}

type Renamer interface {
	Rename(oldPath, newPath string) error
}

type Deleter interface {
	Delete(path string) error
}

type FileSystem interface {
	FileChecker
	FileOpener
	FileCreator
	DirectoryCreator
	DirectoryLister
	Renamer
	Deleter
}

type FileInfo interface {
	Path() string
	Size() int64
	ModTime() time.Time
}

package core

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/webfoundry/stockpile/contracts"
)

type inMemoryFileSystem struct {
	fileSystem  map[string]*file
	directories map[string]struct{}
	errMkdirAll map[string]error
	errOpen     map[string]error
}

func newInMemoryFileSystem() *inMemoryFileSystem {
	return &inMemoryFileSystem{
		fileSystem:  make(map[string]*file),
		directories: make(map[string]struct{}),
		errMkdirAll: make(map[string]error),
		errOpen:     make(map[string]error),
	}
}

func (this *inMemoryFileSystem) Stat(path string) (contracts.FileInfo, error) {
	if found, ok := this.fileSystem[path]; ok {
		return found, nil
	}
	if _, ok := this.directories[path]; ok {
		return &file{path: path, mod: inMemoryModTime}, nil
	}
	return nil, os.ErrNotExist
}

func (this *inMemoryFileSystem) Open(path string) (io.ReadCloser, error) {
	if err := this.errOpen[path]; err != nil {
		return nil, err
	}
	found, ok := this.fileSystem[path]
	if !ok {
		return nil, os.ErrNotExist
	}
	return io.NopCloser(bytes.NewReader(found.contents)), nil
}

func (this *inMemoryFileSystem) Create(path string) (io.WriteCloser, error) {
	this.WriteFile(path, nil)
	return this.fileSystem[path], nil
}

func (this *inMemoryFileSystem) MkdirAll(path string) error {
	if err := this.errMkdirAll[path]; err != nil {
		return err
	}
	this.directories[path] = struct{}{}
	return nil
}

func (this *inMemoryFileSystem) ListDirectory(path string) (filenames []string, err error) {
	for candidate := range this.fileSystem {
		if filepath.Dir(candidate) == path {
			filenames = append(filenames, filepath.Base(candidate))
		}
	}
	if filenames == nil {
		if _, ok := this.directories[path]; !ok {
			return nil, os.ErrNotExist
		}
	}
	sort.Strings(filenames)
	return filenames, nil
}

func (this *inMemoryFileSystem) Rename(oldPath, newPath string) error {
	renamed := false
	if _, ok := this.directories[oldPath]; ok {
		delete(this.directories, oldPath)
		this.directories[newPath] = struct{}{}
		renamed = true
	}
	prefix := oldPath + string(os.PathSeparator)
	for path, found := range this.fileSystem {
		if strings.HasPrefix(path, prefix) {
			delete(this.fileSystem, path)
			moved := newPath + string(os.PathSeparator) + path[len(prefix):]
			found.path = moved
			this.fileSystem[moved] = found
			renamed = true
		}
	}
	if !renamed {
		return os.ErrNotExist
	}
	return nil
}

func (this *inMemoryFileSystem) Delete(path string) error {
	if _, ok := this.fileSystem[path]; ok {
		delete(this.fileSystem, path)
		return nil
	}
	if _, ok := this.directories[path]; ok {
		delete(this.directories, path)
		return nil
	}
	return os.ErrNotExist
}

func (this *inMemoryFileSystem) WriteFile(path string, contents []byte) {
	this.fileSystem[path] = &file{path: path, contents: contents, mod: inMemoryModTime}
}

func (this *inMemoryFileSystem) readFile(path string) []byte {
	found, ok := this.fileSystem[path]
	if !ok {
		return nil
	}
	return found.contents
}

func (this *inMemoryFileSystem) exists(path string) bool {
	_, err := this.Stat(path)
	return !os.IsNotExist(err)
}

/////////////////////////////////////////////////

type file struct {
	path     string
	contents []byte
	mod      time.Time
}

var inMemoryModTime = time.Now()

func (this *file) Write(p []byte) (n int, err error) {
	this.contents = append(this.contents, p...)
	return len(p), nil
}

func (this *file) Close() error       { return nil }
func (this *file) Path() string       { return this.path }
func (this *file) Size() int64        { return int64(len(this.contents)) }
func (this *file) ModTime() time.Time { return this.mod }

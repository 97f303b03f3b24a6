package core

import "path/filepath"

type FakeDownloader struct {
	fileSystem  *inMemoryFileSystem
	downloads   []string
	targets     []string
	downloadErr error

	fetchCalls []string
	fetched    []byte
	fetchErr   error
}

func NewFakeDownloader(fileSystem *inMemoryFileSystem) *FakeDownloader {
	return &FakeDownloader{fileSystem: fileSystem}
}

func (this *FakeDownloader) Download(sourceURL, targetPath string) error {
	this.downloads = append(this.downloads, sourceURL)
	this.targets = append(this.targets, targetPath)
	if this.downloadErr != nil {
		return this.downloadErr
	}
	this.fileSystem.WriteFile(targetPath, []byte("downloaded from "+sourceURL))
	return nil
}

func (this *FakeDownloader) FetchWithUserAgent(sourceURL string) ([]byte, error) {
	this.fetchCalls = append(this.fetchCalls, sourceURL)
	return this.fetched, this.fetchErr
}

/////////////////////////////////////////////////

type extraction struct {
	archive string
	target  string
}

// FakeExtractor simulates extraction by writing its configured entries
// (paths relative to the archive root) under the target directory.
type FakeExtractor struct {
	fileSystem *inMemoryFileSystem
	entries    []string

	zipCalls    []extraction
	tarCalls    []extraction
	memoryCalls []extraction
	zipErr      error
	tarErr      error
	memoryErr   error
}

func NewFakeExtractor(fileSystem *inMemoryFileSystem, entries ...string) *FakeExtractor {
	return &FakeExtractor{fileSystem: fileSystem, entries: entries}
}

func (this *FakeExtractor) ExtractZip(archivePath, targetDir string) error {
	this.zipCalls = append(this.zipCalls, extraction{archive: archivePath, target: targetDir})
	if this.zipErr != nil {
		return this.zipErr
	}
	this.materialize(targetDir)
	return nil
}

func (this *FakeExtractor) ExtractZipFromMemory(archive []byte, targetDir string) error {
	this.memoryCalls = append(this.memoryCalls, extraction{archive: string(archive), target: targetDir})
	if this.memoryErr != nil {
		return this.memoryErr
	}
	this.materialize(targetDir)
	return nil
}

func (this *FakeExtractor) ExtractTarGz(archivePath, targetDir string) error {
	this.tarCalls = append(this.tarCalls, extraction{archive: archivePath, target: targetDir})
	if this.tarErr != nil {
		return this.tarErr
	}
	this.materialize(targetDir)
	return nil
}

func (this *FakeExtractor) materialize(targetDir string) {
	for _, entry := range this.entries {
		this.fileSystem.WriteFile(filepath.Join(targetDir, entry), []byte("extracted"))
	}
}

package shell

import (
	"archive/zip"
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/mholt/archiver"
)

type ArchiveExtractor struct{}

func NewArchiveExtractor() *ArchiveExtractor {
	return &ArchiveExtractor{}
}

func (this *ArchiveExtractor) ExtractZip(archivePath, targetDir string) error {
	return archiver.NewZip().Unarchive(archivePath, targetDir)
}

func (this *ArchiveExtractor) ExtractTarGz(archivePath, targetDir string) error {
	return archiver.NewTarGz().Unarchive(archivePath, targetDir)
}

// ExtractZipFromMemory unpacks an archive that was re-fetched into memory;
// archiver only unarchives from disk, so this path reads the zip directly.
func (this *ArchiveExtractor) ExtractZipFromMemory(archive []byte, targetDir string) error {
	reader, err := zip.NewReader(bytes.NewReader(archive), int64(len(archive)))
	if err != nil {
		return err
	}
	for _, entry := range reader.File {
		if err := this.extractZipEntry(entry, targetDir); err != nil {
			return err
		}
	}
	return nil
}

func (this *ArchiveExtractor) extractZipEntry(entry *zip.File, targetDir string) error {
	target := filepath.Join(targetDir, entry.Name)
	if !strings.HasPrefix(target, filepath.Clean(targetDir)+string(os.PathSeparator)) {
		return fmt.Errorf("illegal file path in archive: %s", entry.Name)
	}
	if entry.FileInfo().IsDir() {
		return os.MkdirAll(target, 0755)
	}
	if err := os.MkdirAll(filepath.Dir(target), 0755); err != nil {
		return err
	}
	reader, err := entry.Open()
	if err != nil {
		return err
	}
	defer func() { _ = reader.Close() }()

	writer, err := os.OpenFile(target, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, entry.Mode())
	if err != nil {
		return err
	}
	defer func() { _ = writer.Close() }()

	_, err = io.Copy(writer, reader)
	return err
}

package contracts

import "strings"

// DownloadFormat tags how a dependency's payload is packaged at its URL.
type DownloadFormat string

const (
	FormatZip   DownloadFormat = "zip"
	FormatTar   DownloadFormat = "tar"
	FormatFiles DownloadFormat = "files"
)

// DependencyListing is the parsed dependencies manifest: category name
// (e.g. "frontend") to dependency name to entry. Entries are read-only
// configuration, loaded once per run.
type DependencyListing struct {
	Dependencies map[string]map[string]Dependency `json:"dependencies"`
}

type Dependency struct {
	Version          string         `json:"version"`
	DownloadFormat   DownloadFormat `json:"downloadFormat"`
	URL              string         `json:"url"`
	RootDir          string         `json:"rootDir,omitempty"`
	RootDirPrefix    string         `json:"rootDirPrefix,omitempty"`
	TargetDir        string         `json:"targetDir,omitempty"`
	TargetDirPrefix  string         `json:"targetDirPrefix,omitempty"`
	TarRootDirPrefix string         `json:"tarRootDirPrefix,omitempty"`
	Files            []string       `json:"files,omitempty"`
	Bundle           *Bundle        `json:"bundle,omitempty"`
}

// Bundle lists the files a dependency contributes to the generated
// third-party assets. Paths are relative to the installed target directory.
type Bundle struct {
	JS        []string `json:"js,omitempty"`
	CSS       []string `json:"css,omitempty"`
	FontsPath string   `json:"fontsPath,omitempty"`
}

// TargetName resolves the directory name the dependency installs into:
// the explicit targetDir when present, otherwise targetDirPrefix+version.
func (this Dependency) TargetName() string {
	if this.TargetDir != "" {
		return this.TargetDir
	}
	return this.TargetDirPrefix + this.Version
}

// ZipRootName is the top-level folder name inside the zip archive, which
// frequently embeds a version string that differs from the target name.
func (this Dependency) ZipRootName() string {
	if this.RootDir != "" {
		return this.RootDir
	}
	return this.RootDirPrefix + this.Version
}

// TarRootName is the top-level folder name inside the tar.gz archive.
func (this Dependency) TarRootName() string {
	return this.TarRootDirPrefix + this.Version
}

// URLWithoutFragment strips a trailing "#fragment" (checksum annotations
// and the like) so the extension reflects the actual payload.
func (this Dependency) URLWithoutFragment() string {
	if index := strings.LastIndex(this.URL, "#"); index >= 0 {
		return this.URL[:index]
	}
	return this.URL
}

// FileURL composes the download address of one file in a files-format
// dependency by appending the filename to the entry's URL root.
func (this Dependency) FileURL(filename string) string {
	return strings.TrimSuffix(this.URL, "/") + "/" + filename
}

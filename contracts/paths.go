package contracts

import "sort"

// InstallationPaths is the immutable path configuration for one run,
// constructed at startup and passed explicitly into the installer and
// bundler.
type InstallationPaths struct {
	// TargetDirs maps each known manifest category to the parent
	// directory its dependencies install under.
	TargetDirs map[string]string

	// TempArchivePath is where archives are downloaded before extraction.
	TempArchivePath string

	// GeneratedDir receives the concatenated JS/CSS bundles and webfonts.
	GeneratedDir string
}

func (this InstallationPaths) TargetDir(category string) (string, bool) {
	directory, found := this.TargetDirs[category]
	return directory, found
}

func (this InstallationPaths) Categories() (categories []string) {
	for category := range this.TargetDirs {
		categories = append(categories, category)
	}
	sort.Strings(categories)
	return categories
}

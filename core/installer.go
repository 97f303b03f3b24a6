package core

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pterm/pterm"

	"github.com/webfoundry/stockpile/contracts"
)

// PackageInstaller materializes every dependency in a validated listing
// into its target directory. Installation is idempotent: work that has
// already been materialized is skipped, which is also the sole recovery
// mechanism after an interrupted run.
type PackageInstaller struct {
	files    contracts.FileSystem
	remote   contracts.Downloader
	archives contracts.Extractor
	paths    contracts.InstallationPaths
}

func NewPackageInstaller(
	files contracts.FileSystem,
	remote contracts.Downloader,
	archives contracts.Extractor,
	paths contracts.InstallationPaths,
) *PackageInstaller {
	return &PackageInstaller{files: files, remote: remote, archives: archives, paths: paths}
}

// InstallAll walks the listing sequentially, one dependency fully
// materialized before the next begins. The listing must have passed
// schema validation first; fetch failures abort the run.
func (this *PackageInstaller) InstallAll(listing contracts.DependencyListing) error {
	for _, category := range sortedCategories(listing) {
		parent, found := this.paths.TargetDir(category)
		if !found {
			return fmt.Errorf("no target directory registered for category %q", category)
		}
		dependencies := listing.Dependencies[category]
		for _, name := range sortedNames(dependencies) {
			if err := this.install(parent, dependencies[name]); err != nil {
				return fmt.Errorf("failed to install %s/%s: %w", category, name, err)
			}
		}
	}
	return nil
}

func (this *PackageInstaller) install(parent string, dependency contracts.Dependency) error {
	switch dependency.DownloadFormat {
	case contracts.FormatFiles:
		return this.installFiles(parent, dependency)
	case contracts.FormatZip:
		return this.installZip(parent, dependency)
	case contracts.FormatTar:
		return this.installTar(parent, dependency)
	default:
		return fmt.Errorf("unknown download format %q", dependency.DownloadFormat)
	}
}

// installFiles downloads each listed file into the target directory,
// skipping files that already exist (per-file idempotence).
func (this *PackageInstaller) installFiles(parent string, dependency contracts.Dependency) error {
	target := filepath.Join(parent, dependency.TargetName())
	if err := this.files.MkdirAll(target); err != nil {
		return err
	}
	for _, filename := range dependency.Files {
		if this.exists(filepath.Join(target, filename)) {
			continue
		}
		pterm.Info.Printfln("Downloading file %s to %s ...", filename, target)
		if err := this.remote.Download(dependency.FileURL(filename), filepath.Join(target, filename)); err != nil {
			return err
		}
		pterm.Success.Printfln("Download of %s succeeded.", filename)
	}
	return nil
}

// installZip downloads the archive to the temporary path, extracts it into
// the category directory, and renames the archive's root folder to the
// target name. The whole step is skipped when the target already exists.
// The archive root is assumed to hold exactly one folder.
func (this *PackageInstaller) installZip(parent string, dependency contracts.Dependency) error {
	if this.exists(filepath.Join(parent, dependency.TargetName())) {
		pterm.Debug.Printfln("%s already installed, skipping.", dependency.TargetName())
		return nil
	}
	pterm.Info.Printfln("Downloading and unzipping file %s to %s ...", dependency.ZipRootName(), parent)
	if err := this.files.MkdirAll(parent); err != nil {
		return err
	}
	if err := this.remote.Download(dependency.URL, this.paths.TempArchivePath); err != nil {
		return err
	}
	if err := this.extractZip(parent, dependency); err != nil {
		return err
	}
	if err := this.renameExtractedRoot(parent, dependency.ZipRootName(), dependency.TargetName()); err != nil {
		return err
	}
	pterm.Success.Printfln("Download of %s succeeded.", dependency.ZipRootName())
	return nil
}

// extractZip retries via an in-memory fetch with an explicit User-Agent
// when extraction of the downloaded archive fails; some hosts serve an
// error page to anonymous clients and the saved "archive" is not a zip.
// The temporary archive is removed on both paths.
func (this *PackageInstaller) extractZip(parent string, dependency contracts.Dependency) error {
	err := this.archives.ExtractZip(this.paths.TempArchivePath, parent)
	_ = this.files.Delete(this.paths.TempArchivePath)
	if err == nil {
		return nil
	}
	pterm.Warning.Printfln("Extraction of %s failed (%v), retrying with an explicit User-Agent ...",
		dependency.ZipRootName(), err)
	raw, fetchErr := this.remote.FetchWithUserAgent(dependency.URL)
	if fetchErr != nil {
		return fetchErr
	}
	return this.archives.ExtractZipFromMemory(raw, parent)
}

// installTar is the same shape as installZip but for gzip-compressed tar
// archives; there is no user-agent fallback.
func (this *PackageInstaller) installTar(parent string, dependency contracts.Dependency) error {
	if this.exists(filepath.Join(parent, dependency.TargetName())) {
		pterm.Debug.Printfln("%s already installed, skipping.", dependency.TargetName())
		return nil
	}
	pterm.Info.Printfln("Downloading and untarring file %s to %s ...", dependency.TarRootName(), parent)
	if err := this.files.MkdirAll(parent); err != nil {
		return err
	}
	if err := this.remote.Download(dependency.URL, this.paths.TempArchivePath); err != nil {
		return err
	}
	err := this.archives.ExtractTarGz(this.paths.TempArchivePath, parent)
	_ = this.files.Delete(this.paths.TempArchivePath)
	if err != nil {
		return err
	}
	if err := this.renameExtractedRoot(parent, dependency.TarRootName(), dependency.TargetName()); err != nil {
		return err
	}
	pterm.Success.Printfln("Download of %s succeeded.", dependency.TarRootName())
	return nil
}

// renameExtractedRoot decouples what the archive contains from where the
// rest of the system expects to find it.
func (this *PackageInstaller) renameExtractedRoot(parent, rootName, targetName string) error {
	if rootName == targetName {
		return nil
	}
	return this.files.Rename(filepath.Join(parent, rootName), filepath.Join(parent, targetName))
}

func (this *PackageInstaller) exists(path string) bool {
	_, err := this.files.Stat(path)
	return !os.IsNotExist(err)
}

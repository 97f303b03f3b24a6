package core

import (
	"fmt"
	"io"
	"path/filepath"

	"github.com/pterm/pterm"

	"github.com/webfoundry/stockpile/contracts"
)

const (
	GeneratedJSFilename  = "third_party.js"
	GeneratedCSSFilename = "third_party.css"
	WebfontsDirname      = "webfonts"
)

// AssetBundler concatenates the JS and CSS files declared by manifest
// bundles into single generated files and copies webfonts alongside them.
// It runs only after every dependency has been installed.
type AssetBundler struct {
	files contracts.FileSystem
	paths contracts.InstallationPaths
}

func NewAssetBundler(files contracts.FileSystem, paths contracts.InstallationPaths) *AssetBundler {
	return &AssetBundler{files: files, paths: paths}
}

func (this *AssetBundler) BuildThirdPartyLibs(listing contracts.DependencyListing) error {
	pterm.Info.Printfln("Building third party libs at %s ...", this.paths.GeneratedDir)

	js, css, fonts := this.collectBundlePaths(listing)

	if err := this.joinFiles(js, filepath.Join(this.paths.GeneratedDir, "js", GeneratedJSFilename)); err != nil {
		return err
	}
	if err := this.joinFiles(css, filepath.Join(this.paths.GeneratedDir, "css", GeneratedCSSFilename)); err != nil {
		return err
	}
	return this.copyFonts(fonts, filepath.Join(this.paths.GeneratedDir, WebfontsDirname))
}

// collectBundlePaths resolves every bundle's relative paths against the
// directory the dependency was installed into.
func (this *AssetBundler) collectBundlePaths(listing contracts.DependencyListing) (js, css, fonts []string) {
	for _, category := range sortedCategories(listing) {
		parent, found := this.paths.TargetDir(category)
		if !found {
			continue
		}
		dependencies := listing.Dependencies[category]
		for _, name := range sortedNames(dependencies) {
			dependency := dependencies[name]
			if dependency.Bundle == nil {
				continue
			}
			base := filepath.Join(parent, dependency.TargetName())
			for _, path := range dependency.Bundle.JS {
				js = append(js, filepath.Join(base, path))
			}
			for _, path := range dependency.Bundle.CSS {
				css = append(css, filepath.Join(base, path))
			}
			if dependency.Bundle.FontsPath != "" {
				fonts = append(fonts, filepath.Join(base, dependency.Bundle.FontsPath))
			}
		}
	}
	return js, css, fonts
}

func (this *AssetBundler) joinFiles(sources []string, targetPath string) error {
	if err := this.files.MkdirAll(filepath.Dir(targetPath)); err != nil {
		return err
	}
	target, err := this.files.Create(targetPath)
	if err != nil {
		return err
	}
	defer func() { _ = target.Close() }()

	for _, source := range sources {
		if err := this.appendFile(source, target); err != nil {
			return fmt.Errorf("failed to bundle %s: %w", source, err)
		}
	}
	return nil
}

func (this *AssetBundler) appendFile(source string, target io.Writer) error {
	reader, err := this.files.Open(source)
	if err != nil {
		return err
	}
	defer func() { _ = reader.Close() }()

	if _, err := io.Copy(target, reader); err != nil {
		return err
	}
	_, err = io.WriteString(target, "\n")
	return err
}

func (this *AssetBundler) copyFonts(fontDirs []string, webfontsDir string) error {
	if err := this.files.MkdirAll(webfontsDir); err != nil {
		return err
	}
	for _, fontDir := range fontDirs {
		filenames, err := this.files.ListDirectory(fontDir)
		if err != nil {
			return err
		}
		for _, filename := range filenames {
			if err := this.copyFile(filepath.Join(fontDir, filename), filepath.Join(webfontsDir, filename)); err != nil {
				return err
			}
		}
	}
	return nil
}

func (this *AssetBundler) copyFile(sourcePath, targetPath string) error {
	reader, err := this.files.Open(sourcePath)
	if err != nil {
		return err
	}
	defer func() { _ = reader.Close() }()

	writer, err := this.files.Create(targetPath)
	if err != nil {
		return err
	}
	defer func() { _ = writer.Close() }()

	_, err = io.Copy(writer, reader)
	return err
}

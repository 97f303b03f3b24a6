package main

import (
	"encoding/json"
	"io"
	"log"
	"os"

	"github.com/pterm/pterm"

	"github.com/webfoundry/stockpile/contracts"
	"github.com/webfoundry/stockpile/core"
	"github.com/webfoundry/stockpile/shell"
)

func main() {
	log.SetFlags(log.Ltime | log.Lshortfile)

	config := parseConfig(os.Args[1:])
	listing, err := readDependencyListing(config.DependenciesPath)
	if err != nil {
		log.Fatal(err)
	}

	paths := config.InstallationPaths()
	validator := core.NewSchemaValidator(paths.Categories()...)
	if err := validator.ValidateListing(listing); err != nil {
		log.Fatal(err)
	}

	disk := shell.NewDiskFileSystem()
	installer := core.NewPackageInstaller(disk, shell.NewHTTPDownloader(), shell.NewArchiveExtractor(), paths)
	if err := installer.InstallAll(listing); err != nil {
		log.Fatal(err)
	}

	bundler := core.NewAssetBundler(disk, paths)
	if err := bundler.BuildThirdPartyLibs(listing); err != nil {
		log.Fatal(err)
	}

	pterm.Success.Printfln("All dependencies are installed.")
}

func readDependencyListing(path string) (listing contracts.DependencyListing, err error) {
	file, err := os.Open(path)
	if err != nil {
		return listing, err
	}
	defer func() { _ = file.Close() }()
	return readFromReader(file)
}

func readFromReader(reader io.Reader) (listing contracts.DependencyListing, err error) {
	decoder := json.NewDecoder(reader)
	err = decoder.Decode(&listing)
	return listing, err
}

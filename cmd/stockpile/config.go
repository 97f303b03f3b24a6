package main

import (
	"flag"
	"path/filepath"

	"github.com/webfoundry/stockpile/contracts"
)

type Config struct {
	DependenciesPath    string
	ToolsDirectory      string
	ThirdPartyDirectory string
	GeneratedDirectory  string
	TempArchivePath     string
}

func parseConfig(args []string) (config Config) {
	flags := flag.NewFlagSet("stockpile", flag.ExitOnError)
	flags.StringVar(&config.DependenciesPath,
		"dependencies",
		"dependencies.json",
		"Path to the JSON dependencies manifest.",
	)
	flags.StringVar(&config.ToolsDirectory,
		"tools-dir",
		filepath.Join("..", "oppia_tools"),
		"Directory that receives tooling dependencies.",
	)
	flags.StringVar(&config.ThirdPartyDirectory,
		"third-party-dir",
		filepath.Join(".", "third_party"),
		"Directory that receives third-party dependencies.",
	)
	flags.StringVar(&config.GeneratedDirectory,
		"generated-dir",
		filepath.Join("third_party", "generated"),
		"Directory that receives the concatenated JS/CSS bundles and webfonts.",
	)
	flags.StringVar(&config.TempArchivePath,
		"tmp-archive",
		filepath.Join(".", "tmp_unzip.zip"),
		"Temporary location for downloaded archives.",
	)
	_ = flags.Parse(args)
	return config
}

func (this Config) InstallationPaths() contracts.InstallationPaths {
	return contracts.InstallationPaths{
		TargetDirs: map[string]string{
			"proto":      this.ThirdPartyDirectory,
			"frontend":   filepath.Join(this.ThirdPartyDirectory, "static"),
			"oppiaTools": this.ToolsDirectory,
		},
		TempArchivePath: this.TempArchivePath,
		GeneratedDir:    this.GeneratedDirectory,
	}
}

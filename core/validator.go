package core

import (
	"strings"

	"github.com/webfoundry/stockpile/contracts"
)

type fieldRule struct {
	key     string
	present func(contracts.Dependency) bool
}

type pairRule struct {
	first  fieldRule
	second fieldRule
}

type formatRules struct {
	mandatory     []fieldRule
	optionalPairs []pairRule
}

var (
	versionField = fieldRule{"version", func(d contracts.Dependency) bool { return d.Version != "" }}
	urlField     = fieldRule{"url", func(d contracts.Dependency) bool { return d.URL != "" }}
	filesField   = fieldRule{"files", func(d contracts.Dependency) bool { return len(d.Files) > 0 }}

	rootDirField         = fieldRule{"rootDir", func(d contracts.Dependency) bool { return d.RootDir != "" }}
	rootDirPrefixField   = fieldRule{"rootDirPrefix", func(d contracts.Dependency) bool { return d.RootDirPrefix != "" }}
	targetDirField       = fieldRule{"targetDir", func(d contracts.Dependency) bool { return d.TargetDir != "" }}
	targetDirPrefixField = fieldRule{"targetDirPrefix", func(d contracts.Dependency) bool { return d.TargetDirPrefix != "" }}
	tarRootPrefixField   = fieldRule{"tarRootDirPrefix", func(d contracts.Dependency) bool { return d.TarRootDirPrefix != "" }}
)

// SchemaValidator checks each manifest entry against the field requirements
// of its declared download format. It is pure: no filesystem or network
// access, no exits; violations come back as *contracts.ValidationError.
type SchemaValidator struct {
	rules      map[contracts.DownloadFormat]formatRules
	categories map[string]struct{}
}

func NewSchemaValidator(knownCategories ...string) *SchemaValidator {
	categories := make(map[string]struct{})
	for _, category := range knownCategories {
		categories[category] = struct{}{}
	}
	return &SchemaValidator{
		categories: categories,
		rules: map[contracts.DownloadFormat]formatRules{
			contracts.FormatZip: {
				mandatory: []fieldRule{versionField, urlField},
				optionalPairs: []pairRule{
					{rootDirField, rootDirPrefixField},
					{targetDirField, targetDirPrefixField},
				},
			},
			contracts.FormatFiles: {
				mandatory: []fieldRule{versionField, urlField, filesField, targetDirPrefixField},
			},
			contracts.FormatTar: {
				mandatory: []fieldRule{versionField, urlField, tarRootPrefixField, targetDirPrefixField},
			},
		},
	}
}

// ValidateListing walks every entry and returns the first violation found,
// or nil when the whole manifest is well formed.
func (this *SchemaValidator) ValidateListing(listing contracts.DependencyListing) error {
	for _, category := range sortedCategories(listing) {
		if _, known := this.categories[category]; !known {
			return &contracts.ValidationError{
				Category: category,
				Reason:   "category does not map to a known target directory",
			}
		}
		dependencies := listing.Dependencies[category]
		for _, name := range sortedNames(dependencies) {
			if err := this.validateDependency(category, name, dependencies[name]); err != nil {
				return err
			}
		}
	}
	return nil
}

func (this *SchemaValidator) validateDependency(category, name string, dependency contracts.Dependency) *contracts.ValidationError {
	if dependency.DownloadFormat == "" {
		return contracts.NewValidationError(category, name, dependency, "downloadFormat not specified")
	}
	rules, known := this.rules[dependency.DownloadFormat]
	if !known {
		return contracts.NewValidationError(category, name, dependency,
			"unknown download format %q", dependency.DownloadFormat)
	}
	for _, field := range rules.mandatory {
		if !field.present(dependency) {
			return contracts.NewValidationError(category, name, dependency,
				"missing mandatory key %q", field.key)
		}
	}
	for _, pair := range rules.optionalPairs {
		if pair.first.present(dependency) == pair.second.present(dependency) {
			return contracts.NewValidationError(category, name, dependency,
				"exactly one of %q and %q must be present", pair.first.key, pair.second.key)
		}
	}
	return this.validateURL(category, name, dependency)
}

func (this *SchemaValidator) validateURL(category, name string, dependency contracts.Dependency) *contracts.ValidationError {
	address := dependency.URLWithoutFragment()
	isZip := dependency.DownloadFormat == contracts.FormatZip
	isTar := dependency.DownloadFormat == contracts.FormatTar
	if strings.HasSuffix(address, ".zip") != isZip || strings.HasSuffix(address, ".tar.gz") != isTar {
		return contracts.NewValidationError(category, name, dependency,
			"url %q is invalid for the %s download format", address, dependency.DownloadFormat)
	}
	return nil
}

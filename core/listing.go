package core

import (
	"sort"

	"github.com/webfoundry/stockpile/contracts"
)

// Map order is unspecified in Go; the manifest is walked in sorted order so
// diagnostics and install logs are stable run to run.

func sortedCategories(listing contracts.DependencyListing) (categories []string) {
	for category := range listing.Dependencies {
		categories = append(categories, category)
	}
	sort.Strings(categories)
	return categories
}

func sortedNames(dependencies map[string]contracts.Dependency) (names []string) {
	for name := range dependencies {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

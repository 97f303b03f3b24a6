package contracts

import (
	"encoding/json"
	"fmt"
)

// ValidationError reports a single malformed manifest entry. The offending
// entry is dumped alongside the reason so the manifest author can find it.
type ValidationError struct {
	Category   string
	Name       string
	Dependency Dependency
	Reason     string
}

func NewValidationError(category, name string, dependency Dependency, format string, args ...interface{}) *ValidationError {
	return &ValidationError{
		Category:   category,
		Name:       name,
		Dependency: dependency,
		Reason:     fmt.Sprintf(format, args...),
	}
}

func (this *ValidationError) Error() string {
	if this.Name == "" {
		return fmt.Sprintf("invalid dependency category %q: %s", this.Category, this.Reason)
	}
	raw, _ := json.MarshalIndent(this.Dependency, "", "  ")
	return fmt.Sprintf("invalid dependency %s/%s: %s\n%s", this.Category, this.Name, this.Reason, raw)
}

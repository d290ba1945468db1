package service

import (
	"fmt"
	"path/filepath"
	"strings"
)

func formatValidationErrors(errs []error) error {
	msg := fmt.Sprintf("plan validation failed (%d errors):", len(errs))
	for _, e := range errs {
		msg += "\n  - " + e.Error()
	}
	return fmt.Errorf("%s", msg)
}

// planNameFromPath derives a plan name from a file name: "plans/Spring.yaml"
// becomes "Spring".
func planNameFromPath(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

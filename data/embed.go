// Package data bundles the catalog source files for the four ICD
// subsets.
//
// Each file is a sequence of "<code>,<description>" lines. The code is
// everything before the first comma; the description is the remainder
// and may be wrapped in double quotes when it contains commas itself.
//
// Usage:
//
//	text, err := data.Text(data.ICD10Diagnoses)
//	if err != nil {
//	    return err
//	}
package data

import (
	"embed"
	"fmt"
)

//go:embed *.txt
var files embed.FS

// File names of the bundled subset sources.
const (
	ICD9Diagnoses   = "icd9-diagnoses.txt"
	ICD9Procedures  = "icd9-procedures.txt"
	ICD10Diagnoses  = "icd10-diagnoses.txt"
	ICD10Procedures = "icd10-procedures.txt"
)

// Text returns the raw contents of a bundled source file.
func Text(name string) (string, error) {
	b, err := files.ReadFile(name)
	if err != nil {
		return "", fmt.Errorf("bundled source %s: %w", name, err)
	}
	return string(b), nil
}

// ListFiles returns the names of all bundled source files.
func ListFiles() ([]string, error) {
	entries, err := files.ReadDir(".")
	if err != nil {
		return nil, fmt.Errorf("failed to read bundled sources: %w", err)
	}

	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		if !entry.IsDir() {
			names = append(names, entry.Name())
		}
	}

	return names, nil
}

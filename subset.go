package icd

import (
	"fmt"

	"github.com/gofhir/icd/data"
)

// Subset identifies one of the four fixed catalog partitions: two
// coding revisions (ICD-9-CM and ICD-10-CM/PCS) by two axes (diagnosis
// and procedure).
type Subset string

// The four known subsets.
const (
	// ICD9Diagnosis is the ICD-9-CM diagnosis code subset.
	ICD9Diagnosis Subset = "icd9-diag"
	// ICD9Procedure is the ICD-9-CM volume 3 procedure code subset.
	ICD9Procedure Subset = "icd9-proc"
	// ICD10Diagnosis is the ICD-10-CM diagnosis code subset.
	ICD10Diagnosis Subset = "icd10-diag"
	// ICD10Procedure is the ICD-10-PCS procedure code subset.
	ICD10Procedure Subset = "icd10-proc"
)

// String returns the subset identifier string.
func (s Subset) String() string {
	return string(s)
}

// IsValid returns true if this is one of the four known subsets.
func (s Subset) IsValid() bool {
	switch s {
	case ICD9Diagnosis, ICD9Procedure, ICD10Diagnosis, ICD10Procedure:
		return true
	default:
		return false
	}
}

// DisplayName returns the human-readable name of the subset's code
// system.
func (s Subset) DisplayName() string {
	return subsetConfigs[s].DisplayName
}

// System returns the canonical FHIR system URI for codes in this
// subset.
func (s Subset) System() string {
	return subsetConfigs[s].System
}

// Subsets returns the four known subsets in fixed catalog order. This
// order also defines the iteration order of Find and the tie-break
// order of Search.
func Subsets() []Subset {
	return []Subset{ICD9Diagnosis, ICD9Procedure, ICD10Diagnosis, ICD10Procedure}
}

// ParseSubset maps an identifier string to a Subset. Identifiers
// outside the four known values return ErrUnknownSubset.
func ParseSubset(id string) (Subset, error) {
	s := Subset(id)
	if !s.IsValid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownSubset, id)
	}
	return s, nil
}

// subsetConfig holds subset-specific configuration.
type subsetConfig struct {
	// DisplayName is the human-readable code system name
	DisplayName string

	// System is the canonical FHIR system URI for the subset
	System string

	// DataFile is the bundled source file in the data package
	DataFile string
}

// subsetConfigs maps subsets to their configurations.
var subsetConfigs = map[Subset]subsetConfig{
	ICD9Diagnosis: {
		DisplayName: "ICD-9-CM Diagnosis Codes",
		System:      "http://hl7.org/fhir/sid/icd-9-cm",
		DataFile:    data.ICD9Diagnoses,
	},
	ICD9Procedure: {
		DisplayName: "ICD-9-CM Procedure Codes (Volume 3)",
		System:      "http://hl7.org/fhir/sid/icd-9-cm/procedure",
		DataFile:    data.ICD9Procedures,
	},
	ICD10Diagnosis: {
		DisplayName: "ICD-10-CM Diagnosis Codes",
		System:      "http://hl7.org/fhir/sid/icd-10-cm",
		DataFile:    data.ICD10Diagnoses,
	},
	ICD10Procedure: {
		DisplayName: "ICD-10-PCS Procedure Codes",
		System:      "http://www.cms.gov/Medicare/Coding/ICD10",
		DataFile:    data.ICD10Procedures,
	},
}

package icd

import (
	"errors"
	"testing"
)

func TestParseSubsetText(t *testing.T) {
	t.Run("well-formed lines", func(t *testing.T) {
		text := "A000,Cholera\nA001,Cholera el tor\n"

		entries, err := parseSubsetText(ICD10Diagnosis, text)
		if err != nil {
			t.Fatalf("parseSubsetText() error = %v", err)
		}
		if len(entries) != 2 {
			t.Fatalf("got %d entries; want 2", len(entries))
		}
		if entries[0].Code != "A000" || entries[0].Description != "Cholera" {
			t.Errorf("entries[0] = %+v; want {A000 Cholera}", entries[0])
		}
	})

	t.Run("split at first comma only", func(t *testing.T) {
		text := "A009,Cholera, unspecified"

		entries, err := parseSubsetText(ICD10Diagnosis, text)
		if err != nil {
			t.Fatalf("parseSubsetText() error = %v", err)
		}
		if entries[0].Description != "Cholera, unspecified" {
			t.Errorf("Description = %q; want %q", entries[0].Description, "Cholera, unspecified")
		}
	})

	t.Run("quoted description with commas", func(t *testing.T) {
		text := `A000,"Cholera due to Vibrio cholerae 01, biovar cholerae"`

		entries, err := parseSubsetText(ICD10Diagnosis, text)
		if err != nil {
			t.Fatalf("parseSubsetText() error = %v", err)
		}
		want := "Cholera due to Vibrio cholerae 01, biovar cholerae"
		if entries[0].Description != want {
			t.Errorf("Description = %q; want %q", entries[0].Description, want)
		}
	})

	t.Run("whitespace trimmed", func(t *testing.T) {
		text := "  A000 ,  Cholera  "

		entries, err := parseSubsetText(ICD10Diagnosis, text)
		if err != nil {
			t.Fatalf("parseSubsetText() error = %v", err)
		}
		if entries[0].Code != "A000" {
			t.Errorf("Code = %q; want %q", entries[0].Code, "A000")
		}
		if entries[0].Description != "Cholera" {
			t.Errorf("Description = %q; want %q", entries[0].Description, "Cholera")
		}
	})

	t.Run("blank lines and CRLF", func(t *testing.T) {
		text := "A000,Cholera\r\n\r\n  \nA001,Cholera el tor\r\n"

		entries, err := parseSubsetText(ICD10Diagnosis, text)
		if err != nil {
			t.Fatalf("parseSubsetText() error = %v", err)
		}
		if len(entries) != 2 {
			t.Fatalf("got %d entries; want 2", len(entries))
		}
		if entries[1].Code != "A001" {
			t.Errorf("entries[1].Code = %q; want %q", entries[1].Code, "A001")
		}
	})

	t.Run("missing delimiter is fatal", func(t *testing.T) {
		text := "A000,Cholera\nA001 Cholera el tor\n"

		_, err := parseSubsetText(ICD10Diagnosis, text)
		if err == nil {
			t.Fatal("expected error for line without comma")
		}

		var malformed *MalformedLineError
		if !errors.As(err, &malformed) {
			t.Fatalf("error = %T; want *MalformedLineError", err)
		}
		if malformed.Line != 2 {
			t.Errorf("Line = %d; want 2", malformed.Line)
		}
		if malformed.Subset != ICD10Diagnosis {
			t.Errorf("Subset = %v; want %v", malformed.Subset, ICD10Diagnosis)
		}
	})

	t.Run("structural duplicates collapse", func(t *testing.T) {
		text := "A000,Cholera\nA000,Cholera\nA000,Cholera variant\n"

		entries, err := parseSubsetText(ICD10Diagnosis, text)
		if err != nil {
			t.Fatalf("parseSubsetText() error = %v", err)
		}
		// Same code with a different description is a distinct entry.
		if len(entries) != 2 {
			t.Fatalf("got %d entries; want 2", len(entries))
		}
	})

	t.Run("order preserved", func(t *testing.T) {
		text := "C01,third\nA01,first\nB01,second\n"

		entries, err := parseSubsetText(ICD10Diagnosis, text)
		if err != nil {
			t.Fatalf("parseSubsetText() error = %v", err)
		}
		want := []string{"C01", "A01", "B01"}
		for i, code := range want {
			if entries[i].Code != code {
				t.Errorf("entries[%d].Code = %q; want %q", i, entries[i].Code, code)
			}
		}
	})

	t.Run("empty text", func(t *testing.T) {
		entries, err := parseSubsetText(ICD10Diagnosis, "")
		if err != nil {
			t.Fatalf("parseSubsetText() error = %v", err)
		}
		if len(entries) != 0 {
			t.Errorf("got %d entries; want 0", len(entries))
		}
	})
}

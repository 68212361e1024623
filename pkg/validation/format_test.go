package validation

import (
	"strings"
	"testing"
)

func TestValidateOutputFormat(t *testing.T) {
	for _, format := range OutputFormats() {
		if err := ValidateOutputFormat(format); err != nil {
			t.Errorf("ValidateOutputFormat(%q) unexpected error = %v", format, err)
		}
	}

	// Matching is exact: no case folding, trimming or aliases.
	rejected := []string{"", "PRETTY", "CSV", " pretty ", "yml", "xml", "table"}
	for _, format := range rejected {
		if err := ValidateOutputFormat(format); err == nil {
			t.Errorf("ValidateOutputFormat(%q) expected error but got none", format)
		}
	}
}

func TestOutputFormatsOrder(t *testing.T) {
	got := strings.Join(OutputFormats(), ",")
	if got != "pretty,csv,json,yaml" {
		t.Errorf("OutputFormats() = %s", got)
	}
}

func TestValidateOutputFormatErrorMessage(t *testing.T) {
	err := ValidateOutputFormat("xml")
	if err == nil {
		t.Fatal("Expected error for format 'xml'")
	}

	msg := err.Error()
	for _, want := range []string{"pretty", "csv", "json", "yaml", "xml"} {
		if !strings.Contains(msg, want) {
			t.Errorf("Error message %q does not mention %q", msg, want)
		}
	}
}

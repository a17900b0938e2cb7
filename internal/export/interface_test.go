package export

import (
	"testing"
)

func TestNewExporter(t *testing.T) {
	tests := []struct {
		format    string
		extension string
		wantErr   bool
	}{
		{"html", "html", false},
		{"md", "md", false},
		{"markdown", "md", false},
		{"json", "json", false},
		{"yaml", "yaml", false},
		{"pdf", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			e, err := NewExporter(tt.format)
			if tt.wantErr {
				if err == nil {
					t.Errorf("NewExporter(%q) expected error", tt.format)
				}
				return
			}
			if err != nil {
				t.Fatalf("NewExporter(%q) error: %v", tt.format, err)
			}
			if e.Extension() != tt.extension {
				t.Errorf("Extension() = %q, want %q", e.Extension(), tt.extension)
			}
		})
	}
}

func TestReportFileName(t *testing.T) {
	got := ReportFileName("1/19/2024")
	want := "AML_Investigation_Report_1-19-2024.html"
	if got != want {
		t.Errorf("ReportFileName = %q, want %q", got, want)
	}
}

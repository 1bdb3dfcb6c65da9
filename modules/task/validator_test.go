package task

import (
	"strings"
	"testing"
)

func TestValidateTitle(t *testing.T) {
	tests := []struct {
		name        string
		raw         string
		wantTitle   string
		wantValid   bool
		wantMention string
	}{
		{
			name:      "minimum length",
			raw:       "abc",
			wantTitle: "abc",
			wantValid: true,
		},
		{
			name:      "maximum length",
			raw:       strings.Repeat("a", 100),
			wantTitle: strings.Repeat("a", 100),
			wantValid: true,
		},
		{
			name:      "typical title",
			raw:       "Buy milk",
			wantTitle: "Buy milk",
			wantValid: true,
		},
		{
			name:      "surrounding whitespace is trimmed",
			raw:       "  Write report  ",
			wantTitle: "Write report",
			wantValid: true,
		},
		{
			name:        "too short",
			raw:         "a",
			wantValid:   false,
			wantMention: "at least 3",
		},
		{
			name:        "whitespace padding does not count",
			raw:         "  ab  ",
			wantValid:   false,
			wantMention: "at least 3",
		},
		{
			name:        "too long",
			raw:         strings.Repeat("a", 101),
			wantValid:   false,
			wantMention: "at most 100",
		},
		{
			name:        "empty",
			raw:         "",
			wantValid:   false,
			wantMention: "required",
		},
		{
			name:        "only whitespace",
			raw:         "   ",
			wantValid:   false,
			wantMention: "required",
		},
		{
			name:      "multibyte characters count as one",
			raw:       "ñño",
			wantTitle: "ñño",
			wantValid: true,
		},
		{
			name:      "101 multibyte characters rejected",
			raw:       strings.Repeat("ñ", 101),
			wantValid: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			title, violations := ValidateTitle(tt.raw)

			if tt.wantValid {
				if len(violations) != 0 {
					t.Fatalf("ValidateTitle(%q) violations = %v, want none", tt.raw, violations)
				}
				if title != tt.wantTitle {
					t.Errorf("ValidateTitle(%q) title = %q, want %q", tt.raw, title, tt.wantTitle)
				}
				return
			}

			if len(violations) == 0 {
				t.Fatalf("ValidateTitle(%q) accepted, want rejection", tt.raw)
			}
			if tt.wantMention != "" {
				found := false
				for _, v := range violations {
					if strings.Contains(v, tt.wantMention) {
						found = true
					}
				}
				if !found {
					t.Errorf("violations %v do not mention %q", violations, tt.wantMention)
				}
			}
		})
	}
}

func TestValidateTitle_EmptyReportsMultipleViolations(t *testing.T) {
	_, violations := ValidateTitle("")
	if len(violations) < 2 {
		t.Errorf("expected at least 2 violations for empty title, got %v", violations)
	}
}

package validator

import (
	"testing"
)

func TestIsEmpty(t *testing.T) {
	cases := []struct {
		input string
		want  bool
	}{
		{"", true},
		{"   ", true},
		{"abc", false},
		{" abc ", false},
	}
	for _, c := range cases {
		got := IsEmpty(c.input)
		if got != c.want {
			t.Errorf("IsEmpty(%q) = %v, want %v", c.input, got, c.want)
		}
	}
}

func TestIsValidDate(t *testing.T) {
	valid := []string{"2025-01-31", "2024-02-29"}
	invalid := []string{"2025-13-01", "2025-02-30", "31-01-2025", "2025/01/31", ""}
	for _, d := range valid {
		if _, ok := IsValidDate(d); !ok {
			t.Errorf("IsValidDate(%q) = false, want true", d)
		}
	}
	for _, d := range invalid {
		if _, ok := IsValidDate(d); ok {
			t.Errorf("IsValidDate(%q) = true, want false", d)
		}
	}
}

func TestValidationErrors(t *testing.T) {
	errs := ValidationErrors{
		{Field: "latitude", Message: "latitude must be between -90 and 90"},
		{Field: "timestamp", Message: "timestamp is required"},
	}

	if got := errs.Error(); got != "latitude: latitude must be between -90 and 90; timestamp: timestamp is required" {
		t.Errorf("unexpected Error() output: %q", got)
	}

	m := errs.ToMap()
	if len(m) != 2 || m["latitude"] == "" || m["timestamp"] == "" {
		t.Errorf("unexpected ToMap() output: %v", m)
	}
}

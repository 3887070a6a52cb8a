package update

import "testing"

func TestNormalizeVersion(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"v1.2.3", "1.2.3"},
		{"attcl/v1.2.3", "1.2.3"},
		{"1.2.3", "1.2.3"},
		{"dev", "dev"},
	}

	for _, tc := range tests {
		if got := normalizeVersion(tc.input); got != tc.want {
			t.Errorf("normalizeVersion(%q) = %q, want %q", tc.input, got, tc.want)
		}
	}
}

func TestIsNewer(t *testing.T) {
	tests := []struct {
		name    string
		latest  string
		current string
		want    bool
	}{
		{"newer patch", "v1.2.4", "v1.2.3", true},
		{"same version", "v1.2.3", "v1.2.3", false},
		{"older release", "v1.2.3", "v1.3.0", false},
		{"dev is always older", "v0.0.1", "dev", true},
		{"double digit ordering", "v1.10.0", "v1.9.0", true},
		{"prefixed tag", "attcl/v2.0.0", "v1.9.9", true},
		{"garbage latest tag", "not-a-version", "v1.0.0", false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := isNewer(tc.latest, tc.current); got != tc.want {
				t.Errorf("isNewer(%q, %q) = %v, want %v", tc.latest, tc.current, got, tc.want)
			}
		})
	}
}

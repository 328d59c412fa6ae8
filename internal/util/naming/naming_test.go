package naming

import "testing"

func TestMeterID(t *testing.T) {
	tests := []struct {
		name     string
		siteName string
		seq      int
		expected string
	}{
		{
			name:     "spaces become hyphens and prefix truncates",
			siteName: "Main Office",
			seq:      2,
			expected: "MTR-MAIN-OFFIC-002",
		},
		{
			name:     "short name",
			siteName: "HQ",
			seq:      1,
			expected: "MTR-HQ-001",
		},
		{
			name:     "sequence padding",
			siteName: "HQ",
			seq:      12,
			expected: "MTR-HQ-012",
		},
		{
			name:     "three digit sequence",
			siteName: "HQ",
			seq:      123,
			expected: "MTR-HQ-123",
		},
		{
			name:     "special characters collapse",
			siteName: "Plant #4 (East)",
			seq:      1,
			expected: "MTR-PLANT-4-EA-001",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := MeterID(tt.siteName, tt.seq); got != tt.expected {
				t.Errorf("MeterID(%q, %d) = %q, want %q", tt.siteName, tt.seq, got, tt.expected)
			}
		})
	}
}

func TestSitePrefix(t *testing.T) {
	tests := []struct {
		siteName string
		expected string
	}{
		{"Main Office", "MAIN-OFFIC"},
		{"hq", "HQ"},
		{"  spaced  ", "SPACED"},
		{"trailing-x", "TRAILING-X"},
		{"", "SITE"},
		{"***", "SITE"},
		{"Warehouse North", "WAREHOUSE"},
	}

	for _, tt := range tests {
		if got := SitePrefix(tt.siteName); got != tt.expected {
			t.Errorf("SitePrefix(%q) = %q, want %q", tt.siteName, got, tt.expected)
		}
	}
}

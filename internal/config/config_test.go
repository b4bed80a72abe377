package config

import (
	"errors"
	"testing"
	"time"
)

func TestParseDuration(t *testing.T) {
	cases := []struct {
		in   string
		want time.Duration
	}{
		{"25", 25 * time.Minute},
		{"90", 90 * time.Minute},
		{"25m", 25 * time.Minute},
		{"1h30m", 90 * time.Minute},
		{"45s", 45 * time.Second},
	}

	for _, tc := range cases {
		t.Run(tc.in, func(t *testing.T) {
			got, err := ParseDuration(tc.in)
			if err != nil {
				t.Fatalf("ParseDuration(%q) failed: %v", tc.in, err)
			}

			if got != tc.want {
				t.Errorf("expected %v, got: %v", tc.want, got)
			}
		})
	}
}

func TestParseDurationInvalid(t *testing.T) {
	for _, in := range []string{"", "abc", "2x"} {
		if _, err := ParseDuration(in); !errors.Is(err, errInvalidDuration) {
			t.Errorf("ParseDuration(%q): expected errInvalidDuration, got: %v", in, err)
		}
	}
}

package config

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

func TestGetEnvString(t *testing.T) {
	t.Setenv("NEWSDESK_TEST_STR", "")
	if got := GetEnvString("NEWSDESK_TEST_STR", "def"); got != "def" {
		t.Errorf("empty: got %q", got)
	}
	t.Setenv("NEWSDESK_TEST_STR", "value")
	if got := GetEnvString("NEWSDESK_TEST_STR", "def"); got != "value" {
		t.Errorf("set: got %q", got)
	}
}

func TestGetEnvInt(t *testing.T) {
	tests := []struct {
		raw  string
		want int
	}{
		{"", 10},
		{"25", 25},
		{" 7 ", 7},
		{"-3", -3},
		{"12abc", 10},
		{"ten", 10},
	}
	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			t.Setenv("NEWSDESK_TEST_INT", tt.raw)
			if got := GetEnvInt("NEWSDESK_TEST_INT", 10); got != tt.want {
				t.Errorf("GetEnvInt(%q) = %d, want %d", tt.raw, got, tt.want)
			}
		})
	}
}

func TestGetEnvBool(t *testing.T) {
	tests := []struct {
		raw  string
		def  bool
		want bool
	}{
		{"", true, true},
		{"true", false, true},
		{"1", false, true},
		{"FALSE", true, false},
		{"yes", true, true},
		{"yes", false, false},
	}
	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			t.Setenv("NEWSDESK_TEST_BOOL", tt.raw)
			if got := GetEnvBool("NEWSDESK_TEST_BOOL", tt.def); got != tt.want {
				t.Errorf("GetEnvBool(%q, %v) = %v, want %v", tt.raw, tt.def, got, tt.want)
			}
		})
	}
}

func TestGetEnvFloat(t *testing.T) {
	t.Setenv("NEWSDESK_TEST_FLOAT", "0.25")
	if got := GetEnvFloat("NEWSDESK_TEST_FLOAT", 1); got != 0.25 {
		t.Errorf("got %v", got)
	}
	t.Setenv("NEWSDESK_TEST_FLOAT", "half")
	if got := GetEnvFloat("NEWSDESK_TEST_FLOAT", 1); got != 1 {
		t.Errorf("got %v, want default", got)
	}
}

func TestGetEnvDuration(t *testing.T) {
	t.Setenv("NEWSDESK_TEST_DUR", "90s")
	if got := GetEnvDuration("NEWSDESK_TEST_DUR", time.Second); got != 90*time.Second {
		t.Errorf("got %v", got)
	}
	t.Setenv("NEWSDESK_TEST_DUR", "soon")
	if got := GetEnvDuration("NEWSDESK_TEST_DUR", time.Second); got != time.Second {
		t.Errorf("malformed: got %v", got)
	}
}

func TestGetEnvStringList(t *testing.T) {
	tests := []struct {
		raw  string
		want []string
	}{
		{"", []string{"default"}},
		{"a", []string{"a"}},
		{" a , b,,c ", []string{"a", "b", "c"}},
		{" , ", []string{"default"}},
	}
	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			t.Setenv("NEWSDESK_TEST_LIST", tt.raw)
			got := GetEnvStringList("NEWSDESK_TEST_LIST", []string{"default"})
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("GetEnvStringList(%q) mismatch (-want +got):\n%s", tt.raw, diff)
			}
		})
	}
}

func TestValidateDurationRange(t *testing.T) {
	tests := []struct {
		name    string
		d       time.Duration
		lo, hi  time.Duration
		wantErr bool
	}{
		{"inside", time.Minute, time.Second, time.Hour, false},
		{"on lower bound", time.Second, time.Second, time.Hour, false},
		{"below", time.Millisecond, time.Second, time.Hour, true},
		{"above", 2 * time.Hour, time.Second, time.Hour, true},
		{"empty range", time.Minute, time.Hour, time.Second, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateDurationRange(tt.d, tt.lo, tt.hi)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateDurationRange(%v, %v, %v) err=%v, wantErr=%v", tt.d, tt.lo, tt.hi, err, tt.wantErr)
			}
		})
	}

	if err := ValidatePositiveDuration(0); err == nil {
		t.Error("zero should not be positive")
	}
}

func TestGetEnvDurationIn(t *testing.T) {
	t.Setenv("NEWSDESK_TEST_TIMEOUT", "30s")
	if got := GetEnvDurationIn("NEWSDESK_TEST_TIMEOUT", 5*time.Second, time.Second, time.Minute); got != 30*time.Second {
		t.Errorf("in range: got %v", got)
	}

	t.Setenv("NEWSDESK_TEST_TIMEOUT", "10m")
	if got := GetEnvDurationIn("NEWSDESK_TEST_TIMEOUT", 5*time.Second, time.Second, time.Minute); got != 5*time.Second {
		t.Errorf("out of range should fall back: got %v", got)
	}
}

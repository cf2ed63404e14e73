package env

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestGetEnv(t *testing.T) {
	t.Setenv("BATBELT_TEST_STR", "hello")

	if got := GetEnv("BATBELT_TEST_STR"); got != "hello" {
		t.Errorf("GetEnv() = %q, want %q", got, "hello")
	}
	if got := GetEnv("BATBELT_TEST_MISSING", "fallback"); got != "fallback" {
		t.Errorf("GetEnv() default = %q, want %q", got, "fallback")
	}
	if got := GetEnv("BATBELT_TEST_MISSING"); got != "" {
		t.Errorf("GetEnv() no default = %q, want empty", got)
	}
}

func TestGetEnvFileIndirection(t *testing.T) {
	path := filepath.Join(t.TempDir(), "secret")
	if err := os.WriteFile(path, []byte("  from-file\n"), 0o600); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	t.Setenv("BATBELT_TEST_SECRET_FILE", path)

	if got := GetEnv("BATBELT_TEST_SECRET"); got != "from-file" {
		t.Errorf("GetEnv() via _FILE = %q, want %q", got, "from-file")
	}
}

func TestGetEnvFileIndirectionMissingFile(t *testing.T) {
	t.Setenv("BATBELT_TEST_SECRET_FILE", filepath.Join(t.TempDir(), "does-not-exist"))

	if got := GetEnv("BATBELT_TEST_SECRET", "fallback"); got != "fallback" {
		t.Errorf("GetEnv() = %q, want %q", got, "fallback")
	}
}

func TestGetEnvDirectWinsOverFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "secret")
	if err := os.WriteFile(path, []byte("from-file"), 0o600); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	t.Setenv("BATBELT_TEST_SECRET", "direct")
	t.Setenv("BATBELT_TEST_SECRET_FILE", path)

	if got := GetEnv("BATBELT_TEST_SECRET"); got != "direct" {
		t.Errorf("GetEnv() = %q, want %q", got, "direct")
	}
}

func TestGetEnvInt(t *testing.T) {
	t.Setenv("BATBELT_TEST_INT", "42")

	if got := GetEnvInt("BATBELT_TEST_INT"); got != 42 {
		t.Errorf("GetEnvInt() = %d, want 42", got)
	}
	if got := GetEnvInt("BATBELT_TEST_INT_MISSING", 7); got != 7 {
		t.Errorf("GetEnvInt() default = %d, want 7", got)
	}

	t.Setenv("BATBELT_TEST_INT_BAD", "not a number")
	if got := GetEnvInt("BATBELT_TEST_INT_BAD", 7); got != 7 {
		t.Errorf("GetEnvInt() unparsable = %d, want 7", got)
	}
}

func TestGetEnvFloat64(t *testing.T) {
	t.Setenv("BATBELT_TEST_FLOAT", "2.5")

	if got := GetEnvFloat64("BATBELT_TEST_FLOAT"); got != 2.5 {
		t.Errorf("GetEnvFloat64() = %v, want 2.5", got)
	}
	if got := GetEnvFloat64("BATBELT_TEST_FLOAT_MISSING", 1.5); got != 1.5 {
		t.Errorf("GetEnvFloat64() default = %v, want 1.5", got)
	}
}

func TestGetEnvBool(t *testing.T) {
	tests := []struct {
		value string
		want  bool
	}{
		{"true", true},
		{"1", true},
		{"t", true},
		{"false", false},
		{"0", false},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			t.Setenv("BATBELT_TEST_BOOL", tt.value)

			if got := GetEnvBool("BATBELT_TEST_BOOL"); got != tt.want {
				t.Errorf("GetEnvBool(%q) = %v, want %v", tt.value, got, tt.want)
			}
		})
	}

	if got := GetEnvBool("BATBELT_TEST_BOOL_MISSING", true); !got {
		t.Error("GetEnvBool() default = false, want true")
	}
}

func TestGetEnvDuration(t *testing.T) {
	t.Setenv("BATBELT_TEST_DUR", "1h30m")
	if got := GetEnvDuration("BATBELT_TEST_DUR"); got != 90*time.Minute {
		t.Errorf("GetEnvDuration() = %v, want 1h30m", got)
	}

	t.Setenv("BATBELT_TEST_DUR_DAYS", "2d")
	if got := GetEnvDuration("BATBELT_TEST_DUR_DAYS"); got != 48*time.Hour {
		t.Errorf("GetEnvDuration() days = %v, want 48h", got)
	}

	if got := GetEnvDuration("BATBELT_TEST_DUR_MISSING", time.Second); got != time.Second {
		t.Errorf("GetEnvDuration() default = %v, want 1s", got)
	}
}

func TestGetEnvStringSlice(t *testing.T) {
	t.Setenv("BATBELT_TEST_SLICE", "a, b,,c")

	got := GetEnvStringSlice("BATBELT_TEST_SLICE")
	want := []string{"a", "b", "c"}

	if len(got) != len(want) {
		t.Fatalf("GetEnvStringSlice() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("GetEnvStringSlice()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestGetEnvInt64Slice(t *testing.T) {
	t.Setenv("BATBELT_TEST_INTS", "1,2,oops,3")

	got := GetEnvInt64Slice("BATBELT_TEST_INTS")
	want := []int64{1, 2, 3}

	if len(got) != len(want) {
		t.Fatalf("GetEnvInt64Slice() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("GetEnvInt64Slice()[%d] = %d, want %d", i, got[i], want[i])
		}
	}
}

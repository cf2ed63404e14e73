package debug

import (
	"fmt"
	"os"
	"strings"
	"testing"
)

func TestCaptureOutput(t *testing.T) {
	stdout, stderr, err := CaptureOutput(func() {
		fmt.Println("to stdout")
		fmt.Fprintln(os.Stderr, "to stderr")
	})
	if err != nil {
		t.Fatalf("CaptureOutput() error = %v", err)
	}

	if stdout != "to stdout\n" {
		t.Errorf("stdout = %q, want %q", stdout, "to stdout\n")
	}
	if stderr != "to stderr\n" {
		t.Errorf("stderr = %q, want %q", stderr, "to stderr\n")
	}
}

func TestCaptureOutputEmpty(t *testing.T) {
	stdout, stderr, err := CaptureOutput(func() {})
	if err != nil {
		t.Fatalf("CaptureOutput() error = %v", err)
	}

	if stdout != "" || stderr != "" {
		t.Errorf("captured (%q, %q), want empty", stdout, stderr)
	}
}

func TestCaptureOutputRestoresStreams(t *testing.T) {
	origOut, origErr := os.Stdout, os.Stderr

	_, _, err := CaptureOutput(func() {
		fmt.Println("x")
	})
	if err != nil {
		t.Fatalf("CaptureOutput() error = %v", err)
	}

	if os.Stdout != origOut || os.Stderr != origErr {
		t.Error("CaptureOutput() did not restore os.Stdout/os.Stderr")
	}
}

func TestCaptureOutputLarge(t *testing.T) {
	// More than a pipe buffer, to make sure draining happens concurrently.
	line := strings.Repeat("x", 1024)

	stdout, _, err := CaptureOutput(func() {
		for i := 0; i < 256; i++ {
			fmt.Println(line)
		}
	})
	if err != nil {
		t.Fatalf("CaptureOutput() error = %v", err)
	}

	if got := len(stdout); got != 256*(len(line)+1) {
		t.Errorf("captured %d bytes, want %d", got, 256*(len(line)+1))
	}
}

func TestSizeOf(t *testing.T) {
	if got := SizeOf(int64(0)); got != 8 {
		t.Errorf("SizeOf(int64) = %d, want 8", got)
	}

	small := SizeOf("ab")
	large := SizeOf(strings.Repeat("ab", 100))
	if large <= small {
		t.Errorf("SizeOf(long string) = %d, want > %d", large, small)
	}

	type pair struct {
		A []int64
		B string
	}
	v := pair{A: make([]int64, 100), B: "hello"}
	if got := SizeOf(v); got < 800 {
		t.Errorf("SizeOf(struct) = %d, want at least 800", got)
	}
}

func TestSizeOfSharedPointerCountedOnce(t *testing.T) {
	payload := &[1024]byte{}

	type holder struct {
		A, B *[1024]byte
	}

	shared := SizeOf(holder{A: payload, B: payload})
	distinct := SizeOf(holder{A: payload, B: &[1024]byte{}})

	if shared >= distinct {
		t.Errorf("shared pointers size = %d, want less than distinct = %d", shared, distinct)
	}
}

func TestFormatSize(t *testing.T) {
	tests := []struct {
		in   uint64
		want string
	}{
		{512, "512 B"},
		{2048, "2.0 KB"},
		{3 * 1024 * 1024, "3.0 MB"},
	}

	for _, tt := range tests {
		if got := FormatSize(tt.in); got != tt.want {
			t.Errorf("FormatSize(%d) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

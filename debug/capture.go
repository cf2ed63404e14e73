package debug

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"sync"
)

// CaptureOutput runs fn with os.Stdout and os.Stderr redirected into pipes
// and returns everything fn printed to either stream. The process-wide
// stdout/stderr are swapped for the duration of the call, so this is not
// safe for concurrent use. A panic in fn propagates after the streams are
// restored; its output up to that point is lost.
func CaptureOutput(fn func()) (stdout, stderr string, err error) {
	outR, outW, err := os.Pipe()
	if err != nil {
		return "", "", fmt.Errorf("creating stdout pipe: %w", err)
	}

	errR, errW, err := os.Pipe()
	if err != nil {
		outR.Close()
		outW.Close()

		return "", "", fmt.Errorf("creating stderr pipe: %w", err)
	}

	origOut, origErr := os.Stdout, os.Stderr
	os.Stdout, os.Stderr = outW, errW

	var (
		outBuf, errBuf bytes.Buffer
		wg             sync.WaitGroup
	)

	wg.Add(2)
	go func() {
		defer wg.Done()
		io.Copy(&outBuf, outR) // read ends when the writer closes
	}()
	go func() {
		defer wg.Done()
		io.Copy(&errBuf, errR)
	}()

	func() {
		defer func() {
			os.Stdout, os.Stderr = origOut, origErr
			outW.Close()
			errW.Close()
		}()

		fn()
	}()

	wg.Wait()
	outR.Close()
	errR.Close()

	return outBuf.String(), errBuf.String(), nil
}

//go:build windows

package ui

import "time"

// FlushStdinWithTimeout is a no-op on Windows: the console does not echo
// focus or background query replies into stdin.
func FlushStdinWithTimeout(timeout time.Duration) {}

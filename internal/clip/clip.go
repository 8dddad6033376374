// Package clip copies rendered records to the system clipboard.
package clip

import (
	"errors"
	"fmt"

	"github.com/atotto/clipboard"
)

// ErrUnsupported indicates no clipboard utility is available
// (xclip, xsel or wl-copy on Linux).
var ErrUnsupported = errors.New("clipboard not available on this system")

// writeAll and unsupported are replaced in tests.
var (
	writeAll    = clipboard.WriteAll
	unsupported = func() bool { return clipboard.Unsupported }
)

// Copy places data on the clipboard as text.
func Copy(data []byte) error {
	if unsupported() {
		return ErrUnsupported
	}
	if err := writeAll(string(data)); err != nil {
		return fmt.Errorf("failed to copy to clipboard: %w", err)
	}
	return nil
}

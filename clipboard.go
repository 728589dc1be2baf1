package latex2svg

import (
	"fmt"

	"github.com/atotto/clipboard"
)

// ClipboardWriter abstracts the system clipboard to allow testing without
// mutating the real clipboard.
type ClipboardWriter interface {
	Write(text string) error
}

// systemClipboard writes to the OS clipboard. Ownership of the content
// transfers to the clipboard subsystem; the previous content is replaced.
type systemClipboard struct{}

func (systemClipboard) Write(text string) error {
	if clipboard.Unsupported {
		return fmt.Errorf("%w: no clipboard utility found for this platform", ErrClipboardUnavailable)
	}
	if err := clipboard.WriteAll(text); err != nil {
		return fmt.Errorf("%w: %v", ErrClipboardUnavailable, err)
	}
	return nil
}

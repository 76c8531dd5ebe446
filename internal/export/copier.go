// Package export delivers hand transcripts to the user: the system clipboard
// when one is available, a file in the export directory otherwise.
package export

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/log"
)

// ErrEmpty is returned when there is nothing to copy.
var ErrEmpty = errors.New("nothing to copy")

// Destination records where copied text ended up.
type Destination struct {
	Clipboard bool
	Path      string
}

func (d Destination) String() string {
	if d.Clipboard {
		return "clipboard"
	}
	return d.Path
}

// Copier shares text under a name, such as a hand ID.
type Copier interface {
	Copy(name, text string) (Destination, error)
}

// ClipboardCopier writes to the system clipboard and falls back to a file in
// Dir when the clipboard is disabled or fails.
type ClipboardCopier struct {
	Dir          string
	UseClipboard bool

	logger    *log.Logger
	writeClip func(string) error
	supported func() bool
}

// NewClipboardCopier creates a copier that falls back to files in dir.
func NewClipboardCopier(dir string, useClipboard bool, logger *log.Logger) *ClipboardCopier {
	if logger == nil {
		logger = log.Default()
	}
	return &ClipboardCopier{
		Dir:          dir,
		UseClipboard: useClipboard,
		logger:       logger.WithPrefix("export"),
		writeClip:    clipboard.WriteAll,
		supported:    func() bool { return !clipboard.Unsupported },
	}
}

// Copy implements Copier.
func (c *ClipboardCopier) Copy(name, text string) (Destination, error) {
	if strings.TrimSpace(text) == "" {
		return Destination{}, ErrEmpty
	}

	if c.UseClipboard && c.supported() {
		err := c.writeClip(text)
		if err == nil {
			c.logger.Debug("Copied to clipboard", "name", name, "bytes", len(text))
			return Destination{Clipboard: true}, nil
		}
		c.logger.Warn("Clipboard unavailable, writing file instead", "error", err)
	}

	path, err := SaveFile(c.Dir, FileName(name, ".txt"), []byte(text+"\n"))
	if err != nil {
		return Destination{}, fmt.Errorf("saving %s: %w", name, err)
	}
	c.logger.Info("Wrote transcript", "path", path)
	return Destination{Path: path}, nil
}

var unsafeChars = regexp.MustCompile(`[^A-Za-z0-9._-]+`)

// FileName turns name into a safe file name with the given extension.
func FileName(name, ext string) string {
	base := strings.Trim(unsafeChars.ReplaceAllString(strings.TrimSpace(name), "-"), "-.")
	if base == "" {
		base = "hand"
	}
	return base + ext
}

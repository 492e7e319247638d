// Package output writes parsed header maps in the formats the CLI supports.
package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/law-makers/filters/internal/filters"
	"github.com/law-makers/filters/pkg/models"
)

// Supported output formats
const (
	FormatJSON     = "json"
	FormatCSV      = "csv"
	FormatHTML     = "html"
	FormatMarkdown = "markdown"
	FormatText     = "text"
)

// Formats lists every supported format name.
var Formats = []string{FormatJSON, FormatCSV, FormatHTML, FormatMarkdown, FormatText}

// IsFormat reports whether name is a supported format.
func IsFormat(name string) bool {
	for _, f := range Formats {
		if f == name {
			return true
		}
	}
	return false
}

// Write encodes h to w in the given format.
func Write(w io.Writer, format string, h map[string]string) error {
	var err error
	switch strings.ToLower(format) {
	case FormatJSON:
		err = WriteJSON(w, h)
	case FormatCSV:
		err = WriteCSV(w, h)
	case FormatHTML:
		err = WriteHTML(w, h)
	case FormatMarkdown, "md":
		err = WriteMarkdown(w, h)
	case FormatText, "txt":
		err = WriteText(w, h)
	default:
		return filters.NewFilterError(filters.ErrCodeValidation, format, filters.ErrUnknownFormat).
			WithDetail("formats", Formats)
	}
	if err != nil {
		return filters.NewFilterError(filters.ErrCodeOutput, "write "+format, err)
	}
	return nil
}

// WriteText writes one "Name: Value" line per header, sorted by name.
func WriteText(w io.Writer, h map[string]string) error {
	for _, e := range models.Entries(h) {
		if _, err := fmt.Fprintf(w, "%s: %s\n", e.Name, e.Value); err != nil {
			return err
		}
	}
	return nil
}

package output

import (
	"encoding/json"
	"io"
)

// WriteJSON writes h as an indented JSON object with sorted keys.
func WriteJSON(w io.Writer, h map[string]string) error {
	if h == nil {
		h = map[string]string{}
	}
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	return enc.Encode(h)
}

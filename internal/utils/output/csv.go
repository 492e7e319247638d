package output

import (
	"encoding/csv"
	"io"

	"github.com/law-makers/filters/pkg/models"
)

// WriteCSV writes a Name,Value header row followed by one row per header.
func WriteCSV(w io.Writer, h map[string]string) error {
	writer := csv.NewWriter(w)

	if err := writer.Write([]string{"Name", "Value"}); err != nil {
		return err
	}
	for _, e := range models.Entries(h) {
		if err := writer.Write([]string{e.Name, e.Value}); err != nil {
			return err
		}
	}

	writer.Flush()
	return writer.Error()
}

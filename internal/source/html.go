package source

import (
	"io"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/law-makers/filters/internal/filters"
)

// MetaHeaders extracts <meta http-equiv="Name" content="Value"> tags from an
// HTML document as "Name: Value" lines, in document order.
func MetaHeaders(r io.Reader) ([]string, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, filters.NewFilterError(filters.ErrCodeSource, "parse html", err)
	}

	lines := []string{}
	doc.Find("meta[http-equiv]").Each(func(i int, sel *goquery.Selection) {
		name, _ := sel.Attr("http-equiv")
		content, _ := sel.Attr("content")
		name = strings.TrimSpace(name)
		if name == "" {
			return
		}
		lines = append(lines, name+": "+content)
	})
	return lines, nil
}

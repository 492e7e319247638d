package output

import (
	"io"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/law-makers/filters/pkg/models"
)

// HTMLTable renders h as a two-column <table> with a Name/Value heading row.
func HTMLTable(h map[string]string) (string, error) {
	head := element(atom.Thead, element(atom.Tr,
		element(atom.Th, text("Name")),
		element(atom.Th, text("Value")),
	))
	body := element(atom.Tbody)
	for _, e := range models.Entries(h) {
		body.AppendChild(element(atom.Tr,
			element(atom.Td, text(e.Name)),
			element(atom.Td, text(e.Value)),
		))
	}
	table := element(atom.Table, head, body)

	var sb strings.Builder
	if err := html.Render(&sb, table); err != nil {
		return "", err
	}
	return sb.String(), nil
}

// WriteHTML writes the table produced by HTMLTable.
func WriteHTML(w io.Writer, h map[string]string) error {
	table, err := HTMLTable(h)
	if err != nil {
		return err
	}
	_, err = io.WriteString(w, table+"\n")
	return err
}

func element(a atom.Atom, children ...*html.Node) *html.Node {
	n := &html.Node{Type: html.ElementNode, DataAtom: a, Data: a.String()}
	for _, c := range children {
		n.AppendChild(c)
	}
	return n
}

func text(s string) *html.Node {
	return &html.Node{Type: html.TextNode, Data: s}
}

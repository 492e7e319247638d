// Package render runs text templates with the registered filters available as functions.
package render

import (
	"io"
	"text/template"

	"github.com/rs/zerolog/log"

	"github.com/law-makers/filters/internal/filters"
	"github.com/law-makers/filters/internal/utils/headers"
)

// Input is the data handed to templates rendered from the command line.
type Input struct {
	Text  string
	Lines []string
}

// NewInput builds template data from raw text.
func NewInput(text string) Input {
	return Input{Text: text, Lines: headers.SplitLines(text)}
}

// Funcs returns the template functions: every registered filter plus "lines".
func Funcs(reg *filters.Registry) template.FuncMap {
	funcs := template.FuncMap{
		"lines": headers.SplitLines,
	}
	for name, fn := range reg.FuncMap() {
		funcs[name] = fn
	}
	return funcs
}

// Render parses text as a template named name and executes it against data.
func Render(w io.Writer, name, text string, reg *filters.Registry, data any) error {
	tmpl, err := template.New(name).Funcs(Funcs(reg)).Parse(text)
	if err != nil {
		return filters.NewFilterError(filters.ErrCodeRender, "parse "+name, err)
	}

	log.Debug().Str("template", name).Strs("filters", reg.Names()).Msg("Rendering template")
	if err := tmpl.Execute(w, data); err != nil {
		return filters.NewFilterError(filters.ErrCodeRender, "execute "+name, err)
	}
	return nil
}

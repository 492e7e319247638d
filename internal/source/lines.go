// Package source turns files, stdin and HTML documents into header lines.
package source

import (
	"bufio"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/law-makers/filters/internal/filters"
)

const maxLineSize = 1024 * 1024

// ReadLines reads every line from r, dropping line terminators. Blank lines are kept.
func ReadLines(r io.Reader) ([]string, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	lines := []string{}
	for scanner.Scan() {
		lines = append(lines, strings.TrimSuffix(scanner.Text(), "\r"))
	}
	if err := scanner.Err(); err != nil {
		return nil, filters.NewFilterError(filters.ErrCodeSource, "read lines", err)
	}
	return lines, nil
}

// Open returns a reader for path, or stdin when path is empty or "-".
func Open(path string, stdin io.Reader) (io.ReadCloser, error) {
	if path == "" || path == "-" {
		return io.NopCloser(stdin), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, filters.NewFilterError(filters.ErrCodeSource, "open "+path, err)
	}
	return f, nil
}

// Collect concatenates the lines of every path in order. With no paths it reads stdin.
// When html is set each input is treated as an HTML document and its
// http-equiv meta tags become the lines.
func Collect(paths []string, stdin io.Reader, html bool) ([]string, error) {
	if len(paths) == 0 {
		paths = []string{"-"}
	}

	var all []string
	for _, p := range paths {
		rc, err := Open(p, stdin)
		if err != nil {
			return nil, err
		}

		var lines []string
		if html {
			lines, err = MetaHeaders(rc)
		} else {
			lines, err = ReadLines(rc)
		}
		rc.Close()
		if err != nil {
			return nil, err
		}

		log.Debug().Str("source", p).Int("lines", len(lines)).Bool("html", html).Msg("Source read")
		all = append(all, lines...)
	}
	return all, nil
}

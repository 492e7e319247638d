package script

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/law-makers/filters/internal/filters"
)

func TestEvalFilter(t *testing.T) {
	lines := []string{"Foo: bar", "", "Baz: qux"}
	got, err := Eval(context.Background(), filters.Default(), "html_headers(lines)", lines)
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"Foo": "bar", "Baz": "qux"}, got)
}

func TestEvalExpressions(t *testing.T) {
	tests := []struct {
		name     string
		src      string
		lines    []string
		expected any
	}{
		{
			name:     "index result",
			src:      `html_headers(lines)["A"]`,
			lines:    []string{"A: 1", "A: 2"},
			expected: "2",
		},
		{
			name:     "literal array",
			src:      `html_headers(["Content-Type: text/html"])["Content-Type"]`,
			expected: "text/html",
		},
		{
			name:     "lines is a js array",
			src:      `lines.filter(function (l) { return l !== "" }).length`,
			lines:    []string{"A: 1", "", "B: 2"},
			expected: int64(2),
		},
		{
			name:     "undefined result",
			src:      `var x = 1`,
			expected: nil,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Eval(context.Background(), filters.Default(), tt.src, tt.lines)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestEvalErrors(t *testing.T) {
	_, err := Eval(context.Background(), filters.Default(), "html_headers(", nil)
	assert.ErrorIs(t, err, &filters.FilterError{Code: filters.ErrCodeScript})

	_, err = Eval(context.Background(), filters.Default(), `throw new Error("boom")`, nil)
	assert.ErrorIs(t, err, &filters.FilterError{Code: filters.ErrCodeScript})
}

func TestEvalInterrupted(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err := Eval(ctx, filters.Default(), "for (;;) {}", nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, &filters.FilterError{Code: filters.ErrCodeScript})
}

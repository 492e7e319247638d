package filters

import (
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultRegistry(t *testing.T) {
	reg := Default()
	assert.Equal(t, []string{HTMLHeaders}, reg.Names())

	f, err := reg.Lookup(HTMLHeaders)
	require.NoError(t, err)
	assert.Equal(t, HTMLHeaders, f.Name)
	assert.NotEmpty(t, f.Description)

	out, err := reg.Apply(HTMLHeaders, []string{"Foo: bar", "", "Baz: qux"})
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"Foo": "bar", "Baz": "qux"}, out)
}

func TestLookupUnknown(t *testing.T) {
	_, err := Default().Lookup("missing")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnknownFilter))
	assert.True(t, errors.Is(err, &FilterError{Code: ErrCodeNotFound}))

	var fe *FilterError
	require.True(t, errors.As(err, &fe))
	assert.Equal(t, []string{HTMLHeaders}, fe.Details["available"])

	_, err = Default().Apply("missing", nil)
	assert.ErrorIs(t, err, ErrUnknownFilter)
}

func TestNewValidation(t *testing.T) {
	fn := func([]string) map[string]string { return nil }

	tests := []struct {
		name    string
		filters []Filter
		want    error
	}{
		{"empty name", []Filter{{Fn: fn}}, ErrInvalidFilter},
		{"nil func", []Filter{{Name: "x"}}, ErrInvalidFilter},
		{"duplicate", []Filter{{Name: "x", Fn: fn}, {Name: "x", Fn: fn}}, ErrDuplicateFilter},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.filters...)
			assert.ErrorIs(t, err, tt.want)
			assert.ErrorIs(t, err, &FilterError{Code: ErrCodeValidation})
		})
	}
}

func TestFiltersSorted(t *testing.T) {
	fn := func([]string) map[string]string { return map[string]string{} }
	reg, err := New(Filter{Name: "zeta", Fn: fn}, Filter{Name: "alpha", Fn: fn})
	require.NoError(t, err)

	got := reg.Filters()
	require.Len(t, got, 2)
	assert.Equal(t, "alpha", got[0].Name)
	assert.Equal(t, "zeta", got[1].Name)
}

func TestFuncMap(t *testing.T) {
	m := Default().FuncMap()
	fn, ok := m[HTMLHeaders].(func([]string) map[string]string)
	require.True(t, ok)
	assert.Equal(t, map[string]string{"A": "2"}, fn([]string{"A: 1", "A: 2"}))
}

func TestConcurrentApply(t *testing.T) {
	reg := Default()
	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			out, err := reg.Apply(HTMLHeaders, []string{"Content-Type: text/html"})
			assert.NoError(t, err)
			assert.Equal(t, "text/html", out["Content-Type"])
		}()
	}
	wg.Wait()
}

func TestFilterErrorString(t *testing.T) {
	err := NewFilterError(ErrCodeRender, "page.tmpl", errors.New("boom"))
	assert.Equal(t, "RENDER: page.tmpl: boom", err.Error())
	assert.Equal(t, "OUTPUT: bad", NewFilterError(ErrCodeOutput, "bad", nil).Error())
}

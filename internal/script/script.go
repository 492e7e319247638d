// Package script evaluates JavaScript expressions with the registered filters bound as globals.
package script

import (
	"context"

	"github.com/dop251/goja"
	"github.com/rs/zerolog/log"

	"github.com/law-makers/filters/internal/filters"
)

// Eval runs src in a fresh runtime. Every filter in reg is callable by name and
// the input is bound to the global array "lines". The exported value of the
// last expression is returned.
func Eval(ctx context.Context, reg *filters.Registry, src string, lines []string) (any, error) {
	vm := goja.New()

	for name, fn := range reg.FuncMap() {
		if err := vm.Set(name, fn); err != nil {
			return nil, filters.NewFilterError(filters.ErrCodeScript, "bind "+name, err)
		}
	}

	items := make([]interface{}, len(lines))
	for i, l := range lines {
		items[i] = l
	}
	if err := vm.Set("lines", vm.NewArray(items...)); err != nil {
		return nil, filters.NewFilterError(filters.ErrCodeScript, "bind lines", err)
	}
	vm.Set("console", map[string]interface{}{
		"log": func(call goja.FunctionCall) goja.Value {
			args := make([]interface{}, len(call.Arguments))
			for i, a := range call.Arguments {
				args[i] = a.Export()
			}
			log.Debug().Interface("args", args).Msg("console.log")
			return goja.Undefined()
		},
	})

	done := make(chan struct{})
	defer close(done)
	go func() {
		select {
		case <-ctx.Done():
			vm.Interrupt(ctx.Err())
		case <-done:
		}
	}()

	v, err := vm.RunString(src)
	if err != nil {
		return nil, filters.NewFilterError(filters.ErrCodeScript, "evaluate", err)
	}
	if v == nil || goja.IsUndefined(v) || goja.IsNull(v) {
		return nil, nil
	}
	return v.Export(), nil
}

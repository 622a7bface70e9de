package eval

import (
	"errors"

	"github.com/expr-lang/expr"
	"github.com/signadot/go-nbt/bridge"
	"github.com/signadot/go-nbt/ir"
	"github.com/signadot/go-nbt/snbt"
)

func exprOpts(root ir.Tag) []expr.Option {
	return []expr.Option{
		expr.Function("getpath", func(params ...any) (any, error) {
			t, err := ir.Resolve(root, params[0].(string))
			if err != nil {
				return nil, err
			}
			return bridge.ToPlain(t), nil
		},
			new(func(string) any)),
		expr.Function("listpath", func(params ...any) (any, error) {
			ts, err := ir.ListPath(root, params[0].(string))
			if err != nil {
				return nil, err
			}
			res := make([]any, len(ts))
			for i, t := range ts {
				res[i] = bridge.ToPlain(t)
			}
			return res, nil
		},
			new(func(string) []any)),
		expr.Function("typeof", func(params ...any) (any, error) {
			t, err := ir.Resolve(root, params[0].(string))
			if err != nil {
				return nil, err
			}
			return t.Type().String(), nil
		},
			new(func(string) string)),
		expr.Function("exists", func(params ...any) (any, error) {
			_, err := ir.Resolve(root, params[0].(string))
			switch {
			case err == nil:
				return true, nil
			case errors.Is(err, ir.ErrBadPath):
				return nil, err
			default:
				return false, nil
			}
		},
			new(func(string) bool)),
		expr.Function("tag", func(params ...any) (any, error) {
			t, err := ir.Resolve(root, params[0].(string))
			if err != nil {
				return nil, err
			}
			return snbt.MustString(t), nil
		},
			new(func(string) string)),
	}
}

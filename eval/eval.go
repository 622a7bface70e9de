package eval

import (
	"fmt"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
	"github.com/signadot/go-nbt/bridge"
	"github.com/signadot/go-nbt/debug"
	"github.com/signadot/go-nbt/ir"
)

type Env map[string]any

// Program is a compiled expression bound to a document.
type Program struct {
	src  string
	root ir.Tag
	prg  *vm.Program
}

// Compile compiles expression against root. The functions read root
// at run time, so mutations made between runs are visible.
func Compile(root ir.Tag, expression string) (*Program, error) {
	if root == nil {
		return nil, fmt.Errorf("%w: nil root", ir.ErrPathNotFound)
	}
	prg, err := expr.Compile(expression, exprOpts(root)...)
	if err != nil {
		return nil, err
	}
	return &Program{src: expression, root: root, prg: prg}, nil
}

// Run evaluates p with root and any extra variables in env.
func (p *Program) Run(env Env) (any, error) {
	vars := Env{"root": bridge.ToPlain(p.root)}
	for k, v := range env {
		vars[k] = v
	}
	res, err := expr.Run(p.prg, vars)
	if err != nil {
		return nil, err
	}
	if debug.Eval() {
		debug.Logf("eval %q -> %v\n", p.src, res)
	}
	return res, nil
}

// Eval compiles and runs expression over root.
func Eval(root ir.Tag, expression string) (any, error) {
	p, err := Compile(root, expression)
	if err != nil {
		return nil, err
	}
	return p.Run(nil)
}

// EvalTag is like Eval but converts the result to a tag.
func EvalTag(root ir.Tag, expression string) (ir.Tag, error) {
	res, err := Eval(root, expression)
	if err != nil {
		return nil, err
	}
	return bridge.FromAny(res, nil)
}

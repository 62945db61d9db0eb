package criterion

import (
	"fmt"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
)

// Expr is met when a boolean expr-lang expression over the Snapshot fields
// holds, for example
//
//	actions >= optimal_length * 3 || (at_end && reward > -20)
//
// The program is compiled once. A run-time error counts as not met and is
// kept for LastError.
type Expr struct {
	src     string
	program *vm.Program
	lastErr error
}

// NewExpr compiles src against Snapshot.
func NewExpr(src string) (*Expr, error) {
	if src == "" {
		return nil, fmt.Errorf("%w: empty", ErrExpression)
	}
	program, err := expr.Compile(src, expr.Env(Snapshot{}), expr.AsBool())
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %v", ErrExpression, src, err)
	}
	return &Expr{src: src, program: program}, nil
}

func (c *Expr) IsMet(s Snapshot) bool {
	c.lastErr = nil
	out, err := expr.Run(c.program, s)
	if err != nil {
		c.lastErr = err
		return false
	}
	b, _ := out.(bool)
	return b
}

func (c *Expr) Reset()        {}
func (c *Expr) Label() string { return "expr:" + c.src }

// LastError returns the error of the latest evaluation, if any.
func (c *Expr) LastError() error { return c.lastErr }

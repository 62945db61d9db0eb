package policy

import (
	"fmt"

	"github.com/cockroachdb/apd/v3"
)

// DefaultDigits is the default significant-digit precision of the decimal
// exponentials used by Softmax and VDBE.
const DefaultDigits = 34

// calc evaluates a short chain of decimal operations at a fixed precision
// and keeps the first error, so call sites read as formulas.
type calc struct {
	ctx *apd.Context
	err error
}

// newCalc returns a calc whose tiny results round toward zero instead of
// trapping: weights far below the largest one are negligible, not errors.
func newCalc(digits uint32) *calc {
	ctx := apd.BaseContext.WithPrecision(digits)
	ctx.Traps &^= apd.Underflow | apd.Subnormal
	return &calc{ctx: ctx}
}

func (c *calc) keep(op string, _ apd.Condition, err error) {
	if err != nil && c.err == nil {
		c.err = fmt.Errorf("%w: %s: %v", ErrArithmetic, op, err)
	}
}

// num converts a float64.
func (c *calc) num(f float64) *apd.Decimal {
	d, err := new(apd.Decimal).SetFloat64(f)
	if err != nil && c.err == nil {
		c.err = fmt.Errorf("%w: convert %v: %v", ErrArithmetic, f, err)
	}
	if d == nil {
		d = new(apd.Decimal)
	}
	return d
}

// expShift returns e^((x−m)/y). Callers pass the largest exponent input as
// m so the result is at most 1.
func (c *calc) expShift(x, m, y *apd.Decimal) *apd.Decimal {
	return c.expQuo(c.sub(x, m), y)
}

// expQuo returns e^(x/y).
func (c *calc) expQuo(x, y *apd.Decimal) *apd.Decimal {
	q, out := new(apd.Decimal), new(apd.Decimal)
	cond, err := c.ctx.Quo(q, x, y)
	c.keep("quo", cond, err)
	if c.err != nil {
		return out
	}
	cond, err = c.ctx.Exp(out, q)
	c.keep("exp", cond, err)
	return out
}

func (c *calc) add(x, y *apd.Decimal) *apd.Decimal {
	out := new(apd.Decimal)
	cond, err := c.ctx.Add(out, x, y)
	c.keep("add", cond, err)
	return out
}

func (c *calc) sub(x, y *apd.Decimal) *apd.Decimal {
	out := new(apd.Decimal)
	cond, err := c.ctx.Sub(out, x, y)
	c.keep("sub", cond, err)
	return out
}

func (c *calc) mul(x, y *apd.Decimal) *apd.Decimal {
	out := new(apd.Decimal)
	cond, err := c.ctx.Mul(out, x, y)
	c.keep("mul", cond, err)
	return out
}

func (c *calc) quo(x, y *apd.Decimal) *apd.Decimal {
	out := new(apd.Decimal)
	cond, err := c.ctx.Quo(out, x, y)
	c.keep("quo", cond, err)
	return out
}

func (c *calc) abs(x *apd.Decimal) *apd.Decimal {
	return new(apd.Decimal).Abs(x)
}

// float converts back to float64.
func (c *calc) float(d *apd.Decimal) float64 {
	f, err := d.Float64()
	if err != nil && c.err == nil {
		c.err = fmt.Errorf("%w: float64 of %s: %v", ErrArithmetic, d, err)
	}
	return f
}

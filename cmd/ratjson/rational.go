package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/peadar/jsondent"
)

// rational is kept normalized: lowest terms, denominator positive.
type rational struct {
	num, den int64
}

func newRational(num, den int64) rational {
	if den < 0 {
		num, den = -num, -den
	}
	if g := gcd(num, den); g > 1 {
		num /= g
		den /= g
	}
	return rational{num: num, den: den}
}

func gcd(a, b int64) int64 {
	if a < 0 {
		a = -a
	}
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

// parseRational reads the "num/den" argument form.
func parseRational(s string) (rational, error) {
	numText, denText, ok := strings.Cut(s, "/")
	if !ok {
		return rational{}, fmt.Errorf("%q is not of the form num/den", s)
	}
	num, err := strconv.ParseInt(numText, 10, 64)
	if err != nil {
		return rational{}, fmt.Errorf("numerator of %q: %w", s, err)
	}
	den, err := strconv.ParseInt(denText, 10, 64)
	if err != nil {
		return rational{}, fmt.Errorf("denominator of %q: %w", s, err)
	}
	if den == 0 {
		return rational{}, fmt.Errorf("%q has a zero denominator", s)
	}
	return newRational(num, den), nil
}

func (r rational) add(o rational) rational {
	return newRational(r.num*o.den+o.num*r.den, r.den*o.den)
}

func (r rational) sub(o rational) rational {
	return newRational(r.num*o.den-o.num*r.den, r.den*o.den)
}

func (r rational) mul(o rational) rational {
	return newRational(r.num*o.num, r.den*o.den)
}

func (r rational) quo(o rational) rational {
	return newRational(r.num*o.den, r.den*o.num)
}

// value binds r to its JSON printer. Rationals have no native JSON
// shape, so they describe themselves field by field through the Obj
// builder.
func (r rational) value() jsondent.Valuer {
	return func(dst []byte, ctx any) ([]byte, error) {
		return jsondent.BeginObj(dst, ctx).
			Field("numerator", jsondent.Bind(jsondent.Int[int64], r.num)).
			Field("denominator", jsondent.Bind(jsondent.Int[int64], r.den)).
			End()
	}
}

package jsondent

import (
	"slices"
	"strconv"
)

// The serializer is resolved entirely at compile time: scalars have
// concrete appenders, container shapes have generic combinators that
// compose an element capability, and aggregate types write themselves
// with the Obj builder. Every call threads an arbitrary caller context
// downward so nested printers can adapt (units, formatting mode, and so
// on) without global state.

// AppendFunc is the printing capability for values of type T: append the
// JSON form of v to dst under context ctx. It must not mutate v.
type AppendFunc[T any] func(dst []byte, v T, ctx any) ([]byte, error)

// Valuer is a value already bound to its printer. The binding observes
// the value for the duration of one print call; it never owns it.
type Valuer func(dst []byte, ctx any) ([]byte, error)

// Bind pairs a value with its printing capability.
func Bind[T any](fn AppendFunc[T], v T) Valuer {
	return func(dst []byte, ctx any) ([]byte, error) {
		return fn(dst, v, ctx)
	}
}

// Append renders a bound value onto dst.
func Append(dst []byte, v Valuer, ctx any) ([]byte, error) {
	return v(dst, ctx)
}

// Print renders a bound value as text.
func Print(v Valuer, ctx any) (string, error) {
	b, err := v(nil, ctx)
	return string(b), err
}

// Raw scalar appenders; these cannot fail.

func AppendNull(dst []byte) []byte { return append(dst, "null"...) }

func AppendBool(dst []byte, v bool) []byte {
	if v {
		return append(dst, "true"...)
	}
	return append(dst, "false"...)
}

func AppendInt(dst []byte, v int64) []byte { return strconv.AppendInt(dst, v, 10) }

func AppendUint(dst []byte, v uint64) []byte { return strconv.AppendUint(dst, v, 10) }

func AppendFloat(dst []byte, v float64) []byte {
	return strconv.AppendFloat(dst, v, 'g', -1, 64)
}

type integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64
}

type unsigned interface {
	~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64
}

type float interface {
	~float32 | ~float64
}

// Capability forms of the scalar appenders, for use with the container
// combinators below.

func Int[T integer](dst []byte, v T, _ any) ([]byte, error) {
	return AppendInt(dst, int64(v)), nil
}

func Uint[T unsigned](dst []byte, v T, _ any) ([]byte, error) {
	return AppendUint(dst, uint64(v)), nil
}

func Float[T float](dst []byte, v T, _ any) ([]byte, error) {
	return AppendFloat(dst, float64(v)), nil
}

func Bool(dst []byte, v bool, _ any) ([]byte, error) {
	return AppendBool(dst, v), nil
}

func Str[T ~string](dst []byte, v T, _ any) ([]byte, error) {
	return AppendQuote(dst, string(v))
}

func Num(dst []byte, v Decimal, _ any) ([]byte, error) {
	return v.Append(dst), nil
}

// Seq is the printing capability for slices: a JSON array of the
// elements in order.
func Seq[S ~[]T, T any](elem AppendFunc[T]) AppendFunc[S] {
	return func(dst []byte, v S, ctx any) ([]byte, error) {
		dst = append(dst, '[')
		var err error
		for i, e := range v {
			if i > 0 {
				dst = append(dst, ',')
			}
			if dst, err = elem(dst, e, ctx); err != nil {
				return dst, err
			}
		}
		return append(dst, ']'), nil
	}
}

// Assoc is the printing capability for string-keyed maps: a JSON object,
// one member per entry. Go maps have no iteration order, so entries are
// emitted sorted by key to keep output deterministic.
func Assoc[M ~map[K]V, K ~string, V any](val AppendFunc[V]) AppendFunc[M] {
	return func(dst []byte, m M, ctx any) ([]byte, error) {
		keys := make([]K, 0, len(m))
		for k := range m {
			keys = append(keys, k)
		}
		slices.Sort(keys)
		dst = append(dst, '{')
		var err error
		for i, k := range keys {
			if i > 0 {
				dst = append(dst, ',')
			}
			if dst, err = AppendQuote(dst, string(k)); err != nil {
				return dst, err
			}
			dst = append(dst, ':')
			if dst, err = val(dst, m[k], ctx); err != nil {
				return dst, err
			}
		}
		return append(dst, '}'), nil
	}
}

// Ptr is the printing capability for pointers: null for nil, otherwise
// the pointee.
func Ptr[T any](elem AppendFunc[T]) AppendFunc[*T] {
	return func(dst []byte, v *T, ctx any) ([]byte, error) {
		if v == nil {
			return AppendNull(dst), nil
		}
		return elem(dst, *v, ctx)
	}
}

// Pair is a two-element tuple.
type Pair[F, S any] struct {
	First  F
	Second S
}

// PairOf is the fallback printing capability for pairs:
// {"first":…,"second":…}.
func PairOf[F, S any](first AppendFunc[F], second AppendFunc[S]) AppendFunc[Pair[F, S]] {
	return func(dst []byte, p Pair[F, S], ctx any) ([]byte, error) {
		return BeginObj(dst, ctx).
			Field("first", Bind(first, p.First)).
			Field("second", Bind(second, p.Second)).
			End()
	}
}

// Obj accumulates an object print one field at a time, tracking whether
// a separator is due so fields never need pre-counting. Aggregate types
// define their printer by chaining Field calls between BeginObj and End.
type Obj struct {
	dst []byte
	ctx any
	n   int
	err error
}

// BeginObj opens an object print onto dst under ctx.
func BeginObj(dst []byte, ctx any) *Obj {
	return &Obj{dst: append(dst, '{'), ctx: ctx}
}

// Field appends one "name":value member. After any error the remaining
// fields are skipped and End reports the first failure.
func (o *Obj) Field(name string, v Valuer) *Obj {
	if o.err != nil {
		return o
	}
	if o.n > 0 {
		o.dst = append(o.dst, ',')
	}
	o.n++
	if o.dst, o.err = AppendQuote(o.dst, name); o.err != nil {
		return o
	}
	o.dst = append(o.dst, ':')
	o.dst, o.err = v(o.dst, o.ctx)
	return o
}

// End closes the object and returns the accumulated output.
func (o *Obj) End() ([]byte, error) {
	return append(o.dst, '}'), o.err
}

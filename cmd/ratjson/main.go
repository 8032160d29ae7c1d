// Command ratjson demonstrates the jsondent serializer on a type with
// no native JSON shape: it reads two rationals of the form num/den and
// prints their sum, difference, product and quotient as JSON.
package main

import (
	"fmt"
	"os"

	"github.com/alecthomas/kingpin/v2"

	"github.com/peadar/jsondent"
)

func main() {
	app := kingpin.New("ratjson", "Print rational arithmetic as JSON.")
	leftArg := app.Arg("left", "Left operand, num/den.").Required().String()
	rightArg := app.Arg("right", "Right operand, num/den.").Required().String()
	kingpin.MustParse(app.Parse(os.Args[1:]))

	l, err := parseRational(*leftArg)
	if err != nil {
		app.Fatalf("%v", err)
	}
	r, err := parseRational(*rightArg)
	if err != nil {
		app.Fatalf("%v", err)
	}

	for _, op := range []struct {
		sym    string
		result rational
	}{
		{"+", l.add(r)},
		{"-", l.sub(r)},
		{"*", l.mul(r)},
		{"/", l.quo(r)},
	} {
		if err := printOne(l, r, op.sym, op.result); err != nil {
			app.Fatalf("%v", err)
		}
	}
}

func printOne(l, r rational, sym string, result rational) error {
	for i, v := range []jsondent.Valuer{l.value(), r.value(), result.value()} {
		text, err := jsondent.Print(v, nil)
		if err != nil {
			return err
		}
		switch i {
		case 0:
			fmt.Print(text, sym)
		case 1:
			fmt.Print(text, "=")
		case 2:
			fmt.Println(text)
		}
	}
	return nil
}

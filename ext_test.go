package jsondent_test

import (
	"encoding/json"
	"reflect"
	"strings"
	"testing"

	"github.com/peadar/jsondent"
)

// decode shows the layering the package is built around: a generic
// document tree is nothing but one more consumer of the push parser.
func decode(c *jsondent.Cursor) (interface{}, error) {
	t, err := c.Classify()
	if err != nil {
		return nil, err
	}
	switch t {
	case jsondent.Array:
		arr := []interface{}{}
		err := jsondent.ParseArray(c, func(c *jsondent.Cursor) error {
			v, err := decode(c)
			if err != nil {
				return err
			}
			arr = append(arr, v)
			return nil
		})
		return arr, err
	case jsondent.Object:
		obj := map[string]interface{}{}
		err := jsondent.ParseObject(c, func(c *jsondent.Cursor, name string) error {
			v, err := decode(c)
			if err != nil {
				return err
			}
			obj[name] = v
			return nil
		})
		return obj, err
	case jsondent.String:
		return jsondent.ParseString(c)
	case jsondent.Number:
		return jsondent.ParseFloat(c)
	case jsondent.Boolean:
		return jsondent.ParseBool(c)
	case jsondent.Null:
		return nil, jsondent.ParseNull(c)
	}
	return nil, jsondent.SkipValue(c) // EOF: force the empty-input error
}

var extDocs = map[string]string{
	"small":  `{"ok":true}`,
	"medium": `{"foo": 1, "bar": [{"first": 1, "second": 2, "last": 9999}, {}]}`,
	"mixed":  `[null, -3.25e2, "café", {"nested": [[], {}, [0]]}, false]`,
	"dupes":  `{"a": 1, "a": {"a": [1, 2, 3]}}`,
}

func TestExtDecodeAgainstStdlib(t *testing.T) {
	for name, doc := range extDocs {
		t.Run(name, func(t *testing.T) {
			got, err := decode(jsondent.NewCursor(strings.NewReader(doc)))
			if err != nil {
				t.Fatalf("decode: %v", err)
			}
			var exp interface{}
			if err := json.Unmarshal([]byte(doc), &exp); err != nil {
				t.Fatalf("stdlib: %v", err)
			}
			if !reflect.DeepEqual(exp, got) {
				t.Errorf("decode mismatch:\ngot  %#v\nwant %#v", got, exp)
			}
		})
	}
}

func TestExtPrettyThenDecode(t *testing.T) {
	for name, doc := range extDocs {
		t.Run(name, func(t *testing.T) {
			out, err := jsondent.PrettyPrint(jsondent.NewCursor(strings.NewReader(doc)), 4, jsondent.Floating)
			if err != nil {
				t.Fatalf("pretty: %v", err)
			}
			got, err := decode(jsondent.NewCursor(strings.NewReader(out)))
			if err != nil {
				t.Fatalf("decode of pretty output: %v", err)
			}
			var exp interface{}
			if err := json.Unmarshal([]byte(doc), &exp); err != nil {
				t.Fatalf("stdlib: %v", err)
			}
			if !reflect.DeepEqual(exp, got) {
				t.Errorf("%s: pretty output decodes differently", name)
			}
		})
	}
}

func BenchmarkExtDecode(b *testing.B) {
	for name, doc := range extDocs {
		b.Run(name, func(b *testing.B) {
			b.SetBytes(int64(len(doc)))
			for i := 0; i < b.N; i++ {
				if _, err := decode(jsondent.NewCursor(strings.NewReader(doc))); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

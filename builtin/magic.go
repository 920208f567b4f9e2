// Random and time sources backing the magic_* family the language
// specifies (all no-arg except magic_date_time, which also takes an
// optional layout), each reproducing the original's exact formula rather
// than a more general randomized replacement.
package builtin

import (
	"fmt"
	"math"
	"math/rand"
	"strings"
	"time"

	"github.com/geoffreydatema/graveyard/object"
)

// roundTo rounds f to n decimal places, matching Python's round() for the
// positive-precision case used here.
func roundTo(f float64, n int) float64 {
	scale := math.Pow(10, float64(n))
	return math.Round(f*scale) / scale
}

// magicStringAlphabet is the exact alphabet magic_string draws from: the
// printable ASCII characters '!' through '~' in ASCII order, without the
// double quote and the backslash.
const magicStringAlphabet = "!#$%&'()*+,-./0123456789:;<=>?@ABCDEFGHIJKLMNOPQRSTUVWXYZ[]^_`abcdefghijklmnopqrstuvwxyz{|}~"

func registerMagic(t *Table) {
	t.register("magic_number", magicNumber)
	t.register("magic_weight", magicWeight)
	t.register("magic_uid", magicUID)
	t.register("magic_string", magicString)
	t.register("magic_time", magicTime)
	t.register("magic_date_time", magicDateTime)
}

// magicNumber returns a random 8-digit integer in [10000000, 99999999].
func magicNumber(args []object.Value, line, col int) object.Value {
	if len(args) != 0 {
		return arityErr(line, col, "magic_number", 0, len(args))
	}
	return &object.Integer{Value: 10000000 + rand.Int63n(99999999-10000000+1)}
}

// magicWeight returns a random float in [0.0, 1.0), rounded to 8 places, a
// weight suitable for probability-driven branching.
func magicWeight(args []object.Value, line, col int) object.Value {
	if len(args) != 0 {
		return arityErr(line, col, "magic_weight", 0, len(args))
	}
	return &object.Float{Value: roundTo(rand.Float64(), 8)}
}

// magicString returns a random 16-character string drawn from
// magicStringAlphabet.
func magicString(args []object.Value, line, col int) object.Value {
	if len(args) != 0 {
		return arityErr(line, col, "magic_string", 0, len(args))
	}
	var b strings.Builder
	for i := 0; i < 16; i++ {
		b.WriteByte(magicStringAlphabet[rand.Intn(len(magicStringAlphabet))])
	}
	return &object.String{Value: b.String()}
}

// magicUID returns a random lowercase hex string, the same short
// non-RFC-4122 id the original produces from hex(randint(...))[2:].
func magicUID(args []object.Value, line, col int) object.Value {
	if len(args) != 0 {
		return arityErr(line, col, "magic_uid", 0, len(args))
	}
	const low, high = 286331153, 4294967295
	n := low + rand.Int63n(high-low+1)
	return &object.String{Value: fmt.Sprintf("%x", n)}
}

// magicTime returns the current Unix timestamp in seconds as a float.
func magicTime(args []object.Value, line, col int) object.Value {
	if len(args) != 0 {
		return arityErr(line, col, "magic_time", 0, len(args))
	}
	return &object.Float{Value: float64(time.Now().UnixNano()) / 1e9}
}

// magicDateTime returns the current local time formatted as
// "2006-01-02 15:04:05", or using the caller-supplied Go reference layout
// when one argument is given.
func magicDateTime(args []object.Value, line, col int) object.Value {
	layout := "2006-01-02 15:04:05"
	if len(args) == 1 {
		s, ok := args[0].(*object.String)
		if !ok {
			return typeErr(line, col, "magic_date_time expects a string layout")
		}
		layout = s.Value
	} else if len(args) != 0 {
		return arityErr(line, col, "magic_date_time", 0, len(args))
	}
	return &object.String{Value: time.Now().Format(layout)}
}

package builtin

import (
	"strconv"
	"strings"

	"github.com/geoffreydatema/graveyard/object"
)

func registerCasts(t *Table) {
	t.register("b", castBool)
	t.register("i", castInt)
	t.register("f", castFloat)
	t.register("s", castString)
	t.register("a", castArray)
	t.register("h", castHashtable)
	t.register("stoa", stringToArray)
	t.register("reverse", reverse)
	t.register("type", typeOf)
	t.register("mod", mod)
	t.register("floordiv", floordiv)
	t.register("hello", hello)
}

func castBool(args []object.Value, line, col int) object.Value {
	if len(args) != 1 {
		return arityErr(line, col, "b", 1, len(args))
	}
	return object.NativeBool(object.Truthy(args[0]))
}

func castInt(args []object.Value, line, col int) object.Value {
	if len(args) != 1 {
		return arityErr(line, col, "i", 1, len(args))
	}
	switch v := args[0].(type) {
	case *object.Integer:
		return v
	case *object.Float:
		return &object.Integer{Value: int64(v.Value)}
	case *object.Boolean:
		if v.Value {
			return &object.Integer{Value: 1}
		}
		return &object.Integer{Value: 0}
	case *object.String:
		n, err := strconv.ParseInt(strings.TrimSpace(v.Value), 10, 64)
		if err != nil {
			return valueErr(line, col, "cannot cast %q to integer", v.Value)
		}
		return &object.Integer{Value: n}
	default:
		return typeErr(line, col, "cannot cast %s to integer", v.Type())
	}
}

func castFloat(args []object.Value, line, col int) object.Value {
	if len(args) != 1 {
		return arityErr(line, col, "f", 1, len(args))
	}
	switch v := args[0].(type) {
	case *object.Float:
		return v
	case *object.Integer:
		return &object.Float{Value: float64(v.Value)}
	case *object.String:
		f, err := strconv.ParseFloat(strings.TrimSpace(v.Value), 64)
		if err != nil {
			return valueErr(line, col, "cannot cast %q to float", v.Value)
		}
		return &object.Float{Value: f}
	default:
		return typeErr(line, col, "cannot cast %s to float", v.Type())
	}
}

func castString(args []object.Value, line, col int) object.Value {
	if len(args) != 1 {
		return arityErr(line, col, "s", 1, len(args))
	}
	return &object.String{Value: args[0].String()}
}

func castArray(args []object.Value, line, col int) object.Value {
	if len(args) != 1 {
		return arityErr(line, col, "a", 1, len(args))
	}
	if arr, ok := args[0].(*object.Array); ok {
		return arr
	}
	return typeErr(line, col, "cannot cast %s to array", args[0].Type())
}

func castHashtable(args []object.Value, line, col int) object.Value {
	if len(args) != 1 {
		return arityErr(line, col, "h", 1, len(args))
	}
	if h, ok := args[0].(*object.Hashtable); ok {
		return h
	}
	return typeErr(line, col, "cannot cast %s to hashtable", args[0].Type())
}

func stringToArray(args []object.Value, line, col int) object.Value {
	if len(args) != 1 {
		return arityErr(line, col, "stoa", 1, len(args))
	}
	s, ok := args[0].(*object.String)
	if !ok {
		return typeErr(line, col, "stoa expects a string, got %s", args[0].Type())
	}
	elems := make([]object.Value, 0, len(s.Value))
	for _, r := range s.Value {
		elems = append(elems, &object.String{Value: string(r)})
	}
	return &object.Array{Elements: elems}
}

func reverse(args []object.Value, line, col int) object.Value {
	if len(args) != 1 {
		return arityErr(line, col, "reverse", 1, len(args))
	}
	switch v := args[0].(type) {
	case *object.Array:
		out := make([]object.Value, len(v.Elements))
		for i, e := range v.Elements {
			out[len(out)-1-i] = e
		}
		return &object.Array{Elements: out}
	case *object.String:
		runes := []rune(v.Value)
		for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
			runes[i], runes[j] = runes[j], runes[i]
		}
		return &object.String{Value: string(runes)}
	default:
		return typeErr(line, col, "reverse expects an array or string, got %s", v.Type())
	}
}

func typeOf(args []object.Value, line, col int) object.Value {
	if len(args) != 1 {
		return arityErr(line, col, "type", 1, len(args))
	}
	return &object.String{Value: string(args[0].Type())}
}

// mod implements floor modulo: the result always carries the sign of the
// divisor.
func mod(args []object.Value, line, col int) object.Value {
	if len(args) != 2 {
		return arityErr(line, col, "mod", 2, len(args))
	}
	a, aOk := asInt(args[0])
	b, bOk := asInt(args[1])
	if !aOk || !bOk {
		return typeErr(line, col, "mod expects two integers")
	}
	if b == 0 {
		return valueErr(line, col, "modulo by zero")
	}
	r := a % b
	if (r < 0) != (b < 0) && r != 0 {
		r += b
	}
	return &object.Integer{Value: r}
}

func floordiv(args []object.Value, line, col int) object.Value {
	if len(args) != 2 {
		return arityErr(line, col, "floordiv", 2, len(args))
	}
	a, aOk := asInt(args[0])
	b, bOk := asInt(args[1])
	if !aOk || !bOk {
		return typeErr(line, col, "floordiv expects two integers")
	}
	if b == 0 {
		return valueErr(line, col, "division by zero")
	}
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return &object.Integer{Value: q}
}

func asInt(v object.Value) (int64, bool) {
	switch n := v.(type) {
	case *object.Integer:
		return n.Value, true
	case *object.Float:
		return int64(n.Value), true
	default:
		return 0, false
	}
}

func hello(args []object.Value, line, col int) object.Value {
	if len(args) != 0 {
		return arityErr(line, col, "hello", 0, len(args))
	}
	return &object.String{Value: "hello from the graveyard"}
}

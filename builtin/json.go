// json_encode/json_decode: a pair of value-tree walkers converting
// between object.Value/object.Hashtable and Go's native JSON
// representation.
package builtin

import (
	"encoding/json"
	"strconv"

	"github.com/geoffreydatema/graveyard/object"
)

func registerJSON(t *Table) {
	t.register("json_encode", jsonEncode)
	t.register("json_decode", jsonDecode)
}

func jsonEncode(args []object.Value, line, col int) object.Value {
	if len(args) != 1 {
		return arityErr(line, col, "json_encode", 1, len(args))
	}
	data, err := toJSONNative(args[0], line, col)
	if err != nil {
		return err
	}
	bytes, merr := json.Marshal(data)
	if merr != nil {
		return valueErr(line, col, "failed to encode json: %v", merr)
	}
	return &object.String{Value: string(bytes)}
}

func jsonDecode(args []object.Value, line, col int) object.Value {
	s, err := stringArg(args, 0, "json_decode", line, col)
	if err != nil {
		return err
	}
	var data interface{}
	if uerr := json.Unmarshal([]byte(s), &data); uerr != nil {
		return valueErr(line, col, "failed to decode json: %v", uerr)
	}
	return fromJSONNative(data)
}

// toJSONNative mirrors convertFromGoMix, but hashtable keys that are
// Graveyard integers have to become JSON object string keys since JSON has
// no integer-keyed object form.
func toJSONNative(v object.Value, line, col int) (interface{}, *object.Error) {
	switch val := v.(type) {
	case *object.Null:
		return nil, nil
	case *object.Boolean:
		return val.Value, nil
	case *object.Integer:
		return val.Value, nil
	case *object.Float:
		return val.Value, nil
	case *object.String:
		return val.Value, nil
	case *object.Array:
		out := make([]interface{}, len(val.Elements))
		for i, e := range val.Elements {
			conv, err := toJSONNative(e, line, col)
			if err != nil {
				return nil, err
			}
			out[i] = conv
		}
		return out, nil
	case *object.Hashtable:
		out := make(map[string]interface{}, len(val.Keys))
		for _, k := range val.Keys {
			elem, _ := val.Get(k)
			conv, err := toJSONNative(elem, line, col)
			if err != nil {
				return nil, err
			}
			out[hashtableKeyString(k)] = conv
		}
		return out, nil
	default:
		return val.String(), nil
	}
}

func hashtableKeyString(k interface{}) string {
	switch key := k.(type) {
	case string:
		return key
	case int64:
		return strconv.FormatInt(key, 10)
	default:
		return ""
	}
}

// fromJSONNative mirrors convertToGoMix: json.Unmarshal into interface{}
// always yields float64 for numbers, so integers are recovered by checking
// for a zero fractional part.
func fromJSONNative(val interface{}) object.Value {
	switch v := val.(type) {
	case map[string]interface{}:
		h := object.NewHashtable()
		for k, raw := range v {
			h.Set(k, fromJSONNative(raw))
		}
		return h
	case []interface{}:
		elems := make([]object.Value, len(v))
		for i, raw := range v {
			elems[i] = fromJSONNative(raw)
		}
		return &object.Array{Elements: elems}
	case string:
		return &object.String{Value: v}
	case bool:
		return object.NativeBool(v)
	case float64:
		if v == float64(int64(v)) {
			return &object.Integer{Value: int64(v)}
		}
		return &object.Float{Value: v}
	default:
		return object.NULL
	}
}

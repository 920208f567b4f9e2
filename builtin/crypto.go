// Crypto and encoding helpers: hashing, base64, and hex conversions.
package builtin

import (
	"crypto/md5"
	"crypto/sha1"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"fmt"

	"github.com/geoffreydatema/graveyard/object"
)

func registerCrypto(t *Table) {
	t.register("md5", md5Sum)
	t.register("sha1", sha1Sum)
	t.register("sha256", sha256Sum)
	t.register("base64_encode", base64Encode)
	t.register("base64_decode", base64Decode)
	t.register("hex_encode", hexEncode)
	t.register("hex_decode", hexDecode)
}

func stringArg(args []object.Value, i int, name string, line, col int) (string, *object.Error) {
	if i >= len(args) {
		return "", arityErr(line, col, name, i+1, len(args))
	}
	s, ok := args[i].(*object.String)
	if !ok {
		return "", typeErr(line, col, "%s expects a string argument, got %s", name, args[i].Type())
	}
	return s.Value, nil
}

func md5Sum(args []object.Value, line, col int) object.Value {
	s, err := stringArg(args, 0, "md5", line, col)
	if err != nil {
		return err
	}
	sum := md5.Sum([]byte(s))
	return &object.String{Value: fmt.Sprintf("%x", sum)}
}

func sha1Sum(args []object.Value, line, col int) object.Value {
	s, err := stringArg(args, 0, "sha1", line, col)
	if err != nil {
		return err
	}
	sum := sha1.Sum([]byte(s))
	return &object.String{Value: fmt.Sprintf("%x", sum)}
}

func sha256Sum(args []object.Value, line, col int) object.Value {
	s, err := stringArg(args, 0, "sha256", line, col)
	if err != nil {
		return err
	}
	sum := sha256.Sum256([]byte(s))
	return &object.String{Value: fmt.Sprintf("%x", sum)}
}

func base64Encode(args []object.Value, line, col int) object.Value {
	s, err := stringArg(args, 0, "base64_encode", line, col)
	if err != nil {
		return err
	}
	return &object.String{Value: base64.StdEncoding.EncodeToString([]byte(s))}
}

func base64Decode(args []object.Value, line, col int) object.Value {
	s, err := stringArg(args, 0, "base64_decode", line, col)
	if err != nil {
		return err
	}
	decoded, derr := base64.StdEncoding.DecodeString(s)
	if derr != nil {
		return valueErr(line, col, "failed to decode base64: %v", derr)
	}
	return &object.String{Value: string(decoded)}
}

func hexEncode(args []object.Value, line, col int) object.Value {
	s, err := stringArg(args, 0, "hex_encode", line, col)
	if err != nil {
		return err
	}
	return &object.String{Value: hex.EncodeToString([]byte(s))}
}

func hexDecode(args []object.Value, line, col int) object.Value {
	s, err := stringArg(args, 0, "hex_decode", line, col)
	if err != nil {
		return err
	}
	decoded, derr := hex.DecodeString(s)
	if derr != nil {
		return valueErr(line, col, "failed to decode hex: %v", derr)
	}
	return &object.String{Value: string(decoded)}
}

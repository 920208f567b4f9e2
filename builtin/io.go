// print, scan, and whole-file read/write helpers. print/scan mirror the
// language's dedicated `>>`/`<<` operators so they are also reachable as
// ordinary function calls; fread/fwrite each scope a file open/close
// around a single operation rather than exposing a stateful handle.
package builtin

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/geoffreydatema/graveyard/object"
)

func registerIO(t *Table, w io.Writer, r *bufio.Reader) {
	t.register("print", func(args []object.Value, line, col int) object.Value {
		parts := make([]string, len(args))
		for i, a := range args {
			parts[i] = a.String()
		}
		fmt.Fprintln(w, strings.Join(parts, " "))
		return object.NULL
	})

	t.register("scan", func(args []object.Value, line, col int) object.Value {
		if len(args) > 1 {
			return arityErr(line, col, "scan", 1, len(args))
		}
		if len(args) == 1 {
			fmt.Fprint(w, args[0].String())
		}
		text, err := r.ReadString('\n')
		if err != nil && text == "" {
			return valueErr(line, col, "scan: failed to read input: %v", err)
		}
		return &object.String{Value: strings.TrimRight(text, "\r\n")}
	})

	t.register("fread", fread)
	t.register("fwrite", fwrite)
}

// fread(path) reads the entire file at path and returns it as a string.
// The handle is opened and closed within this single call.
func fread(args []object.Value, line, col int) object.Value {
	path, err := stringArg(args, 0, "fread", line, col)
	if err != nil {
		return err
	}
	data, rerr := os.ReadFile(path)
	if rerr != nil {
		return valueErr(line, col, "fread: %v", rerr)
	}
	return &object.String{Value: string(data)}
}

// fwrite(content, path) overwrites path with content, returning the number
// of bytes written.
func fwrite(args []object.Value, line, col int) object.Value {
	if len(args) != 2 {
		return arityErr(line, col, "fwrite", 2, len(args))
	}
	content, cerr := stringArg(args, 0, "fwrite", line, col)
	if cerr != nil {
		return cerr
	}
	path, perr := stringArg(args, 1, "fwrite", line, col)
	if perr != nil {
		return perr
	}
	f, oerr := os.Create(path)
	if oerr != nil {
		return valueErr(line, col, "fwrite: %v", oerr)
	}
	defer f.Close()
	n, werr := f.WriteString(content)
	if werr != nil {
		return valueErr(line, col, "fwrite: %v", werr)
	}
	return &object.Integer{Value: int64(n)}
}

// Package library implements the Source Loader and the Pre-tokenizer /
// Library Ingestor: the two passes that turn a file on disk into a single
// self-contained source string ready for the lexer. Nothing here builds a
// token or an AST node; it operates purely on text, in load/entry/
// pretokenize/ingest pass order.
package library

import (
	"fmt"
	"os"
	"regexp"
	"strings"
)

// Extension is the required suffix for both entry programs and imported
// libraries.
const Extension = ".graveyard"

const (
	openGlobal  = "::{"
	closeGlobal = "}"
)

var (
	lineCommentPattern  = regexp.MustCompile(`//[^\n]*`)
	blockCommentPattern = regexp.MustCompile(`(?s)/\*.*?\*/`)
	libraryPathPattern  = regexp.MustCompile(`@((?:[A-Za-z]:\\|/|\./|\.\\)[^;]*);`)
)

// Error reports a failure in the loading or ingestion pipeline, tagged with
// the same error-kind vocabulary the rest of the interpreter uses (Syntax
// for a wrong file extension or malformed delimiters, Reference for a
// library that cannot be found).
type Error struct {
	Kind    string
	Message string
}

func (e *Error) Error() string { return fmt.Sprintf("%s error: %s", e.Kind, e.Message) }

func syntaxError(format string, args ...interface{}) *Error {
	return &Error{Kind: "Syntax", Message: fmt.Sprintf(format, args...)}
}

func referenceError(format string, args ...interface{}) *Error {
	return &Error{Kind: "Reference", Message: fmt.Sprintf(format, args...)}
}

// Load rejects a path without the Extension suffix, then reads path,
// validates and strips its global-namespace delimiters,
// resolves every library import (recursively, with cycle detection), and
// strips comments. The returned string is ready for lexer.Tokenize.
func Load(path string) (string, error) {
	if !strings.HasSuffix(path, Extension) {
		return "", syntaxError("source file %q does not have the %s extension", path, Extension)
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return "", referenceError("could not read %q: %v", path, err)
	}
	return Ingest(string(raw), path, map[string]bool{path: true})
}

// Ingest runs the entry-gate delimiter check, comment stripping, and import
// splicing over src, which originated from sourcePath. visited is the set
// of paths already on the current import chain, used to reject cycles that
// would otherwise recurse into a cyclic @path; graph forever.
func Ingest(src, sourcePath string, visited map[string]bool) (string, error) {
	body, err := stripGlobalDelimiters(src)
	if err != nil {
		return "", err
	}
	body = stripComments(body)
	return resolveImports(body, sourcePath, visited)
}

// stripGlobalDelimiters enforces the Entry Gate: every program and every
// library body must open with `::{` and close with a trailing `}`.
func stripGlobalDelimiters(src string) (string, error) {
	trimmed := strings.TrimSpace(src)
	if !strings.HasPrefix(trimmed, openGlobal) {
		return "", syntaxError("global namespace not declared")
	}
	if !strings.HasSuffix(trimmed, closeGlobal) {
		return "", syntaxError("global namespace not closed")
	}
	interior := trimmed[len(openGlobal) : len(trimmed)-len(closeGlobal)]
	return interior, nil
}

func stripComments(src string) string {
	src = blockCommentPattern.ReplaceAllString(src, "")
	src = lineCommentPattern.ReplaceAllString(src, "")
	return src
}

// resolveImports finds every `@path;` token in body and replaces it with
// the fully pre-processed contents of the library at that path, resolving
// nested imports by recursion into Ingest.
func resolveImports(body, sourcePath string, visited map[string]bool) (string, error) {
	matches := libraryPathPattern.FindAllStringSubmatch(body, -1)
	seen := make(map[string]bool)

	for _, m := range matches {
		token := m[0]
		path := m[1]
		if seen[token] {
			continue
		}
		seen[token] = true

		libPath := path + Extension
		if visited[libPath] {
			return "", referenceError("import cycle detected: %s", libPath)
		}

		raw, err := os.ReadFile(libPath)
		if err != nil {
			return "", referenceError("library not found: %s", libPath)
		}

		childVisited := make(map[string]bool, len(visited)+1)
		for k, v := range visited {
			childVisited[k] = v
		}
		childVisited[libPath] = true

		resolved, err := Ingest(string(raw), libPath, childVisited)
		if err != nil {
			return "", err
		}

		body = strings.ReplaceAll(body, token, resolved)
	}

	return body, nil
}

// Package source loads files into the line form the viewport edits.
package source

import (
	"context"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/go-enry/go-enry/v2"
	"github.com/pkg/errors"

	"github.com/iw2rmb/portal/internal/logx"
)

// ErrNotText reports content that is not valid UTF-8 text.
var ErrNotText = errors.New("not a text file")

// File is a parsed source file.
type File struct {
	Path  string
	Lines []string
	// TrailingNewline is set when the content ended with a line break.
	TrailingNewline bool
	// CRLF is set when the first line break was "\r\n".
	CRLF     bool
	Language string
}

// Read loads and parses path.
func Read(ctx context.Context, path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "read source")
	}
	f, err := Parse(path, data)
	if err != nil {
		return nil, err
	}
	logx.WithPath(logx.Ctx(ctx), path).Debug("source opened",
		"bytes", len(data), "lines", len(f.Lines), "language", f.Language)
	return f, nil
}

// Parse splits data into lines. name is used for the language label only.
func Parse(name string, data []byte) (*File, error) {
	if !utf8.Valid(data) || enry.IsBinary(data) {
		return nil, errors.Wrapf(ErrNotText, "parse %s", name)
	}
	lines, trailing, crlf := Split(string(data))
	return &File{
		Path:            name,
		Lines:           lines,
		TrailingNewline: trailing,
		CRLF:            crlf,
		Language:        enry.GetLanguage(name, data),
	}, nil
}

// IsNotText reports whether err was caused by non-text content.
func IsNotText(err error) bool {
	return errors.Is(err, ErrNotText)
}

// Split breaks text on "\n" and "\r\n". It always returns at least one line;
// a final line break does not start an empty last line.
func Split(text string) (lines []string, trailingNewline, crlf bool) {
	if text == "" {
		return []string{""}, false, false
	}
	if i := strings.IndexByte(text, '\n'); i > 0 && text[i-1] == '\r' {
		crlf = true
	}
	trailingNewline = strings.HasSuffix(text, "\n")
	if trailingNewline {
		text = text[:len(text)-1]
	}
	lines = strings.Split(text, "\n")
	for i := range lines {
		if i < len(lines)-1 || trailingNewline {
			lines[i] = strings.TrimSuffix(lines[i], "\r")
		}
	}
	return lines, trailingNewline, crlf
}

// Join is the inverse of Split for files with uniform line endings.
func Join(lines []string, trailingNewline, crlf bool) string {
	sep := "\n"
	if crlf {
		sep = "\r\n"
	}
	text := strings.Join(lines, sep)
	if trailingNewline {
		text += sep
	}
	return text
}

// Package sfc compiles single-file components (.vue files) into JavaScript
// modules whose default export is the component object with its render
// function attached.
//
//	out, err := sfc.Compile("App.vue", src, sfc.Options{})
//	if errors.Is(err, sfc.ErrEmptyTemplate) {
//		...
//	}
package sfc

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/grindlemire/go-sfc/internal/log"
	"github.com/grindlemire/go-sfc/internal/sfcgen"
	"github.com/grindlemire/go-sfc/internal/sfcparse"
)

// Options configures one compilation. The zero value is usable.
type Options = sfcgen.Options

// Error is a compilation error with a kind, position and optional hint.
type Error = sfcgen.Error

// ErrorKind classifies an Error.
type ErrorKind = sfcgen.ErrorKind

const (
	UnsupportedLanguage = sfcgen.UnsupportedLanguage
	MalformedScript     = sfcgen.MalformedScript
	NoContent           = sfcgen.NoContent
	EmptyTemplate       = sfcgen.EmptyTemplate
	InvalidExpression   = sfcgen.InvalidExpression
	DuplicateBlock      = sfcgen.DuplicateBlock
	ParseError          = sfcgen.ParseError
)

// Sentinel errors for use with errors.Is.
var (
	ErrUnsupportedLanguage = sfcgen.ErrUnsupportedLanguage
	ErrMalformedScript     = sfcgen.ErrMalformedScript
	ErrNoContent           = sfcgen.ErrNoContent
	ErrEmptyTemplate       = sfcgen.ErrEmptyTemplate
	ErrInvalidExpression   = sfcgen.ErrInvalidExpression
	ErrDuplicateBlock      = sfcgen.ErrDuplicateBlock
	ErrParse               = sfcgen.ErrParse
)

// Compile parses source and compiles it into a JavaScript module.
// filename is used in error positions only.
func Compile(filename, source string, opts Options) (string, error) {
	nodes, err := sfcparse.Parse(filename, source)
	if err != nil {
		return "", err
	}
	out, err := sfcgen.Compile(nodes, opts)
	if err != nil {
		if serr, ok := err.(*sfcgen.Error); ok && serr.Pos.File == "" {
			serr.Pos.File = filename
		}
		return "", err
	}
	log.Compile("%s: %d bytes", filename, len(out))
	return out, nil
}

// CompileFile reads and compiles the file at path.
func CompileFile(path string, opts Options) (string, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("reading file: %w", err)
	}
	return Compile(filepath.Base(path), string(src), opts)
}

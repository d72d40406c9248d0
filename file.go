package jzon

import (
	"fmt"

	"github.com/spf13/afero"

	"github.com/jzon-format/go-jzon/encode"
	"github.com/jzon-format/go-jzon/format"
	"github.com/jzon-format/go-jzon/ir"
	"github.com/jzon-format/go-jzon/parse"
)

// The file collaborators are thin wrappers: read a whole file and parse it,
// or serialize and overwrite. They take an afero.Fs so callers and tests
// can substitute an in-memory filesystem.

// ReadFile loads path entirely into memory and parses it into root.
func ReadFile(path string, root *ir.Node, opts ...parse.ParseOption) error {
	return ReadFileFS(afero.NewOsFs(), path, root, opts...)
}

func ReadFileFS(fsys afero.Fs, path string, root *ir.Node, opts ...parse.ParseOption) error {
	d, err := afero.ReadFile(fsys, path)
	if err != nil {
		return fmt.Errorf("load %s: %w", path, err)
	}
	return parse.Parse(root, d, opts...)
}

// WriteFile serializes root under f and fully overwrites path, creating it
// if needed.
func WriteFile(path string, root *ir.Node, f format.Format) error {
	return WriteFileFS(afero.NewOsFs(), path, root, f)
}

func WriteFileFS(fsys afero.Fs, path string, root *ir.Node, f format.Format) error {
	d := []byte(encode.MustString(root, encode.EncodeFormat(f)))
	if err := afero.WriteFile(fsys, path, d, 0644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

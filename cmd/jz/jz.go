package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/jzon-format/go-jzon/ir"
	"github.com/jzon-format/go-jzon/parse"

	"github.com/scott-cotton/cli"
)

func jzMain(cfg *MainConfig, cc *cli.Context, args []string) error {
	defer func() {
		if cfg.CloseOut != nil {
			cfg.CloseOut()
		}
	}()
	args, err := cfg.Main.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return cli.ErrNoCommandProvided
	}
	sub := cfg.Main.FindSub(cc, args[0])
	if sub == nil {
		return fmt.Errorf("%w: %q not found", cli.ErrNoSuchCommand, args[0])
	}
	err = sub.Run(cc, args[1:])
	if errors.Is(err, cli.ErrUsage) {
		sub.Usage(cc, err)
		os.Exit(sub.Exit(cc, err))
	}
	return err
}

// readDoc loads one document from a file path or, for "-", stdin. The root
// kind is chosen from the document's first significant character.
func readDoc(arg string) (*ir.Node, error) {
	var r io.Reader
	if arg == "-" {
		r = os.Stdin
	} else {
		f, err := os.Open(arg)
		if err != nil {
			return nil, fmt.Errorf("error opening %s: %w", arg, err)
		}
		defer f.Close()
		r = f
	}
	d, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	root := &ir.Node{Kind: parse.DetermineKind(d)}
	if err := parse.Parse(root, d); err != nil {
		return nil, fmt.Errorf("error decoding %s: %w", arg, err)
	}
	return root, nil
}

func eachDoc(args []string, f func(arg string, root *ir.Node) error) error {
	if len(args) == 0 {
		args = []string{"-"}
	}
	for _, arg := range args {
		root, err := readDoc(arg)
		if err != nil {
			return err
		}
		if err := f(arg, root); err != nil {
			return err
		}
	}
	return nil
}

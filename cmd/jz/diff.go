package main

import (
	"fmt"

	"github.com/jzon-format/go-jzon/encode"
	"github.com/jzon-format/go-jzon/libdiff"

	"github.com/scott-cotton/cli"
)

func diff(cfg *DiffConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Diff.Parse(cc, args)
	if err != nil {
		cfg.Diff.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: diff requires two file arguments", cli.ErrUsage)
	}
	from, err := readDoc(args[0])
	if err != nil {
		return err
	}
	to, err := readDoc(args[1])
	if err != nil {
		return err
	}
	d := libdiff.DiffNode(from, to)
	if d == nil {
		return nil
	}
	if err := encode.Encode(d, cc.Out, cfg.encOpts(cc.Out)...); err != nil {
		return fmt.Errorf("error encoding diff: %w", err)
	}
	_, err = cc.Out.Write([]byte("\n"))
	return err
}

package main

import (
	"fmt"

	"github.com/jzon-format/go-jzon/encode"
	"github.com/jzon-format/go-jzon/ir"

	"github.com/scott-cotton/cli"
)

func view(cfg *ViewConfig, cc *cli.Context, args []string) error {
	args, err := cfg.View.Parse(cc, args)
	if err != nil {
		cfg.View.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	return eachDoc(args, func(arg string, root *ir.Node) error {
		if err := encode.Encode(root, cc.Out, cfg.encOpts(cc.Out)...); err != nil {
			return fmt.Errorf("error encoding %s: %w", arg, err)
		}
		_, err := cc.Out.Write([]byte("\n"))
		return err
	})
}

package main

import (
	"fmt"
	"os"

	"github.com/jzon-format/go-jzon/encode"
	"github.com/jzon-format/go-jzon/ir"

	"github.com/scott-cotton/cli"
)

func fmtRun(cfg *FmtConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Fmt.Parse(cc, args)
	if err != nil {
		cfg.Fmt.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if cfg.Write && len(args) == 0 {
		return fmt.Errorf("%w: -w requires file arguments", cli.ErrUsage)
	}
	return eachDoc(args, func(arg string, root *ir.Node) error {
		if cfg.Write && arg != "-" {
			d := encode.MustString(root, encode.EncodeFormat(cfg.outFormat())) + "\n"
			if err := os.WriteFile(arg, []byte(d), 0644); err != nil {
				return fmt.Errorf("error rewriting %s: %w", arg, err)
			}
			return nil
		}
		if err := encode.Encode(root, cc.Out, cfg.encOpts(cc.Out)...); err != nil {
			return fmt.Errorf("error encoding %s: %w", arg, err)
		}
		_, err := cc.Out.Write([]byte("\n"))
		return err
	})
}

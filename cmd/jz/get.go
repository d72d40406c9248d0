package main

import (
	"fmt"

	"github.com/jzon-format/go-jzon/encode"
	"github.com/jzon-format/go-jzon/ir"

	"github.com/scott-cotton/cli"
)

func get(cfg *GetConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Get.Parse(cc, args)
	if err != nil {
		cfg.Get.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: get requires one argument, a dotted path", cli.ErrUsage)
	}
	path := args[0]
	if path == "" {
		return fmt.Errorf("%w: invalid path \"\"", cli.ErrUsage)
	}
	return eachDoc(args[1:], func(arg string, root *ir.Node) error {
		res, err := ir.Lookup(root, path)
		if err != nil {
			return fmt.Errorf("error looking up %s in %s: %w", path, arg, err)
		}
		if err := encode.Encode(res, cc.Out, cfg.encOpts(cc.Out)...); err != nil {
			return fmt.Errorf("error encoding result: %w", err)
		}
		_, err = cc.Out.Write([]byte("\n"))
		return err
	})
}

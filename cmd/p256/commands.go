package main

import (
	"fmt"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
	"go.uber.org/zap"

	"p256.mleku.dev"
)

func checkArgs(ctx *cli.Context, counts ...int) error {
	for _, n := range counts {
		if ctx.NArg() == n {
			return nil
		}
	}
	return errors.Errorf("%s: wrong number of arguments (%d), usage: %s %s",
		ctx.Command.Name, ctx.NArg(), ctx.Command.Name, ctx.Command.ArgsUsage)
}

func (rt *runtime) addCommand() *cli.Command {
	return &cli.Command{
		Name:      "add",
		Usage:     "add two points",
		ArgsUsage: "<x1> <y1> <x2> <y2>",
		Action: func(ctx *cli.Context) error {
			if err := checkArgs(ctx, 4); err != nil {
				return err
			}
			p1, err := parsePoint(ctx.Args().Get(0), ctx.Args().Get(1))
			if err != nil {
				return errors.Wrap(err, "first point")
			}
			p2, err := parsePoint(ctx.Args().Get(2), ctx.Args().Get(3))
			if err != nil {
				return errors.Wrap(err, "second point")
			}

			var a, b, r p256.GroupElementProjective
			a.SetAffine(p1)
			b.SetAffine(p2)
			r.Add(&a, &b)

			rt.log.Debug("added points", zap.Stringer("p1", p1), zap.Stringer("p2", p2))
			return rt.printProjective(ctx.App.Writer, &r)
		},
	}
}

func (rt *runtime) doubleCommand() *cli.Command {
	return &cli.Command{
		Name:      "double",
		Usage:     "double a point",
		ArgsUsage: "<x> <y>",
		Action: func(ctx *cli.Context) error {
			if err := checkArgs(ctx, 2); err != nil {
				return err
			}
			p, err := parsePoint(ctx.Args().Get(0), ctx.Args().Get(1))
			if err != nil {
				return err
			}

			var r p256.GroupElementProjective
			r.SetAffine(p)
			r.Double(&r)

			rt.log.Debug("doubled point", zap.Stringer("p", p))
			return rt.printProjective(ctx.App.Writer, &r)
		},
	}
}

func (rt *runtime) mulCommand() *cli.Command {
	return &cli.Command{
		Name:      "mul",
		Usage:     "multiply the generator, or a given point, by a scalar",
		ArgsUsage: "<k> [<x> <y>]",
		Action: func(ctx *cli.Context) error {
			if err := checkArgs(ctx, 1, 3); err != nil {
				return err
			}
			k, err := parseScalar(ctx.Args().Get(0))
			if err != nil {
				return errors.Wrap(err, "scalar")
			}

			var r p256.GroupElementProjective
			if ctx.NArg() == 1 {
				r.ScalarBaseMult(k)
				rt.log.Debug("multiplied generator")
			} else {
				p, err := parsePoint(ctx.Args().Get(1), ctx.Args().Get(2))
				if err != nil {
					return err
				}
				r.SetAffine(p)
				r.ScalarMult(k, &r)
				rt.log.Debug("multiplied point", zap.Stringer("p", p))
			}
			return rt.printProjective(ctx.App.Writer, &r)
		},
	}
}

func (rt *runtime) encodeCommand() *cli.Command {
	compressedFlag := &cli.BoolFlag{
		Name:  "compressed",
		Usage: "emit the 33-byte compressed form",
	}
	return &cli.Command{
		Name:      "encode",
		Usage:     "SEC1-encode a point",
		ArgsUsage: "<x> <y>",
		Flags:     []cli.Flag{compressedFlag},
		Action: func(ctx *cli.Context) error {
			if err := checkArgs(ctx, 2); err != nil {
				return err
			}
			p, err := parsePoint(ctx.Args().Get(0), ctx.Args().Get(1))
			if err != nil {
				return err
			}

			enc := p.SerializeUncompressed()
			if ctx.Bool(compressedFlag.Name) {
				enc = p.SerializeCompressed()
			}
			_, err = fmt.Fprintln(ctx.App.Writer, hexutil.Encode(enc))
			return err
		},
	}
}

func (rt *runtime) decodeCommand() *cli.Command {
	return &cli.Command{
		Name:      "decode",
		Usage:     "decode a hex SEC1 point",
		ArgsUsage: "<hex>",
		Action: func(ctx *cli.Context) error {
			if err := checkArgs(ctx, 1); err != nil {
				return err
			}
			b, err := p256.DecodeHex(ctx.Args().First())
			if err != nil {
				return err
			}
			p, err := p256.ParsePoint(b)
			if err != nil {
				return errors.Wrap(err, "decode")
			}
			_, err = fmt.Fprintln(ctx.App.Writer, formatPoint(p, rt.cfg.Output.Format))
			return err
		},
	}
}

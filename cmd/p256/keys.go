package main

import (
	"io"
	"os"
	"strconv"
	"time"

	"github.com/goccy/go-json"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"p256.mleku.dev"
)

// keyPairs is the document written by gen
type keyPairs struct {
	Data []p256.KeyPair `json:"data"`
}

// keygenInfo is the HKDF info of the i-th seed-derived key
func keygenInfo(i int) []byte {
	return []byte("p256 keygen " + strconv.Itoa(i))
}

// generateKeys produces count key pairs using up to workers goroutines. With
// a seed the result is deterministic; otherwise keys come from crypto/rand.
func generateKeys(ctx *cli.Context, count, workers int, seed []byte) ([]p256.KeyPair, error) {
	keys := make([]p256.KeyPair, count)

	g, gctx := errgroup.WithContext(ctx.Context)
	g.SetLimit(workers)
	for i := 0; i < count; i++ {
		if gctx.Err() != nil {
			break
		}
		i := i
		g.Go(func() error {
			var (
				kp  *p256.KeyPair
				err error
			)
			if seed != nil {
				kp, err = p256.ECKeyPairDerive(seed, keygenInfo(i))
			} else {
				kp, err = p256.ECKeyPairGenerate(nil)
			}
			if err != nil {
				return errors.Wrapf(err, "key %d", i)
			}
			keys[i] = *kp
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return keys, nil
}

func writeKeys(w io.Writer, keys []p256.KeyPair) error {
	return json.NewEncoder(w).Encode(keyPairs{Data: keys})
}

func (rt *runtime) genCommand() *cli.Command {
	var (
		countFlag = &cli.IntFlag{
			Name:  "count",
			Usage: "number of key pairs (default from config, 1000)",
		}
		workersFlag = &cli.IntFlag{
			Name:  "workers",
			Usage: "parallel workers (default from config, 4)",
		}
		seedFlag = &cli.StringFlag{
			Name:    "seed",
			Usage:   "derive keys deterministically from this seed",
			EnvVars: []string{"P256_SEED"},
		}
		outFlag = &cli.StringFlag{
			Name:  "out",
			Usage: "output file, - for stdout (default from config, keys.json)",
		}
	)

	return &cli.Command{
		Name:  "gen",
		Usage: "generate key pairs as JSON",
		Flags: []cli.Flag{countFlag, workersFlag, seedFlag, outFlag},
		Action: func(ctx *cli.Context) error {
			if err := checkArgs(ctx, 0); err != nil {
				return err
			}

			cfg := rt.cfg.Gen
			if ctx.IsSet(countFlag.Name) {
				cfg.Count = ctx.Int(countFlag.Name)
			}
			if ctx.IsSet(workersFlag.Name) {
				cfg.Workers = ctx.Int(workersFlag.Name)
			}
			if ctx.IsSet(outFlag.Name) {
				cfg.Out = ctx.String(outFlag.Name)
			}
			if cfg.Count < 0 || cfg.Workers < 1 {
				return errors.Errorf("invalid count %d or workers %d", cfg.Count, cfg.Workers)
			}

			var seed []byte
			if ctx.IsSet(seedFlag.Name) {
				seed = []byte(ctx.String(seedFlag.Name))
				if len(seed) == 0 {
					return errors.New("empty seed")
				}
			}

			start := time.Now()
			keys, err := generateKeys(ctx, cfg.Count, cfg.Workers, seed)
			if err != nil {
				return err
			}
			rt.log.Info("generated keys",
				zap.Int("count", len(keys)),
				zap.Int("workers", cfg.Workers),
				zap.Bool("deterministic", seed != nil),
				zap.Duration("elapsed", time.Since(start)),
			)

			if cfg.Out == "-" {
				return writeKeys(ctx.App.Writer, keys)
			}

			f, err := os.Create(cfg.Out)
			if err != nil {
				return errors.Wrap(err, "creating output")
			}
			if err := writeKeys(f, keys); err != nil {
				f.Close()
				return errors.Wrapf(err, "writing %s", cfg.Out)
			}
			if err := f.Close(); err != nil {
				return errors.Wrapf(err, "closing %s", cfg.Out)
			}
			rt.log.Info("wrote keys", zap.String("path", cfg.Out))
			return nil
		},
	}
}

// p256 performs P-256 point arithmetic and key generation from the command
// line.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	configFlag = &cli.StringFlag{
		Name:    "config",
		Usage:   "TOML configuration file",
		EnvVars: []string{"P256_CONFIG"},
	}
	logLevelFlag = &cli.StringFlag{
		Name:    "log-level",
		Usage:   "log level (debug|info|warn|error)",
		EnvVars: []string{"P256_LOG_LEVEL"},
	}
	logFormatFlag = &cli.StringFlag{
		Name:    "log-format",
		Usage:   "log encoding (console|json)",
		EnvVars: []string{"P256_LOG_FORMAT"},
	}
	outputFlag = &cli.StringFlag{
		Name:    "output",
		Aliases: []string{"o"},
		Usage:   "point output format (xy|sec1|sec1-compressed)",
		EnvVars: []string{"P256_OUTPUT"},
	}
)

// runtime is the state shared by all commands once flags are parsed
type runtime struct {
	cfg Config
	log *zap.Logger
}

func newApp() *cli.App {
	rt := &runtime{cfg: defaultConfig(), log: zap.NewNop()}

	return &cli.App{
		Name:  "p256",
		Usage: "NIST P-256 point arithmetic",
		Flags: []cli.Flag{
			configFlag,
			logLevelFlag,
			logFormatFlag,
			outputFlag,
		},
		Before: rt.setup,
		After: func(*cli.Context) error {
			_ = rt.log.Sync()
			return nil
		},
		Commands: []*cli.Command{
			rt.addCommand(),
			rt.doubleCommand(),
			rt.mulCommand(),
			rt.encodeCommand(),
			rt.decodeCommand(),
			rt.genCommand(),
		},
	}
}

// setup loads the configuration, applies flag overrides and builds the
// logger
func (rt *runtime) setup(ctx *cli.Context) error {
	cfg, err := loadConfig(ctx.String(configFlag.Name))
	if err != nil {
		return err
	}
	if ctx.IsSet(logLevelFlag.Name) {
		cfg.Log.Level = ctx.String(logLevelFlag.Name)
	}
	if ctx.IsSet(logFormatFlag.Name) {
		cfg.Log.Format = ctx.String(logFormatFlag.Name)
	}
	if ctx.IsSet(outputFlag.Name) {
		cfg.Output.Format = ctx.String(outputFlag.Name)
	}
	if err := cfg.validate(); err != nil {
		return err
	}

	logger, err := newLogger(cfg.Log, ctx.App.ErrWriter)
	if err != nil {
		return err
	}

	rt.cfg = cfg
	rt.log = logger
	rt.log.Debug("configuration loaded",
		zap.String("config", ctx.String(configFlag.Name)),
		zap.String("output", cfg.Output.Format),
	)
	return nil
}

func newLogger(cfg LogConfig, w io.Writer) (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return nil, errors.Wrap(err, "log level")
	}
	if w == nil {
		w = os.Stderr
	}

	encCfg := zap.NewProductionEncoderConfig()
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder

	var enc zapcore.Encoder
	switch cfg.Format {
	case "json":
		enc = zapcore.NewJSONEncoder(encCfg)
	default:
		enc = zapcore.NewConsoleEncoder(encCfg)
	}

	core := zapcore.NewCore(enc, zapcore.AddSync(w), level)
	return zap.New(core).Named("p256"), nil
}

func main() {
	if err := newApp().Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

package command

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/unkn0wn-root/twotouch"
	zaplog "github.com/unkn0wn-root/twotouch/log/zap"
	"github.com/unkn0wn-root/twotouch/provider"
)

const envPrefix = "TWOTOUCH"

// app is the state shared by every subcommand of one invocation.
type app struct {
	v        *viper.Viper
	log      *zap.Logger
	codec    *twotouch.Codec
	cached   *twotouch.Cached
	provider provider.Provider
}

// NewRoot builds the command tree. Each call gets its own viper instance
// and flag state, so trees are independent.
func NewRoot() *cobra.Command {
	root, _ := newRoot()
	return root
}

func newRoot() (*cobra.Command, *app) {
	a := &app{v: viper.New()}

	root := &cobra.Command{
		Use:   "twotouch",
		Short: "Convert text to and from pager two-touch codes.",
		Long: "`twotouch` encodes kana, Latin letters, digits and pager slang into two-touch\n" +
			"codes, and decodes code strings back into text.\n\n" +
			"Flags can also be set in a config file (--config) or through TWOTOUCH_* environment\n" +
			"variables, e.g. TWOTOUCH_CACHE=redis.",
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
	}

	registerFlags(root.PersistentFlags())
	_ = a.v.BindPFlags(root.PersistentFlags())
	a.v.SetEnvPrefix(envPrefix)
	a.v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	a.v.AutomaticEnv()

	root.AddCommand(newEncodeCmd(a), newDecodeCmd(a), newTableCmd(a), newPurgeCmd(a))
	return root, a
}

// released wraps a subcommand so teardown runs whether or not it fails.
// cobra skips PersistentPostRunE after a RunE error.
func (a *app) released(run func(*cobra.Command, []string) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		err := run(cmd, args)
		return errors.Join(err, a.teardown(cmd))
	}
}

func registerFlags(fs *pflag.FlagSet) {
	fs.String("config", "", "Path to a config file (yaml, json or toml).")
	fs.String("log-level", "warn", "Log level: debug, info, warn or error.")
	fs.String("format", "text", "Output format: text or json.")
	fs.String("cache", "none", "Result cache: none, ristretto, bigcache or redis.")
	fs.Duration("cache-ttl", 10*time.Minute, "Lifetime of cached results.")
	fs.String("cache-codec", "json", "Encoding of cached candidate lists: json, msgpack, cbor or proto.")
	fs.String("redis-addr", "localhost:6379", "Redis address used by --cache=redis.")
	fs.String("namespace", "twotouch", "Cache namespace.")
}

func (a *app) setup(cmd *cobra.Command, _ []string) error {
	if path := a.v.GetString("config"); path != "" {
		a.v.SetConfigFile(path)
		if err := a.v.ReadInConfig(); err != nil {
			return fmt.Errorf("read config %s: %w", path, err)
		}
	}

	switch f := a.v.GetString("format"); f {
	case "text", "json":
	default:
		return fmt.Errorf("unknown format %q", f)
	}

	l, err := newLogger(a.v.GetString("log-level"))
	if err != nil {
		return err
	}
	a.log = l
	a.codec = twotouch.New(twotouch.Options{Logger: zaplog.ZapLogger{L: l}})

	c, err := a.newCached(cmd.Context())
	if err != nil {
		return err
	}
	a.cached = c
	return nil
}

func (a *app) teardown(cmd *cobra.Command) error {
	var errs []error
	if a.cached != nil {
		errs = append(errs, a.cached.Close(cmd.Context()))
	}
	if a.log != nil {
		_ = a.log.Sync()
	}
	return errors.Join(errs...)
}

func newLogger(level string) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, err
	}
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	cfg.Encoding = "console"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	cfg.OutputPaths = []string{"stderr"}
	return cfg.Build()
}

func (a *app) encode(ctx context.Context, text string) ([]string, error) {
	if a.cached != nil {
		return a.cached.EncodeContext(ctx, text)
	}
	return a.codec.Encode(text)
}

func (a *app) decode(ctx context.Context, code string) (string, error) {
	if a.cached != nil {
		return a.cached.DecodeContext(ctx, code)
	}
	return a.codec.Decode(code)
}

func (a *app) jsonOutput() bool { return a.v.GetString("format") == "json" }

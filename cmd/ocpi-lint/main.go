// Command ocpi-lint validates OCPI 2.2.1 payload files against the module
// data contracts.
//
//	ocpi-lint -kind location [-lang de] [-output json] files...
//
// Exit status is 0 when every file is valid, 1 when a file is invalid or
// cannot be decoded, and 2 for usage or configuration errors.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/dmitrymomot/ocpi"
	"github.com/dmitrymomot/ocpi/pkg/config"
	"github.com/dmitrymomot/ocpi/pkg/environment"
	"github.com/dmitrymomot/ocpi/pkg/i18n"
	"github.com/dmitrymomot/ocpi/pkg/logger"
	"github.com/dmitrymomot/ocpi/pkg/payload"
	"github.com/dmitrymomot/ocpi/pkg/validator"
)

const (
	exitOK      = 0
	exitInvalid = 1
	exitUsage   = 2
)

const serviceName = "ocpi-lint"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

type options struct {
	kind      string
	lang      string
	output    string
	envFile   string
	listKinds bool
	paths     []string
}

func parseFlags(args []string, errOut io.Writer) (options, error) {
	var o options
	fs := flag.NewFlagSet(serviceName, flag.ContinueOnError)
	fs.SetOutput(errOut)
	fs.StringVar(&o.kind, "kind", "", "object kind, see -list-kinds")
	fs.StringVar(&o.lang, "lang", "", "message language (default $OCPI_LINT_LANG)")
	fs.StringVar(&o.output, "output", "text", "report format: text or json")
	fs.StringVar(&o.envFile, "env-file", "", "load variables from this file first")
	fs.BoolVar(&o.listKinds, "list-kinds", false, "print the supported kinds and exit")
	fs.Usage = func() {
		fmt.Fprintf(errOut, "usage: %s -kind <kind> [flags] files...\n\n", serviceName)
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return o, err
	}
	o.paths = fs.Args()

	switch {
	case o.listKinds:
		return o, nil
	case o.kind == "":
		return o, errors.New("-kind is required")
	case len(o.paths) == 0:
		return o, errors.New("no files given")
	case o.output != "text" && o.output != "json":
		return o, fmt.Errorf("-output must be text or json, got %q", o.output)
	}
	return o, nil
}

func loadConfig(envFile string) (Config, error) {
	if envFile != "" {
		if err := config.LoadEnv(envFile); err != nil {
			return Config{}, err
		}
	}

	var cfg Config
	if err := config.Load(&cfg); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func newLogger(cfg Config, out io.Writer) (*slog.Logger, error) {
	level, err := logger.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, err
	}
	format, err := logger.ParseFormat(cfg.LogFormat)
	if err != nil {
		return nil, err
	}

	return logger.New(
		logger.WithEnvironment(cfg.Env, serviceName),
		logger.WithLevel(level),
		logger.WithFormat(format),
		logger.WithOutput(out),
		logger.WithContextExtractors(func(ctx context.Context) (slog.Attr, bool) {
			id := ocpi.CorrelationIDFromContext(ctx)
			return slog.String("correlation_id", id), id != ""
		}),
	), nil
}

func run(ctx context.Context, args []string, out, errOut io.Writer) int {
	opts, err := parseFlags(args, errOut)
	if err != nil {
		if !errors.Is(err, flag.ErrHelp) {
			fmt.Fprintf(errOut, "%s: %v\n", serviceName, err)
		}
		return exitUsage
	}

	if opts.listKinds {
		for _, k := range payload.Kinds() {
			fmt.Fprintf(out, "%-32s %s\n", k.Name, k.Module)
		}
		return exitOK
	}

	kind, ok := payload.Lookup(opts.kind)
	if !ok {
		fmt.Fprintf(errOut, "%s: unknown kind %q, known kinds: %s\n",
			serviceName, opts.kind, strings.Join(payload.Names(), ", "))
		return exitUsage
	}

	cfg, err := loadConfig(opts.envFile)
	if err != nil {
		printConfigError(errOut, err)
		return exitUsage
	}

	log, err := newLogger(cfg, errOut)
	if err != nil {
		fmt.Fprintf(errOut, "%s: %v\n", serviceName, err)
		return exitUsage
	}

	ctx = environment.WithContext(ctx, cfg.Env)
	ctx = ocpi.WithCorrelationID(ctx, ocpi.NewCorrelationID())

	tr, err := i18n.NewDefaultTranslator(ctx, i18n.WithLogger(log))
	if err != nil {
		log.ErrorContext(ctx, "translations unavailable", logger.Error(err))
		return exitUsage
	}

	lang := opts.lang
	if lang == "" {
		lang = cfg.Lang
	}
	lang = tr.Match(lang)

	runner := payload.NewRunner(kind,
		payload.WithConcurrency(cfg.Concurrency),
		payload.WithStrictDecoding(cfg.Strict),
		payload.WithTranslator(tr, lang),
		payload.WithRunnerLogger(log),
	)

	log.DebugContext(ctx, "lint started",
		logger.Kind(kind.Name),
		logger.Lang(lang),
		logger.Count(len(opts.paths)))

	report, err := runner.Run(ctx, opts.paths)
	if err != nil {
		log.ErrorContext(ctx, "lint aborted", logger.Error(err))
		return exitInvalid
	}

	if opts.output == "json" {
		err = report.WriteJSON(out)
	} else {
		err = report.WriteText(out)
	}
	if err != nil {
		log.ErrorContext(ctx, "report not written", logger.Error(err))
		return exitInvalid
	}

	if !report.OK() {
		return exitInvalid
	}
	return exitOK
}

func printConfigError(w io.Writer, err error) {
	if verrs := validator.ExtractValidationErrors(err); verrs != nil {
		for _, e := range verrs {
			fmt.Fprintf(w, "%s: config: %s %s\n", serviceName, e.Field, e.Message)
		}
		return
	}
	fmt.Fprintf(w, "%s: config: %v\n", serviceName, err)
}

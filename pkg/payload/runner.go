package payload

import (
	"context"
	"errors"
	"io/fs"
	"log/slog"
	"os"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/dmitrymomot/ocpi/pkg/logger"
	"github.com/dmitrymomot/ocpi/pkg/validator"
)

// DefaultConcurrency is the number of files checked in parallel.
const DefaultConcurrency = 4

// Translator renders validation errors in a language. *i18n.Translator
// implements it.
type Translator interface {
	TranslateErrors(lang string, errs validator.ValidationErrors) map[string][]string
}

// Runner validates payload files of one kind.
type Runner struct {
	kind        Kind
	concurrency int
	strict      bool
	lang        string
	translator  Translator
	logger      *slog.Logger
	readFile    func(name string) ([]byte, error)
	now         func() time.Time
}

// RunnerOption configures a Runner.
type RunnerOption func(*Runner)

// WithConcurrency bounds the files processed at once; values below 1 are
// ignored.
func WithConcurrency(n int) RunnerOption {
	return func(r *Runner) {
		if n > 0 {
			r.concurrency = n
		}
	}
}

// WithStrictDecoding toggles rejection of unknown JSON fields.
func WithStrictDecoding(strict bool) RunnerOption {
	return func(r *Runner) {
		r.strict = strict
	}
}

// WithTranslator renders messages in lang instead of the built-in English.
func WithTranslator(t Translator, lang string) RunnerOption {
	return func(r *Runner) {
		if t != nil {
			r.translator = t
			r.lang = lang
		}
	}
}

func WithRunnerLogger(l *slog.Logger) RunnerOption {
	return func(r *Runner) {
		if l != nil {
			r.logger = l
		}
	}
}

// WithFS reads files from fsys instead of the operating system.
func WithFS(fsys fs.FS) RunnerOption {
	return func(r *Runner) {
		if fsys != nil {
			r.readFile = func(name string) ([]byte, error) { return fs.ReadFile(fsys, name) }
		}
	}
}

func NewRunner(kind Kind, opts ...RunnerOption) *Runner {
	r := &Runner{
		kind:        kind,
		concurrency: DefaultConcurrency,
		strict:      true,
		logger:      logger.Discard(),
		readFile:    os.ReadFile,
		now:         time.Now,
	}
	for _, opt := range opts {
		opt(r)
	}
	r.logger = r.logger.With(logger.Component("payload.runner"), logger.Kind(kind.Name))
	return r
}

// Run checks every path and returns results in input order. Problems with
// individual files are recorded in the report; the error is only set when
// ctx is done before all files were processed, and skipped files then carry
// the context error.
func (r *Runner) Run(ctx context.Context, paths []string) (Report, error) {
	start := r.now()
	results := make([]FileResult, len(paths))
	for i, path := range paths {
		results[i].Path = path
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(r.concurrency)

	for i, path := range paths {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				results[i].Err = err
				return err
			}
			results[i] = r.check(ctx, path)
			return nil
		})
	}

	err := g.Wait()
	report := Report{Kind: r.kind.Name, Files: results, Duration: r.now().Sub(start)}
	if err != nil {
		r.logger.WarnContext(ctx, "run interrupted", logger.Error(err))
		return report, err
	}

	r.logger.InfoContext(ctx, "run finished",
		logger.Count(len(paths)),
		slog.Int("invalid", report.Invalid()),
		slog.Int("failed", report.Failed()),
		logger.Duration(report.Duration))
	return report, nil
}

func (r *Runner) check(ctx context.Context, path string) FileResult {
	res := FileResult{Path: path}
	log := r.logger.With(logger.File(path))

	format, err := FormatFromPath(path)
	if err != nil {
		res.Err = err
		log.WarnContext(ctx, "file skipped", logger.Error(err))
		return res
	}
	res.Format = format

	data, err := r.readFile(path)
	if err != nil {
		res.Err = errors.Join(ErrReadFile, err)
		log.WarnContext(ctx, "file not readable", logger.Error(err))
		return res
	}

	doc, verrs, err := Validate(r.kind, data, WithFormat(format), WithStrict(r.strict))
	if err != nil {
		res.Err = err
		log.WarnContext(ctx, "file not decodable", logger.Error(err))
		return res
	}

	res.Shape = doc.Shape
	res.Objects = len(doc.Objects)
	res.Violations = verrs
	res.Messages = r.messages(verrs)

	if len(verrs) > 0 {
		log.InfoContext(ctx, "file invalid", logger.Count(len(verrs)))
	} else {
		log.DebugContext(ctx, "file valid", slog.Int("objects", res.Objects))
	}
	return res
}

func (r *Runner) messages(verrs validator.ValidationErrors) map[string][]string {
	if len(verrs) == 0 {
		return nil
	}
	if r.translator == nil {
		return verrs.Map()
	}
	return r.translator.TranslateErrors(r.lang, verrs)
}

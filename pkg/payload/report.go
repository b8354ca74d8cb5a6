package payload

import (
	"encoding/json"
	"fmt"
	"io"
	"slices"
	"time"

	"github.com/dmitrymomot/ocpi/pkg/validator"
)

// Status is the outcome of checking one file.
type Status string

const (
	StatusValid   Status = "valid"
	StatusInvalid Status = "invalid"
	StatusFailed  Status = "failed"
)

// FileResult is the outcome for one file.
type FileResult struct {
	Path       string
	Format     Format
	Shape      Shape
	Objects    int
	Violations validator.ValidationErrors
	// Messages holds the translated violations by field path.
	Messages   map[string][]string
	// Err is set when the file could not be read or decoded.
	Err        error
}

func (f FileResult) Status() Status {
	switch {
	case f.Err != nil:
		return StatusFailed
	case len(f.Violations) > 0:
		return StatusInvalid
	default:
		return StatusValid
	}
}

// Report collects the results of a run in input order.
type Report struct {
	Kind     string
	Files    []FileResult
	Duration time.Duration
}

func (r Report) count(s Status) int {
	n := 0
	for _, f := range r.Files {
		if f.Status() == s {
			n++
		}
	}
	return n
}

func (r Report) Valid() int   { return r.count(StatusValid) }
func (r Report) Invalid() int { return r.count(StatusInvalid) }
func (r Report) Failed() int  { return r.count(StatusFailed) }

// OK reports whether every file is valid.
func (r Report) OK() bool {
	return r.Valid() == len(r.Files)
}

// WriteText prints one block per file with fields in sorted order.
func (r Report) WriteText(w io.Writer) error {
	p := &errWriter{w: w}
	for _, f := range r.Files {
		switch f.Status() {
		case StatusFailed:
			p.printf("FAIL  %s: %v\n", f.Path, f.Err)
		case StatusInvalid:
			p.printf("INVALID  %s (%s, %d %s)\n", f.Path, f.Shape, f.Objects, plural(f.Objects, "object"))
			for _, field := range sortedKeys(f.Messages) {
				for _, msg := range f.Messages[field] {
					p.printf("  %s: %s\n", field, msg)
				}
			}
		default:
			p.printf("OK  %s (%s, %d %s)\n", f.Path, f.Shape, f.Objects, plural(f.Objects, "object"))
		}
	}
	p.printf("\n%d %s checked as %s: %d valid, %d invalid, %d failed\n",
		len(r.Files), plural(len(r.Files), "file"), r.Kind, r.Valid(), r.Invalid(), r.Failed())
	return p.err
}

type jsonFile struct {
	Path    string              `json:"path"`
	Status  Status              `json:"status"`
	Shape   Shape               `json:"shape,omitempty"`
	Objects int                 `json:"objects"`
	Errors  map[string][]string `json:"errors,omitempty"`
	Error   string              `json:"error,omitempty"`
}

type jsonReport struct {
	Kind    string     `json:"kind"`
	Files   []jsonFile `json:"files"`
	Valid   int        `json:"valid"`
	Invalid int        `json:"invalid"`
	Failed  int        `json:"failed"`
}

// WriteJSON prints the report as one indented JSON document.
func (r Report) WriteJSON(w io.Writer) error {
	out := jsonReport{
		Kind:    r.Kind,
		Files:   make([]jsonFile, 0, len(r.Files)),
		Valid:   r.Valid(),
		Invalid: r.Invalid(),
		Failed:  r.Failed(),
	}
	for _, f := range r.Files {
		jf := jsonFile{
			Path:    f.Path,
			Status:  f.Status(),
			Shape:   f.Shape,
			Objects: f.Objects,
			Errors:  f.Messages,
		}
		if f.Err != nil {
			jf.Error = f.Err.Error()
		}
		out.Files = append(out.Files, jf)
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

type errWriter struct {
	w   io.Writer
	err error
}

func (p *errWriter) printf(format string, args ...any) {
	if p.err == nil {
		_, p.err = fmt.Fprintf(p.w, format, args...)
	}
}

func sortedKeys(m map[string][]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

func plural(n int, word string) string {
	if n == 1 {
		return word
	}
	return word + "s"
}

package logger

import (
	"log/slog"
	"strconv"
	"time"
)

// Group creates a slog group attribute from the provided attributes.
func Group(name string, attrs ...slog.Attr) slog.Attr {
	return slog.Attr{Key: name, Value: slog.GroupValue(attrs...)}
}

// Error records err under "error"; nil yields an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// Errors groups the non-nil errors under "errors", keyed by position.
func Errors(errs ...error) slog.Attr {
	as := make([]slog.Attr, 0, len(errs))
	for i, err := range errs {
		if err != nil {
			as = append(as, slog.Any(strconv.Itoa(i), err))
		}
	}
	if len(as) == 0 {
		return slog.Attr{}
	}
	return slog.Attr{Key: "errors", Value: slog.GroupValue(as...)}
}

func Component(name string) slog.Attr {
	return slog.String("component", name)
}

// File records the path of the payload being processed.
func File(path string) slog.Attr {
	return slog.String("file", path)
}

// Kind records the OCPI object kind, e.g. "location" or "cdr".
func Kind(kind string) slog.Attr {
	return slog.String("kind", kind)
}

// Object records the position of an object inside a list payload.
func Object(index int) slog.Attr {
	return slog.Int("object", index)
}

// Field records a wire field path such as "evses[0].uid".
func Field(path string) slog.Attr {
	return slog.String("field", path)
}

func Lang(lang string) slog.Attr {
	return slog.String("lang", lang)
}

func Count(n int) slog.Attr {
	return slog.Int("count", n)
}

func Duration(d time.Duration) slog.Attr {
	return slog.Duration("duration", d)
}

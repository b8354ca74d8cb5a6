package i18n

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"path"
	"strings"

	"gopkg.in/yaml.v3"
)

// Catalogs maps a language code to its nested translation tree.
type Catalogs map[string]map[string]any

// Parser turns file content into catalogs. The top-level keys of a document
// are language codes.
type Parser interface {
	Parse(ctx context.Context, content []byte) (Catalogs, error)
	SupportsFileExtension(ext string) bool
}

// ParserForFile picks a parser by file extension; nil when none fits.
func ParserForFile(filename string) Parser {
	ext := strings.TrimPrefix(path.Ext(filename), ".")
	for _, p := range []Parser{YAMLParser{}, JSONParser{}} {
		if p.SupportsFileExtension(ext) {
			return p
		}
	}
	return nil
}

// YAMLParser reads catalogs written in YAML.
type YAMLParser struct{}

func (YAMLParser) Parse(ctx context.Context, content []byte) (Catalogs, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.Join(ErrParsingCancelled, err)
	}

	var doc map[string]any
	if err := yaml.Unmarshal(content, &doc); err != nil {
		return nil, errors.Join(ErrFailedToParseYAML, err)
	}
	return toCatalogs(doc)
}

func (YAMLParser) SupportsFileExtension(ext string) bool {
	ext = strings.TrimPrefix(ext, ".")
	return strings.EqualFold(ext, "yaml") || strings.EqualFold(ext, "yml")
}

// JSONParser reads catalogs written in JSON.
type JSONParser struct{}

func (JSONParser) Parse(ctx context.Context, content []byte) (Catalogs, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.Join(ErrParsingCancelled, err)
	}

	var doc map[string]any
	if err := json.Unmarshal(content, &doc); err != nil {
		return nil, errors.Join(ErrFailedToParseJSON, err)
	}
	return toCatalogs(doc)
}

func (JSONParser) SupportsFileExtension(ext string) bool {
	return strings.EqualFold(strings.TrimPrefix(ext, "."), "json")
}

func toCatalogs(doc map[string]any) (Catalogs, error) {
	if len(doc) == 0 {
		return nil, ErrNoTranslations
	}

	out := make(Catalogs, len(doc))
	for lang, v := range doc {
		tree, ok := v.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("%w: language %q holds %T, expected a map", ErrInvalidCatalog, lang, v)
		}
		out[lang] = tree
	}
	return out, nil
}

package payload

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/ocpi"
	"github.com/dmitrymomot/ocpi/pkg/validator"
)

// Format is the encoding of a document.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// FormatFromPath picks the format by file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	}
	return "", fmt.Errorf("%w: %s", ErrUnsupportedFormat, path)
}

// Shape tells how the objects were wrapped in the document.
type Shape string

const (
	ShapeObject   Shape = "object"
	ShapeList     Shape = "list"
	ShapeEnvelope Shape = "envelope"
)

// Document is a decoded payload.
type Document struct {
	Kind     Kind
	Shape    Shape
	// Envelope is set for ShapeEnvelope; its Data stays raw.
	Envelope *ocpi.Response[json.RawMessage]
	Objects  []validator.Validatable
	// List reports whether the objects came from a JSON array, so field
	// paths carry an index even for a single element.
	List     bool
}

// Validate checks the envelope and every object. Field paths are rooted the
// way the document nests them: "data[1].uid" inside an envelope, "[1].uid"
// for a bare list and "uid" for a single object.
func (d Document) Validate() validator.ValidationErrors {
	var errs []error
	root := ""
	if d.Envelope != nil {
		errs = append(errs, d.Envelope.Validate())
		root = "data"
	}

	switch {
	case d.List:
		errs = append(errs, validator.NestedEach(root, d.Objects))
	case len(d.Objects) == 1 && root != "":
		errs = append(errs, validator.Nested(root, d.Objects[0]))
	case len(d.Objects) == 1:
		errs = append(errs, d.Objects[0].Validate())
	}

	return validator.ExtractValidationErrors(validator.Join(errs...))
}

type decodeOptions struct {
	format Format
	strict bool
}

// DecodeOption configures Decode.
type DecodeOption func(*decodeOptions)

// WithFormat sets the document format; JSON by default.
func WithFormat(f Format) DecodeOption {
	return func(o *decodeOptions) {
		if f != "" {
			o.format = f
		}
	}
}

// WithStrict toggles rejection of unknown fields; on by default.
func WithStrict(strict bool) DecodeOption {
	return func(o *decodeOptions) {
		o.strict = strict
	}
}

// Decode parses data as a document of the given kind. YAML is converted to
// JSON first, so both formats follow the same json tags and strictness.
func Decode(kind Kind, data []byte, opts ...DecodeOption) (Document, error) {
	if kind.new == nil {
		return Document{}, ErrUnknownKind
	}

	o := decodeOptions{format: FormatJSON, strict: true}
	for _, opt := range opts {
		opt(&o)
	}

	switch o.format {
	case FormatJSON:
	case FormatYAML:
		converted, err := yamlToJSON(data)
		if err != nil {
			return Document{}, err
		}
		data = converted
	default:
		return Document{}, fmt.Errorf("%w: %q", ErrUnsupportedFormat, o.format)
	}

	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return Document{}, ErrEmptyPayload
	}

	doc := Document{Kind: kind, Shape: ShapeObject}

	if data[0] == '{' && isEnvelope(data) {
		var env ocpi.Response[json.RawMessage]
		if err := decodeJSON(data, &env, o.strict); err != nil {
			return Document{}, err
		}
		doc.Shape = ShapeEnvelope
		doc.Envelope = &env
		data = bytes.TrimSpace(env.Data)
		if len(data) == 0 || bytes.Equal(data, []byte("null")) {
			return doc, nil
		}
	}

	if data[0] == '[' {
		var items []json.RawMessage
		if err := decodeJSON(data, &items, o.strict); err != nil {
			return Document{}, err
		}
		if doc.Shape == ShapeObject {
			doc.Shape = ShapeList
		}
		doc.List = true
		doc.Objects = make([]validator.Validatable, 0, len(items))
		for i, item := range items {
			obj := kind.New()
			if err := decodeJSON(item, obj, o.strict); err != nil {
				return Document{}, fmt.Errorf("item %d: %w", i, err)
			}
			doc.Objects = append(doc.Objects, obj)
		}
		return doc, nil
	}

	obj := kind.New()
	if err := decodeJSON(data, obj, o.strict); err != nil {
		return Document{}, err
	}
	doc.Objects = []validator.Validatable{obj}
	return doc, nil
}

// Validate decodes data and validates the result. The error is non-nil only
// for documents that could not be decoded.
func Validate(kind Kind, data []byte, opts ...DecodeOption) (Document, validator.ValidationErrors, error) {
	doc, err := Decode(kind, data, opts...)
	if err != nil {
		return Document{}, nil, err
	}
	return doc, doc.Validate(), nil
}

// isEnvelope reports whether a JSON object carries the response envelope
// keys. Decoding errors are left for the strict decoder to report.
func isEnvelope(data []byte) bool {
	var probe map[string]json.RawMessage
	if err := json.Unmarshal(data, &probe); err != nil {
		return false
	}
	_, hasStatus := probe["status_code"]
	_, hasTimestamp := probe["timestamp"]
	return hasStatus && hasTimestamp
}

func decodeJSON(data []byte, v any, strict bool) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	if strict {
		dec.DisallowUnknownFields()
	}

	if err := dec.Decode(v); err != nil {
		if errors.Is(err, io.EOF) {
			return fmt.Errorf("%w: empty document", ErrInvalidJSON)
		}
		return fmt.Errorf("%w: %v", ErrInvalidJSON, err)
	}

	var extra json.RawMessage
	if err := dec.Decode(&extra); !errors.Is(err, io.EOF) {
		return fmt.Errorf("%w: unexpected data after JSON value", ErrInvalidJSON)
	}
	return nil
}

func yamlToJSON(data []byte) ([]byte, error) {
	var tree any
	if err := yaml.Unmarshal(data, &tree); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidYAML, err)
	}
	if tree == nil {
		return nil, ErrEmptyPayload
	}
	out, err := json.Marshal(tree)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidYAML, err)
	}
	return out, nil
}

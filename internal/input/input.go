// Package input decodes the YAML and JSON documents the CLI reads and
// validates them against embedded JSON Schemas before typing them.
package input

import (
	"bytes"
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/xeipuuv/gojsonschema"
	"gopkg.in/yaml.v3"
)

var (
	ErrUnsupportedFormat = errors.New("unsupported input format")
	ErrSchemaViolation   = errors.New("document does not match schema")
)

// Format is a document encoding.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

// FormatFromPath picks the encoding from a file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".json":
		return FormatJSON, nil
	}
	return "", fmt.Errorf("%s: %w", path, ErrUnsupportedFormat)
}

// Kind names a document shape. Each kind has an embedded schema.
type Kind string

const (
	KindFacility   Kind = "facility"
	KindFacilities Kind = "facilities"
	KindChild      Kind = "child"
	KindNBAContext Kind = "nba_context"
	KindHistory    Kind = "history"
)

// ValidationError lists every schema failure for one document.
type ValidationError struct {
	Kind     Kind
	Problems []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s document: %s", e.Kind, strings.Join(e.Problems, "; "))
}

func (e *ValidationError) Unwrap() error {
	return ErrSchemaViolation
}

//go:embed schemas/*.json
var schemaFS embed.FS

// shared are referenced by $id from the top-level schemas.
var shared = []Kind{KindFacility, KindChild}

var (
	compileOnce sync.Once
	compiled    map[Kind]*gojsonschema.Schema
	compileErr  error
)

func schemaFor(kind Kind) (*gojsonschema.Schema, error) {
	compileOnce.Do(func() {
		compiled, compileErr = compileSchemas()
	})
	if compileErr != nil {
		return nil, compileErr
	}
	s, ok := compiled[kind]
	if !ok {
		return nil, fmt.Errorf("no schema for %q", kind)
	}
	return s, nil
}

func compileSchemas() (map[Kind]*gojsonschema.Schema, error) {
	read := func(kind Kind) (gojsonschema.JSONLoader, error) {
		raw, err := schemaFS.ReadFile("schemas/" + string(kind) + ".json")
		if err != nil {
			return nil, fmt.Errorf("read %s schema: %w", kind, err)
		}
		return gojsonschema.NewBytesLoader(raw), nil
	}

	out := make(map[Kind]*gojsonschema.Schema)
	for _, kind := range []Kind{KindFacility, KindFacilities, KindChild, KindNBAContext, KindHistory} {
		sl := gojsonschema.NewSchemaLoader()
		for _, dep := range shared {
			if dep == kind {
				continue
			}
			l, err := read(dep)
			if err != nil {
				return nil, err
			}
			if err := sl.AddSchemas(l); err != nil {
				return nil, fmt.Errorf("add %s schema: %w", dep, err)
			}
		}
		l, err := read(kind)
		if err != nil {
			return nil, err
		}
		s, err := sl.Compile(l)
		if err != nil {
			return nil, fmt.Errorf("compile %s schema: %w", kind, err)
		}
		out[kind] = s
	}
	return out, nil
}

// Validate checks an already-decoded generic document against kind's
// schema.
func Validate(kind Kind, doc any) error {
	s, err := schemaFor(kind)
	if err != nil {
		return err
	}
	result, err := s.Validate(gojsonschema.NewGoLoader(doc))
	if err != nil {
		return fmt.Errorf("validate %s: %w", kind, err)
	}
	if result.Valid() {
		return nil
	}
	problems := make([]string, len(result.Errors()))
	for i, desc := range result.Errors() {
		problems[i] = desc.String()
	}
	return &ValidationError{Kind: kind, Problems: problems}
}

// Decode validates data as a kind document and decodes it into out.
func Decode(data []byte, format Format, kind Kind, out any) error {
	var (
		generic any
		err     error
	)
	switch format {
	case FormatYAML:
		err = yaml.Unmarshal(data, &generic)
	case FormatJSON:
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.UseNumber()
		err = dec.Decode(&generic)
	default:
		return fmt.Errorf("%q: %w", format, ErrUnsupportedFormat)
	}
	if err != nil {
		return fmt.Errorf("parse %s: %w", kind, err)
	}

	if err := Validate(kind, generic); err != nil {
		return err
	}

	switch format {
	case FormatYAML:
		err = yaml.Unmarshal(data, out)
	default:
		err = json.Unmarshal(data, out)
	}
	if err != nil {
		return fmt.Errorf("decode %s: %w", kind, err)
	}
	return nil
}

// DecodeFile reads path and decodes it with the encoding its extension
// names.
func DecodeFile(path string, kind Kind, out any) error {
	format, err := FormatFromPath(path)
	if err != nil {
		return err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}
	if err := Decode(data, format, kind, out); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	return nil
}

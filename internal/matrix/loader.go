package matrix

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"matrix-normalizer/internal/common"
	"matrix-normalizer/internal/document"
)

// Format is a build-matrix file format.
type Format int

const (
	FormatJSON Format = iota
	FormatYAML
	FormatHCL
)

// String returns the lower-case format name.
func (f Format) String() string {
	switch f {
	case FormatJSON:
		return "json"
	case FormatYAML:
		return "yaml"
	case FormatHCL:
		return "hcl"
	default:
		return common.UnknownStr
	}
}

// FormatFromPath picks a format from the file extension. Anything that is
// not YAML or HCL is treated as JSON.
func FormatFromPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	case ".hcl":
		return FormatHCL
	default:
		return FormatJSON
	}
}

// LoadFile reads and parses the build matrix at path.
func LoadFile(path string) ([]Entry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, ioError(path, err)
	}

	return Parse(data, FormatFromPath(path), path)
}

// Parse decodes data in the given format and extracts its entries.
// filename is used in error messages only.
func Parse(data []byte, format Format, filename string) ([]Entry, error) {
	var (
		doc any
		err error
	)

	switch format {
	case FormatYAML:
		doc, err = document.DecodeYAML(data)
	case FormatHCL:
		doc, err = document.DecodeHCL(data, filename, MatrixKey, OSKey)
	default:
		doc, err = document.DecodeJSON(data)
	}

	if err != nil {
		return nil, parseError(filename, err)
	}

	entries, err := FromDocument(doc)
	if err != nil {
		var cfgErr *ConfigError
		if errors.As(err, &cfgErr) && cfgErr.Path == "" {
			cfgErr.Path = filename
		}

		return nil, err
	}

	return entries, nil
}

// FromDocument extracts the entries of a decoded build-matrix document.
func FromDocument(doc any) ([]Entry, error) {
	root, ok := doc.(*document.Object)
	if !ok {
		return nil, SchemaError("top-level value must be an object")
	}

	raw, ok := root.Get(MatrixKey)
	if !ok {
		return nil, SchemaError("missing required key %q", MatrixKey)
	}

	list, ok := raw.([]any)
	if !ok {
		return nil, SchemaError("%q must be a list", MatrixKey)
	}

	entries := make([]Entry, 0, len(list))

	for i, item := range list {
		entry, err := parseEntry(item)
		if err != nil {
			return nil, SchemaError("%s[%d]: %s", MatrixKey, i, err.Message)
		}

		entries = append(entries, entry)
	}

	return entries, nil
}

// parseEntry accepts {"os": ..., "builds": [...], ...} or
// ["os", {"builds": [...], ...}].
func parseEntry(item any) (Entry, *ConfigError) {
	var (
		osName   string
		settings *document.Object
	)

	switch v := item.(type) {
	case *document.Object:
		raw, ok := v.Get(OSKey)
		if !ok {
			return Entry{}, SchemaError("missing required field %q", OSKey)
		}

		name, ok := raw.(string)
		if !ok {
			return Entry{}, SchemaError("field %q must be a string", OSKey)
		}

		osName, settings = name, v.Without(OSKey)

	case []any:
		if len(v) != 2 {
			return Entry{}, SchemaError("pair entry must have 2 elements, got %d", len(v))
		}

		first, second := common.Unpack2(v)

		name, ok := first.(string)
		if !ok {
			return Entry{}, SchemaError("pair entry must start with the operating system name")
		}

		obj, ok := second.(*document.Object)
		if !ok {
			return Entry{}, SchemaError("pair entry for %q must end with a settings object", name)
		}

		osName, settings = name, obj

	default:
		return Entry{}, SchemaError("entry must be an object or an [os, settings] pair")
	}

	builds, err := parseBuilds(settings)
	if err != nil {
		return Entry{}, SchemaError("%s: %s", osName, err.Message)
	}

	return Entry{OS: osName, Builds: builds, Settings: settings}, nil
}

func parseBuilds(settings *document.Object) ([]Build, *ConfigError) {
	raw, ok := settings.Get(BuildsKey)
	if !ok {
		return nil, SchemaError("missing required field %q", BuildsKey)
	}

	list, ok := raw.([]any)
	if !ok {
		return nil, SchemaError("field %q must be a list", BuildsKey)
	}

	builds := make([]Build, 0, len(list))

	for i, item := range list {
		switch v := item.(type) {
		case string:
			builds = append(builds, Build{Value: v, Type: v})

		case *document.Object:
			name, _ := v.Get(BuildNameKey)

			typ, ok := name.(string)
			if !ok {
				return nil, SchemaError("%s[%d]: build object needs a string %q field", BuildsKey, i, BuildNameKey)
			}

			builds = append(builds, Build{Value: v, Type: typ})

		default:
			return nil, SchemaError("%s[%d]: build must be a string or an object", BuildsKey, i)
		}
	}

	return builds, nil
}

// Marshal serializes triples in the given format. HCL output is not
// supported and falls back to JSON.
func Marshal(triples []Triple, format Format) ([]byte, error) {
	rows := Rows(triples)

	if format == FormatYAML {
		return document.EncodeYAML(rows)
	}

	return document.EncodeJSON(rows)
}

// WriteFile serializes triples into path, choosing the format from its
// extension. The data is written to a temporary file in the same directory
// and renamed into place, so path is either fully written or left untouched.
func WriteFile(path string, triples []Triple) error {
	data, err := Marshal(triples, FormatFromPath(path))
	if err != nil {
		return &ConfigError{Kind: KindIO, Path: path, Message: "failed to encode output", Err: err}
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return ioError(path, err)
	}

	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return ioError(path, err)
	}

	if err := tmp.Close(); err != nil {
		return ioError(path, err)
	}

	if err := os.Chmod(tmpName, 0o644); err != nil {
		return ioError(path, err)
	}

	if err := os.Rename(tmpName, path); err != nil {
		return ioError(path, fmt.Errorf("failed to move output into place: %w", err))
	}

	return nil
}

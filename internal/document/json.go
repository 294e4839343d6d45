package document

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
)

// DecodeJSON parses a single JSON value. Objects become *Object with their
// keys in document order and numbers are kept as json.Number.
func DecodeJSON(data []byte) (any, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	v, err := decodeJSONValue(dec)
	if err != nil {
		return nil, err
	}

	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("unexpected data after top-level value at offset %d", dec.InputOffset())
	}

	return v, nil
}

func decodeJSONValue(dec *json.Decoder) (any, error) {
	tok, err := nextToken(dec)
	if err != nil {
		return nil, err
	}

	delim, ok := tok.(json.Delim)
	if !ok {
		return tok, nil
	}

	switch delim {
	case '{':
		obj := NewObject()

		for dec.More() {
			keyTok, err := nextToken(dec)
			if err != nil {
				return nil, err
			}

			key, ok := keyTok.(string)
			if !ok {
				return nil, fmt.Errorf("expected object key at offset %d, got %v", dec.InputOffset(), keyTok)
			}

			val, err := decodeJSONValue(dec)
			if err != nil {
				return nil, err
			}

			obj.Set(key, val)
		}

		if _, err := nextToken(dec); err != nil {
			return nil, err
		}

		return obj, nil

	case '[':
		list := make([]any, 0)

		for dec.More() {
			val, err := decodeJSONValue(dec)
			if err != nil {
				return nil, err
			}

			list = append(list, val)
		}

		if _, err := nextToken(dec); err != nil {
			return nil, err
		}

		return list, nil

	default:
		return nil, fmt.Errorf("unexpected delimiter %q at offset %d", delim, dec.InputOffset())
	}
}

// nextToken reads a token inside a value, where running out of input is an
// unexpected EOF.
func nextToken(dec *json.Decoder) (json.Token, error) {
	tok, err := dec.Token()
	if errors.Is(err, io.EOF) {
		return nil, io.ErrUnexpectedEOF
	}

	return tok, err
}

// MarshalJSON implements json.Marshaler, writing keys in insertion order.
func (o *Object) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer

	buf.WriteByte('{')

	for i, k := range o.keys {
		if i > 0 {
			buf.WriteByte(',')
		}

		kb, err := Marshal(k)
		if err != nil {
			return nil, err
		}

		vb, err := Marshal(o.values[k])
		if err != nil {
			return nil, fmt.Errorf("key %q: %w", k, err)
		}

		buf.Write(kb)
		buf.WriteByte(':')
		buf.Write(vb)
	}

	buf.WriteByte('}')

	return buf.Bytes(), nil
}

// Marshal encodes v as compact JSON without HTML escaping.
func Marshal(v any) ([]byte, error) {
	var buf bytes.Buffer

	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)

	if err := enc.Encode(v); err != nil {
		return nil, err
	}

	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}

// EncodeJSON encodes v as JSON indented with two spaces, followed by a newline.
func EncodeJSON(v any) ([]byte, error) {
	var buf bytes.Buffer

	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")

	if err := enc.Encode(v); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

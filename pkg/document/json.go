package document

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	"github.com/mr-shifu/sss-lib/core/errs"
)

// jsonEntries walks the top-level object token by token so that a repeated
// entry name is reported instead of overwriting the earlier one.
func jsonEntries(data []byte) (map[string]entryDecoder, error) {
	d := json.NewDecoder(bytes.NewReader(data))
	tok, err := d.Token()
	if err != nil {
		return nil, err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil, fmt.Errorf("expected an object, got %v", tok)
	}

	entries := make(map[string]entryDecoder)
	for d.More() {
		tok, err := d.Token()
		if err != nil {
			return nil, err
		}
		name, ok := tok.(string)
		if !ok {
			return nil, fmt.Errorf("expected an entry name, got %v", tok)
		}
		var msg json.RawMessage
		if err := d.Decode(&msg); err != nil {
			return nil, err
		}
		if _, ok := entries[name]; ok {
			return nil, errs.WithKey(errs.DuplicateX, name, "entry appears more than once")
		}
		entries[name] = func(v interface{}) error {
			return json.Unmarshal(msg, v)
		}
	}

	// closing brace
	if _, err := d.Token(); err != nil {
		return nil, err
	}
	if _, err := d.Token(); err != io.EOF {
		return nil, fmt.Errorf("unexpected data after the document")
	}
	return entries, nil
}

func (s *scalar) UnmarshalJSON(b []byte) error {
	var v interface{}
	d := json.NewDecoder(bytes.NewReader(b))
	d.UseNumber()
	if err := d.Decode(&v); err != nil {
		return err
	}
	switch t := v.(type) {
	case string:
		*s = scalar(t)
	case json.Number:
		*s = scalar(t.String())
	default:
		return fmt.Errorf("expected a string or a number, got %s", b)
	}
	return nil
}

func marshalJSON(doc map[string]interface{}) ([]byte, error) {
	return json.MarshalIndent(doc, "", "  ")
}

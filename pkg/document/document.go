// Package document loads reconstruction inputs from JSON, YAML and CBOR.
//
// A document is a map. The entry "keys" holds the share count "n" and the
// threshold "k"; every other entry is a share whose key is the decimal x
// coordinate and whose "base" and "value" fields hold the encoded y:
//
//	{
//	  "keys": {"n": 4, "k": 3},
//	  "1": {"base": "10", "value": "4"},
//	  "2": {"base": "2", "value": "111"}
//	}
//
// Numbers may be given as strings or integers.
package document

import (
	"io"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/mr-shifu/sss-lib/core/errs"
	"github.com/mr-shifu/sss-lib/core/share"
	"github.com/pkg/errors"
)

// KeysEntry is the name of the threshold entry.
const KeysEntry = "keys"

type Format string

const (
	JSON Format = "json"
	YAML Format = "yaml"
	CBOR Format = "cbor"
)

var ErrUnknownFormat = errors.New("document: unknown format")

// ParseFormat maps a format name to a Format.
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(name) {
	case "json":
		return JSON, nil
	case "yaml", "yml":
		return YAML, nil
	case "cbor":
		return CBOR, nil
	}
	return "", errors.WithMessage(ErrUnknownFormat, name)
}

// FormatFromPath picks the format from the file extension, JSON by default.
func FormatFromPath(path string) Format {
	f, err := ParseFormat(strings.TrimPrefix(filepath.Ext(path), "."))
	if err != nil {
		return JSON
	}
	return f
}

// entryDecoder decodes one document entry into v.
type entryDecoder func(v interface{}) error

type keysEntry struct {
	N *scalar `json:"n" yaml:"n" cbor:"n"`
	K *scalar `json:"k" yaml:"k" cbor:"k"`
}

type shareEntry struct {
	Base  *scalar `json:"base" yaml:"base" cbor:"base"`
	Value *scalar `json:"value" yaml:"value" cbor:"value"`
}

// Parse decodes data in the given format and validates every field.
func Parse(data []byte, format Format) (share.Document, error) {
	var (
		entries map[string]entryDecoder
		err     error
	)
	switch format {
	case JSON:
		entries, err = jsonEntries(data)
	case YAML:
		entries, err = yamlEntries(data)
	case CBOR:
		entries, err = cborEntries(data)
	default:
		return share.Document{}, errors.WithMessage(ErrUnknownFormat, string(format))
	}
	if err != nil {
		return share.Document{}, errors.WithMessage(err, "document: "+string(format))
	}
	return build(entries)
}

// Read parses a whole document from r.
func Read(r io.Reader, format Format) (share.Document, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return share.Document{}, errors.WithMessage(err, "document: read")
	}
	return Parse(data, format)
}

// Load parses the file at path, choosing the format from its extension.
func Load(path string) (share.Document, error) {
	return LoadAs(path, FormatFromPath(path))
}

// LoadAs parses the file at path in the given format.
func LoadAs(path string, format Format) (share.Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return share.Document{}, errors.WithMessage(err, "document: read "+path)
	}
	return Parse(data, format)
}

// Marshal renders doc in the given format, bases as strings. Shares with
// the same key collapse into one entry.
func Marshal(doc share.Document, format Format) ([]byte, error) {
	m := map[string]interface{}{
		KeysEntry: map[string]interface{}{
			"n": doc.Threshold.N,
			"k": doc.Threshold.K,
		},
	}
	for _, s := range doc.Shares {
		m[s.Key] = map[string]interface{}{
			"base":  strconv.Itoa(s.Base),
			"value": s.Digits,
		}
	}

	switch format {
	case JSON:
		return marshalJSON(m)
	case YAML:
		return marshalYAML(m)
	case CBOR:
		return marshalCBOR(m)
	}
	return nil, errors.WithMessage(ErrUnknownFormat, string(format))
}

func build(entries map[string]entryDecoder) (share.Document, error) {
	var doc share.Document

	decodeKeys, ok := entries[KeysEntry]
	if !ok {
		return doc, errs.WithKey(errs.MissingField, KeysEntry, "no threshold entry")
	}
	var keys keysEntry
	if err := decodeKeys(&keys); err != nil {
		return doc, &errs.Error{Kind: errs.InvalidDigit, Key: KeysEntry, Index: -1, Err: err}
	}
	n, err := keys.N.toInt(KeysEntry + ".n")
	if err != nil {
		return doc, err
	}
	k, err := keys.K.toInt(KeysEntry + ".k")
	if err != nil {
		return doc, err
	}
	doc.Threshold = share.Threshold{N: n, K: k}

	names := make([]string, 0, len(entries))
	for name := range entries {
		if name != KeysEntry {
			names = append(names, name)
		}
	}
	sort.Strings(names)

	for _, name := range names {
		var entry shareEntry
		if err := entries[name](&entry); err != nil {
			return doc, &errs.Error{Kind: errs.InvalidDigit, Key: name, Index: -1, Err: err}
		}
		b, err := entry.Base.toInt(name + ".base")
		if err != nil {
			return doc, err
		}
		if entry.Value == nil {
			return doc, errs.WithKey(errs.MissingField, name+".value", "")
		}
		doc.Shares = append(doc.Shares, share.EncodedShare{
			Key:    name,
			Base:   b,
			Digits: string(*entry.Value),
		})
	}
	return doc, nil
}

// scalar is the text of a string or integer field.
type scalar string

func (s *scalar) toInt(field string) (int, error) {
	if s == nil {
		return 0, errs.WithKey(errs.MissingField, field, "")
	}
	v, err := strconv.Atoi(strings.TrimSpace(string(*s)))
	if err != nil {
		return 0, &errs.Error{Kind: errs.InvalidDigit, Key: field, Index: -1, Msg: "not an integer", Err: err}
	}
	return v, nil
}

package document

import (
	"errors"
	"fmt"
	"math/big"
	"strconv"

	"github.com/fxamacker/cbor/v2"
	"github.com/mr-shifu/sss-lib/core/errs"
)

var (
	encMode cbor.EncMode
	decMode cbor.DecMode
)

func init() {
	var err error
	encMode, err = cbor.CanonicalEncOptions().EncMode()
	if err != nil {
		panic(err)
	}
	decMode, err = cbor.DecOptions{DupMapKey: cbor.DupMapKeyEnforcedAPF}.DecMode()
	if err != nil {
		panic(err)
	}
}

func cborEntries(data []byte) (map[string]entryDecoder, error) {
	var raw map[interface{}]cbor.RawMessage
	if err := decMode.Unmarshal(data, &raw); err != nil {
		var dup *cbor.DupMapKeyError
		if errors.As(err, &dup) {
			return nil, errs.WithKey(errs.DuplicateX, fmt.Sprint(dup.Key), "entry appears more than once")
		}
		return nil, err
	}
	entries := make(map[string]entryDecoder, len(raw))
	for key, msg := range raw {
		name, err := cborKey(key)
		if err != nil {
			return nil, err
		}
		// text "1" and integer 1 name the same share
		if _, ok := entries[name]; ok {
			return nil, errs.WithKey(errs.DuplicateX, name, "entry appears more than once")
		}
		msg := msg
		entries[name] = func(v interface{}) error {
			return decMode.Unmarshal(msg, v)
		}
	}
	return entries, nil
}

// cborKey accepts text and integer map keys.
func cborKey(key interface{}) (string, error) {
	switch k := key.(type) {
	case string:
		return k, nil
	case uint64:
		return strconv.FormatUint(k, 10), nil
	case int64:
		return strconv.FormatInt(k, 10), nil
	}
	return "", fmt.Errorf("unsupported map key %v", key)
}

func (s *scalar) UnmarshalCBOR(data []byte) error {
	var v interface{}
	if err := cbor.Unmarshal(data, &v); err != nil {
		return err
	}
	switch t := v.(type) {
	case string:
		*s = scalar(t)
	case uint64:
		*s = scalar(strconv.FormatUint(t, 10))
	case int64:
		*s = scalar(strconv.FormatInt(t, 10))
	case big.Int:
		*s = scalar(t.String())
	default:
		return fmt.Errorf("expected a text string or an integer, got %T", v)
	}
	return nil
}

func marshalCBOR(doc map[string]interface{}) ([]byte, error) {
	return encMode.Marshal(doc)
}

package hash

import (
	"encoding/binary"
	"fmt"
	"io"
	"math/big"
	"reflect"
	"strconv"

	"github.com/mr-shifu/sss-lib/core/math/polynomial"
	"github.com/zeebo/blake3"
	"golang.org/x/crypto/sha3"
)

// DigestLengthBytes is the output size of Hash.Sum and Digest.
const DigestLengthBytes = 32

// Hash is a domain separated blake3 hash over reconstruction inputs.
type Hash struct {
	h *blake3.Hasher
}

// New returns a Hash initialized with initialData.
func New(initialData ...interface{}) *Hash {
	hash := &Hash{h: blake3.New()}
	_, _ = hash.h.WriteString("SSS-BLAKE")
	for _, d := range initialData {
		_ = hash.WriteAny(d)
	}
	return hash
}

// Sum returns the current digest without changing the hash state.
func (hash *Hash) Sum() []byte {
	out := make([]byte, DigestLengthBytes)
	if _, err := io.ReadFull(hash.h.Digest(), out); err != nil {
		panic(fmt.Sprintf("hash.Sum: internal hash failure: %v", err))
	}
	return out
}

// Clone returns an independent copy of the hash state.
func (hash *Hash) Clone() *Hash {
	return &Hash{h: hash.h.Clone()}
}

// WriteAny writes each value with its own domain. Supported values are
// []byte, string, int, *big.Int and polynomial.Point.
func (hash *Hash) WriteAny(data ...interface{}) error {
	for _, d := range data {
		var domain string
		var bytes []byte
		switch t := d.(type) {
		case []byte:
			if t == nil {
				return fmt.Errorf("hash.WriteAny: nil []byte")
			}
			domain, bytes = "[]byte", t
		case string:
			domain, bytes = "string", []byte(t)
		case int:
			domain, bytes = "int", []byte(strconv.Itoa(t))
		case *big.Int:
			if t == nil {
				return fmt.Errorf("hash.WriteAny: write *big.Int: nil")
			}
			b, err := t.GobEncode()
			if err != nil {
				return fmt.Errorf("hash.WriteAny: *big.Int: %w", err)
			}
			domain, bytes = "big.Int", b
		case polynomial.Point:
			if t.X == nil || t.Y == nil {
				return fmt.Errorf("hash.WriteAny: incomplete point")
			}
			if err := hash.WriteAny(t.X, t.Y); err != nil {
				return err
			}
			continue
		default:
			return fmt.Errorf("hash.WriteAny: invalid type %s", reflect.TypeOf(d))
		}
		hash.writeBytesWithDomain(domain, bytes)
	}
	return nil
}

func (hash *Hash) writeBytesWithDomain(domain string, data []byte) {
	var sizeBuf [8]byte

	// Write out `(<domain_size><domain><data_size><data>)`, so that each domain separated piece of data
	// is distinguished from others.

	_, _ = hash.h.WriteString("(")
	// <domain_size>
	binary.BigEndian.PutUint64(sizeBuf[:], uint64(len(domain)))
	_, _ = hash.h.Write(sizeBuf[:])
	// <domain>
	_, _ = hash.h.WriteString(domain)
	// <data_size>
	binary.BigEndian.PutUint64(sizeBuf[:], uint64(len(data)))
	_, _ = hash.h.Write(sizeBuf[:])
	// <data>
	_, _ = hash.h.Write(data)
	// )
	_, _ = hash.h.WriteString(")")
}

// Fingerprint identifies a reconstruction: the mode, the modulus (nil in
// exact mode), the threshold and the selected points in order.
func Fingerprint(mode string, k int, modulus *big.Int, points []polynomial.Point) ([]byte, error) {
	h := New()
	if err := h.WriteAny(mode, k); err != nil {
		return nil, err
	}
	if modulus != nil {
		if err := h.WriteAny(modulus); err != nil {
			return nil, err
		}
	}
	for _, p := range points {
		if err := h.WriteAny(p); err != nil {
			return nil, err
		}
	}
	return h.Sum(), nil
}

// Digest returns SHA3-256 of the decimal rendering of secret, so that
// `printf %s <secret> | sha3sum -a 256` reproduces it.
func Digest(secret *big.Int) []byte {
	sum := sha3.Sum256([]byte(secret.String()))
	return sum[:]
}

package errs

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestError_Is(t *testing.T) {
	err := WithIndex(InvalidDigit, "3", 4, "digit 'g' out of range for base 16")

	assert.True(t, errors.Is(err, ErrInvalidDigit))
	assert.False(t, errors.Is(err, ErrInvalidBase))
	assert.True(t, errors.Is(err, &Error{Kind: InvalidDigit, Key: "3"}))
	assert.False(t, errors.Is(err, &Error{Kind: InvalidDigit, Key: "4"}))

	wrapped := errors.WithMessage(err, "document")
	assert.True(t, errors.Is(wrapped, ErrInvalidDigit))
	assert.Equal(t, InvalidDigit, KindOf(wrapped))
}

func TestError_Message(t *testing.T) {
	err := WithIndex(DuplicateX, "2", 5, "x repeated")
	assert.Equal(t, `DuplicateX [key "2"] [index 5]: x repeated`, err.Error())

	err = New(NonIntegralResult, "")
	assert.Equal(t, "NonIntegralResult", err.Error())

	err = &Error{Kind: MissingField, Key: "keys.k", Index: -1, Err: errors.New("absent")}
	assert.Equal(t, `MissingField [key "keys.k"]: absent`, err.Error())
}

func TestKindOf(t *testing.T) {
	assert.Equal(t, Unknown, KindOf(nil))
	assert.Equal(t, Unknown, KindOf(errors.New("plain")))
	assert.Equal(t, EmptyInput, KindOf(New(EmptyInput, "")))
	assert.Equal(t, "Kind(99)", Kind(99).String())
}

func TestRekey(t *testing.T) {
	err := Rekey(WithIndex(InvalidDigit, "", 2, ""), "7")
	e, ok := err.(*Error)
	assert.True(t, ok)
	assert.Equal(t, "7", e.Key)
	assert.Equal(t, 2, e.Index)

	keyed := WithKey(InvalidBase, "1", "")
	assert.Same(t, keyed, Rekey(keyed, "9"))

	plain := errors.New("plain")
	assert.Equal(t, plain, Rekey(plain, "9"))
}

func TestIsNumeric(t *testing.T) {
	for _, kind := range []Kind{DuplicateX, NonIntegralResult, NonInvertible} {
		assert.True(t, IsNumeric(New(kind, "")), kind.String())
	}
	for _, kind := range []Kind{InvalidBase, InvalidDigit, EmptyInput, MissingField, InsufficientPoints} {
		assert.False(t, IsNumeric(New(kind, "")), kind.String())
	}
}

package base_test

import (
	"math/big"
	"math/rand"
	"testing"

	"github.com/mr-shifu/sss-lib/core/errs"
	"github.com/mr-shifu/sss-lib/core/math/base"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecode_HonoursBase(t *testing.T) {
	two, err := base.Decode("10", 2)
	require.NoError(t, err)
	sixteen, err := base.Decode("10", 16)
	require.NoError(t, err)

	assert.Equal(t, int64(2), two.Int64())
	assert.Equal(t, int64(16), sixteen.Int64())
	assert.NotEqual(t, 0, two.Cmp(sixteen))
}

func TestDecode_Values(t *testing.T) {
	cases := []struct {
		digits string
		base   int
		want   string
	}{
		{"0", 2, "0"},
		{"111", 2, "7"},
		{"213", 4, "39"},
		{"4", 10, "4"},
		{"zz", 36, "1295"},
		{"ZZ", 36, "1295"},
		{"aed7015a346d63", 15, "21394886326566393"},
		{"e1b5e05623d881f", 16, "1016509518118225951"},
		{"13444211440455345511", 6, "995085094601491"},
		{"45153788322a1255483", 12, "117852986202006511971"},
		{"1101613130313526312514143", 7, "220003896831595324801"},
		{"000101", 2, "5"},
	}
	for _, c := range cases {
		v, err := base.Decode(c.digits, c.base)
		require.NoError(t, err, c.digits)
		assert.Equal(t, c.want, v.String(), "%s in base %d", c.digits, c.base)
	}
}

func TestDecode_RoundTrip(t *testing.T) {
	rnd := rand.New(rand.NewSource(1))
	limit := new(big.Int).Lsh(big.NewInt(1), 300)

	for b := base.MinBase; b <= base.MaxBase; b++ {
		for i := 0; i < 20; i++ {
			v := new(big.Int).Rand(rnd, limit)
			s, err := base.Encode(v, b)
			require.NoError(t, err)

			got, err := base.Decode(s, b)
			require.NoError(t, err)
			assert.Equal(t, 0, v.Cmp(got), "base %d value %s", b, v)
		}
	}
}

func TestDecode_LargeBase3(t *testing.T) {
	digits := "2122212201122002221120200210011020220200"
	require.GreaterOrEqual(t, len(digits), 40)

	v, err := base.Decode(digits, 3)
	require.NoError(t, err)

	// multiply-add, one digit at a time
	want := new(big.Int)
	three := big.NewInt(3)
	for _, r := range digits {
		want.Mul(want, three)
		want.Add(want, big.NewInt(int64(r-'0')))
	}
	assert.Equal(t, want.Bytes(), v.Bytes())
	assert.Equal(t, "10788619898233492461", v.String())

	long := "21" + digits + digits + digits
	v, err = base.Decode(long, 3)
	require.NoError(t, err)
	want.SetInt64(0)
	for _, r := range long {
		want.Mul(want, three)
		want.Add(want, big.NewInt(int64(r-'0')))
	}
	assert.Equal(t, 0, want.Cmp(v))
}

func TestDecode_Errors(t *testing.T) {
	_, err := base.Decode("10", 1)
	assert.True(t, errors.Is(err, errs.ErrInvalidBase))
	_, err = base.Decode("10", 37)
	assert.True(t, errors.Is(err, errs.ErrInvalidBase))

	_, err = base.Decode("", 10)
	assert.True(t, errors.Is(err, errs.ErrEmptyInput))

	for _, digits := range []string{"12", "-1", "+1", "1_0", " 1", "0x1", "1.0", "é"} {
		_, err = base.Decode(digits, 2)
		assert.True(t, errors.Is(err, errs.ErrInvalidDigit), digits)
	}

	_, err = base.Decode("12g4", 16)
	var e *errs.Error
	require.True(t, errors.As(err, &e))
	assert.Equal(t, errs.InvalidDigit, e.Kind)
	assert.Equal(t, 2, e.Index)
}

func TestEncode(t *testing.T) {
	s, err := base.Encode(big.NewInt(255), 16)
	require.NoError(t, err)
	assert.Equal(t, "ff", s)

	_, err = base.Encode(big.NewInt(-1), 10)
	assert.True(t, errors.Is(err, errs.ErrInvalidDigit))
	_, err = base.Encode(big.NewInt(1), 40)
	assert.True(t, errors.Is(err, errs.ErrInvalidBase))
	_, err = base.Encode(nil, 10)
	assert.True(t, errors.Is(err, errs.ErrEmptyInput))
}

func TestDigitValue(t *testing.T) {
	for i, r := range base.Alphabet {
		assert.Equal(t, i, base.DigitValue(r))
	}
	assert.Equal(t, 35, base.DigitValue('Z'))
	assert.Equal(t, -1, base.DigitValue('-'))
}

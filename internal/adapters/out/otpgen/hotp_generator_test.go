package otpgen_test

import (
	"bytes"
	"errors"
	"testing"

	"freshcart/internal/adapters/out/otpgen"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHOTPGenerator_Generate(t *testing.T) {
	gen := otpgen.NewHOTPGenerator()

	seen := make(map[string]struct{})
	for range 50 {
		code, err := gen.Generate()
		require.NoError(t, err)
		require.NoError(t, code.Validate())
		assert.Regexp(t, `^[0-9]{6}$`, code.String())
		seen[code.String()] = struct{}{}
	}

	assert.Greater(t, len(seen), 40, "codes should not repeat in a short run")
}

// The RFC 4226 appendix D secret "12345678901234567890" yields 287082 at counter 1.
func TestHOTPGenerator_MatchesRFC4226Vector(t *testing.T) {
	secret := []byte("12345678901234567890")
	gen := otpgen.NewHOTPGeneratorWithEntropy(bytes.NewReader(secret))

	code, err := gen.Generate()
	require.NoError(t, err)
	assert.Equal(t, "287082", code.String())
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) {
	return 0, errors.New("entropy exhausted")
}

func TestHOTPGenerator_EntropyFailure(t *testing.T) {
	gen := otpgen.NewHOTPGeneratorWithEntropy(failingReader{})

	_, err := gen.Generate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "entropy exhausted")
}

func TestHOTPGenerator_ShortEntropy(t *testing.T) {
	gen := otpgen.NewHOTPGeneratorWithEntropy(bytes.NewReader([]byte{1, 2, 3}))

	_, err := gen.Generate()
	require.Error(t, err)
}

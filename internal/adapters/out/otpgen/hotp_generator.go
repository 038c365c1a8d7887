// Package otpgen issues the six digit handshake codes with HOTP (RFC 4226).
//
// Every code is derived from a freshly drawn random secret, so two codes for
// the same order are independent and neither can be predicted from the other.
package otpgen

import (
	"crypto/rand"
	"encoding/base32"
	"fmt"
	"io"
	"sync/atomic"

	"freshcart/internal/core/domain/model/kernel"

	"github.com/pquerna/otp"
	"github.com/pquerna/otp/hotp"
)

const secretSize = 20

var secretEncoding = base32.StdEncoding.WithPadding(base32.NoPadding)

type HOTPGenerator struct {
	entropy io.Reader
	counter atomic.Uint64
	opts    hotp.ValidateOpts
}

// NewHOTPGenerator reads secrets from crypto/rand.
func NewHOTPGenerator() *HOTPGenerator {
	return NewHOTPGeneratorWithEntropy(rand.Reader)
}

// NewHOTPGeneratorWithEntropy reads secrets from the given source.
func NewHOTPGeneratorWithEntropy(entropy io.Reader) *HOTPGenerator {
	return &HOTPGenerator{
		entropy: entropy,
		opts: hotp.ValidateOpts{
			Digits:    otp.DigitsSix,
			Algorithm: otp.AlgorithmSHA1,
		},
	}
}

// Generate returns a zero padded six digit code.
func (g *HOTPGenerator) Generate() (kernel.OTP, error) {
	raw := make([]byte, secretSize)
	if _, err := io.ReadFull(g.entropy, raw); err != nil {
		return kernel.OTP{}, fmt.Errorf("read otp secret: %w", err)
	}

	code, err := hotp.GenerateCodeCustom(secretEncoding.EncodeToString(raw), g.counter.Add(1), g.opts)
	if err != nil {
		return kernel.OTP{}, fmt.Errorf("generate hotp: %w", err)
	}

	return kernel.NewOTP(code)
}

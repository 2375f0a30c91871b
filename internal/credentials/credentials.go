// Package credentials generates one-time passwords for provisioned accounts.
package credentials

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base32"
	"strings"
)

// Generator derives a credential string from two seeds. Implementations may
// be deterministic or random; the provisioning workflow is agnostic.
type Generator interface {
	Generate(seed1, seed2 string) string
}

const credentialLength = 16

var encoding = base32.StdEncoding.WithPadding(base32.NoPadding)

// HMACGenerator derives credentials with HMAC-SHA256 over both seeds and a
// server-side secret. Derivation policy is deliberately pluggable behind
// the Generator interface.
type HMACGenerator struct {
	secret []byte
}

// NewHMAC constructs a generator keyed with the given secret.
func NewHMAC(secret string) *HMACGenerator {
	return &HMACGenerator{secret: []byte(secret)}
}

// Generate returns a lowercase base32 credential of fixed length.
func (g *HMACGenerator) Generate(seed1, seed2 string) string {
	mac := hmac.New(sha256.New, g.secret)
	mac.Write([]byte(seed1))
	mac.Write([]byte{0})
	mac.Write([]byte(seed2))

	enc := strings.ToLower(encoding.EncodeToString(mac.Sum(nil)))
	return enc[:credentialLength]
}

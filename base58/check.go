package base58

import (
	"bytes"
	"errors"
	"fmt"
)

// length of the truncated digest appended to every check-encoded payload
const ChecksumLength = 4

var (
	ErrInvalidFormat = errors.New("base58: decoded data too short to carry a checksum")
	ErrChecksum      = errors.New("base58: checksum mismatch")
)

// HashFunc produces the digest the checksum is cut from. The codec
// only ever reads the first four bytes of it. Which hash to use is the
// caller's business; bitcoin-family chains pass double SHA-256.
type HashFunc func([]byte) [32]byte

// CheckEncode appends the four byte checksum h(input)[:4] to the
// payload and base58 encodes the result.
func CheckEncode(input []byte, h HashFunc) string {
	sum := h(input)
	buf := make([]byte, 0, len(input)+ChecksumLength)
	buf = append(buf, input...)
	buf = append(buf, sum[:ChecksumLength]...)
	return Encode(buf)
}

// CheckDecode reverses CheckEncode: base58 decode, verify the trailing
// checksum against a fresh digest of the payload, and return the
// payload with the checksum stripped.
func CheckDecode(s string, h HashFunc) ([]byte, error) {
	decoded, err := Decode(s)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidFormat, err)
	}
	if len(decoded) < ChecksumLength {
		return nil, ErrInvalidFormat
	}
	payload := decoded[:len(decoded)-ChecksumLength]
	sum := h(payload)
	if !bytes.Equal(decoded[len(decoded)-ChecksumLength:], sum[:ChecksumLength]) {
		return nil, ErrChecksum
	}
	return payload, nil
}

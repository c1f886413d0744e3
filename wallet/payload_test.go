package wallet

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"coinaddr/base58"
)

func TestPayloadRoundTripKeepsVersionAndData(t *testing.T) {
	original := NewPayload([]byte{0x00}, []byte{0xde, 0xad, 0xbe, 0xef})

	decoded, err := DecodePayload(original.String(), 1)

	assert.NoError(t, err)
	assert.Equal(t, original, decoded)
}

func TestPayloadSupportsMultiByteVersions(t *testing.T) {
	original := NewPayload([]byte{0x04, 0x88}, []byte{0x01, 0x02, 0x03})

	decoded, err := DecodePayload(original.String(), 2)

	assert.NoError(t, err)
	assert.Equal(t, original, decoded)
}

func TestDecodePayloadFailsWhenShorterThanVersion(t *testing.T) {
	// encodes to a checksum-only string, zero payload bytes
	text := NewPayload(nil, nil).String()

	_, err := DecodePayload(text, 1)

	assert.Equal(t, ErrTooShort, err)
}

func TestDecodePayloadSurfacesChecksumErrors(t *testing.T) {
	text := NewPayload([]byte{0x00}, []byte{0x01}).String()
	corrupted := "2" + text[1:]
	if text[0] == '2' {
		corrupted = "3" + text[1:]
	}

	_, err := DecodePayload(corrupted, 1)

	assert.Equal(t, base58.ErrChecksum, err)
}

func TestDecodePayloadSurfacesFormatErrors(t *testing.T) {
	_, err := DecodePayload("0O0O", 1)

	assert.True(t, errors.Is(err, base58.ErrInvalidFormat))
}

func TestCompareOrdersByVersionFirst(t *testing.T) {
	low := NewPayload([]byte{0x00}, []byte{0xff})
	high := NewPayload([]byte{0x05}, []byte{0x00})

	assert.Equal(t, -1, Compare(low, high))
	assert.Equal(t, 1, Compare(high, low))
}

func TestCompareFallsBackToData(t *testing.T) {
	a := NewPayload([]byte{0x00}, []byte{0x01})
	b := NewPayload([]byte{0x00}, []byte{0x02})

	assert.Equal(t, -1, Compare(a, b))
	assert.Equal(t, 0, Compare(a, a))
}

package base58

import (
	"crypto/sha256"
	"errors"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

// the bitcoin checksum hash, declared locally so the codec package
// itself stays free of crypto imports
func testHash(b []byte) [32]byte {
	first := sha256.Sum256(b)
	return sha256.Sum256(first[:])
}

func TestCheckRoundTripRecoversPayload(t *testing.T) {
	rnd := rand.New(rand.NewSource(17))

	for i := 0; i < 50; i++ {
		payload := make([]byte, rnd.Intn(40))
		rnd.Read(payload)

		decoded, err := CheckDecode(CheckEncode(payload, testHash), testHash)

		assert.NoError(t, err)
		assert.Equal(t, payload, decoded)
	}
}

func TestCheckDecodeRejectsTooShortData(t *testing.T) {
	// "1" decodes to a single zero byte, not enough for a checksum
	_, err := CheckDecode("1", testHash)

	assert.True(t, errors.Is(err, ErrInvalidFormat))
}

func TestCheckDecodeWrapsBase58Failures(t *testing.T) {
	_, err := CheckDecode("not-base58!", testHash)

	assert.True(t, errors.Is(err, ErrInvalidFormat))
}

func TestCorruptingLastCharacterBreaksChecksum(t *testing.T) {
	text := CheckEncode(make([]byte, 21), testHash)

	last := byte('x')
	if text[len(text)-1] == last {
		last = 'y'
	}
	corrupted := text[:len(text)-1] + string(last)

	_, err := CheckDecode(corrupted, testHash)

	assert.Equal(t, ErrChecksum, err)
}

func TestFlippingAnyPayloadByteBreaksChecksum(t *testing.T) {
	payload := []byte{0x00, 0x14, 0x51, 0x0f, 0xaa, 0x3c}
	good := CheckEncode(payload, testHash)
	sum := testHash(payload)

	for i := range payload {
		flipped := make([]byte, len(payload))
		copy(flipped, payload)
		flipped[i] ^= 0x40

		// re-encode the flipped payload under the stale checksum
		stale := append(flipped, sum[:ChecksumLength]...)
		text := Encode(stale)
		assert.NotEqual(t, good, text)

		_, err := CheckDecode(text, testHash)
		assert.Equal(t, ErrChecksum, err)
	}
}

package wallet

import (
	"bytes"
	"errors"

	"coinaddr/base58"
)

var (
	ErrTooShort = errors.New("wallet: decoded data shorter than its version prefix")
)

// Payload is the decoded form of every base58check string in this
// system: a version prefix identifying what the data is, followed by
// the data itself. How many bytes the version takes is fixed by
// whoever decodes it, not stored in the payload.
type Payload struct {
	Version []byte
	Data    []byte
}

func NewPayload(version, data []byte) Payload {
	return Payload{Version: version, Data: data}
}

// String renders version ++ data with the checksum appended, as
// base58 text.
func (p Payload) String() string {
	buf := make([]byte, 0, len(p.Version)+len(p.Data))
	buf = append(buf, p.Version...)
	buf = append(buf, p.Data...)
	return base58.CheckEncode(buf, DoubleSha256)
}

// DecodePayload checks and decodes base58check text, then splits the
// result into the first versionLen bytes and the rest. The decoded
// scratch buffer can hold an unencrypted private key, so it is zeroed
// before return instead of being left for the garbage collector.
func DecodePayload(s string, versionLen int) (Payload, error) {
	decoded, err := base58.CheckDecode(s, DoubleSha256)
	if err != nil {
		return Payload{}, err
	}
	if len(decoded) < versionLen {
		zero(decoded)
		return Payload{}, ErrTooShort
	}

	p := Payload{
		Version: make([]byte, versionLen),
		Data:    make([]byte, len(decoded)-versionLen),
	}
	copy(p.Version, decoded[:versionLen])
	copy(p.Data, decoded[versionLen:])
	zero(decoded)
	return p, nil
}

// Compare orders payloads by version bytes, then by data bytes. Used
// for deterministic ordering, never for secret comparison.
func Compare(a, b Payload) int {
	if c := bytes.Compare(a.Version, b.Version); c != 0 {
		return c
	}
	return bytes.Compare(a.Data, b.Data)
}

func zero(b []byte) {
	for i := range b {
		b[i] = 0
	}
}

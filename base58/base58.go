package base58

import (
	"errors"
)

// Base58 is a derivative of base64 that drops the six characters
// 0 O l I + / so that an address written down by hand cannot be
// misread. Bitcoin introduced the alphabet and every fork keeps it.
const Alphabet = "123456789ABCDEFGHJKLMNPQRSTUVWXYZabcdefghijkmnopqrstuvwxyz"

var (
	ErrInvalidCharacter = errors.New("base58: invalid character")
	ErrTrailingGarbage  = errors.New("base58: trailing garbage after base58 data")
)

// reverse lookup from ASCII byte to alphabet index, -1 for bytes
// outside the alphabet
var decodeTable [256]int8

func init() {
	for i := range decodeTable {
		decodeTable[i] = -1
	}
	for i := 0; i < len(Alphabet); i++ {
		decodeTable[Alphabet[i]] = int8(i)
	}
}

// Encode converts a byte sequence into base58 text.
// Leading zero bytes become leading '1' characters, the rest of the
// input is treated as one big-endian number and repeatedly divided
// by 58. The empty input encodes to the empty string.
func Encode(input []byte) string {
	// skip and count leading zero bytes, they carry no numeric value
	zeros := 0
	for zeros < len(input) && input[zeros] == 0 {
		zeros++
	}
	input = input[zeros:]

	// big-endian base58 digits. log(256)/log(58) rounded up.
	b58 := make([]byte, len(input)*138/100+1)

	// apply "b58 = b58*256 + byte" for every input byte
	for _, b := range input {
		carry := int(b)
		for i := len(b58) - 1; i >= 0; i-- {
			carry += 256 * int(b58[i])
			b58[i] = byte(carry % 58)
			carry /= 58
		}
		if carry != 0 {
			// the buffer bound above makes this unreachable; reaching
			// it means the arithmetic itself is broken
			panic("base58: carry overflow in encode")
		}
	}

	// skip leading zero digits produced by the oversized buffer
	start := 0
	for start < len(b58) && b58[start] == 0 {
		start++
	}

	out := make([]byte, 0, zeros+len(b58)-start)
	for i := 0; i < zeros; i++ {
		out = append(out, Alphabet[0])
	}
	for _, d := range b58[start:] {
		out = append(out, Alphabet[d])
	}
	return string(out)
}

// Decode converts base58 text back into the byte sequence it was
// encoded from. Whitespace is allowed around the text but never
// inside it. Characters outside the alphabet fail with
// ErrInvalidCharacter, anything left over after the base58 run and
// trailing whitespace fails with ErrTrailingGarbage.
func Decode(s string) ([]byte, error) {
	pos := 0
	for pos < len(s) && isSpace(s[pos]) {
		pos++
	}

	// leading '1' characters are leading zero bytes
	zeros := 0
	for pos < len(s) && s[pos] == Alphabet[0] {
		zeros++
		pos++
	}

	// big-endian base256 bytes. log(58)/log(256) rounded up.
	b256 := make([]byte, (len(s)-pos)*733/1000+1)

	// apply "b256 = b256*58 + digit" for every character
	for pos < len(s) && !isSpace(s[pos]) {
		carry := int(decodeTable[s[pos]])
		if carry == -1 {
			return nil, ErrInvalidCharacter
		}
		for i := len(b256) - 1; i >= 0; i-- {
			carry += 58 * int(b256[i])
			b256[i] = byte(carry % 256)
			carry /= 256
		}
		if carry != 0 {
			panic("base58: carry overflow in decode")
		}
		pos++
	}

	for pos < len(s) && isSpace(s[pos]) {
		pos++
	}
	if pos != len(s) {
		return nil, ErrTrailingGarbage
	}

	start := 0
	for start < len(b256) && b256[start] == 0 {
		start++
	}

	out := make([]byte, zeros+len(b256)-start)
	copy(out[zeros:], b256[start:])
	return out, nil
}

// the C isspace set
func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}

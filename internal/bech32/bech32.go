// Package bech32 implements the BIP-173 BECH32 encoding: a checksummed,
// human-readable binary format of the form "<hrp>1<data><checksum>".
package bech32

import (
	"fmt"
	"strings"
)

const charset = "qpzry9x8gf2tvdw0s3jn54khce6mua7l"

const checksumLength = 6

var generator = [5]uint32{0x3b6a57b2, 0x26508e6d, 0x1ea119fa, 0x3d4233dd, 0x2a1462b3}

var charsetIndex [256]int8

func init() {
	for i := range charsetIndex {
		charsetIndex[i] = -1
	}
	for i, c := range charset {
		charsetIndex[byte(c)] = int8(i)
	}
}

// Kind identifies a specific BECH32 format violation.
type Kind int

const (
	_ Kind = iota
	EmptyHrp
	BadHrpChar
	MixedCase
	NoSeparator
	DataTooShort
	BadDataChar
	BadChecksum
)

func (k Kind) String() string {
	switch k {
	case EmptyHrp:
		return "EmptyHrp"
	case BadHrpChar:
		return "BadHrpChar"
	case MixedCase:
		return "MixedCase"
	case NoSeparator:
		return "NoSeparator"
	case DataTooShort:
		return "DataTooShort"
	case BadDataChar:
		return "BadDataChar"
	case BadChecksum:
		return "BadChecksum"
	default:
		return "Unknown"
	}
}

// Error is a typed BECH32 format error; callers may switch on Kind.
type Error struct {
	Kind   Kind
	Detail string
}

func (e *Error) Error() string {
	if e.Detail == "" {
		return fmt.Sprintf("bech32: %s", e.Kind)
	}
	return fmt.Sprintf("bech32: %s: %s", e.Kind, e.Detail)
}

func validHrpChar(c byte) bool {
	return c >= 0x21 && c <= 0x7e
}

func validateHrp(hrp string) error {
	if hrp == "" {
		return &Error{Kind: EmptyHrp}
	}
	for _, c := range []byte(hrp) {
		if !validHrpChar(c) {
			return &Error{Kind: BadHrpChar, Detail: fmt.Sprintf("byte 0x%02x", c)}
		}
	}
	return nil
}

func polymod(values []byte) uint32 {
	chk := uint32(1)
	for _, v := range values {
		top := chk >> 25
		chk = ((chk & 0x1ffffff) << 5) ^ uint32(v)
		for k := 0; k < 5; k++ {
			if (top>>uint(k))&1 == 1 {
				chk ^= generator[k]
			}
		}
	}
	return chk
}

func hrpExpand(hrp string) []byte {
	lower := strings.ToLower(hrp)
	out := make([]byte, 0, len(lower)*2+1)
	for _, c := range []byte(lower) {
		out = append(out, c>>5)
	}
	out = append(out, 0)
	for _, c := range []byte(lower) {
		out = append(out, c&31)
	}
	return out
}

func createChecksum(hrp string, data []byte) []byte {
	values := append(hrpExpand(hrp), data...)
	values = append(values, make([]byte, checksumLength)...)
	mod := polymod(values) ^ 1
	checksum := make([]byte, checksumLength)
	for i := 0; i < checksumLength; i++ {
		checksum[i] = byte((mod >> uint(5*(checksumLength-1-i))) & 31)
	}
	return checksum
}

func verifyChecksum(hrp string, data []byte) bool {
	values := append(hrpExpand(hrp), data...)
	return polymod(values) == 1
}

// convertBits regroups a slice of integers from fromBits-wide groups to
// toBits-wide groups, MSB-first. When pad is true the final incomplete
// group is zero-padded; when false, an incomplete final group is dropped
// without checking whether its bits are zero.
func convertBits(data []byte, fromBits, toBits uint, pad bool) []byte {
	var acc uint32
	var bits uint
	maxv := uint32(1)<<toBits - 1
	var out []byte
	for _, value := range data {
		acc = (acc << fromBits) | uint32(value)
		bits += fromBits
		for bits >= toBits {
			bits -= toBits
			out = append(out, byte((acc>>bits)&maxv))
		}
	}
	if pad && bits > 0 {
		out = append(out, byte((acc<<(toBits-bits))&maxv))
	}
	return out
}

// Encode builds a BECH32 string from a human-readable part and arbitrary
// byte data.
func Encode(hrp string, data []byte) (string, error) {
	if err := validateHrp(hrp); err != nil {
		return "", err
	}
	data5 := convertBits(data, 8, 5, true)
	checksum := createChecksum(hrp, data5)

	var sb strings.Builder
	sb.WriteString(hrp)
	sb.WriteByte('1')
	for _, v := range data5 {
		sb.WriteByte(charset[v])
	}
	for _, v := range checksum {
		sb.WriteByte(charset[v])
	}
	return sb.String(), nil
}

// Decode parses a BECH32 string into its human-readable part and payload
// bytes.
func Decode(s string) (hrp string, data []byte, err error) {
	hasLower, hasUpper := false, false
	for _, c := range s {
		if c >= 'a' && c <= 'z' {
			hasLower = true
		}
		if c >= 'A' && c <= 'Z' {
			hasUpper = true
		}
	}
	if hasLower && hasUpper {
		return "", nil, &Error{Kind: MixedCase}
	}
	s = strings.ToLower(s)

	sep := strings.LastIndexByte(s, '1')
	if sep < 0 {
		return "", nil, &Error{Kind: NoSeparator}
	}
	hrp = s[:sep]
	dataPart := s[sep+1:]

	if err := validateHrp(hrp); err != nil {
		return "", nil, err
	}
	if len(dataPart) < checksumLength {
		return "", nil, &Error{Kind: DataTooShort}
	}

	data5 := make([]byte, len(dataPart))
	for i := 0; i < len(dataPart); i++ {
		idx := charsetIndex[dataPart[i]]
		if idx < 0 {
			return "", nil, &Error{Kind: BadDataChar, Detail: fmt.Sprintf("char %q", dataPart[i])}
		}
		data5[i] = byte(idx)
	}

	if !verifyChecksum(hrp, data5) {
		return "", nil, &Error{Kind: BadChecksum}
	}

	payload5 := data5[:len(data5)-checksumLength]
	data = convertBits(payload5, 5, 8, false)
	return hrp, data, nil
}

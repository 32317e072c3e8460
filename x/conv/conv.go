// Package conv formats numbers into caller-supplied buffers. It has no fmt or
// strconv dependency so MCU builds can use it for println-style output.
package conv

const hexDigits = "0123456789abcdef"

// AppendHex32 appends n as "0x" followed by 8 zero-padded hex digits.
func AppendHex32(dst []byte, n uint32) []byte {
	dst = append(dst, '0', 'x')
	for shift := 28; shift >= 0; shift -= 4 {
		dst = append(dst, hexDigits[(n>>uint(shift))&0xF])
	}
	return dst
}

// AppendUint appends the base-10 form of n.
func AppendUint(dst []byte, n uint64) []byte {
	var buf [20]byte
	i := len(buf)
	for {
		i--
		buf[i] = byte('0' + n%10)
		n /= 10
		if n == 0 {
			break
		}
	}
	return append(dst, buf[i:]...)
}

// Hex32 is AppendHex32 into a fresh string.
func Hex32(n uint32) string {
	var b [10]byte
	return string(AppendHex32(b[:0], n))
}

package nepeta

const base64Alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789+/"

// base64Index maps bytes to their six-bit values. The URL-safe variants of
// 62 and 63 are accepted; every other byte, including whitespace, decodes
// as zero so block indentation never has to be stripped before decoding.
var base64Index = [256]uint32{
	'+': 62, '-': 62, '/': 63,
	'0': 52, '1': 53, '2': 54, '3': 55, '4': 56,
	'5': 57, '6': 58, '7': 59, '8': 60, '9': 61,
	'A': 0, 'B': 1, 'C': 2, 'D': 3, 'E': 4, 'F': 5, 'G': 6,
	'H': 7, 'I': 8, 'J': 9, 'K': 10, 'L': 11, 'M': 12, 'N': 13,
	'O': 14, 'P': 15, 'Q': 16, 'R': 17, 'S': 18, 'T': 19, 'U': 20,
	'V': 21, 'W': 22, 'X': 23, 'Y': 24, 'Z': 25,
	'_': 63,
	'a': 26, 'b': 27, 'c': 28, 'd': 29, 'e': 30, 'f': 31, 'g': 32,
	'h': 33, 'i': 34, 'j': 35, 'k': 36, 'l': 37, 'm': 38, 'n': 39,
	'o': 40, 'p': 41, 'q': 42, 'r': 43, 's': 44, 't': 45, 'u': 46,
	'v': 47, 'w': 48, 'x': 49, 'y': 50, 'z': 51,
}

// encodeBase64Fragment encodes the 1 to 3 bytes of src into 4 base64
// characters in dst, padding with '=' as needed.
func encodeBase64Fragment(dst []byte, src []byte) {
	b0 := src[0]
	var b1 byte
	if len(src) >= 2 {
		b1 = src[1]
	}

	dst[0] = base64Alphabet[(b0>>2)&0x3F]
	dst[1] = base64Alphabet[(b0&0x03)<<4|(b1>>4)&0x0F]

	switch {
	case len(src) >= 3:
		dst[2] = base64Alphabet[(b1&0x0F)<<2|(src[2]>>6)&0x03]
		dst[3] = base64Alphabet[src[2]&0x3F]
	case len(src) == 2:
		dst[2] = base64Alphabet[(b1&0x0F)<<2]
		dst[3] = base64Padding
	default:
		dst[2] = base64Padding
		dst[3] = base64Padding
	}
}

// decodeBase64InPlace decodes buf over itself and returns the decoded
// length. Each iteration reads four bytes and writes three, so the read
// cursor never falls behind the write cursor. A tail shorter than a full
// group decodes to 0, 1, or 2 bytes.
func decodeBase64InPlace(buf []byte) int {
	aligned := len(buf) - len(buf)%4

	// Count the padding of the last aligned group before decoding, since
	// decoding overwrites the front of the buffer.
	padding := 0
	if aligned >= 4 {
		if buf[aligned-1] == base64Padding {
			padding++
		}
		if buf[aligned-2] == base64Padding {
			padding++
		}
	}

	w := 0
	r := 0
	for ; r < aligned; r += 4 {
		n := base64Index[buf[r]]<<18 |
			base64Index[buf[r+1]]<<12 |
			base64Index[buf[r+2]]<<6 |
			base64Index[buf[r+3]]
		buf[w] = byte(n >> 16)
		buf[w+1] = byte(n >> 8)
		buf[w+2] = byte(n)
		w += 3
	}

	w -= padding

	switch len(buf) % 4 {
	case 2:
		n := base64Index[buf[r]]<<18 | base64Index[buf[r+1]]<<12
		buf[w] = byte(n >> 16)
		w++
	case 3:
		n := base64Index[buf[r]]<<18 | base64Index[buf[r+1]]<<12 | base64Index[buf[r+2]]<<6
		buf[w] = byte(n >> 16)
		buf[w+1] = byte(n >> 8)
		w += 2
	}

	return w
}

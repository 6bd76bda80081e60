package sourcemap

import (
	"bytes"
	"fmt"
)

var base64Digits = []byte("ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789+/")

// encodeVLQ appends value to encoded as a base 64 variable-length
// quantity. Each digit carries 5 bits of payload plus a continuation
// bit; the lowest payload bit of the whole quantity is the sign.
func encodeVLQ(encoded []byte, value int) []byte {
	var vlq int
	if value < 0 {
		vlq = ((-value) << 1) | 1
	} else {
		vlq = value << 1
	}

	for {
		digit := vlq & 31
		vlq >>= 5

		// Mark the continuation bit while more digits follow.
		if vlq != 0 {
			digit |= 32
		}

		encoded = append(encoded, base64Digits[digit])

		if vlq == 0 {
			return encoded
		}
	}
}

// decodeVLQ decodes one quantity from encoded starting at start and
// returns the value and the index just past it. A character outside the
// base 64 alphabet or a truncated quantity is an error.
func decodeVLQ(encoded []byte, start int) (int, int, error) {
	shift := 0
	vlq := 0

	for {
		if start >= len(encoded) {
			return 0, start, fmt.Errorf("truncated VLQ at index %d", start)
		}

		index := bytes.IndexByte(base64Digits, encoded[start])
		if index < 0 {
			return 0, start, fmt.Errorf("invalid VLQ character %q at index %d", encoded[start], start)
		}

		vlq |= (index & 31) << shift
		start++
		shift += 5

		if (index & 32) == 0 {
			break
		}
	}

	value := vlq >> 1
	if (vlq & 1) != 0 {
		value = -value
	}
	return value, start, nil
}

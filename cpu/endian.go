package cpu

import (
	"encoding/binary"
	"fmt"
)

// WordsToBytes renders a ROM image as big-endian bytes, two per word.
func WordsToBytes(words []uint16) []byte {
	out := make([]byte, 0, len(words)*2)
	for _, w := range words {
		out = binary.BigEndian.AppendUint16(out, w)
	}
	return out
}

// BytesToWords reads a big-endian ROM image. Every word is two bytes, so a
// trailing odd byte means the image is truncated.
func BytesToWords(b []byte) ([]uint16, error) {
	if len(b)%2 != 0 {
		return nil, fmt.Errorf("image of %d bytes is not a whole number of words", len(b))
	}
	if len(b)/2 > ROMSize {
		return nil, fmt.Errorf("image of %d words does not fit in ROM", len(b)/2)
	}
	out := make([]uint16, len(b)/2)
	for i := range out {
		out[i] = binary.BigEndian.Uint16(b[i*2:])
	}
	return out, nil
}

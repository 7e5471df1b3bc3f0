package huf28

import (
	"fmt"
)

// Symbol is one byte of the alphabet.
type Symbol byte

// NumSymbols is the size of the alphabet.
const NumSymbols = 256

// MaxInputLen is the largest input length that Encode accepts.
const MaxInputLen = 1<<24 - 1

// Frequencies holds the number of occurrences of each Symbol.
type Frequencies [NumSymbols]uint32

// CountFrequencies tallies every byte of src.
func CountFrequencies(src []byte) (Frequencies, error) {
	var freqs Frequencies
	if len(src) > MaxInputLen {
		return freqs, fmt.Errorf("%w: got %d bytes", ErrInputTooLarge, len(src))
	}
	for _, ch := range src {
		freqs[ch]++
	}
	return freqs, nil
}

// Distinct returns the number of symbols with a nonzero frequency.
func (freqs *Frequencies) Distinct() int {
	var n int
	for _, freq := range freqs {
		if freq != 0 {
			n++
		}
	}
	return n
}

package huf28

import (
	"errors"
	"testing"
)

func TestCountFrequencies(t *testing.T) {
	freqs, err := CountFrequencies([]byte{0x41, 0x41, 0x41, 0x42})
	if err != nil {
		t.Fatalf("CountFrequencies failed: %v", err)
	}
	if freqs[0x41] != 3 {
		t.Errorf("expected freqs[0x41] == 3, got %d", freqs[0x41])
	}
	if freqs[0x42] != 1 {
		t.Errorf("expected freqs[0x42] == 1, got %d", freqs[0x42])
	}
	if n := freqs.Distinct(); n != 2 {
		t.Errorf("expected 2 distinct symbols, got %d", n)
	}
}

func TestCountFrequencies_TooLarge(t *testing.T) {
	src := make([]byte, MaxInputLen+1)
	_, err := CountFrequencies(src)
	if !errors.Is(err, ErrInputTooLarge) {
		t.Errorf("expected ErrInputTooLarge, got %v", err)
	}

	_, err = CountFrequencies(src[:MaxInputLen])
	if err != nil {
		t.Errorf("expected %d bytes to be accepted, got %v", MaxInputLen, err)
	}
}

package huf28

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func freqsOf(src []byte) *Frequencies {
	freqs, err := CountFrequencies(src)
	if err != nil {
		panic(err)
	}
	return &freqs
}

func TestBuildStems_TwoSymbols(t *testing.T) {
	stems := buildStems(freqsOf([]byte{0x41, 0x41, 0x41, 0x42}))

	expect := []stem{
		{flags: leafFlag0 | leafFlag1, child: [2]int{0x41, 0x42}},
		{flags: leafFlag0, child: [2]int{1, 0}},
	}
	assert.Equal(t, expect, stems)
}

func TestBuildStems_SingleSymbol(t *testing.T) {
	stems := buildStems(freqsOf([]byte("aaaa")))

	require.Len(t, stems, 2)
	assert.Equal(t, [2]int{'a', 0xff ^ 'a'}, stems[0].child)
	assert.True(t, stems[0].isLeaf(0))
	assert.True(t, stems[0].isLeaf(1))
}

func TestBuildStems_Empty(t *testing.T) {
	stems := buildStems(freqsOf(nil))

	require.Len(t, stems, 2)
	assert.Equal(t, [2]int{0xff, 0x00}, stems[0].child)
}

func TestBuildStems_Shape(t *testing.T) {
	// 0:5 1:9 2:12 3:13 4:16 5:45
	var freqs Frequencies
	for symbol, freq := range []uint32{5, 9, 12, 13, 16, 45} {
		freqs[symbol] = freq
	}
	stems := buildStems(&freqs)

	// 5 merges plus the sentinel.
	require.Len(t, stems, 6)

	// The lighter item always lands in child[1].
	assert.Equal(t, stem{flags: leafFlag0 | leafFlag1, child: [2]int{1, 0}}, stems[0])
	assert.Equal(t, stem{flags: leafFlag0 | leafFlag1, child: [2]int{3, 2}}, stems[1])
	assert.Equal(t, stem{flags: leafFlag0, child: [2]int{4, 0}}, stems[2])
	assert.Equal(t, stem{flags: 0, child: [2]int{2, 1}}, stems[3])
	assert.Equal(t, stem{flags: leafFlag1, child: [2]int{3, 5}}, stems[4])
	assert.Equal(t, stem{flags: leafFlag0, child: [2]int{5, 4}}, stems[5])
}

func TestBuildStems_Deterministic(t *testing.T) {
	src := pseudoRandomBytes(1, 4096, 64)
	assert.Equal(t, buildStems(freqsOf(src)), buildStems(freqsOf(src)))
}

package huf28

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// checkPlacement verifies the ordering and reach constraints of p.
func checkPlacement(t *testing.T, stems []stem, p placement) {
	t.Helper()

	n := len(stems)
	require.Len(t, p.rank, n)
	require.Len(t, p.table, 2*n)

	seen := make([]bool, n)
	for index, rank := range p.rank {
		require.True(t, rank >= 0 && rank < n, "stem %d has rank %d", index, rank)
		require.False(t, seen[rank], "rank %d assigned twice", rank)
		seen[rank] = true

		s := stems[index]
		for i := 0; i < 2; i++ {
			if s.isLeaf(i) {
				continue
			}
			childRank := p.rank[s.child[i]]
			assert.Greater(t, childRank, rank, "stem %d child %d", index, i)
			assert.LessOrEqual(t, childRank-rank, maxSkip, "stem %d child %d", index, i)
		}
	}

	assert.Equal(t, 0, p.rank[n-1], "sentinel must hold rank 0")
	assert.Equal(t, byte(n-1), p.table[0], "table[0] must hold the stem count")
}

func TestPlaceStems_Shape(t *testing.T) {
	var freqs Frequencies
	for symbol, freq := range []uint32{5, 9, 12, 13, 16, 45} {
		freqs[symbol] = freq
	}
	stems := buildStems(&freqs)

	p, err := placeStems(stems)
	require.NoError(t, err)
	checkPlacement(t, stems, p)

	assert.Equal(t, []int{5, 4, 3, 2, 1, 0}, p.rank)
	assert.Equal(t, []byte{
		0x05, 0x40, // sentinel: count, root (child[1] leaf) skip 0
		0x00, 0x05, // root: stem @2 skip 0, leaf 5
		0x80, 0xc1, // stem @3 (child[0] leaf), stem @4 (both leaves)
		0x04, 0xc1, // leaf 4, stem @5
		0x03, 0x02, // leaves 3, 2
		0x01, 0x00, // leaves 1, 0
	}, p.table)
}

func TestPlaceStems_Invariant(t *testing.T) {
	for index, freqs := range frequencyCorpus(42, 500) {
		freqs := freqs
		stems := buildStems(&freqs)
		p, err := placeStems(stems)
		require.NoError(t, err, "corpus entry %d", index)
		checkPlacement(t, stems, p)
	}
}

func TestPlaceStems_DeepTree(t *testing.T) {
	stems := buildStems(freqsOf(fibonacciBytes(26)))
	require.Len(t, stems, 26)

	p, err := placeStems(stems)
	require.NoError(t, err)
	checkPlacement(t, stems, p)
}

func TestPlaceStems_FullAlphabet(t *testing.T) {
	var freqs Frequencies
	for symbol := range freqs {
		freqs[symbol] = 1
	}
	stems := buildStems(&freqs)
	require.Len(t, stems, NumSymbols)

	p, err := placeStems(stems)
	require.NoError(t, err)
	checkPlacement(t, stems, p)
}

func TestTableEntry_SkipOverflow(t *testing.T) {
	stems := []stem{
		{flags: leafFlag0 | leafFlag1, child: [2]int{1, 2}},
		{flags: leafFlag0, child: [2]int{1, 0}},
	}
	rank := []int{maxSkip + 1, unplaced}

	_, err := tableEntry(stems, rank, stems[1], 1, 0)
	assert.ErrorIs(t, err, ErrSkipOverflow)

	rank[0] = maxSkip
	b, err := tableEntry(stems, rank, stems[1], 1, 0)
	require.NoError(t, err)
	assert.Equal(t, byte(0xc0|(maxSkip-1)), b)
}

func TestTableEntry_ChildNotPlaced(t *testing.T) {
	stems := []stem{
		{flags: leafFlag0 | leafFlag1, child: [2]int{1, 2}},
		{flags: leafFlag0, child: [2]int{1, 0}},
	}
	rank := []int{unplaced, unplaced}

	_, err := tableEntry(stems, rank, stems[1], 1, 0)
	assert.ErrorIs(t, err, ErrPlacementUnsatisfiable)
}

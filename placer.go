package huf28

import (
	"fmt"

	"github.com/chronos-tachyon/assert"
)

// maxSkip is the largest rank distance a node-table reference can express.
const maxSkip = 64

const unplaced = -1

// placement is the result of laying out the stem arena.
type placement struct {
	// rank maps each stem index to its position in the node table.
	rank []int

	// table is the serialized node table, 2 bytes per rank.
	table []byte
}

// placeStems assigns every stem a rank so that each stem comes strictly
// before its stem children and no further than maxSkip ranks ahead of them,
// then serializes the node table in rank order.
//
// Ranks are handed out from the back.  A stem can only take the current rank
// once all of its stem children hold higher ranks, which makes the sentinel
// (the only stem nobody references) land on rank 0.
//
func placeStems(stems []stem) (placement, error) {
	n := len(stems)
	assert.Assertf(n >= 2, "placeStems needs at least 2 stems, got %d", n)
	assert.Assertf(n <= NumSymbols, "placeStems got %d stems, max %d", n, NumSymbols)

	rank := make([]int, n)
	for index := range rank {
		rank[index] = unplaced
	}
	table := make([]byte, 2*n)

	placed := func(index int) bool {
		return rank[index] != unplaced
	}

	// ready reports whether every stem child of s has been placed.
	ready := func(s stem) bool {
		for i := 0; i < 2; i++ {
			if !s.isLeaf(i) && !placed(s.child[i]) {
				return false
			}
		}
		return true
	}

	// deepestUnplaced runs a BFS from root through unplaced stem children
	// and returns the last stem it discovers, or -1 if it found nothing
	// beyond root.  The last stem discovered has no unplaced stem
	// children: they would have been queued after it.
	queue := make([]int, 0, n)
	deepestUnplaced := func(root int) int {
		queue = append(queue[:0], root)
		for head := 0; head < len(queue); head++ {
			s := stems[queue[head]]
			for i := 0; i < 2; i++ {
				if !s.isLeaf(i) && !placed(s.child[i]) {
					queue = append(queue, s.child[i])
				}
			}
		}
		if len(queue) > 1 {
			return queue[len(queue)-1]
		}
		return -1
	}

	for j := n - 1; j >= 0; j-- {
		m := -1
		urgent := false

		for k := 0; k < n; k++ {
			if placed(k) {
				continue
			}
			s := stems[k]

			// Rule 1: a placed child is about to fall out of reach.
			for i := 0; i < 2; i++ {
				if s.isLeaf(i) || !placed(s.child[i]) {
					continue
				}
				if r := rank[s.child[i]]; r > j+maxSkip {
					return placement{}, fmt.Errorf("%w: stem %d is already %d ranks from its child", ErrPlacementUnsatisfiable, k, r-j)
				} else if r == j+maxSkip {
					urgent = true
				}
			}
			if urgent {
				if !ready(s) {
					return placement{}, fmt.Errorf("%w: stem %d must take rank %d but still has unplaced children", ErrPlacementUnsatisfiable, k, j)
				}
				m = k
				break
			}

			// Rule 2: finish the subtree hanging off a half-placed
			// stem before its placed half drifts away.
			if m == -1 && s.flags == 0 && (placed(s.child[0]) || placed(s.child[1])) {
				m = deepestUnplaced(k)
			}
		}

		// Rule 3: the lowest unplaced index.  Children always have lower
		// indices than their parents, so this stem is ready.
		if m == -1 {
			for m = 0; placed(m); m++ {
			}
		}

		s := stems[m]
		for i := 0; i < 2; i++ {
			b, err := tableEntry(stems, rank, s, i, j)
			if err != nil {
				return placement{}, err
			}
			table[2*j+i] = b
		}
		rank[m] = j
	}

	return placement{rank: rank, table: table}, nil
}

// tableEntry computes the node-table byte for child i of stem s, which is
// about to take rank j.
func tableEntry(stems []stem, rank []int, s stem, i int, j int) (byte, error) {
	c := s.child[i]
	if s.isLeaf(i) {
		return byte(c), nil
	}

	target := rank[c]
	if target == unplaced || target <= j {
		return 0, fmt.Errorf("%w: child stem %d is not placed after rank %d", ErrPlacementUnsatisfiable, c, j)
	}

	skip := target - j - 1
	if skip >= maxSkip {
		return 0, fmt.Errorf("%w: skip %d from rank %d to rank %d", ErrSkipOverflow, skip, j, target)
	}
	return stems[c].flags<<6 | byte(skip), nil
}

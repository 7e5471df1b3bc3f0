package huf28

import (
	"container/heap"

	"github.com/chronos-tachyon/assert"
)

// Leaf flags.  Bit 1 (value 2) marks child[0] as a leaf; bit 0 (value 1)
// marks child[1] as a leaf.  The same two bits end up in the high bits of
// every node-table reference, so the decoder reads 0x80 for child[0] and
// 0x40 for child[1].
const (
	leafFlag0 = 2
	leafFlag1 = 1
)

// stem is an internal node of the merge tree.  A child is a byte value when
// its leaf flag is set, and otherwise an index into the stem arena.
type stem struct {
	flags uint8
	child [2]int
}

func (s stem) isLeaf(i int) bool {
	if i == 0 {
		return s.flags&leafFlag0 != 0
	}
	return s.flags&leafFlag1 != 0
}

// buildStems runs the Huffman merge over freqs and returns the stem arena.
// Stems appear in merge order; the second to last is the root and the last
// is the sentinel that lets the decoder bootstrap from rank 0.
//
// The arena always holds at least two stems, even for empty or
// single-symbol input.
//
func buildStems(freqs *Frequencies) []stem {
	// Step 1: seed the queue with one leaf per present symbol, in
	// descending byte order.  Insertion order breaks weight ties.

	h := queueHeap{list: make([]queueItem, 0, NumSymbols)}
	push := func(weight uint32, leaf bool, id int) {
		h.list = append(h.list, queueItem{weight: weight, leaf: leaf, id: id, seq: h.nextSeq})
		h.nextSeq++
	}

	for symbol := NumSymbols - 1; symbol >= 0; symbol-- {
		if freq := freqs[symbol]; freq != 0 {
			push(freq, true, symbol)
		}
	}

	switch h.Len() {
	case 0:
		push(0, true, 0x00)
		push(0, true, 0xff)
	case 1:
		push(0, true, 0xff^h.list[0].id)
	}

	h.Init()

	// Step 2: repeatedly merge the two lightest items.  The lighter one
	// (a) becomes child[1] and the heavier one (b) becomes child[0].

	stems := make([]stem, 0, h.Len()+1)
	for h.Len() > 1 {
		a := heap.Pop(&h).(queueItem)
		b := heap.Pop(&h).(queueItem)

		var flags uint8
		if a.leaf {
			flags |= leafFlag1
		}
		if b.leaf {
			flags |= leafFlag0
		}

		item := queueItem{weight: a.weight + b.weight, id: len(stems), seq: h.nextSeq}
		h.nextSeq++
		stems = append(stems, stem{flags: flags, child: [2]int{b.id, a.id}})
		heap.Push(&h, item)
	}

	// Step 3: append the sentinel.  Its child[0] is a throwaway leaf whose
	// byte doubles as the stem count in the serialized table; its child[1]
	// is the real root.

	root := len(stems) - 1
	assert.Assertf(root >= 0, "merge produced no stems")
	stems = append(stems, stem{flags: leafFlag0, child: [2]int{len(stems), root}})
	return stems
}

// type queueItem + type queueHeap {{{

type queueItem struct {
	weight uint32
	leaf   bool
	id     int
	seq    int
}

type queueHeap struct {
	list    []queueItem
	nextSeq int
}

func (h *queueHeap) Init() {
	heap.Init(h)
}

func (h *queueHeap) Len() int {
	return len(h.list)
}

func (h *queueHeap) Swap(i, j int) {
	h.list[i], h.list[j] = h.list[j], h.list[i]
}

func (h *queueHeap) Less(i, j int) bool {
	a, b := h.list[i], h.list[j]
	if a.weight != b.weight {
		return a.weight < b.weight
	}
	return a.seq < b.seq
}

func (h *queueHeap) Push(x interface{}) {
	h.list = append(h.list, x.(queueItem))
}

func (h *queueHeap) Pop() interface{} {
	last := uint(len(h.list)) - 1
	x := h.list[last]
	h.list = h.list[:last]
	return x
}

var _ heap.Interface = (*queueHeap)(nil)

// }}}

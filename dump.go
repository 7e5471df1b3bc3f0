package huf28

import (
	"bytes"
	"fmt"
	"io"
)

// Dump writes a programmer-readable listing of an encoded buffer's header and
// node table to the given writer.  The bitstream is summarized, not decoded.
func Dump(w io.Writer, src []byte) (int64, error) {
	h, err := ParseHeader(src)
	if err != nil {
		return 0, err
	}

	var buf bytes.Buffer
	buf.WriteString("Table{\n")
	fmt.Fprintf(&buf, "\tFormat = %#02x\n", h.Format)
	fmt.Fprintf(&buf, "\tLength = %d\n", h.Length)
	fmt.Fprintf(&buf, "\tStemCount = %d\n", h.StemCount)

	// The leaf flags of the stem at a rank live in the entries that point
	// at it, so they are tracked forward as the table is listed.
	tree := src[HeaderLen:h.PayloadOffset()]
	flags := make([]byte, h.StemCount+1)
	flags[0] = leafFlag0
	for rank := 0; rank <= h.StemCount; rank++ {
		fmt.Fprintf(&buf, "\tRank(%d) = {%s, %s}\n", rank,
			dumpEntry(tree, flags, rank, 0, flags[rank]&leafFlag0 != 0),
			dumpEntry(tree, flags, rank, 1, flags[rank]&leafFlag1 != 0))
	}

	fmt.Fprintf(&buf, "\tPayload = %d bytes\n", len(src)-h.PayloadOffset())
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}

func dumpEntry(tree []byte, flags []byte, rank int, i int, leaf bool) string {
	entry := tree[2*rank+i]
	if rank == 0 && i == 0 {
		return fmt.Sprintf("count %d", entry)
	}
	if leaf {
		return fmt.Sprintf("leaf %#02x", entry)
	}
	target := rank + int(entry&0x3f) + 1
	if target < len(flags) {
		flags[target] = entry >> 6
		return fmt.Sprintf("stem @%d", target)
	}
	return fmt.Sprintf("stem @%d (out of tree)", target)
}

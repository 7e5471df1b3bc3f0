package huf28

import (
	"fmt"
)

// Report lists the non-fatal anomalies found while decoding.  Neither one
// stops Decode from returning its best-effort output.
type Report struct {
	// TrailingBytes counts whole bitstream bytes left over after the last
	// output byte was produced.  Usually this is alignment padding from a
	// foreign encoder.
	TrailingBytes int

	// MissingBytes counts output bytes that were still expected when the
	// bitstream ran out.  The output is truncated by this amount.
	MissingBytes int
}

// Clean returns true if no anomaly was found.
func (r Report) Clean() bool {
	return r.TrailingBytes == 0 && r.MissingBytes == 0
}

// String returns a human-readable summary of this Report.
func (r Report) String() string {
	switch {
	case r.Clean():
		return "clean"
	case r.MissingBytes != 0 && r.TrailingBytes != 0:
		return fmt.Sprintf("had %d trailing bytes and ended with %d bytes missing", r.TrailingBytes, r.MissingBytes)
	case r.MissingBytes != 0:
		return fmt.Sprintf("ended with %d bytes missing", r.MissingBytes)
	default:
		return fmt.Sprintf("had %d trailing bytes", r.TrailingBytes)
	}
}

var _ fmt.Stringer = Report{}

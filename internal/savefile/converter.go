package savefile

import (
	"encoding/binary"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/chronos-tachyon/huf28"
)

// Mode selects which direction Convert may go.
type Mode byte

const (
	// Auto compresses decompressed saves and decompresses compressed ones.
	Auto Mode = iota

	// Compress only accepts decompressed saves.
	Compress

	// Decompress only accepts compressed saves.
	Decompress
)

var modeNames = [...]string{"auto", "compress", "decompress"}

// String returns the flag spelling of this Mode.
func (m Mode) String() string {
	if int(m) < len(modeNames) {
		return modeNames[m]
	}
	return fmt.Sprintf("Mode(%d)", byte(m))
}

// ParseMode is the inverse of Mode.String.
func ParseMode(str string) (Mode, error) {
	for index, name := range modeNames {
		if strings.EqualFold(str, name) {
			return Mode(index), nil
		}
	}
	return 0, fmt.Errorf("unknown mode %q, expected one of %s", str, strings.Join(modeNames[:], ", "))
}

// File is one converted save.
type File struct {
	Name string
	Data []byte

	// Anomalies lists non-fatal problems, already logged.
	Anomalies []string
}

// Converter turns compressed saves into decompressed ones and back.
type Converter struct {
	codec *huf28.Codec
	log   *zap.Logger
}

// NewConverter constructs a Converter that reports anomalies to log.
func NewConverter(log *zap.Logger) *Converter {
	if log == nil {
		log = zap.NewNop()
	}
	return &Converter{
		codec: huf28.NewCodec(huf28.WithLogger(log)),
		log:   log,
	}
}

// Convert scans data and converts it in the direction its section calls for.
func (c *Converter) Convert(name string, data []byte, mode Mode) (File, error) {
	sec, err := Scan(data)
	if err != nil {
		return File{}, fmt.Errorf("%s: %w", name, err)
	}

	log := c.log.With(zap.String("file", name), zap.Stringer("section", sec.Kind), zap.Int("offset", sec.Offset))

	switch {
	case sec.Kind == Compressed && mode == Compress:
		return File{}, fmt.Errorf("%s: %w", name, ErrAlreadyCompressed)
	case sec.Kind == Decompressed && mode == Decompress:
		return File{}, fmt.Errorf("%s: %w", name, ErrAlreadyDecompressed)
	case sec.Kind == Compressed:
		return c.unpack(log, name, data, sec)
	default:
		return c.pack(log, name, data, sec.Offset)
	}
}

func (c *Converter) unpack(log *zap.Logger, name string, data []byte, sec Section) (File, error) {
	offset := sec.Offset
	payload := sec.PayloadOffset()
	if len(data) <= payload {
		return File{}, fmt.Errorf("%s: %w: got %d bytes, need more than %d", name, ErrTruncated, len(data), payload)
	}
	if data[payload] != huf28.FormatTag {
		return File{}, fmt.Errorf("%s: %w: got %#02x", name, ErrUnknownCompression, data[payload])
	}

	expectLen := binary.LittleEndian.Uint32(data[offset+8:])
	expectCRC := binary.LittleEndian.Uint32(data[offset+12:])

	dec, report, err := c.codec.DecodeRange(data, payload, len(data)-payload)
	if err != nil {
		return File{}, fmt.Errorf("%s: %w", name, err)
	}

	out := File{Name: OutputName(name, Compressed)}
	if !report.Clean() {
		out.Anomalies = append(out.Anomalies, report.String())
	}
	if uint64(len(dec)) != uint64(expectLen) {
		log.Warn("decompressed size mismatch", zap.Int("actual", len(dec)), zap.Uint32("expected", expectLen))
		out.Anomalies = append(out.Anomalies, fmt.Sprintf("size %d not expected %d", len(dec), expectLen))
	}

	header := data[:offset]
	if crc := Checksum(header, dec); crc != expectCRC {
		log.Warn("checksum mismatch", zap.String("actual", fmt.Sprintf("%08x", crc)), zap.String("expected", fmt.Sprintf("%08x", expectCRC)))
		out.Anomalies = append(out.Anomalies, fmt.Sprintf("crc %08x not expected %08x", crc, expectCRC))
	}

	out.Data = make([]byte, 0, len(header)+len(dec))
	out.Data = append(out.Data, header...)
	out.Data = append(out.Data, dec...)

	log.Debug("decompressed", zap.Int("length", len(dec)))
	return out, nil
}

func (c *Converter) pack(log *zap.Logger, name string, data []byte, offset int) (File, error) {
	body := len(data) - offset
	enc, err := c.codec.EncodeRange(data, offset, body)
	if err != nil {
		return File{}, fmt.Errorf("%s: %w", name, err)
	}

	var hdr [compressedHeaderLen]byte
	binary.LittleEndian.PutUint32(hdr[0:], uint32(Compressed))
	binary.LittleEndian.PutUint32(hdr[4:], compressedVersion)
	binary.LittleEndian.PutUint32(hdr[8:], uint32(body))
	binary.LittleEndian.PutUint32(hdr[12:], Checksum(data))

	out := File{Name: OutputName(name, Decompressed)}
	out.Data = make([]byte, 0, offset+len(hdr)+len(enc))
	out.Data = append(out.Data, data[:offset]...)
	out.Data = append(out.Data, hdr[:]...)
	out.Data = append(out.Data, enc...)

	log.Debug("compressed", zap.Int("length", body), zap.Int("compressedLength", len(enc)))
	return out, nil
}

const (
	encSuffix = "_enc"
	decSuffix = "_dec"
)

// OutputName derives the name of the converted file from the name of a save
// whose section has the given kind.  A suffix added by an earlier conversion
// in the other direction is removed instead of stacking a new one.
func OutputName(name string, kind Kind) string {
	from, to := decSuffix, encSuffix
	if kind == Compressed {
		from, to = encSuffix, decSuffix
	}
	if trimmed := strings.TrimSuffix(name, from); trimmed != name {
		return trimmed
	}
	return name + to
}

package huf28

import (
	"go.uber.org/zap"
)

// Codec encodes and decodes mode 0x28 buffers.  A Codec holds no per-call
// state and is safe for concurrent use.
type Codec struct {
	log *zap.Logger
}

// Option configures a Codec.
type Option func(*Codec)

// WithLogger makes the Codec log decode anomalies and encode statistics to
// log.  A nil log disables logging.
func WithLogger(log *zap.Logger) Option {
	return func(c *Codec) {
		if log == nil {
			log = zap.NewNop()
		}
		c.log = log
	}
}

// NewCodec constructs a Codec.
func NewCodec(opts ...Option) *Codec {
	c := &Codec{log: zap.NewNop()}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

var defaultCodec = NewCodec()

// Encode compresses src.
func (c *Codec) Encode(src []byte) ([]byte, error) {
	out, err := encode(src)
	if err != nil {
		return nil, err
	}
	if ce := c.log.Check(zap.DebugLevel, "encoded buffer"); ce != nil {
		ce.Write(
			zap.Int("length", len(src)),
			zap.Int("stems", int(out[HeaderLen])),
			zap.Int("encodedLength", len(out)))
	}
	return out, nil
}

// Decode decompresses src.  Anomalies are returned in the Report and logged
// at Warn level; they do not produce an error.
func (c *Codec) Decode(src []byte) ([]byte, Report, error) {
	out, report, err := decode(src)
	if err != nil {
		return nil, report, err
	}
	if report.TrailingBytes != 0 {
		c.log.Warn("encoded buffer has trailing bytes", zap.Int("trailing", report.TrailingBytes))
	}
	if report.MissingBytes != 0 {
		c.log.Warn("encoded buffer ended early", zap.Int("missing", report.MissingBytes), zap.Int("expected", cap(out)))
	}
	return out, report, nil
}

// EncodeRange compresses buf[offset:offset+length].
func (c *Codec) EncodeRange(buf []byte, offset, length int) ([]byte, error) {
	src, err := window(buf, offset, length)
	if err != nil {
		return nil, err
	}
	return c.Encode(src)
}

// DecodeRange decompresses buf[offset:offset+length].
func (c *Codec) DecodeRange(buf []byte, offset, length int) ([]byte, Report, error) {
	src, err := window(buf, offset, length)
	if err != nil {
		return nil, Report{}, err
	}
	return c.Decode(src)
}

// Encode compresses src without logging.
func Encode(src []byte) ([]byte, error) {
	return defaultCodec.Encode(src)
}

// EncodeRange compresses buf[offset:offset+length] without logging.
func EncodeRange(buf []byte, offset, length int) ([]byte, error) {
	return defaultCodec.EncodeRange(buf, offset, length)
}

// Decode decompresses src without logging.
func Decode(src []byte) ([]byte, Report, error) {
	return defaultCodec.Decode(src)
}

// DecodeRange decompresses buf[offset:offset+length] without logging.
func DecodeRange(buf []byte, offset, length int) ([]byte, Report, error) {
	return defaultCodec.DecodeRange(buf, offset, length)
}

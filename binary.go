package imgdim

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
)

// readUint reads an unsigned integer of the given byte width from b in the
// given byte order. All decoders funnel their field extraction through this
// one primitive so the offset arithmetic lives in exactly one place.
func readUint(b []byte, order binary.ByteOrder, width int) uint32 {
	switch width {
	case 1:
		return uint32(b[0])
	case 2:
		return uint32(order.Uint16(b))
	case 4:
		return order.Uint32(b)
	default:
		panic("imgdim: unsupported field width")
	}
}

// readHeader reads exactly n header bytes for format f. A short read is a
// malformed header, with whatever bytes were available quoted in the error.
func readHeader(r io.Reader, f Format, n int) ([]byte, error) {
	buf := make([]byte, n)
	m, err := io.ReadFull(r, buf)
	if err != nil {
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			return nil, malformedErr(f, fmt.Sprintf("header truncated to %d byte(s): % X", m, buf[:m]))
		}
		return nil, &DecodeError{Kind: ErrIO, Format: f, Detail: err.Error(), Err: err}
	}
	return buf, nil
}

package imgdim

import (
	"encoding/binary"
	"io"
)

// icoDecoder reads the ICONDIR header and the first directory entry's
// single-byte dimensions. A stored 0 means 256, the largest size the
// one-byte field can describe.
type icoDecoder struct{}

func (icoDecoder) Decode(r io.ReadSeeker) (Size, error) {
	hdr, err := readHeader(r, ICO, 8)
	if err != nil {
		return Size{}, err
	}
	if readUint(hdr[4:6], binary.LittleEndian, 2) == 0 {
		return Size{}, malformedErr(ICO, "image count is zero")
	}
	w := readUint(hdr[6:7], binary.LittleEndian, 1)
	h := readUint(hdr[7:8], binary.LittleEndian, 1)
	if w == 0 {
		w = 256
	}
	if h == 0 {
		h = 256
	}
	return Size{Width: w, Height: h}, nil
}

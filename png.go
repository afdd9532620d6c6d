package imgdim

import (
	"encoding/binary"
	"io"
)

// pngDecoder reads the IHDR chunk, which the PNG spec requires to be the
// first chunk after the 8-byte signature. Width and height are the first
// two fields of its payload.
type pngDecoder struct{}

func (pngDecoder) Decode(r io.ReadSeeker) (Size, error) {
	hdr, err := readHeader(r, PNG, 24)
	if err != nil {
		return Size{}, err
	}
	return Size{
		Width:  readUint(hdr[16:20], binary.BigEndian, 4),
		Height: readUint(hdr[20:24], binary.BigEndian, 4),
	}, nil
}

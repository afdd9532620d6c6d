package imgdim

import (
	"encoding/binary"
	"io"
)

// farbfeldDecoder reads the suckless farbfeld header: the 8-byte ASCII
// "farbfeld" magic followed by big-endian width and height.
type farbfeldDecoder struct{}

func (farbfeldDecoder) Decode(r io.ReadSeeker) (Size, error) {
	hdr, err := readHeader(r, Farbfeld, 16)
	if err != nil {
		return Size{}, err
	}
	return Size{
		Width:  readUint(hdr[8:12], binary.BigEndian, 4),
		Height: readUint(hdr[12:16], binary.BigEndian, 4),
	}, nil
}

package imgdim

import (
	"encoding/binary"
	"io"
)

// gifDecoder reads the logical screen descriptor that immediately follows
// the 6-byte GIF87a/GIF89a signature.
type gifDecoder struct{}

func (gifDecoder) Decode(r io.ReadSeeker) (Size, error) {
	hdr, err := readHeader(r, GIF, 10)
	if err != nil {
		return Size{}, err
	}
	return Size{
		Width:  readUint(hdr[6:8], binary.LittleEndian, 2),
		Height: readUint(hdr[8:10], binary.LittleEndian, 2),
	}, nil
}

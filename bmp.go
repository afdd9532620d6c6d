package imgdim

import (
	"encoding/binary"
	"io"
)

// bmpDecoder reads the width and height fields of the DIB header, which sit
// at fixed offsets past the 14-byte file header for every BITMAPINFOHEADER
// descendant.
type bmpDecoder struct{}

func (bmpDecoder) Decode(r io.ReadSeeker) (Size, error) {
	hdr, err := readHeader(r, BMP, 26)
	if err != nil {
		return Size{}, err
	}
	return Size{
		Width:  readUint(hdr[18:22], binary.LittleEndian, 4),
		Height: readUint(hdr[22:26], binary.LittleEndian, 4),
	}, nil
}

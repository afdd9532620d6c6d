package imgdim

import (
	"encoding/binary"
	"io"
)

// ddsDecoder reads the DDS_HEADER that follows the "DDS " magic. Unusually
// for this family of formats, height is stored before width.
type ddsDecoder struct{}

func (ddsDecoder) Decode(r io.ReadSeeker) (Size, error) {
	hdr, err := readHeader(r, DDS, 20)
	if err != nil {
		return Size{}, err
	}
	return Size{
		Width:  readUint(hdr[16:20], binary.LittleEndian, 4),
		Height: readUint(hdr[12:16], binary.LittleEndian, 4),
	}, nil
}

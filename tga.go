package imgdim

import (
	"encoding/binary"
	"io"
)

// tgaDecoder reads the fixed 16-byte TGA header prefix. TGA carries no
// magic number; by the time this decoder runs, the three-byte heuristic in
// looksLikeTGA has already accepted the file, which means arbitrary binary
// data occasionally lands here. That is an inherent property of the format,
// not something this decoder can detect.
type tgaDecoder struct{}

func (tgaDecoder) Decode(r io.ReadSeeker) (Size, error) {
	hdr, err := readHeader(r, TGA, 16)
	if err != nil {
		return Size{}, err
	}
	return Size{
		Width:  readUint(hdr[12:14], binary.LittleEndian, 2),
		Height: readUint(hdr[14:16], binary.LittleEndian, 2),
	}, nil
}

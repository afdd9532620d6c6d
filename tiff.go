package imgdim

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
)

// TIFF tags carrying the dimensions (p. 28-41 of the TIFF 6.0 spec).
const (
	tagImageWidth  = 256
	tagImageLength = 257

	ifdEntryLen = 12
)

// tiffDecoder reads the byte-order mark, follows the offset to the first
// image file directory, and scans its 12-byte entries for the width and
// length tags. Only the first IFD is inspected.
type tiffDecoder struct{}

func (tiffDecoder) Decode(r io.ReadSeeker) (Size, error) {
	hdr, err := readHeader(r, TIFF, 8)
	if err != nil {
		return Size{}, err
	}

	var order binary.ByteOrder
	switch string(hdr[0:2]) {
	case "II":
		order = binary.LittleEndian
	case "MM":
		order = binary.BigEndian
	default:
		// The dispatcher only hands us II/MM files, but DetectReader
		// callers can feed a decoder directly.
		return Size{}, malformedErr(TIFF, fmt.Sprintf("byte order % X", hdr[0:2]))
	}

	ifdOffset := readUint(hdr[4:8], order, 4)
	if _, err := r.Seek(int64(ifdOffset), io.SeekStart); err != nil {
		return Size{}, malformedErr(TIFF, fmt.Sprintf("IFD offset %d out of range", ifdOffset))
	}

	var countBuf [2]byte
	if _, err := io.ReadFull(r, countBuf[:]); err != nil {
		return Size{}, malformedErr(TIFF, "IFD entry count unreadable")
	}
	count := int(readUint(countBuf[:], order, 2))

	var (
		sz         Size
		haveWidth  bool
		haveHeight bool
	)
	entry := make([]byte, ifdEntryLen)
	for i := 0; i < count && !(haveWidth && haveHeight); i++ {
		if _, err := io.ReadFull(r, entry); err != nil {
			if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
				return Size{}, malformedErr(TIFF, fmt.Sprintf("IFD entry %d of %d truncated", i+1, count))
			}
			return Size{}, &DecodeError{Kind: ErrIO, Format: TIFF, Detail: err.Error(), Err: err}
		}
		switch readUint(entry[0:2], order, 2) {
		case tagImageWidth:
			sz.Width = readUint(entry[8:12], order, 4)
			haveWidth = true
		case tagImageLength:
			sz.Height = readUint(entry[8:12], order, 4)
			haveHeight = true
		}
	}

	switch {
	case !haveWidth:
		return Size{}, missingErr(TIFF, "ImageWidth tag 256")
	case !haveHeight:
		return Size{}, missingErr(TIFF, "ImageLength tag 257")
	}
	return sz, nil
}

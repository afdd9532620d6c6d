package imgdim

import (
	"bufio"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
)

const (
	sof0Marker = 0xC0 // Start Of Frame (baseline)
	sof2Marker = 0xC2 // Start Of Frame (progressive)
)

// jpegDecoder walks the marker segments until it hits a start-of-frame
// marker, whose payload carries the frame dimensions. Every other marker is
// skipped via its self-inclusive 2-byte length field.
type jpegDecoder struct{}

func (jpegDecoder) Decode(r io.ReadSeeker) (Size, error) {
	br := bufio.NewReader(r)

	// SOI marker.
	if _, err := br.Discard(2); err != nil {
		return Size{}, jpegEOF(err)
	}

	for {
		b, err := br.ReadByte()
		if err != nil {
			return Size{}, jpegEOF(err)
		}
		if b != 0xFF {
			continue
		}
		marker, err := br.ReadByte()
		if err != nil {
			return Size{}, jpegEOF(err)
		}

		if marker == sof0Marker || marker == sof2Marker {
			// [length u16][precision][height u16][width u16]
			var sof [7]byte
			if _, err := io.ReadFull(br, sof[:]); err != nil {
				return Size{}, jpegEOF(err)
			}
			return Size{
				Width:  readUint(sof[5:7], binary.BigEndian, 2),
				Height: readUint(sof[3:5], binary.BigEndian, 2),
			}, nil
		}

		// Any other marker: skip its payload. The length field counts
		// itself, so the payload is length-2 bytes.
		var lenbuf [2]byte
		if _, err := io.ReadFull(br, lenbuf[:]); err != nil {
			return Size{}, jpegEOF(err)
		}
		length := int(readUint(lenbuf[:], binary.BigEndian, 2))
		if length < 2 {
			return Size{}, malformedErr(JPEG, fmt.Sprintf("segment length %d", length))
		}
		if _, err := br.Discard(length - 2); err != nil {
			return Size{}, jpegEOF(err)
		}
	}
}

// jpegEOF maps end-of-stream to the missing-field failure (no SOF marker
// was found before the data ran out); anything else is an i/o error.
func jpegEOF(err error) error {
	if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		return missingErr(JPEG, "start-of-frame marker")
	}
	return &DecodeError{Kind: ErrIO, Format: JPEG, Detail: err.Error(), Err: err}
}

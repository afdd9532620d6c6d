package imgdim

import (
	"errors"
	"io"
	"os"
)

// Size holds the pixel dimensions of an image.
type Size struct {
	Width  uint32
	Height uint32
}

// Decoder extracts pixel dimensions from an image header. Implementations
// receive a reader positioned at offset 0 and must not close it; the reader
// is owned by the caller.
type Decoder interface {
	Decode(r io.ReadSeeker) (Size, error)
}

// decoders maps each sniffable format to its header decoder.
var decoders = map[Format]Decoder{
	PNG:      pngDecoder{},
	JPEG:     jpegDecoder{},
	GIF:      gifDecoder{},
	BMP:      bmpDecoder{},
	ICO:      icoDecoder{},
	TIFF:     tiffDecoder{},
	PNM:      pnmDecoder{},
	DDS:      ddsDecoder{},
	WebP:     webpDecoder{},
	TGA:      tgaDecoder{},
	Farbfeld: farbfeldDecoder{},
}

// Detect opens the file at path and returns its pixel dimensions and the
// detected format. Only the header is read; pixel data is never decoded.
//
// On failure the returned error is a *DecodeError wrapping one of the
// package sentinels, and the returned Size is always zero. A zero Size is
// never paired with a nil error.
func Detect(path string) (Size, Format, error) {
	f, err := os.Open(path)
	if err != nil {
		return Size{}, FormatUnknown, ioErr(path, err)
	}
	defer f.Close()

	sz, format, err := DetectReader(f)
	if err != nil {
		var de *DecodeError
		if errors.As(err, &de) {
			de.Path = path
		}
		return Size{}, format, err
	}
	return sz, format, nil
}

// DetectReader is Detect for callers that already hold an open reader, such
// as a file served from an archive. The reader must be positioned at offset
// 0 and remains open when DetectReader returns.
func DetectReader(r io.ReadSeeker) (Size, Format, error) {
	sig := make([]byte, sniffLen)
	n, err := io.ReadFull(r, sig)
	if err != nil {
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			return Size{}, FormatUnknown, truncatedErr(sig[:n])
		}
		return Size{}, FormatUnknown, ioErr("", err)
	}

	format := sniffFormat(sig)
	if format == FormatUnknown {
		return Size{}, FormatUnknown, unsupportedErr(sig)
	}

	// Decoders expect to see the whole file from the start.
	if _, err := r.Seek(0, io.SeekStart); err != nil {
		return Size{}, format, ioErr("", err)
	}

	sz, err := decoders[format].Decode(r)
	if err != nil {
		return Size{}, format, err
	}
	return sz, format, nil
}

package imgdim

import "bytes"

// Format identifies an image container format.
type Format int

const (
	FormatUnknown Format = iota
	PNG
	JPEG
	GIF
	BMP
	ICO
	TIFF
	PNM
	DDS
	WebP
	TGA
	Farbfeld
)

func (f Format) String() string {
	switch f {
	case PNG:
		return "PNG"
	case JPEG:
		return "JPEG"
	case GIF:
		return "GIF"
	case BMP:
		return "BMP"
	case ICO:
		return "ICO"
	case TIFF:
		return "TIFF"
	case PNM:
		return "PNM"
	case DDS:
		return "DDS"
	case WebP:
		return "WebP"
	case TGA:
		return "TGA"
	case Farbfeld:
		return "farbfeld"
	default:
		return "unknown"
	}
}

// sniffLen is how many leading bytes classification needs. Files shorter
// than this are rejected before any decoder runs.
const sniffLen = 8

var (
	pngSig  = []byte{0x89, 0x50, 0x4E, 0x47}
	jpegSig = []byte{0xFF, 0xD8}
	icoSig  = []byte{0x00, 0x00, 0x01, 0x00}
)

// tgaImageTypes are the image-type codes the TGA heuristic accepts.
// 0-3 are the uncompressed types, 9-11 their RLE counterparts, 32/33 the
// rarely seen Huffman variants.
var tgaImageTypes = [256]bool{
	0: true, 1: true, 2: true, 3: true,
	9: true, 10: true, 11: true,
	32: true, 33: true,
}

// sniffFormat classifies the leading bytes of a file. The checks run in
// priority order; the first match wins. TGA has no magic number, so its
// heuristic is consulted only after every signature has failed, and it can
// misclassify arbitrary binary data (a known limitation of the format).
func sniffFormat(sig []byte) Format {
	switch {
	case bytes.HasPrefix(sig, pngSig):
		return PNG
	case bytes.HasPrefix(sig, jpegSig):
		return JPEG
	case bytes.HasPrefix(sig, []byte("GIF")):
		return GIF
	case bytes.HasPrefix(sig, []byte("BM")):
		return BMP
	case bytes.HasPrefix(sig, icoSig):
		return ICO
	case bytes.HasPrefix(sig, []byte("II")) || bytes.HasPrefix(sig, []byte("MM")):
		return TIFF
	case sig[0] == 'P' && sig[1] >= '1' && sig[1] <= '6':
		return PNM
	case bytes.HasPrefix(sig, []byte("DDS ")):
		return DDS
	case bytes.HasPrefix(sig, []byte("RIFF")):
		return WebP
	case looksLikeTGA(sig):
		return TGA
	case bytes.Equal(sig, []byte("farbfeld")):
		return Farbfeld
	default:
		return FormatUnknown
	}
}

// looksLikeTGA applies the three-byte TGA header heuristic: any ID length,
// color-map type 0 or 1, and a known image-type code.
func looksLikeTGA(sig []byte) bool {
	if len(sig) < 3 {
		return false
	}
	// sig[0] is the ID length; every byte value is valid there.
	return (sig[1] == 0 || sig[1] == 1) && tgaImageTypes[sig[2]]
}

package imgdim

import (
	"io"

	"golang.org/x/image/webp"
)

// webpDecoder sizes RIFF/WEBP containers. WebP's dimensions live inside the
// VP8/VP8L/VP8X bitstream chunks rather than at a fixed header offset, so
// this delegates the chunk walk to x/image's config decoder, which stops
// before any pixel data.
type webpDecoder struct{}

func (webpDecoder) Decode(r io.ReadSeeker) (Size, error) {
	cfg, err := webp.DecodeConfig(r)
	if err != nil {
		return Size{}, &DecodeError{Kind: ErrMalformed, Format: WebP, Detail: err.Error(), Err: err}
	}
	return Size{Width: uint32(cfg.Width), Height: uint32(cfg.Height)}, nil
}

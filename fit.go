package imgdim

import (
	"image"

	"github.com/nfnt/resize"
)

// FitMode defines how an image is scaled into a bounding box, following the
// CSS object-fit keywords.
type FitMode int

const (
	// FitFill stretches the image to the box exactly, ignoring aspect ratio.
	FitFill FitMode = iota
	// FitContain scales the image to the largest size that fits entirely
	// inside the box while keeping its aspect ratio.
	FitContain
	// FitCover scales the image to the smallest size that covers the whole
	// box while keeping its aspect ratio; the overflow is cropped.
	FitCover
	// FitNone keeps the image at its natural size, centered in the box.
	FitNone
	// FitScaleDown behaves like FitNone unless the image exceeds the box,
	// in which case it behaves like FitContain.
	FitScaleDown
)

func (m FitMode) String() string {
	switch m {
	case FitFill:
		return "fill"
	case FitContain:
		return "contain"
	case FitCover:
		return "cover"
	case FitNone:
		return "none"
	case FitScaleDown:
		return "scale-down"
	default:
		return "unknown"
	}
}

// Placement describes where a scaled image lands inside a bounding box.
// X and Y are the offsets of the image's top-left corner relative to the
// box; FitCover produces negative offsets for the cropped overflow.
type Placement struct {
	Size Size
	X, Y int
}

// Fit computes the placement of an image of size src inside box under the
// given mode. Pure integer math; nothing is decoded or resized.
func Fit(src, box Size, mode FitMode) Placement {
	if src.Width == 0 || src.Height == 0 {
		return Placement{X: int(box.Width) / 2, Y: int(box.Height) / 2}
	}

	switch mode {
	case FitFill:
		return Placement{Size: box}
	case FitContain:
		return center(scaleAspect(src, box, false), box)
	case FitCover:
		return center(scaleAspect(src, box, true), box)
	case FitNone:
		return center(src, box)
	case FitScaleDown:
		if src.Width <= box.Width && src.Height <= box.Height {
			return center(src, box)
		}
		return center(scaleAspect(src, box, false), box)
	default:
		return Placement{Size: box}
	}
}

// scaleAspect scales src to box preserving aspect ratio. With cover set the
// result is the smallest covering size, otherwise the largest contained one.
func scaleAspect(src, box Size, cover bool) Size {
	// Cross-multiply to compare src and box aspect ratios without floats.
	wide := uint64(src.Width)*uint64(box.Height) > uint64(box.Width)*uint64(src.Height)
	if wide != cover {
		// Bound by width.
		return Size{
			Width:  box.Width,
			Height: uint32(uint64(src.Height) * uint64(box.Width) / uint64(src.Width)),
		}
	}
	// Bound by height.
	return Size{
		Width:  uint32(uint64(src.Width) * uint64(box.Height) / uint64(src.Height)),
		Height: box.Height,
	}
}

func center(sz, box Size) Placement {
	return Placement{
		Size: sz,
		X:    (int(box.Width) - int(sz.Width)) / 2,
		Y:    (int(box.Height) - int(sz.Height)) / 2,
	}
}

// ResizeToFit scales img into box under mode and returns the result, cropped
// to the box for FitCover. Downscales of large images use bilinear
// interpolation; everything else uses nearest neighbor, which is faster and
// indistinguishable at terminal cell sizes.
func ResizeToFit(img image.Image, box Size, mode FitMode) image.Image {
	bounds := img.Bounds()
	src := Size{Width: uint32(bounds.Dx()), Height: uint32(bounds.Dy())}
	p := Fit(src, box, mode)

	if p.Size == src {
		return img
	}

	interp := resize.NearestNeighbor
	if uint64(src.Width)*uint64(src.Height) > 4*uint64(p.Size.Width)*uint64(p.Size.Height) {
		interp = resize.Bilinear
	}
	scaled := resize.Resize(uint(p.Size.Width), uint(p.Size.Height), img, interp)

	if mode == FitCover && (p.Size.Width > box.Width || p.Size.Height > box.Height) {
		return cropCenter(scaled, int(box.Width), int(box.Height))
	}
	return scaled
}

// cropCenter crops img to the target dimensions around its center.
func cropCenter(img image.Image, targetWidth, targetHeight int) image.Image {
	bounds := img.Bounds()
	srcW, srcH := bounds.Dx(), bounds.Dy()
	if targetWidth >= srcW && targetHeight >= srcH {
		return img
	}

	offsetX := max((srcW-targetWidth)/2, 0)
	offsetY := max((srcH-targetHeight)/2, 0)
	targetWidth = min(targetWidth, srcW-offsetX)
	targetHeight = min(targetHeight, srcH-offsetY)

	cropped := image.NewRGBA(image.Rect(0, 0, targetWidth, targetHeight))
	for y := 0; y < targetHeight; y++ {
		for x := 0; x < targetWidth; x++ {
			cropped.Set(x, y, img.At(bounds.Min.X+offsetX+x, bounds.Min.Y+offsetY+y))
		}
	}
	return cropped
}

/*
Package imgdim extracts pixel dimensions from image files by reading only
their headers, without decoding any pixel data.

The package sniffs the file's leading bytes to identify the container format,
then dispatches to a format-specific decoder that reads just enough of the
header to recover width and height. It supports PNG, JPEG, GIF, BMP, ICO,
TIFF, PNM, DDS, TGA, farbfeld and WebP.

Main features:

  - Format detection via magic bytes (TGA via a documented heuristic)
  - Header-only reads, so sizing a multi-megabyte image costs a few dozen bytes
  - Typed errors distinguishing unreadable files, unknown formats, truncated
    or malformed headers, and missing dimension fields
  - Stateless API safe for unrestricted concurrent use
  - Object-fit placement math (contain/cover/fill/none/scale-down) for
    callers that scale images into a bounding box

Basic Usage:

	sz, format, err := imgdim.Detect("wallpaper.png")
	if err != nil {
	    log.Fatal(err)
	}
	fmt.Printf("%s is %dx%d %s\n", "wallpaper.png", sz.Width, sz.Height, format)

Callers holding an open reader can skip the file management:

	sz, format, err := imgdim.DetectReader(f)

Error Handling:

	_, _, err := imgdim.Detect("notes.txt")
	if errors.Is(err, imgdim.ErrUnsupported) {
	    // not an image we recognize; try the next candidate
	}

Every failure is a returned error, never a panic, so callers implementing
candidate-selection retry loops can react to each one individually.
*/
package imgdim

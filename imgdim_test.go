package imgdim

import (
	"bytes"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetectRoundTrip(t *testing.T) {
	tests := []struct {
		name   string
		data   []byte
		format Format
		want   Size
	}{
		{name: "png", data: makePNG(1920, 1080), format: PNG, want: Size{1920, 1080}},
		{name: "gif", data: makeGIF(184, 166), format: GIF, want: Size{184, 166}},
		{name: "bmp", data: makeBMP(640, 480), format: BMP, want: Size{640, 480}},
		{name: "ico", data: makeICO(1, 48, 48), format: ICO, want: Size{48, 48}},
		{name: "dds", data: makeDDS(512, 256), format: DDS, want: Size{512, 256}},
		{name: "farbfeld", data: makeFarbfeld(320, 200), format: Farbfeld, want: Size{320, 200}},
		{name: "tga", data: makeTGA(2, 800, 600), format: TGA, want: Size{800, 600}},
		{name: "jpeg", data: makeJPEG(0xC0, 858, 1126), format: JPEG, want: Size{858, 1126}},
		{name: "tiff", data: makeTIFF("II", tiffEntry{256, 3507}, tiffEntry{257, 2480}), format: TIFF, want: Size{3507, 2480}},
		{name: "pnm", data: []byte("P6\n640 480\n255\n"), format: PNM, want: Size{640, 480}},
		{name: "webp", data: makeWebP(1024, 768), format: WebP, want: Size{1024, 768}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeTemp(t, "img."+tt.name, tt.data)
			sz, format, err := Detect(path)
			require.NoError(t, err)
			assert.Equal(t, tt.format, format)
			assert.Equal(t, tt.want, sz)
		})
	}
}

func TestDetectEdgeDimensions(t *testing.T) {
	// Zero and one are legal header values; a zero dimension decodes
	// permissively rather than failing.
	sz, _, err := DetectReader(bytes.NewReader(makePNG(0, 0)))
	require.NoError(t, err)
	assert.Equal(t, Size{0, 0}, sz)

	sz, _, err = DetectReader(bytes.NewReader(makeGIF(1, 1)))
	require.NoError(t, err)
	assert.Equal(t, Size{1, 1}, sz)

	sz, _, err = DetectReader(bytes.NewReader(makePNG(0xFFFFFFFF, 0xFFFFFFFF)))
	require.NoError(t, err)
	assert.Equal(t, Size{0xFFFFFFFF, 0xFFFFFFFF}, sz)
}

func TestDetectMissingFile(t *testing.T) {
	_, _, err := Detect("testdata/no-such-file.png")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrIO)
}

func TestDetectShortFile(t *testing.T) {
	// Anything under the 8-byte sniff window fails before a decoder runs,
	// even when the bytes present look like a real signature.
	for _, data := range [][]byte{{}, {0x89}, []byte("GIF89"), {0xFF, 0xD8, 0xFF, 0xE0}} {
		path := writeTemp(t, "short.bin", data)
		_, format, err := Detect(path)
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrTruncated)
		assert.Equal(t, FormatUnknown, format)
	}
}

func TestDetectUnsupportedSignature(t *testing.T) {
	path := writeTemp(t, "zeros.bin", make([]byte, 64))
	_, format, err := Detect(path)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnsupported)
	assert.Equal(t, FormatUnknown, format)

	var de *DecodeError
	require.ErrorAs(t, err, &de)
	assert.Equal(t, path, de.Path)
	assert.Contains(t, de.Detail, "00 00 00 00")
}

func TestDetectTruncatedHeaders(t *testing.T) {
	// Valid headers cut below their minimum read fail as malformed, never
	// with fabricated dimensions.
	tests := []struct {
		name string
		data []byte
	}{
		{name: "png", data: makePNG(100, 100)[:16]},
		{name: "gif", data: makeGIF(100, 100)[:9]},
		{name: "bmp", data: makeBMP(100, 100)[:20]},
		{name: "dds", data: makeDDS(100, 100)[:12]},
		{name: "farbfeld", data: makeFarbfeld(100, 100)[:12]},
		{name: "tga", data: makeTGA(2, 100, 100)[:10]},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sz, _, err := DetectReader(bytes.NewReader(tt.data))
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrMalformed)
			assert.Equal(t, Size{}, sz)
		})
	}
}

func TestDetectConcurrent(t *testing.T) {
	valid := writeTemp(t, "ok.png", makePNG(1024, 768))
	invalid := writeTemp(t, "bad.bin", []byte("definitely not an image, but long enough to sniff"))

	var wg sync.WaitGroup
	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			if i%2 == 0 {
				sz, format, err := Detect(valid)
				assert.NoError(t, err)
				assert.Equal(t, PNG, format)
				assert.Equal(t, Size{1024, 768}, sz)
			} else {
				_, _, err := Detect(invalid)
				assert.ErrorIs(t, err, ErrUnsupported)
			}
		}(i)
	}
	wg.Wait()
}

func TestDecodeErrorMessage(t *testing.T) {
	_, _, err := Detect("testdata/nope.gif")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "testdata/nope.gif")

	_, _, err = DetectReader(bytes.NewReader(makeICO(0, 16, 16)))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ICO")
	assert.Contains(t, err.Error(), "image count")
}

func ExampleDetect() {
	sz, format, err := Detect("testdata/wallpaper.png")
	if err != nil {
		fmt.Println("skipping candidate:", err)
		return
	}
	fmt.Printf("%dx%d %s\n", sz.Width, sz.Height, format)
}

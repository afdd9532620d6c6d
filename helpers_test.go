package imgdim

import (
	"bytes"
	"encoding/binary"
	"os"
	"path/filepath"
	"testing"
)

// The builders below construct minimal valid headers with known dimensions
// so decode tests can round-trip exact values without binary fixtures.

func makePNG(w, h uint32) []byte {
	buf := make([]byte, 24)
	copy(buf, []byte{0x89, 'P', 'N', 'G', 0x0D, 0x0A, 0x1A, 0x0A})
	copy(buf[8:], []byte{0x00, 0x00, 0x00, 0x0D, 'I', 'H', 'D', 'R'})
	binary.BigEndian.PutUint32(buf[16:], w)
	binary.BigEndian.PutUint32(buf[20:], h)
	return buf
}

func makeGIF(w, h uint16) []byte {
	buf := make([]byte, 10)
	copy(buf, "GIF89a")
	binary.LittleEndian.PutUint16(buf[6:], w)
	binary.LittleEndian.PutUint16(buf[8:], h)
	return buf
}

func makeBMP(w, h uint32) []byte {
	buf := make([]byte, 26)
	copy(buf, "BM")
	buf[14] = 40 // BITMAPINFOHEADER size
	binary.LittleEndian.PutUint32(buf[18:], w)
	binary.LittleEndian.PutUint32(buf[22:], h)
	return buf
}

func makeICO(count uint16, w, h byte) []byte {
	buf := make([]byte, 8)
	buf[2] = 0x01
	binary.LittleEndian.PutUint16(buf[4:], count)
	buf[6] = w
	buf[7] = h
	return buf
}

func makeDDS(w, h uint32) []byte {
	buf := make([]byte, 20)
	copy(buf, "DDS ")
	binary.LittleEndian.PutUint32(buf[4:], 124) // header size
	binary.LittleEndian.PutUint32(buf[12:], h)
	binary.LittleEndian.PutUint32(buf[16:], w)
	return buf
}

func makeFarbfeld(w, h uint32) []byte {
	buf := make([]byte, 16)
	copy(buf, "farbfeld")
	binary.BigEndian.PutUint32(buf[8:], w)
	binary.BigEndian.PutUint32(buf[12:], h)
	return buf
}

func makeTGA(imageType byte, w, h uint16) []byte {
	buf := make([]byte, 16)
	buf[1] = 0 // no color map
	buf[2] = imageType
	binary.LittleEndian.PutUint16(buf[12:], w)
	binary.LittleEndian.PutUint16(buf[14:], h)
	return buf
}

type tiffEntry struct {
	tag   uint16
	value uint32
}

// makeTIFF builds a header plus one IFD holding the given entries, using
// "II" or "MM" byte order.
func makeTIFF(bom string, entries ...tiffEntry) []byte {
	var order binary.ByteOrder = binary.LittleEndian
	if bom == "MM" {
		order = binary.BigEndian
	}

	buf := make([]byte, 8)
	copy(buf, bom)
	order.PutUint16(buf[2:], 42)
	order.PutUint32(buf[4:], 8) // IFD follows the header directly

	ifd := make([]byte, 2+len(entries)*12)
	order.PutUint16(ifd, uint16(len(entries)))
	for i, e := range entries {
		entry := ifd[2+i*12:]
		order.PutUint16(entry[0:], e.tag)
		order.PutUint16(entry[2:], 4) // LONG
		order.PutUint32(entry[4:], 1)
		order.PutUint32(entry[8:], e.value)
	}
	return append(buf, ifd...)
}

// makeJPEG builds an SOI, the given skippable segments (marker byte plus
// payload), and finally an SOF chunk with the dimensions.
func makeJPEG(sofMarker byte, w, h uint16, segments ...[]byte) []byte {
	var buf bytes.Buffer
	buf.Write([]byte{0xFF, 0xD8})
	for _, seg := range segments {
		buf.WriteByte(0xFF)
		buf.WriteByte(seg[0])
		binary.Write(&buf, binary.BigEndian, uint16(len(seg)-1+2))
		buf.Write(seg[1:])
	}
	buf.Write([]byte{0xFF, sofMarker})
	sof := make([]byte, 7)
	binary.BigEndian.PutUint16(sof, 11) // segment length
	sof[2] = 8                          // precision
	binary.BigEndian.PutUint16(sof[3:], h)
	binary.BigEndian.PutUint16(sof[5:], w)
	buf.Write(sof)
	return buf.Bytes()
}

// makeWebP builds a RIFF container holding a minimal VP8L header with the
// 14-bit packed dimensions.
func makeWebP(w, h uint32) []byte {
	packed := (w - 1) | (h-1)<<14
	payload := make([]byte, 5)
	payload[0] = 0x2F // VP8L magic
	binary.LittleEndian.PutUint32(payload[1:], packed)

	var buf bytes.Buffer
	buf.WriteString("RIFF")
	binary.Write(&buf, binary.LittleEndian, uint32(4+8+len(payload)+1))
	buf.WriteString("WEBP")
	buf.WriteString("VP8L")
	binary.Write(&buf, binary.LittleEndian, uint32(len(payload)))
	buf.Write(payload)
	buf.WriteByte(0) // chunk padding
	return buf.Bytes()
}

// writeTemp drops data into a throwaway file and returns its path.
func writeTemp(t *testing.T, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

// Package exiftest builds minimal EXIF-bearing images for tests.
package exiftest

import (
	"bytes"
	"encoding/binary"
)

const (
	tagExifIFDPointer   = 0x8769
	tagDateTimeOriginal = 0x9003

	typeASCII = 2
	typeShort = 3
	typeLong  = 4
)

// TIFF returns a little-endian TIFF whose Exif IFD holds DateTimeOriginal set to
// value. A NUL terminator is appended.
func TIFF(value string) []byte {
	return build(typeASCII, append([]byte(value), 0))
}

// TIFFWithShortDate stores DateTimeOriginal with a SHORT type instead of ASCII.
func TIFFWithShortDate() []byte {
	return build(typeShort, []byte{0x07, 0xE5, 0, 0})
}

// TIFFWithoutDate returns a TIFF with an empty Exif IFD.
func TIFFWithoutDate() []byte {
	var buf bytes.Buffer
	le := binary.LittleEndian
	buf.WriteString("II")
	binary.Write(&buf, le, uint16(42))
	binary.Write(&buf, le, uint32(8))
	// IFD0 at 8: one entry, exif pointer to 26
	binary.Write(&buf, le, uint16(1))
	writeEntry(&buf, tagExifIFDPointer, typeLong, 1, 26)
	binary.Write(&buf, le, uint32(0))
	// Exif IFD at 26: no entries
	binary.Write(&buf, le, uint16(0))
	binary.Write(&buf, le, uint32(0))
	return buf.Bytes()
}

// JPEG wraps tiff in an APP1 Exif segment between SOI and EOI markers.
func JPEG(tiff []byte) []byte {
	var buf bytes.Buffer
	buf.Write([]byte{0xFF, 0xD8, 0xFF, 0xE1})
	binary.Write(&buf, binary.BigEndian, uint16(2+6+len(tiff)))
	buf.WriteString("Exif\x00\x00")
	buf.Write(tiff)
	buf.Write([]byte{0xFF, 0xD9})
	return buf.Bytes()
}

func build(typ uint16, data []byte) []byte {
	const (
		ifd0Offset = 8
		exifOffset = ifd0Offset + 2 + 12 + 4
		dataOffset = exifOffset + 2 + 12 + 4
	)
	le := binary.LittleEndian
	var buf bytes.Buffer
	buf.WriteString("II")
	binary.Write(&buf, le, uint16(42))
	binary.Write(&buf, le, uint32(ifd0Offset))

	binary.Write(&buf, le, uint16(1))
	writeEntry(&buf, tagExifIFDPointer, typeLong, 1, exifOffset)
	binary.Write(&buf, le, uint32(0))

	binary.Write(&buf, le, uint16(1))
	count := uint32(len(data))
	if typ == typeShort {
		count = 1
	}
	if len(data) > 4 {
		writeEntry(&buf, tagDateTimeOriginal, typ, count, dataOffset)
	} else {
		binary.Write(&buf, le, uint16(tagDateTimeOriginal))
		binary.Write(&buf, le, typ)
		binary.Write(&buf, le, count)
		buf.Write(data)
		buf.Write(make([]byte, 4-len(data)))
	}
	binary.Write(&buf, le, uint32(0))

	if len(data) > 4 {
		buf.Write(data)
	}
	return buf.Bytes()
}

func writeEntry(buf *bytes.Buffer, tag, typ uint16, count, value uint32) {
	le := binary.LittleEndian
	binary.Write(buf, le, tag)
	binary.Write(buf, le, typ)
	binary.Write(buf, le, count)
	binary.Write(buf, le, value)
}

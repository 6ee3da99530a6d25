package domain

import (
	"fmt"
	"strconv"
	"time"

	"github.com/pkg/errors"
)

// DateTime is a wall-clock capture time. It carries no zone and no sub-second
// precision, and its fields are not checked against the calendar.
type DateTime struct {
	Year   uint16
	Month  uint8
	Day    uint8
	Hour   uint8
	Minute uint8
	Second uint8
}

var (
	ErrBlankDateTime   = errors.New("blank date/time value")
	ErrInvalidDateTime = errors.New("invalid date/time format")
)

const exifDateTimeLen = 19

var blankSentinels = []string{
	"    :  :     :  :  ",
	"                   ",
}

// ParseExifDateTime parses the EXIF layout "YYYY:MM:DD HH:MM:SS". Bytes past the
// 19th are ignored.
func ParseExifDateTime(raw []byte) (DateTime, error) {
	for _, blank := range blankSentinels {
		if string(raw) == blank {
			return DateTime{}, ErrBlankDateTime
		}
	}
	if len(raw) < exifDateTimeLen {
		return DateTime{}, errors.Wrapf(ErrInvalidDateTime, "too short (%d bytes)", len(raw))
	}
	if raw[4] != ':' || raw[7] != ':' || raw[10] != ' ' || raw[13] != ':' || raw[16] != ':' {
		return DateTime{}, errors.Wrapf(ErrInvalidDateTime, "bad delimiters in %q", raw[:exifDateTimeLen])
	}

	year, err := parseField(raw[0:4], 16)
	if err != nil {
		return DateTime{}, err
	}
	var small [5]uint64
	for i, off := range []int{5, 8, 11, 14, 17} {
		small[i], err = parseField(raw[off:off+2], 8)
		if err != nil {
			return DateTime{}, err
		}
	}

	return DateTime{
		Year:   uint16(year),
		Month:  uint8(small[0]),
		Day:    uint8(small[1]),
		Hour:   uint8(small[2]),
		Minute: uint8(small[3]),
		Second: uint8(small[4]),
	}, nil
}

// parseField accepts ASCII digits only; strconv alone would also take a sign.
func parseField(field []byte, bits int) (uint64, error) {
	for _, b := range field {
		if b < '0' || b > '9' {
			return 0, errors.Wrapf(ErrInvalidDateTime, "non-digit in field %q", field)
		}
	}
	v, err := strconv.ParseUint(string(field), 10, bits)
	if err != nil {
		return 0, errors.Wrapf(ErrInvalidDateTime, "field %q: %v", field, err)
	}
	return v, nil
}

// FromTime projects t, in local time, onto a DateTime.
func FromTime(t time.Time) (DateTime, error) {
	t = t.Local()
	if t.Year() < 0 || t.Year() > 0xFFFF {
		return DateTime{}, errors.Errorf("year %d out of range", t.Year())
	}
	return DateTime{
		Year:   uint16(t.Year()),
		Month:  uint8(t.Month()),
		Day:    uint8(t.Day()),
		Hour:   uint8(t.Hour()),
		Minute: uint8(t.Minute()),
		Second: uint8(t.Second()),
	}, nil
}

// YearDir is the name of the year bucket directory.
func (d DateTime) YearDir() string {
	return strconv.Itoa(int(d.Year))
}

// FileName builds the upload-style name. A positive counter is appended to the
// seconds with no separator, so 10.00.00 becomes 10.00.001.
func (d DateTime) FileName(counter int, ext string) string {
	name := fmt.Sprintf("%04d-%02d-%02d %02d.%02d.%02d", d.Year, d.Month, d.Day, d.Hour, d.Minute, d.Second)
	if counter > 0 {
		name += strconv.Itoa(counter)
	}
	if ext != "" {
		name += "." + ext
	}
	return name
}

func (d DateTime) String() string {
	return fmt.Sprintf("%04d-%02d-%02d %02d:%02d:%02d", d.Year, d.Month, d.Day, d.Hour, d.Minute, d.Second)
}

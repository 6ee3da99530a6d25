package domain

import (
	"errors"
	"testing"
	"time"
)

func TestParseExifDateTime(t *testing.T) {
	got, err := ParseExifDateTime([]byte("2021:06:15 08:30:07"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := DateTime{Year: 2021, Month: 6, Day: 15, Hour: 8, Minute: 30, Second: 7}
	if got != want {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestParseExifDateTimeIgnoresTrailingBytes(t *testing.T) {
	got, err := ParseExifDateTime([]byte("1999:12:31 23:59:58+01:00"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Year != 1999 || got.Second != 58 {
		t.Fatalf("unexpected value: %v", got)
	}
}

func TestParseExifDateTimeAcceptsImpossibleDates(t *testing.T) {
	got, err := ParseExifDateTime([]byte("2023:02:31 25:61:99"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Day != 31 || got.Hour != 25 || got.Minute != 61 || got.Second != 99 {
		t.Fatalf("unexpected value: %v", got)
	}
}

func TestParseExifDateTimeRejectsBlank(t *testing.T) {
	for _, raw := range []string{"    :  :     :  :  ", "                   "} {
		if _, err := ParseExifDateTime([]byte(raw)); !errors.Is(err, ErrBlankDateTime) {
			t.Fatalf("%q: expected blank error, got %v", raw, err)
		}
	}
}

func TestParseExifDateTimeRejectsBadDelimiters(t *testing.T) {
	valid := "2021:06:15 08:30:00"
	for _, pos := range []int{4, 7, 10, 13, 16} {
		raw := []byte(valid)
		raw[pos] = '-'
		if _, err := ParseExifDateTime(raw); !errors.Is(err, ErrInvalidDateTime) {
			t.Fatalf("delimiter at %d: expected invalid error, got %v", pos, err)
		}
	}
}

func TestParseExifDateTimeRejectsNonDigits(t *testing.T) {
	cases := []string{
		"2O21:06:15 08:30:00",
		"2021:0x:15 08:30:00",
		"2021:06:1  08:30:00",
		"2021:06:15 +8:30:00",
		"2021:06:15 08:-3:00",
		"2021:06:15 08:30:0\x00",
	}
	for _, raw := range cases {
		if _, err := ParseExifDateTime([]byte(raw)); !errors.Is(err, ErrInvalidDateTime) {
			t.Fatalf("%q: expected invalid error, got %v", raw, err)
		}
	}
}

func TestParseExifDateTimeRejectsShortInput(t *testing.T) {
	if _, err := ParseExifDateTime([]byte("2021:06:15 08:30")); !errors.Is(err, ErrInvalidDateTime) {
		t.Fatalf("expected invalid error, got %v", err)
	}
}

func TestParseFieldOverflow(t *testing.T) {
	if _, err := parseField([]byte("256"), 8); !errors.Is(err, ErrInvalidDateTime) {
		t.Fatalf("expected overflow error, got %v", err)
	}
	if v, err := parseField([]byte("255"), 8); err != nil || v != 255 {
		t.Fatalf("expected 255, got %d (%v)", v, err)
	}
	if _, err := parseField([]byte("65536"), 16); !errors.Is(err, ErrInvalidDateTime) {
		t.Fatalf("expected overflow error, got %v", err)
	}
}

func TestFromTimeDropsSubSecond(t *testing.T) {
	ts := time.Date(2020, 1, 1, 0, 0, 0, 999, time.Local)
	got, err := FromTime(ts)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := DateTime{Year: 2020, Month: 1, Day: 1}
	if got != want {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestFileName(t *testing.T) {
	dt := DateTime{Year: 2024, Month: 1, Day: 1, Hour: 10}
	cases := []struct {
		counter int
		ext     string
		want    string
	}{
		{0, "jpg", "2024-01-01 10.00.00.jpg"},
		{1, "jpg", "2024-01-01 10.00.001.jpg"},
		{12, "JPG", "2024-01-01 10.00.0012.JPG"},
		{0, "", "2024-01-01 10.00.00"},
		{2, "", "2024-01-01 10.00.002"},
	}
	for _, tc := range cases {
		if got := dt.FileName(tc.counter, tc.ext); got != tc.want {
			t.Fatalf("FileName(%d, %q) = %q, want %q", tc.counter, tc.ext, got, tc.want)
		}
	}
	if dt.YearDir() != "2024" {
		t.Fatalf("unexpected year dir %q", dt.YearDir())
	}
}

package datum

import (
	"errors"
	"testing"
	"time"
)

func TestFromISODateString(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    time.Time
		wantErr bool
	}{
		{"Valid date", "2017-08-23", time.Date(2017, 8, 23, 0, 0, 0, 0, time.UTC), false},
		{"Leap day", "2020-02-29", time.Date(2020, 2, 29, 0, 0, 0, 0, time.UTC), false},
		{"Not a leap year", "2021-02-29", time.Time{}, true},
		{"Month out of range", "2021-13-01", time.Time{}, true},
		{"Unpadded", "2021-8-3", time.Time{}, true},
		{"Wrong separator", "23.08.2017", time.Time{}, true},
		{"Trailing time", "2017-08-23T10:00:00", time.Time{}, true},
		{"Empty", "", time.Time{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			before := time.Date(1999, 1, 1, 0, 0, 0, 0, time.UTC)
			d := NewFromTime(before)

			result, err := d.FromISODateString(tt.input)

			if (err != nil) != tt.wantErr {
				t.Fatalf("FromISODateString(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if tt.wantErr {
				if !errors.Is(err, ErrParse) {
					t.Errorf("FromISODateString(%q) error = %v, want ErrParse", tt.input, err)
				}
				if !d.Value().Equal(before) {
					t.Errorf("failed parse changed value to %v", d.Value())
				}
				return
			}
			if !result.Equal(tt.want) {
				t.Errorf("FromISODateString(%q) = %v, want %v", tt.input, result, tt.want)
			}
		})
	}
}

func TestParseError(t *testing.T) {
	d, err := Parse("2017/08/23")
	if !errors.Is(err, ErrParse) {
		t.Errorf("Parse() error = %v, want ErrParse", err)
	}
	if d != nil {
		t.Errorf("Parse() returned %v on error", d)
	}
}

func TestFromISOLongDate(t *testing.T) {
	d := New()
	if _, err := d.FromISOLongDate("2020-06-01T10:30:00"); err != nil {
		t.Fatalf("FromISOLongDate() error = %v", err)
	}

	if got := d.GetISODateString(); got != "2020-06-01" {
		t.Errorf("GetISODateString() = %v, want 2020-06-01", got)
	}
	if got := d.ToLongTimeString(); got != "10:30:00" {
		t.Errorf("ToLongTimeString() = %v, want 10:30:00", got)
	}

	for _, input := range []string{
		"2020-06-01T10:30",
		"2020-06-01T10:30:00Z",
		"2020-06-01 10:30:00",
		"2020-06-01T25:30:00",
		"2020-06-01",
	} {
		if _, err := d.FromISOLongDate(input); !errors.Is(err, ErrParse) {
			t.Errorf("FromISOLongDate(%q) error = %v, want ErrParse", input, err)
		}
	}
}

func TestFormatting(t *testing.T) {
	d := NewFromTime(time.Date(2021, 3, 4, 5, 6, 7, 123456000, time.UTC))

	tests := []struct {
		name string
		got  string
		want string
	}{
		{"ToISODateString", d.ToISODateString(), "2021-03-04"},
		{"ToISOString", d.ToISOString(), "2021-03-04T05:06:07.123456Z"},
		{"GetISOString", d.GetISOString(), "2021-03-04T05:06:07.123456Z"},
		{"ToShortTimeString", d.ToShortTimeString(), "05:06"},
		{"ToLongTimeString", d.ToLongTimeString(), "05:06:07"},
		{"ToDateTimeString", d.ToDateTimeString(), "2021-03-04 05:06:07"},
		{"ToLongDateTimeString", d.ToLongDateTimeString(), "2021-03-04 05:06"},
		{"String", d.String(), "2021-03-04 05:06:07"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("%s() = %v, want %v", tt.name, tt.got, tt.want)
			}
		})
	}
}

func TestISODateRoundTrip(t *testing.T) {
	inputs := []time.Time{
		time.Date(2020, 2, 29, 17, 45, 0, 0, time.UTC),
		time.Date(1999, 12, 31, 23, 59, 59, 0, time.UTC),
		time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
	}

	for _, input := range inputs {
		d := NewFromTime(input)
		s := d.ToISODateString()

		parsed := New()
		if _, err := parsed.FromISODateString(s); err != nil {
			t.Fatalf("FromISODateString(%q) error = %v", s, err)
		}

		if parsed.Date() != d.Date() {
			t.Errorf("round trip of %v = %v", input, parsed.Value())
		}
		if parsed.ToLongTimeString() != "00:00:00" {
			t.Errorf("round trip of %v kept time of day %v", input, parsed.ToLongTimeString())
		}
	}
}

package dates

import (
	"testing"
	"time"
)

func TestFormat(t *testing.T) {
	tests := []struct {
		name string
		in   time.Time
		want string
	}{
		{
			name: "utc midnight",
			in:   time.Date(2021, time.January, 1, 0, 0, 0, 0, time.UTC),
			want: "2021-01-01T00:00:00Z",
		},
		{
			name: "subsecond truncated",
			in:   time.Date(2021, time.January, 1, 0, 0, 0, 999_000_000, time.UTC),
			want: "2021-01-01T00:00:00Z",
		},
		{
			name: "zoned value converted",
			in:   time.Date(2021, time.January, 1, 2, 0, 0, 0, time.FixedZone("EET", 2*60*60)),
			want: "2021-01-01T00:00:00Z",
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := Format(tc.in); got != tc.want {
				t.Fatalf("Format(%v) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}

func TestFormatIn(t *testing.T) {
	tests := []struct {
		name string
		in   time.Time
		zone string
		want string
	}{
		{
			name: "utc zone is identity",
			in:   time.Date(2021, time.January, 1, 0, 0, 0, 0, time.UTC),
			zone: "UTC",
			want: "2021-01-01T00:00:00Z",
		},
		{
			name: "helsinki winter",
			in:   time.Date(2021, time.January, 1, 0, 0, 0, 0, time.UTC),
			zone: "Europe/Helsinki",
			want: "2020-12-31T22:00:00Z",
		},
		{
			name: "helsinki summer",
			in:   time.Date(2021, time.June, 6, 0, 0, 0, 0, time.UTC),
			zone: "Europe/Helsinki",
			want: "2021-06-05T21:00:00Z",
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := FormatIn(tc.in, tc.zone)
			if err != nil {
				t.Fatalf("FormatIn: %v", err)
			}
			if got != tc.want {
				t.Fatalf("FormatIn(%v, %q) = %q, want %q", tc.in, tc.zone, got, tc.want)
			}
		})
	}
}

func TestFormatInRejectsUnknownZone(t *testing.T) {
	if _, err := FormatIn(time.Now(), "Mars/Olympus"); err == nil {
		t.Fatal("expected error for unknown zone")
	}
}

func TestParse(t *testing.T) {
	got, err := Parse("2021-01-01T00:00:00Z")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	want := time.Date(2021, time.January, 1, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Fatalf("Parse = %v, want %v", got, want)
	}
}

func TestParseRejectsMalformedValue(t *testing.T) {
	if _, err := Parse("2021-01-01 00:00:00"); err == nil {
		t.Fatal("expected error for malformed date")
	}
}

func TestParseIn(t *testing.T) {
	tests := []struct {
		name     string
		in       string
		zone     string
		wantWall time.Time
	}{
		{
			name:     "helsinki winter",
			in:       "2020-12-31T22:00:00Z",
			zone:     "Europe/Helsinki",
			wantWall: time.Date(2021, time.January, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			name:     "helsinki summer",
			in:       "2021-06-05T21:00:00Z",
			zone:     "Europe/Helsinki",
			wantWall: time.Date(2021, time.June, 6, 0, 0, 0, 0, time.UTC),
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ParseIn(tc.in, tc.zone)
			if err != nil {
				t.Fatalf("ParseIn: %v", err)
			}
			gotWall := time.Date(got.Year(), got.Month(), got.Day(), got.Hour(), got.Minute(), got.Second(), 0, time.UTC)
			if !gotWall.Equal(tc.wantWall) {
				t.Fatalf("ParseIn(%q, %q) wall clock = %v, want %v", tc.in, tc.zone, gotWall, tc.wantWall)
			}
		})
	}
}

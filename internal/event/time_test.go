package event

import (
	"errors"
	"testing"
)

func TestParseClock(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  Clock
	}{
		{name: "midnight", input: "00:00", want: 0},
		{name: "9am", input: "09:00", want: 540},
		{name: "noon", input: "12:00", want: 720},
		{name: "5pm", input: "17:00", want: 1020},
		{name: "11:59pm", input: "23:59", want: 1439},
		{name: "with minutes", input: "09:30", want: 570},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseClock(tt.input)
			if err != nil {
				t.Fatalf("ParseClock(%q) unexpected error: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("ParseClock(%q) = %d, want %d", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseClock_Invalid(t *testing.T) {
	inputs := []string{
		"",
		"9:00",
		"09:0",
		"0900",
		"09-00",
		"24:00",
		"12:60",
		"ab:cd",
		"09:00 ",
		" 9:00",
		"+9:00",
		"09:00:00",
	}

	for _, in := range inputs {
		t.Run(in, func(t *testing.T) {
			_, err := ParseClock(in)
			if !errors.Is(err, ErrInvalidTimeFormat) {
				t.Errorf("ParseClock(%q) error = %v, want ErrInvalidTimeFormat", in, err)
			}
		})
	}
}

func TestClockRoundTrip(t *testing.T) {
	for m := 0; m < MinutesPerDay; m++ {
		c := Clock(m)
		got, err := ParseClock(c.String())
		if err != nil {
			t.Fatalf("ParseClock(%q) unexpected error: %v", c.String(), err)
		}
		if got != c {
			t.Fatalf("round trip of %d gave %d (%s)", m, got, c)
		}
	}
}

func TestClockString(t *testing.T) {
	tests := []struct {
		input Clock
		want  string
	}{
		{0, "00:00"},
		{540, "09:00"},
		{1439, "23:59"},
		{-10, "00:00"},
		{MinutesPerDay + 60, "25:00"},
	}

	for _, tt := range tests {
		if got := tt.input.String(); got != tt.want {
			t.Errorf("Clock(%d).String() = %q, want %q", int(tt.input), got, tt.want)
		}
	}
}

func TestClockArithmetic(t *testing.T) {
	start := MustParseClock("09:10")
	end := start.Add(20)

	if end.String() != "09:30" {
		t.Errorf("Add: got %s, want 09:30", end)
	}
	if d := end.Sub(start); d != 20 {
		t.Errorf("Sub: got %d, want 20", d)
	}
	if !start.Valid() {
		t.Error("expected 09:10 to be valid")
	}
	if Clock(MinutesPerDay).Valid() {
		t.Error("expected 24:00 to be invalid")
	}
}

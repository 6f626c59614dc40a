package core

import "testing"

func TestParseAmount(t *testing.T) {
	cases := []struct {
		in  string
		out string
		ok  bool
	}{
		{"-7900", "-7900", true},
		{"-120.5", "-120.5", true},
		{"-120,50", "-120.5", true},
		{"1 234,56", "1234.56", true},
		{" 100 ", "100", true},
		{"0", "0", true},
		{"", "", false},
		{"abc", "", false},
		{"12.3.4", "", false},
	}
	for _, tc := range cases {
		got, err := ParseAmount(tc.in)
		if tc.ok {
			if err != nil {
				t.Fatalf("ParseAmount(%q) unexpected error: %v", tc.in, err)
			}
			if got.String() != tc.out {
				t.Fatalf("ParseAmount(%q) = %s, want %s", tc.in, got, tc.out)
			}
		} else if err == nil {
			t.Fatalf("ParseAmount(%q) expected error", tc.in)
		}
	}
}

func TestParseCardSuffix(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"*7197", "7197"},
		{"*4556", "4556"},
		{"", ""},
		{"*", ""},
		{"nan", ""},
		{"NaN", ""},
		{"1234567890123456", "3456"},
		{"1234567.0", "4567"}, // numeric cell rendered as float
		{"123", "123"},
		{"  *7197  ", "7197"},
	}
	for _, tc := range cases {
		if got := ParseCardSuffix(tc.in); got != tc.want {
			t.Errorf("ParseCardSuffix(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

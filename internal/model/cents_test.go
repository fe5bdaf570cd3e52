package model

import (
	"errors"
	"testing"
)

func TestParseAmount(t *testing.T) {
	tests := []struct {
		in   string
		want Cents
	}{
		{"0", 0},
		{"150", 15000},
		{"12.5", 1250},
		{"12.50", 1250},
		{"0.05", 5},
		{" 20 ", 2000},
		{"+7", 700},
		{".5", 50},
		{"1000.", 100000},
	}

	for _, tt := range tests {
		got, err := ParseAmount(tt.in)
		if err != nil {
			t.Errorf("ParseAmount(%q) error: %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseAmount(%q) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestParseAmountRejects(t *testing.T) {
	tests := []struct {
		in      string
		wantErr error
	}{
		{"", ErrInvalidAmount},
		{"abc", ErrInvalidAmount},
		{"12,50", ErrInvalidAmount},
		{"1.234", ErrInvalidAmount},
		{"-5", ErrNegativeAmount},
		{"-0.01", ErrNegativeAmount},
		{".", ErrInvalidAmount},
		{"1e3", ErrInvalidAmount},
	}

	for _, tt := range tests {
		_, err := ParseAmount(tt.in)
		if !errors.Is(err, tt.wantErr) {
			t.Errorf("ParseAmount(%q) error = %v, want %v", tt.in, err, tt.wantErr)
		}
	}
}

func TestCentsString(t *testing.T) {
	tests := []struct {
		in   Cents
		want string
	}{
		{0, "0.00"},
		{5, "0.05"},
		{1250, "12.50"},
		{123450, "1234.50"},
		{-150, "-1.50"},
	}

	for _, tt := range tests {
		if got := tt.in.String(); got != tt.want {
			t.Errorf("Cents(%d).String() = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestCentsFromFloat(t *testing.T) {
	tests := []struct {
		in   float64
		want Cents
	}{
		{0, 0},
		{12.5, 1250},
		{12.505, 1251},
		{-3.33, -333},
	}

	for _, tt := range tests {
		if got := CentsFromFloat(tt.in); got != tt.want {
			t.Errorf("CentsFromFloat(%v) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

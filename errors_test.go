package pixconv

import "testing"

func TestConvertErrorMessage(t *testing.T) {
	err := errNotSupported(ModeCMYK, ModeBGR16)
	want := "pixconv: conversion not supported: CMYK -> BGR;16"
	if err.Error() != want {
		t.Fatalf("Error() = %q, want %q", err.Error(), want)
	}
	if err.Kind != ConversionNotSupported {
		t.Fatalf("Kind = %v, want ConversionNotSupported", err.Kind)
	}
}

func TestNewConvertErrorKind(t *testing.T) {
	err := NewConvertError(OutOfMemory, "%s too big", "RGB")
	if err.Kind != OutOfMemory {
		t.Fatalf("Kind = %v, want OutOfMemory", err.Kind)
	}
	if err.Msg != "RGB too big" {
		t.Fatalf("Msg = %q, want %q", err.Msg, "RGB too big")
	}
}

func TestErrorKindString(t *testing.T) {
	tests := map[ErrorKind]string{
		BadMode:                "bad mode",
		ConversionNotSupported: "conversion not supported",
		OutOfMemory:            "out of memory",
	}
	for k, want := range tests {
		if got := k.String(); got != want {
			t.Errorf("%v.String() = %q, want %q", int(k), got, want)
		}
	}
}

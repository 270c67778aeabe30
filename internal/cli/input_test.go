package cli

import (
	"bufio"
	"bytes"
	"strings"
	"testing"
)

func TestGetSimpleText(t *testing.T) {
	var out bytes.Buffer
	r := bufio.NewReader(strings.NewReader("  hello world  \n"))

	got, err := GetSimpleText(r, "Say something", &out)
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if got != "hello world" {
		t.Fatalf("got %q", got)
	}
	if !strings.Contains(out.String(), "Say something") {
		t.Fatalf("prompt not printed: %q", out.String())
	}
}

func TestGetSimpleText_EOFWithPartialLine(t *testing.T) {
	var out bytes.Buffer
	r := bufio.NewReader(strings.NewReader("no newline"))

	got, err := GetSimpleText(r, "p", &out)
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if got != "no newline" {
		t.Fatalf("got %q", got)
	}
}

func TestGetTextDefault(t *testing.T) {
	var out bytes.Buffer
	r := bufio.NewReader(strings.NewReader("\nchanged\n"))

	got, err := GetTextDefault(r, "Name", "current", &out)
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if got != "current" {
		t.Fatalf("blank input must keep current, got %q", got)
	}

	got, err = GetTextDefault(r, "Name", "current", &out)
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if got != "changed" {
		t.Fatalf("got %q", got)
	}
	if !strings.Contains(out.String(), "[current]") {
		t.Fatalf("current value not shown in prompt: %q", out.String())
	}
}

func TestConfirm(t *testing.T) {
	cases := []struct {
		input string
		want  bool
	}{
		{"y\n", true},
		{"Y\n", true},
		{"yes\n", true},
		{"n\n", false},
		{"no\n", false},
		{"\n", false},
		{"whatever\n", false},
	}
	for _, tc := range cases {
		var out bytes.Buffer
		r := bufio.NewReader(strings.NewReader(tc.input))
		got, err := Confirm(r, "Proceed?", &out)
		if err != nil {
			t.Fatalf("input %q: err %v", tc.input, err)
		}
		if got != tc.want {
			t.Fatalf("input %q: got %v, want %v", tc.input, got, tc.want)
		}
		if !strings.Contains(out.String(), "[y/N]") {
			t.Fatalf("suffix missing: %q", out.String())
		}
	}
}

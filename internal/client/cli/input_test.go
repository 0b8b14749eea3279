package cli

import (
	"bufio"
	"bytes"
	"strings"
	"testing"
)

func TestGetSimpleText(t *testing.T) {
	out := &bytes.Buffer{}
	reader := bufio.NewReader(strings.NewReader("  hello world  \n"))

	got, err := GetSimpleText(reader, "Enter something", out)
	if err != nil {
		t.Fatalf("GetSimpleText error: %v", err)
	}
	if got != "hello world" {
		t.Fatalf("got %q", got)
	}
	if !strings.Contains(out.String(), "Enter something") {
		t.Fatalf("prompt missing: %q", out.String())
	}
}

func TestGetSimpleText_EOFWithPartialLine(t *testing.T) {
	out := &bytes.Buffer{}
	reader := bufio.NewReader(strings.NewReader("partial"))

	got, err := GetSimpleText(reader, "Prompt", out)
	if err != nil {
		t.Fatalf("GetSimpleText error: %v", err)
	}
	if got != "partial" {
		t.Fatalf("got %q", got)
	}
}

func TestGetPassword_UsesStub(t *testing.T) {
	old := readPassword
	readPassword = func(fd int) ([]byte, error) { return []byte("secret-pw"), nil }
	defer func() { readPassword = old }()

	out := &bytes.Buffer{}
	pw, err := GetPassword(out)
	if err != nil {
		t.Fatalf("GetPassword error: %v", err)
	}
	if pw != "secret-pw" {
		t.Fatalf("got %q", pw)
	}
}

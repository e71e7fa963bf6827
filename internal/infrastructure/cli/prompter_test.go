package cli

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"
)

func TestPrompterConfirm(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{input: "y\n", want: true},
		{input: "Y\n", want: true},
		{input: " yes \n", want: true},
		{input: "YES\n", want: true},
		{input: "n\n", want: false},
		{input: "\n", want: false},
		{input: "yep\n", want: false},
	}

	for _, tt := range tests {
		t.Run(strings.TrimSpace(tt.input), func(t *testing.T) {
			var out bytes.Buffer
			p := NewPrompter(NewPlainReader(strings.NewReader(tt.input), &out))
			got, err := p.Confirm("Did you mean 'ls' instead of 'lss'?")
			if err != nil {
				t.Fatalf("Confirm() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("Confirm() = %v, want %v", got, tt.want)
			}
			if want := "Did you mean 'ls' instead of 'lss'? (y/n) "; out.String() != want {
				t.Errorf("prompt = %q, want %q", out.String(), want)
			}
		})
	}
}

func TestPrompterConfirmEOF(t *testing.T) {
	p := NewPrompter(NewPlainReader(strings.NewReader(""), io.Discard))
	if _, err := p.Confirm("?"); !errors.Is(err, io.EOF) {
		t.Fatalf("Confirm() error = %v, want io.EOF", err)
	}
}

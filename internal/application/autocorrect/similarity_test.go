package autocorrect

import (
	"errors"
	"testing"

	"github.com/doeshing/xterm-go/internal/domain"
)

func TestScore(t *testing.T) {
	tests := []struct {
		name string
		a, b string
		want int
	}{
		{name: "identical", a: "cd /tmp", b: "cd /tmp", want: 100},
		{name: "one missing rune", a: "cd /tm", b: "cd /tmp", want: 83},
		{name: "reordered tokens", a: "git status", b: "status git", want: 95},
		{name: "token subset", a: "ls", b: "ls -la", want: 95},
		{name: "unrelated", a: "ls", b: "pwd", want: 0},
		{name: "case and punctuation ignored", a: "LS -LA", b: "ls la", want: 100},
		{name: "empty after normalization", a: "///", b: "ls", want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Score(tt.a, tt.b); got != tt.want {
				t.Fatalf("Score(%q, %q) = %d, want %d", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestScoreIsBounded(t *testing.T) {
	pairs := [][2]string{
		{"docker ps", "kubectl get pods"},
		{"a b c", "c b a a"},
		{"x", "x x x x x"},
	}
	for _, p := range pairs {
		if s := Score(p[0], p[1]); s < 0 || s > 100 {
			t.Fatalf("Score(%q, %q) = %d out of range", p[0], p[1], s)
		}
	}
}

func TestBestMatch(t *testing.T) {
	match, err := BestMatch("cd /tm", []string{"ls", "cd /tmp", "cat f"})
	if err != nil {
		t.Fatalf("BestMatch error: %v", err)
	}
	if match.Candidate != "cd /tmp" || match.Score != 83 {
		t.Fatalf("unexpected match %+v", match)
	}
}

func TestBestMatchPrefersEarliestOnTie(t *testing.T) {
	match, err := BestMatch("status git", []string{"git status", "git status"})
	if err != nil {
		t.Fatalf("BestMatch error: %v", err)
	}
	if match.Candidate != "git status" {
		t.Fatalf("unexpected match %+v", match)
	}

	match, err = BestMatch("pwd", []string{"ls", "cat"})
	if err != nil {
		t.Fatalf("BestMatch error: %v", err)
	}
	if match.Candidate != "ls" {
		t.Fatalf("expected first candidate on all-zero scores, got %+v", match)
	}
}

func TestBestMatchNoCandidates(t *testing.T) {
	_, err := BestMatch("ls", nil)
	if !errors.Is(err, domain.ErrNoCandidates) {
		t.Fatalf("expected ErrNoCandidates, got %v", err)
	}
}

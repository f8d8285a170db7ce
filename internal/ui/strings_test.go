package ui

import (
	"testing"
	"time"
)

func TestTruncate(t *testing.T) {
	if got := truncate("  Science Textbook  ", 50); got != "Science Textbook" {
		t.Fatalf("truncate = %q", got)
	}
	if got := truncate("Science Textbook", 10); got != "Science..." {
		t.Fatalf("truncate = %q, want Science...", got)
	}
	if got := truncate("Science", 2); got != "Sc" {
		t.Fatalf("truncate short limit = %q, want Sc", got)
	}
}

func TestPadding(t *testing.T) {
	if got := padRight("ab", 4); got != "ab  " {
		t.Fatalf("padRight = %q", got)
	}
	if got := padLeft("ab", 4); got != "  ab" {
		t.Fatalf("padLeft = %q", got)
	}
	if got := padLeft("abcdef", 4); got != "abcdef" {
		t.Fatalf("padLeft overflow = %q", got)
	}
}

func TestFormatPrice(t *testing.T) {
	if got := formatPrice(18500); got != "18,500" {
		t.Fatalf("formatPrice = %q, want 18,500", got)
	}
	if got := formatPrice(0); got != "0" {
		t.Fatalf("formatPrice(0) = %q", got)
	}
}

func TestFormatAge(t *testing.T) {
	if got := formatAge(time.Time{}); got != "-" {
		t.Fatalf("formatAge(zero) = %q, want -", got)
	}
	if got := formatAge(time.Now().Add(-3 * time.Hour)); got != "3 hours ago" {
		t.Fatalf("formatAge = %q, want 3 hours ago", got)
	}
}

package utils

import (
	"reflect"
	"testing"
)

func TestSplitPeople(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"mixed spacing", "Alice, Bob ,  Carol", []string{"Alice", "Bob", "Carol"}},
		{"empty input", "", nil},
		{"whitespace only", "   ", nil},
		{"single entry", "Alice", []string{"Alice"}},
		{"empty segments dropped", "Alice,,Bob,", []string{"Alice", "Bob"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SplitPeople(tt.input)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("SplitPeople(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestSanitizeString(t *testing.T) {
	if got := SanitizeString("  hello\x00world  "); got != "helloworld" {
		t.Errorf("SanitizeString() = %q, want %q", got, "helloworld")
	}
}

func TestTruncateString(t *testing.T) {
	if got := TruncateString("hello world", 8); got != "hello..." {
		t.Errorf("TruncateString() = %q, want %q", got, "hello...")
	}
	if got := TruncateString("short", 10); got != "short" {
		t.Errorf("TruncateString() = %q, want %q", got, "short")
	}
}

func TestNormalizeEmail(t *testing.T) {
	if got := NormalizeEmail("  User@Example.COM "); got != "user@example.com" {
		t.Errorf("NormalizeEmail() = %q, want %q", got, "user@example.com")
	}
}

func TestMaskToken(t *testing.T) {
	if got := MaskToken("abcdef", 2); got != "ab****" {
		t.Errorf("MaskToken() = %q, want %q", got, "ab****")
	}
	if got := MaskToken("ab", 4); got != "**" {
		t.Errorf("MaskToken() = %q, want %q", got, "**")
	}
}

func TestIsEmpty(t *testing.T) {
	if !IsEmpty("   ") {
		t.Error("IsEmpty() should be true for whitespace-only string")
	}
	if IsEmpty("x") {
		t.Error("IsEmpty() should be false for non-empty string")
	}
}

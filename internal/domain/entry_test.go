package domain

import (
	"reflect"
	"testing"
)

func TestNormalize(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"example.com", "http://example.com"},
		{"http://example.com", "http://example.com"},
		{"https://example.com/a?b=c", "https://example.com/a?b=c"},
		{"HTTP://example.com", "http://HTTP://example.com"},
		{"ftp://example.com", "http://ftp://example.com"},
		{"httpbin.org", "http://httpbin.org"},
		{"://bad", "http://://bad"},
	}
	for _, c := range cases {
		if got := Normalize(c.in); got != c.want {
			t.Errorf("Normalize(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestNormalize_Idempotent(t *testing.T) {
	for _, in := range []string{"example.com", "http://x", "https://y", "HTTPS://z", "a b"} {
		once := Normalize(in)
		if twice := Normalize(once); twice != once {
			t.Fatalf("Normalize not idempotent for %q: %q then %q", in, once, twice)
		}
	}
}

func TestTokenize_SplitsOnAnyWhitespaceRun(t *testing.T) {
	got := Tokenize("  a.com\tb.com\n\n c.com \r\n d.com  ")
	want := []string{"a.com", "b.com", "c.com", "d.com"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestTokenize_EmptyAndWhitespaceOnly(t *testing.T) {
	for _, in := range []string{"", "   ", "\n\t\r\n"} {
		if got := Tokenize(in); len(got) != 0 {
			t.Fatalf("Tokenize(%q): expected no tokens, got %v", in, got)
		}
	}
}

func TestNewEntries_PreservesOrder(t *testing.T) {
	entries := NewEntries("http://bad.invalid\nexample.com https://z.org")
	if len(entries) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(entries))
	}

	want := []URLEntry{
		{Raw: "http://bad.invalid", URL: "http://bad.invalid"},
		{Raw: "example.com", URL: "http://example.com"},
		{Raw: "https://z.org", URL: "https://z.org"},
	}
	if !reflect.DeepEqual(entries, want) {
		t.Fatalf("expected %+v, got %+v", want, entries)
	}
}

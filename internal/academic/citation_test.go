package academic

import "testing"

func TestFormatMLA_Website(t *testing.T) {
	c := Citation{
		Type:    "website",
		Author:  "Smith, John",
		Title:   "Go Concurrency Patterns",
		Website: "The Go Blog",
		Date:    "12 Jan 2023",
		URL:     "https://go.dev/blog/patterns",
	}
	want := `Smith, John. "Go Concurrency Patterns" The Go Blog, 12 Jan 2023, https://go.dev/blog/patterns.`
	if got := FormatMLA(c); got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestFormatMLA_DefaultsToWebsite(t *testing.T) {
	got := FormatMLA(Citation{Author: "A", Title: "T", Website: "W", Date: "D", URL: "U"})
	want := `A. "T" W, D, U.`
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestFormatMLA_Book(t *testing.T) {
	c := Citation{
		Type:      "book",
		Author:    "Donovan, Alan",
		Title:     "The Go Programming Language",
		Publisher: "Addison-Wesley",
		Year:      "2015",
	}
	want := "Donovan, Alan. The Go Programming Language. Addison-Wesley, 2015."
	if got := FormatMLA(c); got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestFormatMLA_Unsupported(t *testing.T) {
	if got := FormatMLA(Citation{Type: "journal"}); got != unsupportedCitation {
		t.Fatalf("got %q, want the unsupported sentinel", got)
	}
}

package papertrail

import (
	"io"
	"strings"
	"testing"
)

func TestFilesystemCache(t *testing.T) {
	c := NewFilesystemCache(t.TempDir())

	_, err := c.Get("latex-files/quiz1.tex")
	if !IsNotFound(err) {
		t.Errorf("expected a not found error, got %v", err)
	}

	err = c.Put("latex-files/quiz1.tex", strings.NewReader("content"))
	if err != nil {
		t.Fatal(err)
	}

	r, err := c.Get("latex-files/quiz1.tex")
	if err != nil {
		t.Fatal(err)
	}
	defer r.Close()

	data, err := io.ReadAll(r)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "content" {
		t.Errorf("unexpected content %q", data)
	}

	err = c.Delete("latex-files/quiz1.tex")
	if err != nil {
		t.Fatal(err)
	}
	_, err = c.Get("latex-files/quiz1.tex")
	if !IsNotFound(err) {
		t.Errorf("entry still present after delete")
	}
}

func TestFilesystemCacheNestedKeys(t *testing.T) {
	c := NewFilesystemCache(t.TempDir())

	err := c.Put("a/b/c/deep.tex", strings.NewReader("x"))
	if err != nil {
		t.Fatal(err)
	}

	r, err := c.Get("a/b/c/deep.tex")
	if err != nil {
		t.Fatal(err)
	}
	r.Close()
}

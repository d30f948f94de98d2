package papertrail

import (
	"errors"
	"net/http"
	"testing"
)

func TestIsNotFound(t *testing.T) {
	err := errors.New("some error")
	if IsNotFound(err) {
		t.Errorf("plain error wrongly recognized as not found")
	}

	err = NewNotFound("no entry for %q", "x")
	if !IsNotFound(err) {
		t.Errorf("not found error is not recognized")
	}
	if IsFormatError(err) {
		t.Errorf("not found error wrongly recognized as format error")
	}
}

func TestIsFormatError(t *testing.T) {
	err := NewFormatError("invalid canvas data format")
	if !IsFormatError(err) {
		t.Errorf("format error is not recognized")
	}
	if err.Error() != "invalid canvas data format" {
		t.Errorf("unexpected message %q", err.Error())
	}
}

func TestWrap(t *testing.T) {
	err := Wrap(errors.New("cause"), "context %v", 1)
	if err.Error() != "context 1: cause" {
		t.Errorf("unexpected message %q", err.Error())
	}
}

func TestExpectStatus(t *testing.T) {
	res := &http.Response{StatusCode: http.StatusOK}
	if err := ExpectOK(res, "request failed"); err != nil {
		t.Error(err)
	}

	res.StatusCode = http.StatusNotFound
	err := ExpectOK(res, "request failed")
	if err == nil {
		t.Fatalf("expected an error")
	}
	if !IsNotFound(err) {
		t.Errorf("404 should map to a not found error")
	}

	res.StatusCode = http.StatusInternalServerError
	err = ExpectOK(res, "request failed")
	if err == nil {
		t.Fatalf("expected an error")
	}
	if IsNotFound(err) {
		t.Errorf("500 must not map to a not found error")
	}
}

package apperror

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
)

func TestSentinelMatching(t *testing.T) {
	err := Validation("amount must be positive, got %d", -5)
	if !IsValidation(err) {
		t.Error("expected validation error to match ErrValidation")
	}
	if IsNotFound(err) || IsInvalidState(err) {
		t.Error("validation error matched wrong sentinel")
	}
	if err.Error() != "amount must be positive, got -5" {
		t.Errorf("unexpected message: %q", err.Error())
	}
}

func TestWrappedErrorsStillMatch(t *testing.T) {
	inner := InvalidState("invoice is cancelled")
	wrapped := fmt.Errorf("apply payment: %w", inner)
	if !IsInvalidState(wrapped) {
		t.Error("wrapped invalid-state error no longer matches")
	}
}

func TestHTTPStatus(t *testing.T) {
	cases := []struct {
		err  error
		want int
	}{
		{Validation("bad"), http.StatusBadRequest},
		{InvalidState("terminal"), http.StatusConflict},
		{NotFound("invoice", "abc"), http.StatusNotFound},
		{errors.New("boom"), http.StatusInternalServerError},
	}
	for _, c := range cases {
		if got := HTTPStatus(c.err); got != c.want {
			t.Errorf("HTTPStatus(%v) = %d, want %d", c.err, got, c.want)
		}
	}
}

func TestNotFoundMessage(t *testing.T) {
	err := NotFound("patient", "42")
	if err.Error() != "patient 42 not found" {
		t.Errorf("unexpected message: %q", err.Error())
	}
}

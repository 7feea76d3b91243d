package core

import (
	"errors"
	"testing"
)

func TestWrapErrorKeepsChain(t *testing.T) {
	sentinel := errors.New("boom")
	err := WrapError(sentinel, EINVALID, "validation of %q failed", "x")
	if !errors.Is(err, sentinel) {
		t.Error("wrapped error should match its sentinel with errors.Is")
	}
}

func TestWrapErrorCarriesCodeAndMessage(t *testing.T) {
	err := WrapError(errors.New("boom"), EINVALID, "validation of %q failed", "x")
	var app AppError
	if !errors.As(err, &app) {
		t.Fatal("wrapped error should be an AppError")
	}
	if app.ErrorCode() != EINVALID {
		t.Errorf("error code should be %d, is %d", EINVALID, app.ErrorCode())
	}
	if app.UserMessage() != `validation of "x" failed` {
		t.Errorf("unexpected user message %q", app.UserMessage())
	}
	if err.Error() != "[123] boom" {
		t.Errorf("unexpected error text %q", err.Error())
	}
}

func TestWrapErrorOfNil(t *testing.T) {
	err := WrapError(nil, EINVALID, "nothing to wrap")
	if err == nil {
		t.Fatal("wrapping nil should still produce an error")
	}
	if err.Error() != "[123] invalid" {
		t.Errorf("unexpected error text %q", err.Error())
	}
}

package gym_test

import (
	"errors"
	"strings"
	"testing"

	pkgerrors "github.com/pkg/errors"
	"github.com/samuelfneumann/gymenv/environment/gym"
)

func TestErrorKinds(t *testing.T) {
	cause := errors.New("no such attribute")
	err := &gym.Error{Kind: gym.Conversion, Op: "step", Err: cause}

	if !errors.Is(err, gym.ErrConversion) {
		t.Error("is: conversion error should match ErrConversion")
	}
	if errors.Is(err, gym.ErrConstruction) || errors.Is(err,
		gym.ErrExternalCall) {
		t.Error("is: conversion error should only match ErrConversion")
	}
	if !errors.Is(err, cause) {
		t.Error("is: error should wrap its cause")
	}
	if pkgerrors.Cause(err) != cause {
		t.Errorf("cause: \n\twant(%v)\n\thave(%v)", cause,
			pkgerrors.Cause(err))
	}

	wrapped := pkgerrors.Wrap(err, "rollout")
	if !gym.IsKind(wrapped, gym.Conversion) {
		t.Error("isKind: wrapped error should keep its kind")
	}
	if gym.IsKind(cause, gym.Conversion) {
		t.Error("isKind: plain error should have no kind")
	}

	msg := err.Error()
	for _, part := range []string{"step", "conversion error", cause.Error()} {
		if !strings.Contains(msg, part) {
			t.Errorf("error: message %q should contain %q", msg, part)
		}
	}
}

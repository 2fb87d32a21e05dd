package domain

import (
	"errors"
	"testing"
)

func TestOpErrorWrapUnwrap(t *testing.T) {
	root := errors.New("root")
	err := &OpError{
		Op:   "config.load",
		Kind: KindInvalidConfig,
		Path: "fourbar.yaml",
		Err:  root,
	}

	if !errors.Is(err, root) {
		t.Fatalf("expected errors.Is to match cause")
	}

	var got *OpError
	if !errors.As(err, &got) {
		t.Fatalf("expected errors.As to match OpError")
	}
	if got.Kind != KindInvalidConfig {
		t.Fatalf("expected kind %s", KindInvalidConfig)
	}
}

func TestIsKind(t *testing.T) {
	err := &OpError{Op: "sweep", Kind: KindInvalidInput}

	if !IsKind(err, KindInvalidInput) {
		t.Errorf("expected IsKind to match")
	}
	if IsKind(err, KindNotFound) {
		t.Errorf("expected IsKind mismatch for other kind")
	}
	if IsKind(errors.New("plain"), KindInvalidInput) {
		t.Errorf("expected IsKind false for non-OpError")
	}
}

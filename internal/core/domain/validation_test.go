package domain

import (
	"errors"
	"testing"
)

func TestValidationError_CollectsFields(t *testing.T) {
	verr := NewValidationError()
	verr.Add("title", "title is required")
	verr.Add("description", "description is required")

	if !verr.HasErrors() {
		t.Fatal("expected HasErrors")
	}
	if len(verr.Fields) != 2 {
		t.Fatalf("expected 2 fields, got %d", len(verr.Fields))
	}
	if verr.Fields["title"] != "title is required" {
		t.Errorf("title message wrong: %q", verr.Fields["title"])
	}
}

func TestValidationError_FirstMessageWins(t *testing.T) {
	verr := NewValidationError()
	verr.Add("title", "first")
	verr.Add("title", "second")

	if verr.Fields["title"] != "first" {
		t.Errorf("expected first message kept, got %q", verr.Fields["title"])
	}
}

func TestValidationError_Empty(t *testing.T) {
	verr := NewValidationError()
	if verr.HasErrors() {
		t.Error("fresh ValidationError must report no errors")
	}
}

func TestValidationError_ErrorStringSorted(t *testing.T) {
	verr := NewValidationError()
	verr.Add("title", "is required")
	verr.Add("description", "is required")

	want := "validation failed: description: is required; title: is required"
	if verr.Error() != want {
		t.Errorf("Error() = %q, want %q", verr.Error(), want)
	}
}

func TestValidationError_ErrorsAs(t *testing.T) {
	verr := NewValidationError()
	verr.Add("title", "title is required")

	var err error = verr
	var target *ValidationError
	if !errors.As(err, &target) {
		t.Fatal("errors.As should match *ValidationError")
	}
	if target.Fields["title"] == "" {
		t.Error("unwrapped target lost its fields")
	}
}

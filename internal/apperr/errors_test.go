package apperr_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/netai-lab/timetravel-eval/internal/apperr"
)

func TestNewValidation(t *testing.T) {
	err := apperr.NewValidation("suite name is required")

	if err.Error() != "suite name is required" {
		t.Errorf("expected 'suite name is required', got %q", err.Error())
	}
	if err.Unwrap() != nil {
		t.Errorf("expected nil unwrap, got %v", err.Unwrap())
	}
}

func TestNewValidationf(t *testing.T) {
	err := apperr.NewValidationf("scenario %d: id is required", 2)

	if err.Error() != "scenario 2: id is required" {
		t.Errorf("expected 'scenario 2: id is required', got %q", err.Error())
	}
}

func TestNewValidationWrap(t *testing.T) {
	inner := fmt.Errorf("yaml parse failed")
	err := apperr.NewValidationWrap("invalid suite file", inner)

	if err.Error() != "invalid suite file: yaml parse failed" {
		t.Errorf("expected 'invalid suite file: yaml parse failed', got %q", err.Error())
	}
	if !errors.Is(err, inner) {
		t.Error("expected Unwrap to return inner error")
	}
}

func TestValidationError_SurvivesFmtWrapping(t *testing.T) {
	original := apperr.NewValidation("ground truth is empty")

	wrapped := fmt.Errorf("failed to load suite: %w", original)
	doubleWrapped := fmt.Errorf("run aborted: %w", wrapped)

	var ve *apperr.ValidationError
	if !errors.As(doubleWrapped, &ve) {
		t.Fatal("errors.As should find ValidationError through double wrapping")
	}
	if ve.Message != "ground truth is empty" {
		t.Errorf("expected 'ground truth is empty', got %q", ve.Message)
	}
}

func TestValidationError_NotFoundForPlainErrors(t *testing.T) {
	plain := fmt.Errorf("predictions file unreadable")
	wrapped := fmt.Errorf("run aborted: %w", plain)

	var ve *apperr.ValidationError
	if errors.As(wrapped, &ve) {
		t.Fatal("errors.As should NOT find ValidationError in plain error chain")
	}
}

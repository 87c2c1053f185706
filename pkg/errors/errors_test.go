// pkg/errors/errors_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: None
// PURPOSE: Test error creation, wrapping, and code lookup

package errors_test

import (
	stderrors "errors"
	"testing"

	"github.com/arthur-debert/nue/pkg/errors"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		code    errors.ErrorCode
		message string
		wantStr string
	}{
		{
			name:    "no_match_error",
			code:    errors.ErrNoMatch,
			message: "no framework folder matched",
			wantStr: "[NO_MATCH] no framework folder matched",
		},
		{
			name:    "invalid_input_error",
			code:    errors.ErrInvalidInput,
			message: "package name is required",
			wantStr: "[INVALID_INPUT] package name is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := errors.New(tt.code, tt.message)

			if err.Code != tt.code {
				t.Errorf("New() code = %v, want %v", err.Code, tt.code)
			}
			if err.Details == nil {
				t.Error("New() details should be initialized")
			}
			if got := err.Error(); got != tt.wantStr {
				t.Errorf("Error() = %q, want %q", got, tt.wantStr)
			}
		})
	}
}

func TestNewf(t *testing.T) {
	err := errors.Newf(errors.ErrPackageNotFound, "package %s %s not installed", "Newtonsoft.Json", "13.0.1")
	if err.Message != "package Newtonsoft.Json 13.0.1 not installed" {
		t.Errorf("Newf() message = %q", err.Message)
	}
}

func TestWrap(t *testing.T) {
	baseErr := stderrors.New("exit status 1")

	t.Run("wrap_non_nil_error", func(t *testing.T) {
		err := errors.Wrap(baseErr, errors.ErrInstallFailed, "nuget install failed")

		if err.Wrapped != baseErr {
			t.Error("Wrap() should preserve wrapped error")
		}

		wantStr := "[INSTALL_FAILED] nuget install failed: exit status 1"
		if got := err.Error(); got != wantStr {
			t.Errorf("Error() = %q, want %q", got, wantStr)
		}
	})

	t.Run("wrap_nil_error_returns_nil", func(t *testing.T) {
		if err := errors.Wrap(nil, errors.ErrInternal, "internal error"); err != nil {
			t.Error("Wrap(nil) should return nil")
		}
		if err := errors.Wrapf(nil, errors.ErrInternal, "internal %s", "error"); err != nil {
			t.Error("Wrapf(nil) should return nil")
		}
	})
}

func TestWithDetail(t *testing.T) {
	err := errors.New(errors.ErrNoMatch, "no match").
		WithDetail("tfm", "net45").
		WithDetail("candidates", 3)

	if err.Details["tfm"] != "net45" {
		t.Errorf("WithDetail() tfm = %v", err.Details["tfm"])
	}
	if err.Details["candidates"] != 3 {
		t.Errorf("WithDetail() candidates = %v", err.Details["candidates"])
	}
	if got := errors.GetErrorDetails(err); got["tfm"] != "net45" {
		t.Errorf("GetErrorDetails() = %v", got)
	}
}

func TestIs(t *testing.T) {
	err1 := errors.New(errors.ErrEnumeration, "error 1")
	err2 := errors.New(errors.ErrEnumeration, "error 2")
	err3 := errors.New(errors.ErrCopyFailed, "error 3")

	if !stderrors.Is(err1, err2) {
		t.Error("errors.Is() should match on code")
	}
	if err1.Is(err3) {
		t.Error("Is() should return false for different codes")
	}
}

func TestIsErrorCode(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		code     errors.ErrorCode
		expected bool
	}{
		{"matching_code", errors.New(errors.ErrNoMatch, "x"), errors.ErrNoMatch, true},
		{"different_code", errors.New(errors.ErrNoMatch, "x"), errors.ErrInternal, false},
		{"wrapped_error", errors.Wrap(stderrors.New("base"), errors.ErrFileAccess, "denied"), errors.ErrFileAccess, true},
		{"standard_error", stderrors.New("standard error"), errors.ErrNotFound, false},
		{"nil_error", nil, errors.ErrNotFound, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := errors.IsErrorCode(tt.err, tt.code); got != tt.expected {
				t.Errorf("IsErrorCode() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestErrorChaining(t *testing.T) {
	rootCause := stderrors.New("root cause")
	fileErr := errors.Wrap(rootCause, errors.ErrFileAccess, "cannot read file")
	configErr := errors.Wrap(fileErr, errors.ErrConfigLoad, "failed to load config")

	if errors.GetErrorCode(configErr) != errors.ErrConfigLoad {
		t.Error("top level should have ErrConfigLoad code")
	}
	if !errors.IsErrorCode(configErr.Unwrap(), errors.ErrFileAccess) {
		t.Error("middle error should have ErrFileAccess code")
	}
	if !stderrors.Is(configErr, rootCause) {
		t.Error("should find root cause with errors.Is")
	}
	if errors.GetErrorCode(stderrors.New("plain")) != errors.ErrUnknown {
		t.Error("plain errors should map to ErrUnknown")
	}
}

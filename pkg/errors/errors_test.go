// pkg/errors/errors_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: None
// PURPOSE: Test error creation, wrapping, and utility functions

package errors_test

import (
	stderrors "errors"
	"testing"

	"github.com/arthur-debert/venvx/pkg/errors"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		code    errors.ErrorCode
		message string
		wantStr string
	}{
		{
			name:    "not_found_error",
			code:    errors.ErrNotFound,
			message: "file not found",
			wantStr: "[NOT_FOUND] file not found",
		},
		{
			name:    "metadata_version_error",
			code:    errors.ErrMetadataVersion,
			message: "unknown metadata version",
			wantStr: "[METADATA_VERSION] unknown metadata version",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := errors.New(tt.code, tt.message)

			if err.Code != tt.code {
				t.Errorf("New() code = %v, want %v", err.Code, tt.code)
			}

			if err.Message != tt.message {
				t.Errorf("New() message = %q, want %q", err.Message, tt.message)
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

func TestWrap(t *testing.T) {
	base := stderrors.New("permission denied")

	err := errors.Wrap(base, errors.ErrFileWrite, "cannot persist metadata")
	if err.Wrapped != base {
		t.Errorf("Wrap() wrapped = %v, want %v", err.Wrapped, base)
	}
	if !stderrors.Is(err, base) {
		t.Error("Wrap() should preserve the error chain")
	}
	wantStr := "[FILE_WRITE] cannot persist metadata: permission denied"
	if got := err.Error(); got != wantStr {
		t.Errorf("Error() = %q, want %q", got, wantStr)
	}

	if errors.Wrap(nil, errors.ErrFileWrite, "no-op") != nil {
		t.Error("Wrap(nil) should return nil")
	}
}

func TestIsErrorCode(t *testing.T) {
	err := errors.Newf(errors.ErrMetadataVersion, "unknown metadata version %s", "9.9")

	if !errors.IsErrorCode(err, errors.ErrMetadataVersion) {
		t.Error("IsErrorCode() should match the error's code")
	}
	if errors.IsErrorCode(err, errors.ErrMetadataCorrupt) {
		t.Error("IsErrorCode() should not match a different code")
	}

	wrapped := errors.Wrap(err, errors.ErrInternal, "outer")
	if !errors.IsErrorCode(wrapped, errors.ErrInternal) {
		t.Error("IsErrorCode() should match the outermost code")
	}

	if errors.IsErrorCode(stderrors.New("plain"), errors.ErrInternal) {
		t.Error("IsErrorCode() should be false for non-VenvxError")
	}
}

func TestGetErrorCode(t *testing.T) {
	if got := errors.GetErrorCode(errors.New(errors.ErrMetadataCorrupt, "corrupt")); got != errors.ErrMetadataCorrupt {
		t.Errorf("GetErrorCode() = %v, want %v", got, errors.ErrMetadataCorrupt)
	}
	if got := errors.GetErrorCode(stderrors.New("plain")); got != errors.ErrUnknown {
		t.Errorf("GetErrorCode() = %v, want %v", got, errors.ErrUnknown)
	}
}

func TestWithDetail(t *testing.T) {
	err := errors.New(errors.ErrMetadataVersion, "unknown metadata version").
		WithDetail("venv", "foo").
		WithDetail("version", "9.9")

	if err.Details["venv"] != "foo" {
		t.Errorf("WithDetail() venv = %v, want foo", err.Details["venv"])
	}
	if err.Details["version"] != "9.9" {
		t.Errorf("WithDetail() version = %v, want 9.9", err.Details["version"])
	}
}

package errors

import (
	"errors"
	"strings"
	"testing"
)

type recordingHandler struct {
	errs []*SheetError
}

func (h *recordingHandler) HandleError(err *SheetError) {
	h.errs = append(h.errs, err)
}

func TestSheetError_Error(t *testing.T) {
	err := &SheetError{
		Op:   "sheet.NewController",
		Kind: KindConfig,
		Err:  ErrNoPositions,
	}
	msg := err.Error()
	if !strings.Contains(msg, "sheet.NewController") {
		t.Errorf("Error() missing op: %q", msg)
	}
	if !strings.Contains(msg, "config") {
		t.Errorf("Error() missing kind: %q", msg)
	}
}

func TestSheetError_Unwrap(t *testing.T) {
	err := &SheetError{Op: "op", Kind: KindGesture, Err: ErrNoSession}
	if !errors.Is(err, ErrNoSession) {
		t.Error("errors.Is should match the wrapped sentinel")
	}
}

func TestErrorKind_String(t *testing.T) {
	tests := []struct {
		kind     ErrorKind
		expected string
	}{
		{KindUnknown, "unknown"},
		{KindConfig, "config"},
		{KindGesture, "gesture"},
		{KindDispatch, "dispatch"},
	}
	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.expected {
			t.Errorf("ErrorKind(%d).String() = %q, want %q", tt.kind, got, tt.expected)
		}
	}
}

func TestReport_SetsTimestamp(t *testing.T) {
	handler := &recordingHandler{}
	SetHandler(handler)
	defer SetHandler(nil)

	Report(&SheetError{Op: "op", Kind: KindGesture, Err: ErrNoSession})
	if len(handler.errs) != 1 {
		t.Fatalf("Expected 1 reported error, got %d", len(handler.errs))
	}
	if handler.errs[0].Timestamp.IsZero() {
		t.Error("Report should fill a zero timestamp")
	}
}

func TestReport_NilIsNoop(t *testing.T) {
	handler := &recordingHandler{}
	SetHandler(handler)
	defer SetHandler(nil)

	Report(nil)
	if len(handler.errs) != 0 {
		t.Errorf("Report(nil) should not reach the handler, got %d", len(handler.errs))
	}
}

func TestSetHandler_NilRestoresDefault(t *testing.T) {
	SetHandler(&recordingHandler{})
	SetHandler(nil)
	if _, ok := DefaultHandler.(*LogHandler); !ok {
		t.Errorf("SetHandler(nil) should restore LogHandler, got %T", DefaultHandler)
	}
}

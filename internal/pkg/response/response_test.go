package response

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) Response {
	t.Helper()
	var resp Response
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid envelope: %v", err)
	}
	return resp
}

func TestOKEnvelope(t *testing.T) {
	rec := httptest.NewRecorder()
	OK(rec, map[string]string{"hello": "world"})

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	resp := decodeEnvelope(t, rec)
	if !resp.Success || resp.Error != nil {
		t.Fatalf("unexpected envelope: %+v", resp)
	}
}

func TestInternalErrorEnvelope(t *testing.T) {
	rec := httptest.NewRecorder()
	InternalError(rec, "Something went wrong")

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", rec.Code)
	}
	resp := decodeEnvelope(t, rec)
	if resp.Success || resp.Error == nil {
		t.Fatalf("unexpected envelope: %+v", resp)
	}
	if resp.Error.Code != "INTERNAL_ERROR" || resp.Error.Message != "Something went wrong" {
		t.Fatalf("unexpected error info: %+v", resp.Error)
	}
}

func TestNotFoundEnvelope(t *testing.T) {
	rec := httptest.NewRecorder()
	NotFound(rec, "Photo not found")

	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
	resp := decodeEnvelope(t, rec)
	if resp.Error == nil || resp.Error.Message != "Photo not found" {
		t.Fatalf("unexpected error info: %+v", resp.Error)
	}
}

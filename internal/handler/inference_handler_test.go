package handler

import (
	"bytes"
	"context"
	"errors"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/MuneelHaider/NeuroFusion-sub000/internal/service"
)

// mockInferenceService returns a canned result or error
type mockInferenceService struct {
	result *service.InferenceResult
	err    error
}

func (m *mockInferenceService) Run(ctx context.Context, inputPath string) (*service.InferenceResult, error) {
	return m.result, m.err
}

func newInferenceRouter(svc service.InferenceService) *gin.Engine {
	r := gin.New()
	r.POST("/api/v1/inference", NewInferenceHandler(svc).Analyze)
	return r
}

func multipartUpload(t *testing.T, filename string) (*bytes.Buffer, string) {
	t.Helper()
	buf := &bytes.Buffer{}
	mw := multipart.NewWriter(buf)
	fw, err := mw.CreateFormFile("file", filename)
	if err != nil {
		t.Fatalf("create form file: %v", err)
	}
	fw.Write([]byte("not a real scan"))
	mw.Close()
	return buf, mw.FormDataContentType()
}

func TestInference_Success(t *testing.T) {
	svc := &mockInferenceService{result: &service.InferenceResult{
		Diagnosis:  "Glioma",
		Confidence: 0.92,
		Severity:   "High",
	}}
	r := newInferenceRouter(svc)

	body, contentType := multipartUpload(t, "scan.nii.gz")
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/inference", body)
	req.Header.Set("Content-Type", contentType)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("Expected status %d, got %d: %s", http.StatusOK, w.Code, w.Body.String())
	}
	resp := decodeBody(t, w)
	if resp["ok"] != true {
		t.Errorf("Expected ok=true, got %v", resp["ok"])
	}
	result, _ := resp["result"].(map[string]interface{})
	if result == nil || result["diagnosis"] != "Glioma" {
		t.Errorf("Unexpected result: %v", resp["result"])
	}
}

func TestInference_MissingFile(t *testing.T) {
	r := newInferenceRouter(&mockInferenceService{})

	w := postJSON(r, "/api/v1/inference", map[string]interface{}{})

	if w.Code != http.StatusBadRequest {
		t.Fatalf("Expected status %d, got %d", http.StatusBadRequest, w.Code)
	}
	if got := decodeBody(t, w)["error"]; got != "Missing file field" {
		t.Errorf("Unexpected error: %v", got)
	}
}

func TestInference_RejectsNonNIfTI(t *testing.T) {
	r := newInferenceRouter(&mockInferenceService{})

	body, contentType := multipartUpload(t, "scan.png")
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/inference", body)
	req.Header.Set("Content-Type", contentType)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("Expected status %d, got %d", http.StatusBadRequest, w.Code)
	}
	if got := decodeBody(t, w)["error"]; got != "Only .nii or .nii.gz files are supported" {
		t.Errorf("Unexpected error: %v", got)
	}
}

func TestInference_ScriptFailure(t *testing.T) {
	r := newInferenceRouter(&mockInferenceService{err: errors.New("exit status 1")})

	body, contentType := multipartUpload(t, "scan.nii")
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/inference", body)
	req.Header.Set("Content-Type", contentType)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("Expected status %d, got %d", http.StatusInternalServerError, w.Code)
	}
	resp := decodeBody(t, w)
	if resp["ok"] != false {
		t.Errorf("Expected ok=false, got %v", resp["ok"])
	}
}

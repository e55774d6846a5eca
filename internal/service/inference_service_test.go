package service

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

// writeScript stages an executable shell script standing in for the
// inference entrypoint. The service only cares about stdout and exit code.
func writeScript(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "infer.sh")
	if err := os.WriteFile(path, []byte("#!/bin/sh\n"+body), 0o755); err != nil {
		t.Fatalf("write script: %v", err)
	}
	return path
}

func newShellInferenceService(script string, timeout time.Duration) InferenceService {
	return NewInferenceService(&InferenceConfig{
		PythonBin:  "/bin/sh",
		ScriptPath: script,
		ModelPath:  "model.pt",
		Timeout:    timeout,
	})
}

func TestInferenceService_Run(t *testing.T) {
	script := writeScript(t, `echo '{"diagnosis":"Glioma","tumorLocation":"frontal lobe","tumorSize":"2.3cm","confidence":0.92,"severity":"High","recommendations":["MRI follow-up"]}'`)
	svc := newShellInferenceService(script, time.Minute)

	result, err := svc.Run(context.Background(), "/tmp/scan.nii")
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if result.Diagnosis != "Glioma" {
		t.Errorf("Run() Diagnosis = %v, want Glioma", result.Diagnosis)
	}
	if result.Confidence != 0.92 {
		t.Errorf("Run() Confidence = %v, want 0.92", result.Confidence)
	}
	if len(result.Recommendations) != 1 || result.Recommendations[0] != "MRI follow-up" {
		t.Errorf("Run() Recommendations = %v", result.Recommendations)
	}
}

func TestInferenceService_ScriptFails(t *testing.T) {
	script := writeScript(t, "echo 'model file missing' >&2\nexit 1")
	svc := newShellInferenceService(script, time.Minute)

	_, err := svc.Run(context.Background(), "/tmp/scan.nii")
	if err == nil {
		t.Fatal("Run() expected error for failing script")
	}
	if !strings.Contains(err.Error(), "model file missing") {
		t.Errorf("Run() error should carry stderr, got %v", err)
	}
}

func TestInferenceService_MalformedOutput(t *testing.T) {
	script := writeScript(t, "echo 'not json'")
	svc := newShellInferenceService(script, time.Minute)

	_, err := svc.Run(context.Background(), "/tmp/scan.nii")
	if err == nil || !strings.Contains(err.Error(), "parse inference output") {
		t.Errorf("Run() error = %v, want parse failure", err)
	}
}

func TestInferenceService_Timeout(t *testing.T) {
	script := writeScript(t, "sleep 10")
	svc := newShellInferenceService(script, 100*time.Millisecond)

	start := time.Now()
	_, err := svc.Run(context.Background(), "/tmp/scan.nii")
	if err == nil {
		t.Fatal("Run() expected timeout error")
	}
	if !strings.Contains(err.Error(), "timed out") {
		t.Errorf("Run() error = %v, want timeout", err)
	}
	if elapsed := time.Since(start); elapsed > 5*time.Second {
		t.Errorf("Run() did not kill subprocess promptly, took %v", elapsed)
	}
}

package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os/exec"
	"time"
)

// InferenceResult is the structured output of the external inference script
type InferenceResult struct {
	Diagnosis       string   `json:"diagnosis"`
	TumorLocation   string   `json:"tumorLocation"`
	TumorSize       string   `json:"tumorSize"`
	Confidence      float64  `json:"confidence"`
	Severity        string   `json:"severity"`
	Recommendations []string `json:"recommendations"`
}

// InferenceConfig holds configuration for InferenceService
type InferenceConfig struct {
	PythonBin  string
	ScriptPath string
	ModelPath  string
	Timeout    time.Duration
}

// InferenceService proxies scan files to the external inference script
type InferenceService interface {
	// Run invokes the script against the staged input file. The subprocess
	// is killed when the configured timeout elapses.
	Run(ctx context.Context, inputPath string) (*InferenceResult, error)
}

type inferenceService struct {
	config *InferenceConfig
}

// NewInferenceService creates a new InferenceService
func NewInferenceService(config *InferenceConfig) InferenceService {
	if config.PythonBin == "" {
		config.PythonBin = "python3"
	}
	if config.Timeout == 0 {
		config.Timeout = 2 * time.Minute
	}
	return &inferenceService{config: config}
}

// Run invokes the inference script as a subprocess and parses its stdout.
// The script contract: emit a single JSON object on stdout and exit 0.
func (s *inferenceService) Run(ctx context.Context, inputPath string) (*InferenceResult, error) {
	ctx, cancel := context.WithTimeout(ctx, s.config.Timeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, s.config.PythonBin, s.config.ScriptPath,
		"--model", s.config.ModelPath,
		"--input", inputPath,
	)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		if ctx.Err() == context.DeadlineExceeded {
			return nil, fmt.Errorf("inference timed out after %s", s.config.Timeout)
		}
		return nil, fmt.Errorf("inference script failed: %w: %s", err, stderr.String())
	}

	result := &InferenceResult{}
	if err := json.Unmarshal(stdout.Bytes(), result); err != nil {
		return nil, fmt.Errorf("failed to parse inference output: %w", err)
	}

	return result, nil
}

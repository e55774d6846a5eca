package handler

import (
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/MuneelHaider/NeuroFusion-sub000/internal/service"
	"github.com/MuneelHaider/NeuroFusion-sub000/pkg/logger"
)

// InferenceHandler handles scan inference HTTP requests
type InferenceHandler struct {
	inference service.InferenceService
}

// NewInferenceHandler creates a new InferenceHandler
func NewInferenceHandler(inference service.InferenceService) *InferenceHandler {
	return &InferenceHandler{inference: inference}
}

// Analyze handles POST /api/v1/inference. Accepts a multipart NIfTI scan
// upload, stages it in a temp directory and runs the model script on it.
func (h *InferenceHandler) Analyze(c *gin.Context) {
	file, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "Missing file field"})
		return
	}

	if !isNIfTI(file.Filename) {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "Only .nii or .nii.gz files are supported"})
		return
	}

	// Stage the upload on disk; the script takes a file path, not a stream
	dir, err := os.MkdirTemp("", "neurofusion-")
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": "Failed to stage upload"})
		return
	}
	defer os.RemoveAll(dir)

	inputPath := filepath.Join(dir, filepath.Base(file.Filename))
	if err := c.SaveUploadedFile(file, inputPath); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": "Failed to stage upload"})
		return
	}

	result, err := h.inference.Run(c.Request.Context(), inputPath)
	if err != nil {
		logger.Error("inference run failed", zap.Error(err), zap.String("file", file.Filename))
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": "Inference failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true, "result": result})
}

func isNIfTI(name string) bool {
	lower := strings.ToLower(name)
	return strings.HasSuffix(lower, ".nii") || strings.HasSuffix(lower, ".nii.gz")
}

package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/MuneelHaider/NeuroFusion-sub000/internal/dto"
	"github.com/MuneelHaider/NeuroFusion-sub000/internal/mailer"
	"github.com/MuneelHaider/NeuroFusion-sub000/pkg/logger"
	"github.com/MuneelHaider/NeuroFusion-sub000/pkg/response"
)

// ContactHandler handles contact form HTTP requests
type ContactHandler struct {
	mailer mailer.Mailer
}

// NewContactHandler creates a new ContactHandler
func NewContactHandler(m mailer.Mailer) *ContactHandler {
	return &ContactHandler{mailer: m}
}

// Submit handles POST /api/v1/contact
func (h *ContactHandler) Submit(c *gin.Context) {
	var req dto.ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Full name, email and message are required")
		return
	}

	if req.FullName == "" || req.Email == "" || req.Message == "" {
		response.BadRequest(c, "Full name, email and message are required")
		return
	}

	if err := h.mailer.SendContactNotification(c.Request.Context(), &req); err != nil {
		logger.Error("contact relay failed", zap.Error(err))
		response.Message(c, http.StatusInternalServerError, "Failed to submit contact form")
		return
	}

	response.OK(c, "Contact form submitted successfully")
}

package handlers

import (
	"errors"
	"net/http"

	apperrors "lead-center-backend/internal/errors"

	"github.com/gin-gonic/gin"
)

// respondError maps service-layer errors onto HTTP statuses. Every rejected
// operation answers with a human-readable reason under "error".
func respondError(c *gin.Context, err error) {
	switch {
	case apperrors.IsNotFound(err):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case apperrors.IsValidation(err):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case apperrors.IsAlreadyExists(err),
		errors.Is(err, apperrors.ErrCustomFieldAlreadySet):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrUserNotEligible),
		errors.Is(err, apperrors.ErrInvalidDisposition),
		errors.Is(err, apperrors.ErrInvalidSubDisposition),
		errors.Is(err, apperrors.ErrEmptyLeadSelection):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case apperrors.IsUpstream(err):
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
	case apperrors.IsAuthentication(err):
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
	case apperrors.IsAuthorization(err):
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}

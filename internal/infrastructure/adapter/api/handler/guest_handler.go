package handler

import (
	"net/http"

	coreport "github.com/amirhossein-jamali/settlement-engine/internal/domain/port/core"
	"github.com/amirhossein-jamali/settlement-engine/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/settlement-engine/internal/infrastructure/adapter/api/dto"
	"github.com/amirhossein-jamali/settlement-engine/internal/infrastructure/adapter/api/middleware"
	"github.com/gin-gonic/gin"
)

// GuestHandler handles guest registration and client credential requests
type GuestHandler struct {
	guests usecase.GuestUseCase
	tokens TokenIssuer
	logger coreport.Logger
}

// NewGuestHandler creates a new guest handler instance
func NewGuestHandler(guests usecase.GuestUseCase, tokens TokenIssuer, logger coreport.Logger) *GuestHandler {
	return &GuestHandler{
		guests: guests,
		tokens: tokens,
		logger: logger,
	}
}

// RegisterGuest handles the POST /guests endpoint
func (h *GuestHandler) RegisterGuest(c *gin.Context) {
	var req dto.RegisterGuestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request format: "+err.Error())
		return
	}

	guest, err := h.guests.RegisterGuest(c.Request.Context(), usecase.RegisterGuestRequest{
		Email:     req.Email,
		FirstName: req.FirstName,
		LastName:  req.LastName,
	})
	if err != nil {
		respondError(c, h.logger, "Error registering guest", err, map[string]any{"email": req.Email})
		return
	}

	token, err := h.tokens.Issue(middleware.RoleGuest, guest.ID, registrationTokenTTL)
	if err != nil {
		respondError(c, h.logger, "Error issuing guest token", err, map[string]any{"guest_id": guest.ID})
		return
	}

	c.JSON(http.StatusCreated, dto.RegisteredGuestResponse{
		GuestResponse: dto.NewGuestResponse(guest),
		Token:         token,
	})
}

// GetGuest handles the GET /guests/:guestId endpoint
func (h *GuestHandler) GetGuest(c *gin.Context) {
	guestID, ok := parseID(c, "guestId")
	if !ok {
		return
	}

	guest, err := h.guests.GetGuest(c.Request.Context(), guestID)
	if err != nil {
		respondError(c, h.logger, "Error getting guest", err, map[string]any{"guest_id": guestID})
		return
	}

	c.JSON(http.StatusOK, dto.NewGuestResponse(guest))
}

// EphemeralCredential handles the POST /guests/:guestId/ephemeral-credentials endpoint.
// The processor's key object is passed through unchanged when it is available,
// since client SDKs expect that exact shape.
func (h *GuestHandler) EphemeralCredential(c *gin.Context) {
	guestID, ok := parseID(c, "guestId")
	if !ok {
		return
	}

	var req dto.EphemeralCredentialRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request format: "+err.Error())
		return
	}

	credential, err := h.guests.IssueEphemeralCredential(c.Request.Context(), guestID, req.APIVersion)
	if err != nil {
		respondError(c, h.logger, "Error issuing ephemeral credential", err, map[string]any{
			"guest_id":    guestID,
			"api_version": req.APIVersion,
		})
		return
	}

	if len(credential.RawJSON) > 0 {
		c.Data(http.StatusOK, "application/json; charset=utf-8", credential.RawJSON)
		return
	}
	c.JSON(http.StatusOK, dto.EphemeralCredentialResponse{
		GuestID:    credential.GuestID,
		CustomerID: credential.CustomerID,
		APIVersion: credential.APIVersion,
		Secret:     credential.Secret,
		ExpiresAt:  credential.ExpiresAt,
	})
}

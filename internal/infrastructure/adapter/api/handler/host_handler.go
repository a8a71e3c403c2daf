package handler

import (
	"net/http"

	"github.com/amirhossein-jamali/settlement-engine/internal/domain/entity"
	coreport "github.com/amirhossein-jamali/settlement-engine/internal/domain/port/core"
	"github.com/amirhossein-jamali/settlement-engine/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/settlement-engine/internal/infrastructure/adapter/api/dto"
	"github.com/amirhossein-jamali/settlement-engine/internal/infrastructure/adapter/api/middleware"
	"github.com/gin-gonic/gin"
)

// HostHandler handles host registration and onboarding requests
type HostHandler struct {
	onboarding usecase.OnboardingUseCase
	tokens     TokenIssuer
	logger     coreport.Logger
}

// NewHostHandler creates a new host handler instance
func NewHostHandler(
	onboarding usecase.OnboardingUseCase,
	tokens TokenIssuer,
	logger coreport.Logger,
) *HostHandler {
	return &HostHandler{
		onboarding: onboarding,
		tokens:     tokens,
		logger:     logger,
	}
}

// RegisterHost handles the POST /hosts endpoint
func (h *HostHandler) RegisterHost(c *gin.Context) {
	var req dto.RegisterHostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request format: "+err.Error())
		return
	}

	host, err := h.onboarding.RegisterHost(c.Request.Context(), usecase.RegisterHostRequest{
		Email:        req.Email,
		Type:         entity.HostType(req.Type),
		Country:      req.Country,
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		BusinessName: req.BusinessName,
	})
	if err != nil {
		respondError(c, h.logger, "Error registering host", err, map[string]any{"email": req.Email})
		return
	}

	token, err := h.tokens.Issue(middleware.RoleHost, host.ID, registrationTokenTTL)
	if err != nil {
		respondError(c, h.logger, "Error issuing host token", err, map[string]any{"host_id": host.ID})
		return
	}

	c.JSON(http.StatusCreated, dto.RegisteredHostResponse{
		HostResponse: dto.NewHostResponse(host),
		Token:        token,
	})
}

// GetHost handles the GET /accounts/:hostId endpoint
func (h *HostHandler) GetHost(c *gin.Context) {
	hostID, ok := parseID(c, "hostId")
	if !ok {
		return
	}

	host, err := h.onboarding.GetHost(c.Request.Context(), hostID)
	if err != nil {
		respondError(c, h.logger, "Error getting host", err, map[string]any{"host_id": hostID})
		return
	}

	c.JSON(http.StatusOK, dto.NewHostResponse(host))
}

// UpdateProfile handles the PUT /accounts/:hostId/profile endpoint
func (h *HostHandler) UpdateProfile(c *gin.Context) {
	hostID, ok := parseID(c, "hostId")
	if !ok {
		return
	}

	var req dto.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request format: "+err.Error())
		return
	}

	host, err := h.onboarding.UpdateProfile(c.Request.Context(), hostID, entity.HostProfile{
		Type:         entity.HostType(req.Type),
		Country:      req.Country,
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		BusinessName: req.BusinessName,
	})
	if err != nil {
		respondError(c, h.logger, "Error updating host profile", err, map[string]any{"host_id": hostID})
		return
	}

	c.JSON(http.StatusOK, dto.NewHostResponse(host))
}

// OnboardingLink handles the POST /accounts/:hostId/onboarding-link endpoint.
// The processor account is created on the first call.
func (h *HostHandler) OnboardingLink(c *gin.Context) {
	hostID, ok := parseID(c, "hostId")
	if !ok {
		return
	}

	link, err := h.onboarding.StartOnboarding(c.Request.Context(), hostID)
	if err != nil {
		respondError(c, h.logger, "Error starting onboarding", err, map[string]any{"host_id": hostID})
		return
	}

	status := http.StatusOK
	if link.AccountCreated {
		status = http.StatusCreated
	}
	c.JSON(status, dto.NewOnboardingLinkResponse(link))
}

// OnboardingStatus handles the GET /accounts/:hostId/onboarding-status endpoint
func (h *HostHandler) OnboardingStatus(c *gin.Context) {
	hostID, ok := parseID(c, "hostId")
	if !ok {
		return
	}

	status, err := h.onboarding.ConfirmOnboarding(c.Request.Context(), hostID)
	if err != nil {
		respondError(c, h.logger, "Error confirming onboarding", err, map[string]any{"host_id": hostID})
		return
	}

	c.JSON(http.StatusOK, dto.NewOnboardingStatusResponse(status))
}

// DashboardLink handles the POST /accounts/:hostId/dashboard-link endpoint
func (h *HostHandler) DashboardLink(c *gin.Context) {
	hostID, ok := parseID(c, "hostId")
	if !ok {
		return
	}

	link, err := h.onboarding.DashboardLink(c.Request.Context(), hostID)
	if err != nil {
		respondError(c, h.logger, "Error creating dashboard link", err, map[string]any{"host_id": hostID})
		return
	}

	c.JSON(http.StatusOK, dto.NewDashboardLinkResponse(link))
}

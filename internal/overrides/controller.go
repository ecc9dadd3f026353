package overrides

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/Bovice22/axequacks-app-sub000/internal/shared/utils/response"
)

type Controller interface {
	GrantOverride(c *gin.Context)
	RevokeOverride(c *gin.Context)
	ListOverrides(c *gin.Context)
}

type controller struct {
	service Service
}

func NewController(service Service) Controller {
	return &controller{service: service}
}

func (ctrl *controller) GrantOverride(c *gin.Context) {
	var req CreateOverrideRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(c, "error", http.StatusBadRequest, "Invalid request body", nil, err.Error())
		return
	}

	staffID, exists := c.Get("user_id")
	if !exists {
		response.RespondJSON(c, "error", http.StatusUnauthorized, "Staff not authenticated", nil, nil)
		return
	}

	staffUUID, err := uuid.Parse(staffID.(string))
	if err != nil {
		response.RespondJSON(c, "error", http.StatusInternalServerError, "Invalid staff ID format", nil, nil)
		return
	}

	override, err := ctrl.service.Grant(c.Request.Context(), staffUUID, req)
	if err != nil {
		response.RespondJSON(c, "error", http.StatusBadRequest, err.Error(), nil, nil)
		return
	}

	response.RespondJSON(c, "success", http.StatusCreated, "Override granted successfully", override, nil)
}

func (ctrl *controller) RevokeOverride(c *gin.Context) {
	if err := ctrl.service.Revoke(c.Request.Context(), c.Param("dateKey")); err != nil {
		statusCode := http.StatusBadRequest
		if errors.Is(err, ErrOverrideNotFound) {
			statusCode = http.StatusNotFound
		}
		response.RespondJSON(c, "error", statusCode, err.Error(), nil, nil)
		return
	}

	response.RespondJSON(c, "success", http.StatusOK, "Override revoked successfully", nil, nil)
}

func (ctrl *controller) ListOverrides(c *gin.Context) {
	list, err := ctrl.service.List(c.Request.Context())
	if err != nil {
		response.RespondJSON(c, "error", http.StatusInternalServerError, "Failed to list overrides", nil, err.Error())
		return
	}

	response.RespondJSON(c, "success", http.StatusOK, "Overrides retrieved successfully", list, nil)
}

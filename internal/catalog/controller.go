package catalog

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Bovice22/axequacks-app-sub000/internal/shared/utils/response"
)

// OverrideLookup resolves a granted window override for a date. Implemented by
// the overrides service; declared here to avoid a package cycle.
type OverrideLookup interface {
	WindowOverride(ctx context.Context, dateKey string) (*OperatingWindow, bool, error)
}

type Controller interface {
	ListResources(c *gin.Context)
	GetCapacity(c *gin.Context)
	GetWindow(c *gin.Context)
	CreateResource(c *gin.Context)
	UpdateResource(c *gin.Context)
	DeleteResource(c *gin.Context)
}

type controller struct {
	service   Service
	overrides OverrideLookup
}

func NewController(service Service, overrides OverrideLookup) Controller {
	return &controller{service: service, overrides: overrides}
}

func (ctrl *controller) ListResources(c *gin.Context) {
	resources, err := ctrl.service.ListResources(c.Request.Context())
	if err != nil {
		response.RespondJSON(c, "error", http.StatusInternalServerError, "Failed to list resources", nil, err.Error())
		return
	}

	response.RespondJSON(c, "success", http.StatusOK, "Resources retrieved successfully", resources, nil)
}

func (ctrl *controller) GetCapacity(c *gin.Context) {
	ctx := c.Request.Context()

	counts, err := ctrl.service.Capacities(ctx)
	if err != nil {
		response.RespondJSON(c, "error", http.StatusInternalServerError, "Failed to read capacity", nil, err.Error())
		return
	}

	var summary []CapacitySummary
	for _, t := range []ResourceType{TypeAxeBay, TypeDuckpinLane, TypePartyArea} {
		entry := CapacitySummary{
			Type:        t.String(),
			Units:       counts[t],
			QuarterHour: ctrl.service.QuarterHourStarts(t),
		}
		if guests, err := ctrl.service.PerUnitGuests(t); err == nil {
			entry.GuestsPerUnit = guests
			entry.MaxPartySize = counts[t] * guests
		}
		summary = append(summary, entry)
	}

	response.RespondJSON(c, "success", http.StatusOK, "Capacity retrieved successfully", summary, nil)
}

func (ctrl *controller) GetWindow(c *gin.Context) {
	dateKey := c.Param("dateKey")

	var override *OperatingWindow
	overridden := false
	if ctrl.overrides != nil {
		w, ok, err := ctrl.overrides.WindowOverride(c.Request.Context(), dateKey)
		if err != nil {
			response.RespondJSON(c, "error", http.StatusInternalServerError, "Failed to resolve override", nil, err.Error())
			return
		}
		if ok {
			override = w
			overridden = true
		}
	}

	window, err := ctrl.service.WindowFor(dateKey, override)
	if err != nil {
		response.RespondJSON(c, "error", http.StatusBadRequest, err.Error(), nil, nil)
		return
	}

	resp := WindowResponse{DateKey: dateKey, Overridden: overridden}
	if window == nil {
		resp.Closed = true
	} else {
		resp.OpenMin = window.OpenMin
		resp.CloseMin = window.CloseMin
	}

	response.RespondJSON(c, "success", http.StatusOK, "Window retrieved successfully", resp, nil)
}

func (ctrl *controller) CreateResource(c *gin.Context) {
	var req CreateResourceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(c, "error", http.StatusBadRequest, "Invalid request body", nil, err.Error())
		return
	}

	resource, err := ctrl.service.CreateResource(c.Request.Context(), req)
	if err != nil {
		response.RespondJSON(c, "error", http.StatusBadRequest, err.Error(), nil, nil)
		return
	}

	response.RespondJSON(c, "success", http.StatusCreated, "Resource created successfully", resource, nil)
}

func (ctrl *controller) UpdateResource(c *gin.Context) {
	var req UpdateResourceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(c, "error", http.StatusBadRequest, "Invalid request body", nil, err.Error())
		return
	}

	resource, err := ctrl.service.UpdateResource(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		statusCode := http.StatusBadRequest
		if err == ErrResourceNotFound {
			statusCode = http.StatusNotFound
		}
		response.RespondJSON(c, "error", statusCode, err.Error(), nil, nil)
		return
	}

	response.RespondJSON(c, "success", http.StatusOK, "Resource updated successfully", resource, nil)
}

func (ctrl *controller) DeleteResource(c *gin.Context) {
	if err := ctrl.service.DeleteResource(c.Request.Context(), c.Param("id")); err != nil {
		statusCode := http.StatusBadRequest
		if err == ErrResourceNotFound {
			statusCode = http.StatusNotFound
		}
		response.RespondJSON(c, "error", statusCode, err.Error(), nil, nil)
		return
	}

	response.RespondJSON(c, "success", http.StatusOK, "Resource deleted successfully", nil, nil)
}

package pricing

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Bovice22/axequacks-app-sub000/internal/availability"
	"github.com/Bovice22/axequacks-app-sub000/internal/catalog"
	"github.com/Bovice22/axequacks-app-sub000/internal/shared/utils/response"
)

type Controller interface {
	Quote(c *gin.Context)
	GetRates(c *gin.Context)
}

type controller struct {
	service Service
}

func NewController(service Service) Controller {
	return &controller{service: service}
}

// Quote godoc
// @Summary Price a booking configuration
// @Description Computes the total charge in cents with an ordered line-item breakdown
// @Tags pricing
// @Accept json
// @Produce json
// @Param request body QuoteRequest true "Pricing query"
// @Success 200 {object} response.StandardApiResponse
// @Router /pricing/quote [post]
func (ctrl *controller) Quote(c *gin.Context) {
	var req QuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(c, "error", http.StatusBadRequest, "Invalid request body", nil, err.Error())
		return
	}

	engineReq, err := req.ToRequest()
	if err != nil {
		response.RespondJSON(c, "error", http.StatusBadRequest, err.Error(), nil, nil)
		return
	}

	quote, err := ctrl.service.ComputePrice(c.Request.Context(), engineReq)
	if err != nil {
		statusCode := http.StatusInternalServerError
		if isValidationError(err) {
			statusCode = http.StatusBadRequest
		}
		response.RespondJSON(c, "error", statusCode, err.Error(), nil, nil)
		return
	}

	response.RespondJSON(c, "success", http.StatusOK, "Quote computed successfully", quote, nil)
}

// GetRates godoc
// @Summary List the standing price list
// @Tags pricing
// @Produce json
// @Success 200 {object} response.StandardApiResponse
// @Router /pricing/rates [get]
func (ctrl *controller) GetRates(c *gin.Context) {
	book := ctrl.service.RateBook()

	rates := make([]RateSummary, 0, len(book.Cards))
	for _, t := range []catalog.ResourceType{catalog.TypeAxeBay, catalog.TypeDuckpinLane} {
		card, ok := book.Cards[t]
		if !ok {
			continue
		}
		rates = append(rates, RateSummary{
			Type:        t.String(),
			TierCents:   card.TierCents,
			HourlyCents: card.HourlyCents,
		})
	}

	response.RespondJSON(c, "success", http.StatusOK, "Rates retrieved successfully", RatesResponse{
		Activities:           rates,
		PartyAreaHourlyCents: book.PartyAreaHourly,
		PartyAreaMaxMinutes:  book.PartyAreaMaxMin,
	}, nil)
}

func isValidationError(err error) bool {
	return errors.Is(err, ErrUnsupportedActivity) ||
		errors.Is(err, ErrInvalidAddOnDuration) ||
		errors.Is(err, availability.ErrInvalidPartySize) ||
		errors.Is(err, availability.ErrInvalidDuration) ||
		errors.Is(err, availability.ErrInvalidActivity) ||
		errors.Is(err, catalog.ErrUnknownResourceType)
}

package handlers

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/ybhavesh-0915/taxwise-CIDIB/internal/dto"
	apierrors "github.com/ybhavesh-0915/taxwise-CIDIB/internal/errors"
	"github.com/ybhavesh-0915/taxwise-CIDIB/internal/models"
	"github.com/ybhavesh-0915/taxwise-CIDIB/internal/services"
)

// DevHandler serves development-only endpoints. It is never registered in
// production.
type DevHandler struct {
	generator services.TransactionGeneratorInterface
}

func NewDevHandler(generator services.TransactionGeneratorInterface) *DevHandler {
	return &DevHandler{generator: generator}
}

// GenerateSampleFeed produces a synthetic transaction feed for exercising the
// analyze pipeline without the data processor
//
// Method: GET /api/v1/dev/sample-transactions
//
// Query parameters:
//   - months: feed length in months (default 24, max 240)
//   - categories: comma-free repeated param of category names (default: all
//     credit mix categories)
func (h *DevHandler) GenerateSampleFeed(c echo.Context) error {
	months := 24
	if monthsParam := c.QueryParam("months"); monthsParam != "" {
		parsed, err := strconv.Atoi(monthsParam)
		if err != nil || parsed < 1 || parsed > 240 {
			return SendError(c, apierrors.ValidationGeneral, apierrors.WithDetails("months must be an integer between 1 and 240"))
		}
		months = parsed
	}

	categories := models.CreditMixCategories()
	if categoryParams := c.QueryParams()["category"]; len(categoryParams) > 0 {
		categories = categories[:0]
		for _, raw := range categoryParams {
			category := models.Category(raw)
			if !models.IsValidCategory(category) {
				return SendError(c, apierrors.ValidationGeneral, apierrors.WithDetails("unknown category: "+raw))
			}
			categories = append(categories, category)
		}
	}

	feed := h.generator.GenerateFeed(months, categories)

	return c.JSON(http.StatusOK, dto.SampleFeedResponse{
		Count:        len(feed),
		Transactions: feed,
	})
}

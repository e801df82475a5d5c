package controllers

import (
	"net/http"

	"buggyapi/internal/models"
	"buggyapi/internal/service"
	"buggyapi/internal/validation"

	"github.com/gin-gonic/gin"
)

// CatalogController serves the fault-injection endpoints. Every handler is
// stateless; faults raised past the binding step propagate to the router's
// recovery boundary as bare 500 responses.
type CatalogController struct{}

func NewCatalogController() *CatalogController {
	return &CatalogController{}
}

// CreateOrder handles POST /orders
func (cc *CatalogController) CreateOrder(c *gin.Context) {
	var req models.CreateOrderRequest
	if !bindJSON(c, &req) {
		return
	}

	total := service.PlaceOrder(*req.Quantity)
	c.JSON(http.StatusOK, gin.H{"total": total})
}

// Search handles GET /search
func (cc *CatalogController) Search(c *gin.Context) {
	q, ok := requiredQuery(c, "q")
	if !ok {
		return
	}
	limit, ok := intQuery(c, "limit", 10)
	if !ok {
		return
	}

	results := service.Search(q, limit)
	c.JSON(http.StatusOK, gin.H{
		"results": results,
		"count":   len(results),
	})
}

// Webhook handles POST /webhook
func (cc *CatalogController) Webhook(c *gin.Context) {
	var payload map[string]any
	if !bindJSON(c, &payload) {
		return
	}
	if payload == nil {
		respondValidation(c, []validation.FieldError{{Field: "body", Message: "field required"}})
		return
	}

	event := service.ProcessWebhook(payload)
	c.JSON(http.StatusOK, gin.H{"processed": event})
}

// Compute handles GET /compute/:value
func (cc *CatalogController) Compute(c *gin.Context) {
	value, ok := intParam(c, "value")
	if !ok {
		return
	}

	result := service.Compute(value)
	c.JSON(http.StatusOK, gin.H{"result": result})
}

// CreatePayment handles POST /payments
func (cc *CatalogController) CreatePayment(c *gin.Context) {
	var req models.CreatePaymentRequest
	if !bindJSON(c, &req) {
		return
	}

	fee, installments, converted := service.ProcessPayment(*req.Amount, *req.Currency)
	c.JSON(http.StatusOK, gin.H{
		"fee":          fee,
		"installments": installments,
		"converted":    converted,
	})
}

// GetReviews handles GET /products/:id/reviews
func (cc *CatalogController) GetReviews(c *gin.Context) {
	if _, ok := intParam(c, "id"); !ok {
		return
	}
	page, ok := intQuery(c, "page", 1)
	if !ok {
		return
	}
	sortBy := c.DefaultQuery("sort_by", "date")

	reviews := service.ProductReviews(page, sortBy)
	c.JSON(http.StatusOK, gin.H{
		"reviews": reviews,
		"page":    page,
		"total":   service.TotalReviews,
	})
}

// UpdateConfig handles PUT /config
func (cc *CatalogController) UpdateConfig(c *gin.Context) {
	var req models.UpdateConfigRequest
	if !bindJSON(c, &req) {
		return
	}

	result := service.ApplyConfig(req.Theme, req.Notifications, req.Profile)
	c.JSON(http.StatusOK, gin.H{"updated": result})
}

// Transform handles POST /transform
func (cc *CatalogController) Transform(c *gin.Context) {
	var req models.TransformRequest
	if !bindJSON(c, &req) {
		return
	}

	result := service.Transform(*req.Values, *req.Operation)
	c.JSON(http.StatusOK, gin.H{
		"result": result,
		"count":  len(*req.Values),
	})
}

// Report handles GET /report
func (cc *CatalogController) Report(c *gin.Context) {
	year, ok := requiredIntQuery(c, "year")
	if !ok {
		return
	}
	month, ok := intQuery(c, "month", 1)
	if !ok {
		return
	}

	start, end, days := service.MonthlyReport(year, month)
	c.JSON(http.StatusOK, gin.H{
		"start": start,
		"end":   end,
		"days":  days,
	})
}

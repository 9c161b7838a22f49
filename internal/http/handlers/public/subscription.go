package public

import (
	"github.com/fresh-dairy/backend/internal/http/response"
	"github.com/fresh-dairy/backend/internal/service"

	"github.com/gin-gonic/gin"
)

// CreateSubscriptionRequest 创建订阅请求
type CreateSubscriptionRequest struct {
	CustomerName    string             `json:"customer_name" binding:"required"`
	Phone           string             `json:"phone" binding:"required"`
	CustomerEmail   string             `json:"customer_email"`
	FulfillmentType string             `json:"fulfillment_type" binding:"required"`
	Address         string             `json:"address"`
	City            string             `json:"city"`
	State           string             `json:"state"`
	Zip             string             `json:"zip"`
	Frequency       string             `json:"frequency" binding:"required"`
	StartDate       string             `json:"start_date" binding:"required"`
	TimeWindow      string             `json:"time_window"`
	Items           []OrderItemRequest `json:"items" binding:"required"`
}

// CreateSubscription 创建订阅
func (h *Handler) CreateSubscription(c *gin.Context) {
	var req CreateSubscriptionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "missing required fields", err)
		return
	}

	items := make([]service.OrderLineInput, 0, len(req.Items))
	for _, item := range req.Items {
		items = append(items, service.OrderLineInput{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
		})
	}

	subscription, err := h.SubscriptionService.PlaceSubscription(service.PlaceSubscriptionInput{
		CustomerName:    req.CustomerName,
		Phone:           req.Phone,
		CustomerEmail:   req.CustomerEmail,
		CustomerUserID:  optionalUserID(c),
		FulfillmentType: req.FulfillmentType,
		Address:         req.Address,
		City:            req.City,
		State:           req.State,
		Zip:             req.Zip,
		Frequency:       req.Frequency,
		StartDate:       req.StartDate,
		TimeWindow:      req.TimeWindow,
		Items:           items,
	})
	if err != nil {
		respondWithMappedError(c, err, placementErrorRules, response.CodeInternal, "failed to create subscription")
		return
	}

	response.Success(c, gin.H{
		"subscription_id":    subscription.ID,
		"subscription_no":    subscription.SubscriptionNo,
		"status":             subscription.Status,
		"total":              subscription.Total,
		"next_delivery_date": subscription.NextDeliveryDate,
	})
}

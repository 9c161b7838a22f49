package public

import (
	"github.com/fresh-dairy/backend/internal/http/handlers/shared"
	"github.com/fresh-dairy/backend/internal/http/response"
	"github.com/fresh-dairy/backend/internal/service"

	"github.com/gin-gonic/gin"
)

// OrderItemRequest 订单项请求
type OrderItemRequest struct {
	ProductID uint `json:"product_id" binding:"required"`
	Quantity  int  `json:"quantity"`
}

// CreateOrderRequest 创建订单请求
type CreateOrderRequest struct {
	CustomerName    string             `json:"customer_name" binding:"required"`
	Phone           string             `json:"phone" binding:"required"`
	CustomerEmail   string             `json:"customer_email"`
	FulfillmentType string             `json:"fulfillment_type" binding:"required"`
	Address         string             `json:"address"`
	City            string             `json:"city"`
	State           string             `json:"state"`
	Zip             string             `json:"zip"`
	ScheduledDate   string             `json:"scheduled_date" binding:"required"`
	TimeWindow      string             `json:"time_window"`
	Plan            string             `json:"plan"`
	Items           []OrderItemRequest `json:"items" binding:"required"`
}

// CreateOrder 创建订单（游客可下单，携带令牌时关联用户身份）
func (h *Handler) CreateOrder(c *gin.Context) {
	var req CreateOrderRequest
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

	order, err := h.OrderService.PlaceOrder(service.PlaceOrderInput{
		CustomerName:    req.CustomerName,
		Phone:           req.Phone,
		CustomerEmail:   req.CustomerEmail,
		CustomerUserID:  optionalUserID(c),
		FulfillmentType: req.FulfillmentType,
		Address:         req.Address,
		City:            req.City,
		State:           req.State,
		Zip:             req.Zip,
		ScheduledDate:   req.ScheduledDate,
		TimeWindow:      req.TimeWindow,
		Plan:            req.Plan,
		Items:           items,
	})
	if err != nil {
		respondWithMappedError(c, err, placementErrorRules, response.CodeInternal, "failed to create order")
		return
	}

	response.Success(c, gin.H{
		"order_id": order.ID,
		"order_no": order.OrderNo,
		"status":   order.Status,
		"total":    order.Total,
	})
}

// MyOrders 用户本人订单列表（需携带用户令牌）
func (h *Handler) MyOrders(c *gin.Context) {
	userID, ok := shared.GetContextString(c, "user_id")
	if !ok {
		return
	}

	orders, err := h.OrderService.ListMyOrders(userID)
	if err != nil {
		respondError(c, response.CodeInternal, "failed to load orders", err)
		return
	}
	response.Success(c, gin.H{"orders": orders})
}

// optionalUserID 读取中间件写入的用户身份；游客下单时为空
func optionalUserID(c *gin.Context) string {
	if value, ok := c.Get("user_id"); ok {
		if id, ok := value.(string); ok {
			return id
		}
	}
	return ""
}

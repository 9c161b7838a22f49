package admin

import (
	"errors"
	"strconv"
	"strings"

	"github.com/fresh-dairy/backend/internal/constants"
	"github.com/fresh-dairy/backend/internal/http/handlers/shared"
	"github.com/fresh-dairy/backend/internal/http/response"
	"github.com/fresh-dairy/backend/internal/repository"
	"github.com/fresh-dairy/backend/internal/service"

	"github.com/gin-gonic/gin"
)

// AdminListOrders 管理端订单列表（按创建顺序倒序）
func (h *Handler) AdminListOrders(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", strconv.Itoa(constants.AdminOrderListLimit)))
	if page < 1 {
		page = 1
	}
	if pageSize <= 0 || pageSize > constants.AdminOrderListLimit {
		pageSize = constants.AdminOrderListLimit
	}

	orders, total, err := h.OrderService.ListAdminOrders(repository.OrderListFilter{
		Page:          page,
		PageSize:      pageSize,
		Status:        strings.TrimSpace(c.Query("status")),
		Phone:         strings.TrimSpace(c.Query("phone")),
		ScheduledDate: strings.TrimSpace(c.Query("scheduled_date")),
	})
	if err != nil {
		respondError(c, response.CodeInternal, "failed to load orders", err)
		return
	}

	response.SuccessWithPage(c, orders, response.Pagination{
		Page:      page,
		PageSize:  pageSize,
		Total:     total,
		TotalPage: (total + int64(pageSize) - 1) / int64(pageSize),
	})
}

// AdminUpdateOrderStatusRequest 管理端更新订单状态请求
type AdminUpdateOrderStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// AdminUpdateOrderStatus 管理端更新订单状态（仅校验状态枚举成员资格）
func (h *Handler) AdminUpdateOrderStatus(c *gin.Context) {
	orderID, ok := shared.ParseUintParam(c, "id")
	if !ok {
		return
	}

	var req AdminUpdateOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "status is required", err)
		return
	}

	order, err := h.OrderService.UpdateOrderStatus(orderID, req.Status)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrOrderNotFound):
			respondError(c, response.CodeNotFound, "order not found", nil)
		case errors.Is(err, service.ErrStatusInvalid):
			respondError(c, response.CodeBadRequest, "invalid status", nil)
		default:
			respondError(c, response.CodeInternal, "failed to update order", err)
		}
		return
	}

	response.Success(c, order)
}

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

// AdminListSubscriptions 管理端订阅列表
func (h *Handler) AdminListSubscriptions(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", strconv.Itoa(constants.AdminOrderListLimit)))
	if page < 1 {
		page = 1
	}
	if pageSize <= 0 || pageSize > constants.AdminOrderListLimit {
		pageSize = constants.AdminOrderListLimit
	}

	subscriptions, total, err := h.SubscriptionService.ListAdminSubscriptions(repository.SubscriptionListFilter{
		Page:             page,
		PageSize:         pageSize,
		Status:           strings.TrimSpace(c.Query("status")),
		NextDeliveryDate: strings.TrimSpace(c.Query("next_delivery_date")),
	})
	if err != nil {
		respondError(c, response.CodeInternal, "failed to load subscriptions", err)
		return
	}

	response.SuccessWithPage(c, subscriptions, response.Pagination{
		Page:      page,
		PageSize:  pageSize,
		Total:     total,
		TotalPage: (total + int64(pageSize) - 1) / int64(pageSize),
	})
}

// AdminUpdateSubscriptionStatusRequest 管理端更新订阅状态请求
type AdminUpdateSubscriptionStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// AdminUpdateSubscriptionStatus 管理端更新订阅状态
func (h *Handler) AdminUpdateSubscriptionStatus(c *gin.Context) {
	subscriptionID, ok := shared.ParseUintParam(c, "id")
	if !ok {
		return
	}

	var req AdminUpdateSubscriptionStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "status is required", err)
		return
	}

	subscription, err := h.SubscriptionService.UpdateSubscriptionStatus(subscriptionID, req.Status)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrSubscriptionNotFound):
			respondError(c, response.CodeNotFound, "subscription not found", nil)
		case errors.Is(err, service.ErrStatusInvalid):
			respondError(c, response.CodeBadRequest, "invalid status", nil)
		default:
			respondError(c, response.CodeInternal, "failed to update subscription", err)
		}
		return
	}

	response.Success(c, subscription)
}

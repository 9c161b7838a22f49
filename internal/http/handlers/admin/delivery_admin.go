package admin

import (
	"errors"
	"strings"

	"github.com/fresh-dairy/backend/internal/http/response"
	"github.com/fresh-dairy/backend/internal/service"

	"github.com/gin-gonic/gin"
)

// AdminListDeliveries 获取某日配送排班单（当日订单 + 当日应配送订阅）
func (h *Handler) AdminListDeliveries(c *gin.Context) {
	date := strings.TrimSpace(c.Query("date"))
	if date == "" {
		respondError(c, response.CodeBadRequest, "date is required", nil)
		return
	}

	sheet, err := h.DeliveryService.RunSheetForDate(date)
	if err != nil {
		if errors.Is(err, service.ErrValidation) {
			respondError(c, response.CodeBadRequest, "invalid date, expected YYYY-MM-DD", nil)
			return
		}
		respondError(c, response.CodeInternal, "failed to load deliveries", err)
		return
	}

	response.Success(c, sheet)
}

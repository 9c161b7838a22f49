package public

import (
	"errors"

	"github.com/fresh-dairy/backend/internal/http/response"
	"github.com/fresh-dairy/backend/internal/service"

	"github.com/gin-gonic/gin"
)

// mappedHandlerError 定义业务错误到接口错误响应的映射关系。
type mappedHandlerError struct {
	target error
	code   int
	msg    string
}

func respondWithMappedError(c *gin.Context, err error, rules []mappedHandlerError, fallbackCode int, fallbackMsg string) {
	for _, rule := range rules {
		if errors.Is(err, rule.target) {
			respondError(c, rule.code, rule.msg, nil)
			return
		}
	}
	respondError(c, fallbackCode, fallbackMsg, err)
}

// placementErrorRules 下单与订阅共用的错误映射。
// 配送不可达、商品不存在与商品下架均为独立失败类别，前端据此展示不同文案。
var placementErrorRules = []mappedHandlerError{
	{target: service.ErrValidation, code: response.CodeBadRequest, msg: "missing required fields"},
	{target: service.ErrDeliveryUnavailable, code: response.CodeBadRequest, msg: "delivery is not available for this zip code"},
	{target: service.ErrProductNotFound, code: response.CodeBadRequest, msg: "product not found"},
	{target: service.ErrProductInactive, code: response.CodeBadRequest, msg: "product is no longer available"},
	{target: service.ErrFrequencyInvalid, code: response.CodeBadRequest, msg: "invalid frequency"},
	{target: service.ErrStoreNotFound, code: response.CodeInternal, msg: "store is not configured"},
	{target: service.ErrPersistence, code: response.CodeInternal, msg: "failed to save order"},
}

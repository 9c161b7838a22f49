package admin

import (
	"github.com/fresh-dairy/backend/internal/http/response"

	"github.com/gin-gonic/gin"
)

// VerifyKeyRequest 管理密钥校验请求
type VerifyKeyRequest struct {
	Key string `json:"key" binding:"required"`
}

// VerifyKey 校验管理密钥（供后台登录页使用）。
// 校验失败与密钥缺失返回同样的响应，不泄露失败原因。
func (h *Handler) VerifyKey(c *gin.Context) {
	var req VerifyKeyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Unauthorized(c, "unauthorized")
		return
	}
	if !h.AccessService.Verify(req.Key) {
		response.Unauthorized(c, "unauthorized")
		return
	}
	response.Success(c, gin.H{"valid": true})
}

package service

import (
	"crypto/subtle"
	"strings"
)

// AccessService 后台访问闸门：单一共享密钥的能力校验，
// 不区分身份，不发会话，不记录审计。
type AccessService struct {
	key string
}

// NewAccessService 创建访问闸门；key 为空时所有请求一律拒绝
func NewAccessService(key string) *AccessService {
	return &AccessService{key: strings.TrimSpace(key)}
}

// Verify 恒定时间比较调用方提交的密钥
func (s *AccessService) Verify(candidate string) bool {
	if s.key == "" {
		return false
	}
	candidate = strings.TrimSpace(candidate)
	return subtle.ConstantTimeCompare([]byte(candidate), []byte(s.key)) == 1
}

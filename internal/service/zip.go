package service

import (
	"strings"

	"github.com/fresh-dairy/backend/internal/constants"
)

// ZipChecker 配送邮编白名单校验（去除首尾空白后精确匹配，无前缀匹配）
type ZipChecker struct {
	allowed map[string]struct{}
}

// NewZipChecker 创建邮编校验器；zips 为空时使用默认白名单
func NewZipChecker(zips []string) *ZipChecker {
	if len(zips) == 0 {
		zips = constants.DefaultServiceZips
	}
	allowed := make(map[string]struct{}, len(zips))
	for _, zip := range zips {
		zip = strings.TrimSpace(zip)
		if zip == "" {
			continue
		}
		allowed[zip] = struct{}{}
	}
	return &ZipChecker{allowed: allowed}
}

// Eligible 判断邮编是否在配送服务范围内
func (z *ZipChecker) Eligible(zip string) bool {
	_, ok := z.allowed[strings.TrimSpace(zip)]
	return ok
}

package repository

import "time"

// ProductListFilter 查询商品列表的过滤条件
type ProductListFilter struct {
	Page       int
	PageSize   int
	Category   string
	OnlyActive bool
}

// OrderListFilter 查询订单列表的过滤条件
type OrderListFilter struct {
	Page          int
	PageSize      int
	Status        string
	CustomerUser  string
	Phone         string
	ScheduledDate string
	CreatedFrom   *time.Time
	CreatedTo     *time.Time
}

// SubscriptionListFilter 查询订阅列表的过滤条件
type SubscriptionListFilter struct {
	Page             int
	PageSize         int
	Status           string
	CustomerUser     string
	NextDeliveryDate string
}

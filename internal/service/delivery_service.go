package service

import (
	"time"

	"github.com/fresh-dairy/backend/internal/models"
	"github.com/fresh-dairy/backend/internal/repository"
)

// DeliveryService 配送排班单服务
type DeliveryService struct {
	orderRepo        repository.OrderRepository
	subscriptionRepo repository.SubscriptionRepository
}

// NewDeliveryService 创建配送排班单服务
func NewDeliveryService(orderRepo repository.OrderRepository, subscriptionRepo repository.SubscriptionRepository) *DeliveryService {
	return &DeliveryService{
		orderRepo:        orderRepo,
		subscriptionRepo: subscriptionRepo,
	}
}

// RunSheet 某日配送排班单：当日预约订单 + 当日应配送的生效订阅
type RunSheet struct {
	Date          string                `json:"date"`
	Orders        []models.Order        `json:"orders"`
	Subscriptions []models.Subscription `json:"subscriptions"`
}

// RunSheetForDate 获取指定日期（YYYY-MM-DD）的配送排班单
func (s *DeliveryService) RunSheetForDate(date string) (*RunSheet, error) {
	if _, err := time.Parse("2006-01-02", date); err != nil {
		return nil, ErrValidation
	}

	orders, err := s.orderRepo.ListByScheduledDate(date)
	if err != nil {
		return nil, err
	}
	subscriptions, err := s.subscriptionRepo.ListActiveByNextDeliveryDate(date)
	if err != nil {
		return nil, err
	}

	return &RunSheet{
		Date:          date,
		Orders:        orders,
		Subscriptions: subscriptions,
	}, nil
}

package queue

import (
	"encoding/json"

	"github.com/hibiken/asynq"
)

const (
	// TaskOrderConfirmationEmail 订单确认邮件任务
	TaskOrderConfirmationEmail = "email:order_confirmation"
	// TaskSubscriptionConfirmationEmail 订阅确认邮件任务
	TaskSubscriptionConfirmationEmail = "email:subscription_confirmation"
)

// OrderConfirmationEmailPayload 订单确认邮件任务载荷
type OrderConfirmationEmailPayload struct {
	OrderID uint `json:"order_id"`
}

// SubscriptionConfirmationEmailPayload 订阅确认邮件任务载荷
type SubscriptionConfirmationEmailPayload struct {
	SubscriptionID uint `json:"subscription_id"`
}

// NewOrderConfirmationEmailTask 创建订单确认邮件任务
func NewOrderConfirmationEmailTask(payload OrderConfirmationEmailPayload) (*asynq.Task, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TaskOrderConfirmationEmail, body), nil
}

// NewSubscriptionConfirmationEmailTask 创建订阅确认邮件任务
func NewSubscriptionConfirmationEmailTask(payload SubscriptionConfirmationEmailPayload) (*asynq.Task, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TaskSubscriptionConfirmationEmail, body), nil
}

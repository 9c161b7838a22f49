package worker

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/fresh-dairy/backend/internal/logger"
	"github.com/fresh-dairy/backend/internal/provider"
	"github.com/fresh-dairy/backend/internal/queue"
	"github.com/fresh-dairy/backend/internal/service"

	"github.com/hibiken/asynq"
)

// Consumer 异步任务消费者
type Consumer struct {
	*provider.Container
}

// NewConsumer 创建消费者
func NewConsumer(c *provider.Container) *Consumer {
	return &Consumer{
		Container: c,
	}
}

// Register 注册消费者
func (c *Consumer) Register(mux *asynq.ServeMux) {
	if c == nil || mux == nil {
		logger.Debugw("worker_register_skip_nil", "consumer_nil", c == nil, "mux_nil", mux == nil)
		return
	}
	mux.HandleFunc(queue.TaskOrderConfirmationEmail, c.handleOrderConfirmationEmail)
	mux.HandleFunc(queue.TaskSubscriptionConfirmationEmail, c.handleSubscriptionConfirmationEmail)
}

func (c *Consumer) handleOrderConfirmationEmail(_ context.Context, task *asynq.Task) error {
	if c == nil || task == nil {
		logger.Debugw("worker_order_confirmation_skip_nil", "consumer_nil", c == nil, "task_nil", task == nil)
		return nil
	}
	var payload queue.OrderConfirmationEmailPayload
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		logger.Warnw("worker_order_confirmation_unmarshal_failed", "error", err)
		return err
	}
	if payload.OrderID == 0 {
		logger.Debugw("worker_order_confirmation_skip_invalid_payload", "order_id", payload.OrderID)
		return nil
	}
	if c.OrderService == nil {
		logger.Warnw("worker_order_confirmation_skip_order_service_nil", "order_id", payload.OrderID)
		return nil
	}
	order, err := c.OrderService.GetOrder(payload.OrderID)
	if err != nil {
		if errors.Is(err, service.ErrOrderNotFound) {
			logger.Debugw("worker_order_confirmation_skip_order_not_found", "order_id", payload.OrderID)
			return nil
		}
		logger.Warnw("worker_order_confirmation_fetch_failed", "order_id", payload.OrderID, "error", err)
		return err
	}
	// 确认邮件发送失败只记录，不触发重试
	c.OrderService.SendOrderConfirmationEmails(order)
	return nil
}

func (c *Consumer) handleSubscriptionConfirmationEmail(_ context.Context, task *asynq.Task) error {
	if c == nil || task == nil {
		logger.Debugw("worker_subscription_confirmation_skip_nil", "consumer_nil", c == nil, "task_nil", task == nil)
		return nil
	}
	var payload queue.SubscriptionConfirmationEmailPayload
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		logger.Warnw("worker_subscription_confirmation_unmarshal_failed", "error", err)
		return err
	}
	if payload.SubscriptionID == 0 {
		logger.Debugw("worker_subscription_confirmation_skip_invalid_payload", "subscription_id", payload.SubscriptionID)
		return nil
	}
	if c.SubscriptionService == nil {
		logger.Warnw("worker_subscription_confirmation_skip_service_nil", "subscription_id", payload.SubscriptionID)
		return nil
	}
	sub, err := c.SubscriptionService.GetSubscription(payload.SubscriptionID)
	if err != nil {
		if errors.Is(err, service.ErrSubscriptionNotFound) {
			logger.Debugw("worker_subscription_confirmation_skip_not_found", "subscription_id", payload.SubscriptionID)
			return nil
		}
		logger.Warnw("worker_subscription_confirmation_fetch_failed", "subscription_id", payload.SubscriptionID, "error", err)
		return err
	}
	c.SubscriptionService.SendSubscriptionConfirmationEmails(sub)
	return nil
}

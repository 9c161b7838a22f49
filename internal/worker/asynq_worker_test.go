package worker

import (
	"context"
	"testing"

	"github.com/fresh-dairy/backend/internal/provider"
	"github.com/fresh-dairy/backend/internal/queue"

	"github.com/hibiken/asynq"
)

func TestHandleOrderConfirmationEmailInvalidPayload(t *testing.T) {
	consumer := NewConsumer(&provider.Container{})
	task := asynq.NewTask(queue.TaskOrderConfirmationEmail, []byte("{not json"))
	if err := consumer.handleOrderConfirmationEmail(context.Background(), task); err == nil {
		t.Fatalf("expected error for malformed payload")
	}
}

func TestHandleOrderConfirmationEmailZeroOrderID(t *testing.T) {
	consumer := NewConsumer(&provider.Container{})
	task := asynq.NewTask(queue.TaskOrderConfirmationEmail, []byte(`{"order_id":0}`))
	if err := consumer.handleOrderConfirmationEmail(context.Background(), task); err != nil {
		t.Fatalf("expected zero order id to be skipped, got %v", err)
	}
}

func TestHandleSubscriptionConfirmationEmailZeroID(t *testing.T) {
	consumer := NewConsumer(&provider.Container{})
	task := asynq.NewTask(queue.TaskSubscriptionConfirmationEmail, []byte(`{"subscription_id":0}`))
	if err := consumer.handleSubscriptionConfirmationEmail(context.Background(), task); err != nil {
		t.Fatalf("expected zero subscription id to be skipped, got %v", err)
	}
}

func TestNewServiceRequiresEnabledQueue(t *testing.T) {
	if _, err := NewService(nil, NewConsumer(&provider.Container{})); err == nil {
		t.Fatalf("expected error when queue config is nil")
	}
}

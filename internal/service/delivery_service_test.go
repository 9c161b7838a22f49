package service

import (
	"errors"
	"testing"

	"github.com/fresh-dairy/backend/internal/constants"
	"github.com/fresh-dairy/backend/internal/models"
)

func TestRunSheetForDateRejectsBadDate(t *testing.T) {
	svc := NewDeliveryService(newStubOrderRepo(), newStubSubscriptionRepo())

	for _, date := range []string{"", "01/15/2025", "2025-13-01", "tomorrow"} {
		if _, err := svc.RunSheetForDate(date); !errors.Is(err, ErrValidation) {
			t.Fatalf("date %q want ErrValidation got %v", date, err)
		}
	}
}

func TestRunSheetForDateCombinesOrdersAndSubscriptions(t *testing.T) {
	orderRepo := newStubOrderRepo()
	orderRepo.orders[1] = &models.Order{ID: 1, OrderNo: "FD-A", ScheduledDate: "2025-01-10", Status: constants.OrderStatusNew}
	orderRepo.orders[2] = &models.Order{ID: 2, OrderNo: "FD-B", ScheduledDate: "2025-01-11", Status: constants.OrderStatusNew}

	subRepo := newStubSubscriptionRepo()
	subRepo.subscriptions[1] = &models.Subscription{ID: 1, SubscriptionNo: "FS-A", NextDeliveryDate: "2025-01-10", Status: constants.SubscriptionStatusActive}
	subRepo.subscriptions[2] = &models.Subscription{ID: 2, SubscriptionNo: "FS-B", NextDeliveryDate: "2025-01-10", Status: constants.SubscriptionStatusPaused}

	sheet, err := NewDeliveryService(orderRepo, subRepo).RunSheetForDate("2025-01-10")
	if err != nil {
		t.Fatalf("run sheet failed: %v", err)
	}
	if sheet.Date != "2025-01-10" {
		t.Fatalf("date want 2025-01-10 got %s", sheet.Date)
	}
	if len(sheet.Orders) != 1 || sheet.Orders[0].OrderNo != "FD-A" {
		t.Fatalf("want only the order scheduled on the date, got %+v", sheet.Orders)
	}
	// 暂停中的订阅不进排班单
	if len(sheet.Subscriptions) != 1 || sheet.Subscriptions[0].SubscriptionNo != "FS-A" {
		t.Fatalf("want only the active subscription due on the date, got %+v", sheet.Subscriptions)
	}
}

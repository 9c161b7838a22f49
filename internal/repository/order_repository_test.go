package repository

import (
	"testing"

	"github.com/fresh-dairy/backend/internal/constants"
	"github.com/fresh-dairy/backend/internal/models"

	"github.com/glebarez/sqlite"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

func setupOrderRepositoryTest(t *testing.T) (*GormOrderRepository, *gorm.DB) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(&models.Order{}, &models.OrderItem{}); err != nil {
		t.Fatalf("migrate order models failed: %v", err)
	}
	return NewOrderRepository(db), db
}

func createOrderHeader(t *testing.T, repo *GormOrderRepository, orderNo, status, scheduledDate, userID string) *models.Order {
	t.Helper()
	order := &models.Order{
		OrderNo:         orderNo,
		StoreID:         1,
		CustomerName:    "Asha Patel",
		Phone:           "562-555-0134",
		FulfillmentType: constants.FulfillmentPickup,
		ScheduledDate:   scheduledDate,
		Plan:            constants.PlanOneTime,
		PaymentMethod:   constants.PaymentMethodCOD,
		Status:          status,
		Total:           models.NewMoneyFromDecimal(decimal.NewFromFloat(9.00)),
		Source:          constants.OrderSourceWeb,
		CustomerUserID:  userID,
	}
	if err := repo.CreateHeader(order); err != nil {
		t.Fatalf("create order header failed: %v", err)
	}
	return order
}

func TestOrderCreateHeaderThenItems(t *testing.T) {
	repo, _ := setupOrderRepositoryTest(t)
	order := createOrderHeader(t, repo, "FD20250110093000123456", constants.OrderStatusNew, "2025-01-10", "")

	items := []models.OrderItem{
		{ProductID: 1, ProductName: "Whole Milk", Size: "Half Gallon", Quantity: 2,
			UnitPrice: models.NewMoneyFromDecimal(decimal.NewFromFloat(4.50)),
			LineTotal: models.NewMoneyFromDecimal(decimal.NewFromFloat(9.00))},
	}
	if err := repo.CreateItems(order.ID, items); err != nil {
		t.Fatalf("create order items failed: %v", err)
	}

	got, err := repo.GetByID(order.ID)
	if err != nil {
		t.Fatalf("get order failed: %v", err)
	}
	if got == nil {
		t.Fatalf("order should exist")
	}
	if len(got.Items) != 1 {
		t.Fatalf("order items want 1 got %d", len(got.Items))
	}
	if got.Items[0].OrderID != order.ID {
		t.Fatalf("item order id want %d got %d", order.ID, got.Items[0].OrderID)
	}
}

func TestOrderDeleteHeaderRemovesRow(t *testing.T) {
	repo, db := setupOrderRepositoryTest(t)
	order := createOrderHeader(t, repo, "FD20250110093000654321", constants.OrderStatusNew, "2025-01-10", "")

	if err := repo.DeleteHeader(order.ID); err != nil {
		t.Fatalf("delete order header failed: %v", err)
	}

	got, err := repo.GetByID(order.ID)
	if err != nil {
		t.Fatalf("get deleted order failed: %v", err)
	}
	if got != nil {
		t.Fatalf("deleted order should not be found")
	}

	// 补偿删除是物理删除，软删除记录也不应残留
	var count int64
	if err := db.Unscoped().Model(&models.Order{}).Where("id = ?", order.ID).Count(&count).Error; err != nil {
		t.Fatalf("count unscoped orders failed: %v", err)
	}
	if count != 0 {
		t.Fatalf("order row should be physically removed, found %d", count)
	}
}

func TestOrderListAdminFilters(t *testing.T) {
	repo, _ := setupOrderRepositoryTest(t)
	createOrderHeader(t, repo, "FD-A", constants.OrderStatusNew, "2025-01-10", "")
	createOrderHeader(t, repo, "FD-B", constants.OrderStatusDelivered, "2025-01-10", "")
	createOrderHeader(t, repo, "FD-C", constants.OrderStatusNew, "2025-01-11", "")

	orders, total, err := repo.ListAdmin(OrderListFilter{Page: 1, PageSize: 50, Status: constants.OrderStatusNew})
	if err != nil {
		t.Fatalf("list by status failed: %v", err)
	}
	if total != 2 || len(orders) != 2 {
		t.Fatalf("NEW orders want 2 got total=%d len=%d", total, len(orders))
	}
	if orders[0].OrderNo != "FD-C" {
		t.Fatalf("orders should be newest first, got %s", orders[0].OrderNo)
	}

	orders, total, err = repo.ListAdmin(OrderListFilter{Page: 1, PageSize: 50, ScheduledDate: "2025-01-11"})
	if err != nil {
		t.Fatalf("list by scheduled date failed: %v", err)
	}
	if total != 1 || orders[0].OrderNo != "FD-C" {
		t.Fatalf("scheduled date filter want FD-C got total=%d", total)
	}
}

func TestOrderListByUser(t *testing.T) {
	repo, _ := setupOrderRepositoryTest(t)
	createOrderHeader(t, repo, "FD-U1", constants.OrderStatusNew, "2025-01-10", "user-1")
	createOrderHeader(t, repo, "FD-U2", constants.OrderStatusNew, "2025-01-11", "user-1")
	createOrderHeader(t, repo, "FD-X1", constants.OrderStatusNew, "2025-01-10", "user-2")

	orders, err := repo.ListByUser("user-1", 50)
	if err != nil {
		t.Fatalf("list by user failed: %v", err)
	}
	if len(orders) != 2 {
		t.Fatalf("user-1 orders want 2 got %d", len(orders))
	}
	if orders[0].OrderNo != "FD-U2" {
		t.Fatalf("orders should be newest first, got %s", orders[0].OrderNo)
	}

	orders, err = repo.ListByUser("", 50)
	if err != nil {
		t.Fatalf("list by empty user failed: %v", err)
	}
	if len(orders) != 0 {
		t.Fatalf("empty user id should return no orders, got %d", len(orders))
	}
}

func TestOrderUpdateStatus(t *testing.T) {
	repo, _ := setupOrderRepositoryTest(t)
	order := createOrderHeader(t, repo, "FD-S1", constants.OrderStatusNew, "2025-01-10", "")

	if err := repo.UpdateStatus(order.ID, constants.OrderStatusOutForDelivery); err != nil {
		t.Fatalf("update status failed: %v", err)
	}

	got, err := repo.GetByID(order.ID)
	if err != nil {
		t.Fatalf("get order failed: %v", err)
	}
	if got.Status != constants.OrderStatusOutForDelivery {
		t.Fatalf("status want %s got %s", constants.OrderStatusOutForDelivery, got.Status)
	}
}

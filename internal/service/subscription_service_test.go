package service

import (
	"errors"
	"strings"
	"testing"

	"github.com/fresh-dairy/backend/internal/config"
	"github.com/fresh-dairy/backend/internal/constants"
	"github.com/fresh-dairy/backend/internal/models"
	"github.com/fresh-dairy/backend/internal/repository"
)

type stubSubscriptionRepo struct {
	subscriptions map[uint]*models.Subscription
	nextID        uint
	failItems     bool
	deleteCalled  bool
}

func newStubSubscriptionRepo() *stubSubscriptionRepo {
	return &stubSubscriptionRepo{subscriptions: map[uint]*models.Subscription{}, nextID: 1}
}

func (r *stubSubscriptionRepo) CreateHeader(sub *models.Subscription) error {
	sub.ID = r.nextID
	r.nextID++
	clone := *sub
	r.subscriptions[sub.ID] = &clone
	return nil
}

func (r *stubSubscriptionRepo) CreateItems(subscriptionID uint, items []models.SubscriptionItem) error {
	if r.failItems {
		return errors.New("items insert failed")
	}
	sub, ok := r.subscriptions[subscriptionID]
	if !ok {
		return errors.New("subscription not found")
	}
	for i := range items {
		items[i].SubscriptionID = subscriptionID
	}
	sub.Items = items
	return nil
}

func (r *stubSubscriptionRepo) DeleteHeader(id uint) error {
	r.deleteCalled = true
	delete(r.subscriptions, id)
	return nil
}

func (r *stubSubscriptionRepo) GetByID(id uint) (*models.Subscription, error) {
	sub, ok := r.subscriptions[id]
	if !ok {
		return nil, nil
	}
	clone := *sub
	return &clone, nil
}

func (r *stubSubscriptionRepo) ListAdmin(filter repository.SubscriptionListFilter) ([]models.Subscription, int64, error) {
	var subs []models.Subscription
	for _, sub := range r.subscriptions {
		subs = append(subs, *sub)
	}
	return subs, int64(len(subs)), nil
}

func (r *stubSubscriptionRepo) ListActiveByNextDeliveryDate(date string) ([]models.Subscription, error) {
	var subs []models.Subscription
	for _, sub := range r.subscriptions {
		if sub.Status == constants.SubscriptionStatusActive && sub.NextDeliveryDate == date {
			subs = append(subs, *sub)
		}
	}
	return subs, nil
}

func (r *stubSubscriptionRepo) UpdateStatus(id uint, status string) error {
	sub, ok := r.subscriptions[id]
	if !ok {
		return errors.New("subscription not found")
	}
	sub.Status = status
	return nil
}

func newTestSubscriptionService(subRepo *stubSubscriptionRepo, productRepo *stubProductRepo) *SubscriptionService {
	return NewSubscriptionService(
		subRepo,
		productRepo,
		&stubStoreRepo{store: &models.Store{ID: 1, Name: "Cerritos", IsActive: true}},
		NewZipChecker(nil),
		nil,
		NewEmailService(&config.EmailConfig{}),
		config.StoreConfig{DefaultCity: "Long Beach", DefaultState: "CA"},
	)
}

func validSubscriptionInput() PlaceSubscriptionInput {
	return PlaceSubscriptionInput{
		CustomerName:    "Asha Patel",
		Phone:           "562-555-0134",
		FulfillmentType: constants.FulfillmentDelivery,
		Address:         "123 Elm St",
		Zip:             "90804",
		Frequency:       constants.FrequencyWeekly,
		StartDate:       "2025-01-10",
		Items:           []OrderLineInput{{ProductID: 1, Quantity: 2}},
	}
}

func TestPlaceSubscriptionNextDeliveryEqualsStart(t *testing.T) {
	svc := newTestSubscriptionService(newStubSubscriptionRepo(), newStubProductRepo(milkProduct(1, 6.50, true)))

	sub, err := svc.PlaceSubscription(validSubscriptionInput())
	if err != nil {
		t.Fatalf("place subscription failed: %v", err)
	}
	if sub.NextDeliveryDate != sub.StartDate {
		t.Fatalf("next delivery date want %s got %s", sub.StartDate, sub.NextDeliveryDate)
	}
	if sub.Status != constants.SubscriptionStatusActive {
		t.Fatalf("status want ACTIVE got %s", sub.Status)
	}
	if sub.Total.String() != "13.00" {
		t.Fatalf("total want 13.00 got %s", sub.Total.String())
	}
	if !strings.HasPrefix(sub.SubscriptionNo, "FS") {
		t.Fatalf("subscription no should start with FS, got %s", sub.SubscriptionNo)
	}
}

func TestPlaceSubscriptionFrequencyValidation(t *testing.T) {
	svc := newTestSubscriptionService(newStubSubscriptionRepo(), newStubProductRepo(milkProduct(1, 6.50, true)))

	input := validSubscriptionInput()
	input.Frequency = "MONTHLY"
	if _, err := svc.PlaceSubscription(input); !errors.Is(err, ErrFrequencyInvalid) {
		t.Fatalf("unknown frequency want ErrFrequencyInvalid got %v", err)
	}

	// 频率大小写不敏感
	input.Frequency = "biweekly"
	sub, err := svc.PlaceSubscription(input)
	if err != nil {
		t.Fatalf("lower-case frequency should be accepted: %v", err)
	}
	if sub.Frequency != constants.FrequencyBiweekly {
		t.Fatalf("frequency want BIWEEKLY got %s", sub.Frequency)
	}
}

func TestPlaceSubscriptionZipGate(t *testing.T) {
	svc := newTestSubscriptionService(newStubSubscriptionRepo(), newStubProductRepo(milkProduct(1, 6.50, true)))

	input := validSubscriptionInput()
	input.Zip = "90210"
	if _, err := svc.PlaceSubscription(input); !errors.Is(err, ErrDeliveryUnavailable) {
		t.Fatalf("zip outside allow-list want ErrDeliveryUnavailable got %v", err)
	}
}

func TestPlaceSubscriptionCompensatesHeaderOnItemFailure(t *testing.T) {
	subRepo := newStubSubscriptionRepo()
	subRepo.failItems = true
	svc := newTestSubscriptionService(subRepo, newStubProductRepo(milkProduct(1, 6.50, true)))

	_, err := svc.PlaceSubscription(validSubscriptionInput())
	if !errors.Is(err, ErrPersistence) {
		t.Fatalf("item failure want ErrPersistence got %v", err)
	}
	if !subRepo.deleteCalled {
		t.Fatalf("subscription header should be deleted when item insert fails")
	}
	if len(subRepo.subscriptions) != 0 {
		t.Fatalf("no subscription should remain after compensation")
	}
}

func TestUpdateSubscriptionStatus(t *testing.T) {
	subRepo := newStubSubscriptionRepo()
	svc := newTestSubscriptionService(subRepo, newStubProductRepo(milkProduct(1, 6.50, true)))
	sub, err := svc.PlaceSubscription(validSubscriptionInput())
	if err != nil {
		t.Fatalf("place subscription failed: %v", err)
	}

	if _, err := svc.UpdateSubscriptionStatus(sub.ID, "SUSPENDED"); !errors.Is(err, ErrStatusInvalid) {
		t.Fatalf("unknown status want ErrStatusInvalid got %v", err)
	}
	if _, err := svc.UpdateSubscriptionStatus(9999, constants.SubscriptionStatusPaused); !errors.Is(err, ErrSubscriptionNotFound) {
		t.Fatalf("missing subscription want ErrSubscriptionNotFound got %v", err)
	}

	updated, err := svc.UpdateSubscriptionStatus(sub.ID, constants.SubscriptionStatusPaused)
	if err != nil {
		t.Fatalf("update to PAUSED failed: %v", err)
	}
	if updated.Status != constants.SubscriptionStatusPaused {
		t.Fatalf("status want PAUSED got %s", updated.Status)
	}
}

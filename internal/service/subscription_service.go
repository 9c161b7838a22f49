package service

import (
	"fmt"
	"strings"
	"time"

	"github.com/fresh-dairy/backend/internal/config"
	"github.com/fresh-dairy/backend/internal/constants"
	"github.com/fresh-dairy/backend/internal/logger"
	"github.com/fresh-dairy/backend/internal/models"
	"github.com/fresh-dairy/backend/internal/queue"
	"github.com/fresh-dairy/backend/internal/repository"
)

// SubscriptionService 订阅服务
type SubscriptionService struct {
	subscriptionRepo repository.SubscriptionRepository
	productRepo      repository.ProductRepository
	storeRepo        repository.StoreRepository
	zipChecker       *ZipChecker
	queueClient      *queue.Client
	emailService     *EmailService
	storeCfg         config.StoreConfig
}

// NewSubscriptionService 创建订阅服务
func NewSubscriptionService(subscriptionRepo repository.SubscriptionRepository, productRepo repository.ProductRepository, storeRepo repository.StoreRepository, zipChecker *ZipChecker, queueClient *queue.Client, emailService *EmailService, storeCfg config.StoreConfig) *SubscriptionService {
	return &SubscriptionService{
		subscriptionRepo: subscriptionRepo,
		productRepo:      productRepo,
		storeRepo:        storeRepo,
		zipChecker:       zipChecker,
		queueClient:      queueClient,
		emailService:     emailService,
		storeCfg:         storeCfg,
	}
}

// PlaceSubscriptionInput 创建订阅输入
type PlaceSubscriptionInput struct {
	CustomerName    string
	Phone           string
	CustomerEmail   string
	CustomerUserID  string
	FulfillmentType string
	Address         string
	City            string
	State           string
	Zip             string
	Frequency       string
	StartDate       string
	TimeWindow      string
	Items           []OrderLineInput
}

var subscriptionStatusSet = buildStatusSet(constants.SubscriptionStatuses)

// PlaceSubscription 创建订阅。校验顺序与下单一致，价格同样由服务端
// 按当前商品目录重算；下次配送日期在创建时等于起始日期，本服务不做滚动。
func (s *SubscriptionService) PlaceSubscription(input PlaceSubscriptionInput) (*models.Subscription, error) {
	input.CustomerName = strings.TrimSpace(input.CustomerName)
	input.Phone = strings.TrimSpace(input.Phone)
	input.FulfillmentType = strings.TrimSpace(input.FulfillmentType)
	input.Frequency = strings.ToUpper(strings.TrimSpace(input.Frequency))
	input.StartDate = strings.TrimSpace(input.StartDate)

	if input.CustomerName == "" || input.Phone == "" || input.StartDate == "" || len(input.Items) == 0 {
		return nil, ErrValidation
	}
	if input.FulfillmentType != constants.FulfillmentPickup && input.FulfillmentType != constants.FulfillmentDelivery {
		return nil, ErrValidation
	}
	if input.Frequency != constants.FrequencyWeekly && input.Frequency != constants.FrequencyBiweekly {
		return nil, ErrFrequencyInvalid
	}

	if input.FulfillmentType == constants.FulfillmentDelivery {
		if !s.zipChecker.Eligible(input.Zip) {
			return nil, ErrDeliveryUnavailable
		}
		if strings.TrimSpace(input.City) == "" {
			input.City = s.storeCfg.DefaultCity
		}
		if strings.TrimSpace(input.State) == "" {
			input.State = s.storeCfg.DefaultState
		}
	} else {
		input.Address = ""
		input.City = ""
		input.State = ""
		input.Zip = ""
	}

	store, err := s.storeRepo.GetActive()
	if err != nil {
		return nil, fmt.Errorf("resolve store: %w", err)
	}
	if store == nil {
		return nil, ErrStoreNotFound
	}

	priced, total, err := priceOrderLines(s.productRepo, input.Items)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	subscription := &models.Subscription{
		SubscriptionNo:   generateSubscriptionNo(),
		StoreID:          store.ID,
		CustomerName:     input.CustomerName,
		Phone:            input.Phone,
		CustomerEmail:    strings.TrimSpace(input.CustomerEmail),
		CustomerUserID:   strings.TrimSpace(input.CustomerUserID),
		FulfillmentType:  input.FulfillmentType,
		Address:          strings.TrimSpace(input.Address),
		City:             strings.TrimSpace(input.City),
		State:            strings.TrimSpace(input.State),
		Zip:              strings.TrimSpace(input.Zip),
		Frequency:        input.Frequency,
		StartDate:        input.StartDate,
		NextDeliveryDate: input.StartDate,
		TimeWindow:       strings.TrimSpace(input.TimeWindow),
		PaymentMethod:    constants.PaymentMethodCOD,
		Status:           constants.SubscriptionStatusActive,
		Total:            models.NewMoneyFromDecimal(total),
		Source:           constants.OrderSourceWeb,
		CreatedAt:        now,
		UpdatedAt:        now,
	}

	if err := s.subscriptionRepo.CreateHeader(subscription); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPersistence, err)
	}

	items := make([]models.SubscriptionItem, 0, len(priced))
	for _, line := range priced {
		items = append(items, models.SubscriptionItem{
			ProductID:   line.Product.ID,
			ProductName: line.Product.Name,
			Size:        line.Product.Size,
			Quantity:    line.Quantity,
			UnitPrice:   models.NewMoneyFromDecimal(line.UnitPrice),
			LineTotal:   models.NewMoneyFromDecimal(line.LineTotal),
			CreatedAt:   now,
		})
	}
	if err := s.subscriptionRepo.CreateItems(subscription.ID, items); err != nil {
		// 补偿动作：订阅头不允许在无订阅项的情况下存在
		if delErr := s.subscriptionRepo.DeleteHeader(subscription.ID); delErr != nil {
			logger.Errorw("subscription_compensating_delete_failed",
				"subscription_id", subscription.ID,
				"error", delErr,
			)
		}
		return nil, fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	subscription.Items = items

	s.dispatchSubscriptionConfirmation(subscription)

	return subscription, nil
}

// dispatchSubscriptionConfirmation 尽力而为地发送订阅确认邮件
func (s *SubscriptionService) dispatchSubscriptionConfirmation(subscription *models.Subscription) {
	if s.queueClient.Enabled() {
		err := s.queueClient.EnqueueSubscriptionConfirmationEmail(queue.SubscriptionConfirmationEmailPayload{SubscriptionID: subscription.ID})
		if err == nil {
			return
		}
		logger.Warnw("subscription_confirmation_enqueue_failed",
			"subscription_id", subscription.ID,
			"error", err,
		)
	}
	s.SendSubscriptionConfirmationEmails(subscription)
}

// SendSubscriptionConfirmationEmails 发送订阅确认邮件（客户 + 后台抄送），失败仅记录日志
func (s *SubscriptionService) SendSubscriptionConfirmationEmails(subscription *models.Subscription) {
	if subscription == nil || s.emailService == nil {
		return
	}
	input := SubscriptionConfirmationInput{
		SubscriptionNo:   subscription.SubscriptionNo,
		CustomerName:     subscription.CustomerName,
		Frequency:        subscription.Frequency,
		StartDate:        subscription.StartDate,
		NextDeliveryDate: subscription.NextDeliveryDate,
		Total:            subscription.Total,
		Items:            subscription.Items,
	}
	if email := strings.TrimSpace(subscription.CustomerEmail); email != "" {
		if err := s.emailService.SendSubscriptionConfirmation(email, input); err != nil {
			logger.Warnw("subscription_confirmation_email_failed",
				"subscription_id", subscription.ID,
				"error", err,
			)
		}
	}
	if adminCopy := s.emailService.AdminCopyAddress(); adminCopy != "" {
		if err := s.emailService.SendSubscriptionConfirmation(adminCopy, input); err != nil {
			logger.Warnw("subscription_confirmation_admin_copy_failed",
				"subscription_id", subscription.ID,
				"error", err,
			)
		}
	}
}

// GetSubscription 获取订阅详情
func (s *SubscriptionService) GetSubscription(id uint) (*models.Subscription, error) {
	subscription, err := s.subscriptionRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if subscription == nil {
		return nil, ErrSubscriptionNotFound
	}
	return subscription, nil
}

// ListAdminSubscriptions 后台订阅列表
func (s *SubscriptionService) ListAdminSubscriptions(filter repository.SubscriptionListFilter) ([]models.Subscription, int64, error) {
	if filter.PageSize <= 0 || filter.PageSize > constants.AdminOrderListLimit {
		filter.PageSize = constants.AdminOrderListLimit
	}
	return s.subscriptionRepo.ListAdmin(filter)
}

// UpdateSubscriptionStatus 更新订阅状态（仅校验枚举成员资格）
func (s *SubscriptionService) UpdateSubscriptionStatus(id uint, status string) (*models.Subscription, error) {
	status = strings.TrimSpace(status)
	if _, ok := subscriptionStatusSet[status]; !ok {
		return nil, ErrStatusInvalid
	}

	subscription, err := s.subscriptionRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if subscription == nil {
		return nil, ErrSubscriptionNotFound
	}

	if err := s.subscriptionRepo.UpdateStatus(id, status); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPersistence, err)
	}

	return s.subscriptionRepo.GetByID(id)
}

func generateSubscriptionNo() string {
	now := time.Now().Format("20060102150405")
	return fmt.Sprintf("FS%s%s", now, randNumeric(6))
}

package service

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"strings"
	"time"

	"github.com/fresh-dairy/backend/internal/config"
	"github.com/fresh-dairy/backend/internal/constants"
	"github.com/fresh-dairy/backend/internal/logger"
	"github.com/fresh-dairy/backend/internal/models"
	"github.com/fresh-dairy/backend/internal/queue"
	"github.com/fresh-dairy/backend/internal/repository"
)

// OrderService 订单服务
type OrderService struct {
	orderRepo    repository.OrderRepository
	productRepo  repository.ProductRepository
	storeRepo    repository.StoreRepository
	zipChecker   *ZipChecker
	queueClient  *queue.Client
	emailService *EmailService
	storeCfg     config.StoreConfig
}

// NewOrderService 创建订单服务
func NewOrderService(orderRepo repository.OrderRepository, productRepo repository.ProductRepository, storeRepo repository.StoreRepository, zipChecker *ZipChecker, queueClient *queue.Client, emailService *EmailService, storeCfg config.StoreConfig) *OrderService {
	return &OrderService{
		orderRepo:    orderRepo,
		productRepo:  productRepo,
		storeRepo:    storeRepo,
		zipChecker:   zipChecker,
		queueClient:  queueClient,
		emailService: emailService,
		storeCfg:     storeCfg,
	}
}

// PlaceOrderInput 创建订单输入
type PlaceOrderInput struct {
	CustomerName    string
	Phone           string
	CustomerEmail   string
	CustomerUserID  string
	FulfillmentType string
	Address         string
	City            string
	State           string
	Zip             string
	ScheduledDate   string
	TimeWindow      string
	Plan            string
	Items           []OrderLineInput
}

var orderStatusSet = buildStatusSet(constants.OrderStatuses)

func buildStatusSet(statuses []string) map[string]struct{} {
	set := make(map[string]struct{}, len(statuses))
	for _, status := range statuses {
		set[status] = struct{}{}
	}
	return set
}

// PlaceOrder 创建订单。校验按固定顺序执行，首个失败即返回；
// 订单头写入成功而订单项写入失败时删除订单头（补偿动作），
// 确认邮件为尽力而为，发送失败不影响下单结果。
func (s *OrderService) PlaceOrder(input PlaceOrderInput) (*models.Order, error) {
	input.CustomerName = strings.TrimSpace(input.CustomerName)
	input.Phone = strings.TrimSpace(input.Phone)
	input.FulfillmentType = strings.TrimSpace(input.FulfillmentType)
	input.ScheduledDate = strings.TrimSpace(input.ScheduledDate)

	if input.CustomerName == "" || input.Phone == "" || input.ScheduledDate == "" || len(input.Items) == 0 {
		return nil, ErrValidation
	}
	if input.FulfillmentType != constants.FulfillmentPickup && input.FulfillmentType != constants.FulfillmentDelivery {
		return nil, ErrValidation
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
		// 自提订单不保留地址字段
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
	order := &models.Order{
		OrderNo:         generateOrderNo(),
		StoreID:         store.ID,
		CustomerName:    input.CustomerName,
		Phone:           input.Phone,
		CustomerEmail:   strings.TrimSpace(input.CustomerEmail),
		CustomerUserID:  strings.TrimSpace(input.CustomerUserID),
		FulfillmentType: input.FulfillmentType,
		Address:         strings.TrimSpace(input.Address),
		City:            strings.TrimSpace(input.City),
		State:           strings.TrimSpace(input.State),
		Zip:             strings.TrimSpace(input.Zip),
		ScheduledDate:   input.ScheduledDate,
		TimeWindow:      strings.TrimSpace(input.TimeWindow),
		Plan:            strings.TrimSpace(input.Plan),
		PaymentMethod:   constants.PaymentMethodCOD,
		Status:          constants.OrderStatusNew,
		Total:           models.NewMoneyFromDecimal(total),
		Source:          constants.OrderSourceWeb,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	if err := s.orderRepo.CreateHeader(order); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPersistence, err)
	}

	items := make([]models.OrderItem, 0, len(priced))
	for _, line := range priced {
		items = append(items, models.OrderItem{
			ProductID:   line.Product.ID,
			ProductName: line.Product.Name,
			Size:        line.Product.Size,
			Quantity:    line.Quantity,
			UnitPrice:   models.NewMoneyFromDecimal(line.UnitPrice),
			LineTotal:   models.NewMoneyFromDecimal(line.LineTotal),
			CreatedAt:   now,
		})
	}
	if err := s.orderRepo.CreateItems(order.ID, items); err != nil {
		// 补偿动作：订单头不允许在无订单项的情况下存在
		if delErr := s.orderRepo.DeleteHeader(order.ID); delErr != nil {
			logger.Errorw("order_compensating_delete_failed",
				"order_id", order.ID,
				"error", delErr,
			)
		}
		return nil, fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	order.Items = items

	s.dispatchOrderConfirmation(order)

	return order, nil
}

// dispatchOrderConfirmation 尽力而为地发送订单确认邮件，队列不可用时直接同步发送
func (s *OrderService) dispatchOrderConfirmation(order *models.Order) {
	if s.queueClient.Enabled() {
		err := s.queueClient.EnqueueOrderConfirmationEmail(queue.OrderConfirmationEmailPayload{OrderID: order.ID})
		if err == nil {
			return
		}
		logger.Warnw("order_confirmation_enqueue_failed",
			"order_id", order.ID,
			"error", err,
		)
	}
	s.SendOrderConfirmationEmails(order)
}

// SendOrderConfirmationEmails 发送订单确认邮件（客户 + 后台抄送），所有失败仅记录日志
func (s *OrderService) SendOrderConfirmationEmails(order *models.Order) {
	if order == nil || s.emailService == nil {
		return
	}
	input := OrderConfirmationInput{
		OrderNo:         order.OrderNo,
		CustomerName:    order.CustomerName,
		FulfillmentType: order.FulfillmentType,
		ScheduledDate:   order.ScheduledDate,
		TimeWindow:      order.TimeWindow,
		Total:           order.Total,
		Items:           order.Items,
	}
	if email := strings.TrimSpace(order.CustomerEmail); email != "" {
		if err := s.emailService.SendOrderConfirmation(email, input); err != nil {
			logger.Warnw("order_confirmation_email_failed",
				"order_id", order.ID,
				"error", err,
			)
		}
	}
	if adminCopy := s.emailService.AdminCopyAddress(); adminCopy != "" {
		if err := s.emailService.SendOrderConfirmation(adminCopy, input); err != nil {
			logger.Warnw("order_confirmation_admin_copy_failed",
				"order_id", order.ID,
				"error", err,
			)
		}
	}
}

// GetOrder 获取订单详情
func (s *OrderService) GetOrder(id uint) (*models.Order, error) {
	order, err := s.orderRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, ErrOrderNotFound
	}
	return order, nil
}

// ListAdminOrders 后台订单列表（按创建顺序倒序）
func (s *OrderService) ListAdminOrders(filter repository.OrderListFilter) ([]models.Order, int64, error) {
	if filter.PageSize <= 0 || filter.PageSize > constants.AdminOrderListLimit {
		filter.PageSize = constants.AdminOrderListLimit
	}
	return s.orderRepo.ListAdmin(filter)
}

// ListMyOrders 用户本人订单列表
func (s *OrderService) ListMyOrders(customerUserID string) ([]models.Order, error) {
	customerUserID = strings.TrimSpace(customerUserID)
	if customerUserID == "" {
		return nil, ErrValidation
	}
	return s.orderRepo.ListByUser(customerUserID, constants.MyOrderListLimit)
}

// UpdateOrderStatus 更新订单状态。仅校验目标状态是否在枚举内，
// 不限制流转顺序（任意状态之间可互相切换，属既定行为）。
func (s *OrderService) UpdateOrderStatus(id uint, status string) (*models.Order, error) {
	status = strings.TrimSpace(status)
	if _, ok := orderStatusSet[status]; !ok {
		return nil, ErrStatusInvalid
	}

	order, err := s.orderRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, ErrOrderNotFound
	}

	if err := s.orderRepo.UpdateStatus(id, status); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPersistence, err)
	}

	return s.orderRepo.GetByID(id)
}

func generateOrderNo() string {
	now := time.Now().Format("20060102150405")
	randPart := randNumeric(6)
	return fmt.Sprintf("FD%s%s", now, randPart)
}

func randNumeric(length int) string {
	var b strings.Builder
	for i := 0; i < length; i++ {
		n, err := rand.Int(rand.Reader, big.NewInt(10))
		if err != nil {
			b.WriteString("0")
			continue
		}
		b.WriteString(fmt.Sprintf("%d", n.Int64()))
	}
	return b.String()
}

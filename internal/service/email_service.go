package service

import (
	"bytes"
	"crypto/tls"
	"errors"
	"fmt"
	"mime"
	"net/mail"
	"net/smtp"
	"strings"

	"github.com/fresh-dairy/backend/internal/config"
	"github.com/fresh-dairy/backend/internal/constants"
	"github.com/fresh-dairy/backend/internal/models"
)

// 邮件发送相关哨兵错误（调用方按需吞掉，不影响下单结果）
var (
	ErrEmailServiceDisabled      = errors.New("email service disabled")
	ErrEmailServiceNotConfigured = errors.New("email service not configured")
	ErrInvalidEmail              = errors.New("invalid email address")
)

// EmailService 邮件发送服务
type EmailService struct {
	cfg *config.EmailConfig
}

// NewEmailService 创建邮件服务
func NewEmailService(cfg *config.EmailConfig) *EmailService {
	return &EmailService{cfg: cfg}
}

// AdminCopyAddress 下单通知抄送地址
func (s *EmailService) AdminCopyAddress() string {
	if s.cfg == nil {
		return ""
	}
	return strings.TrimSpace(s.cfg.AdminCopy)
}

// OrderConfirmationInput 订单确认邮件输入
type OrderConfirmationInput struct {
	OrderNo         string
	CustomerName    string
	FulfillmentType string
	ScheduledDate   string
	TimeWindow      string
	Total           models.Money
	Items           []models.OrderItem
}

// SendOrderConfirmation 发送订单确认邮件
func (s *EmailService) SendOrderConfirmation(toEmail string, input OrderConfirmationInput) error {
	subject, body := buildOrderConfirmationContent(input)
	return s.sendTextEmail(toEmail, subject, body)
}

// SubscriptionConfirmationInput 订阅确认邮件输入
type SubscriptionConfirmationInput struct {
	SubscriptionNo   string
	CustomerName     string
	Frequency        string
	StartDate        string
	NextDeliveryDate string
	Total            models.Money
	Items            []models.SubscriptionItem
}

// SendSubscriptionConfirmation 发送订阅确认邮件
func (s *EmailService) SendSubscriptionConfirmation(toEmail string, input SubscriptionConfirmationInput) error {
	subject, body := buildSubscriptionConfirmationContent(input)
	return s.sendTextEmail(toEmail, subject, body)
}

func (s *EmailService) sendTextEmail(toEmail, subject, body string) error {
	if s.cfg == nil || !s.cfg.Enabled {
		return ErrEmailServiceDisabled
	}
	if s.cfg.Host == "" || s.cfg.Port == 0 || s.cfg.From == "" {
		return ErrEmailServiceNotConfigured
	}
	if _, err := mail.ParseAddress(toEmail); err != nil {
		return ErrInvalidEmail
	}

	from := buildFromAddress(s.cfg.From, s.cfg.FromName)
	msg := buildEmailMessage(from, toEmail, subject, body)

	addr := fmt.Sprintf("%s:%d", s.cfg.Host, s.cfg.Port)
	var auth smtp.Auth
	if s.cfg.Username != "" || s.cfg.Password != "" {
		auth = smtp.PlainAuth("", s.cfg.Username, s.cfg.Password, s.cfg.Host)
	}

	if s.cfg.UseSSL {
		return sendMailWithSSL(addr, auth, s.cfg.Host, s.cfg.From, []string{toEmail}, []byte(msg))
	}
	if s.cfg.UseTLS {
		return sendMailWithStartTLS(addr, auth, s.cfg.Host, s.cfg.From, []string{toEmail}, []byte(msg))
	}
	return sendMailPlain(addr, auth, s.cfg.Host, s.cfg.From, []string{toEmail}, []byte(msg))
}

func buildOrderConfirmationContent(input OrderConfirmationInput) (string, string) {
	subject := fmt.Sprintf("Order %s confirmed", input.OrderNo)

	var buf strings.Builder
	fmt.Fprintf(&buf, "Hi %s,\n\n", input.CustomerName)
	fmt.Fprintf(&buf, "Thanks for your order %s.\n\n", input.OrderNo)
	for _, item := range input.Items {
		fmt.Fprintf(&buf, "  %s x%d  $%s\n", itemLabel(item.ProductName, item.Size), item.Quantity, item.LineTotal.String())
	}
	fmt.Fprintf(&buf, "\nTotal: $%s (cash on %s)\n", input.Total.String(), input.FulfillmentType)
	if input.FulfillmentType == constants.FulfillmentPickup {
		fmt.Fprintf(&buf, "Pickup date: %s", input.ScheduledDate)
	} else {
		fmt.Fprintf(&buf, "Delivery date: %s", input.ScheduledDate)
	}
	if window := strings.TrimSpace(input.TimeWindow); window != "" {
		fmt.Fprintf(&buf, " (%s)", window)
	}
	buf.WriteString("\n")
	return subject, buf.String()
}

func buildSubscriptionConfirmationContent(input SubscriptionConfirmationInput) (string, string) {
	subject := fmt.Sprintf("Subscription %s confirmed", input.SubscriptionNo)

	var buf strings.Builder
	fmt.Fprintf(&buf, "Hi %s,\n\n", input.CustomerName)
	fmt.Fprintf(&buf, "Your %s subscription %s is active.\n\n", strings.ToLower(input.Frequency), input.SubscriptionNo)
	for _, item := range input.Items {
		fmt.Fprintf(&buf, "  %s x%d  $%s\n", itemLabel(item.ProductName, item.Size), item.Quantity, item.LineTotal.String())
	}
	fmt.Fprintf(&buf, "\nPer delivery: $%s (cash on delivery)\n", input.Total.String())
	fmt.Fprintf(&buf, "First delivery: %s\n", input.NextDeliveryDate)
	return subject, buf.String()
}

func itemLabel(name, size string) string {
	if strings.TrimSpace(size) == "" {
		return name
	}
	return fmt.Sprintf("%s (%s)", name, size)
}

func buildFromAddress(from, name string) string {
	if strings.TrimSpace(name) == "" {
		return from
	}
	encoded := mime.QEncoding.Encode("UTF-8", name)
	return (&mail.Address{Name: encoded, Address: from}).String()
}

func buildEmailMessage(from, to, subject, body string) string {
	var buf bytes.Buffer
	buf.WriteString(fmt.Sprintf("From: %s\r\n", from))
	buf.WriteString(fmt.Sprintf("To: %s\r\n", to))
	buf.WriteString(fmt.Sprintf("Subject: %s\r\n", mime.QEncoding.Encode("UTF-8", subject)))
	buf.WriteString("MIME-Version: 1.0\r\n")
	buf.WriteString("Content-Type: text/plain; charset=UTF-8\r\n")
	buf.WriteString("\r\n")
	buf.WriteString(body)
	return buf.String()
}

func sendMailWithSSL(addr string, auth smtp.Auth, host, from string, to []string, msg []byte) error {
	conn, err := tls.Dial("tcp", addr, &tls.Config{ServerName: host})
	if err != nil {
		return err
	}
	defer conn.Close()

	client, err := smtp.NewClient(conn, host)
	if err != nil {
		return err
	}
	defer client.Close()

	if auth != nil {
		if ok, _ := client.Extension("AUTH"); ok {
			if err := client.Auth(auth); err != nil {
				return err
			}
		}
	}

	return sendSMTPData(client, from, to, msg)
}

func sendMailWithStartTLS(addr string, auth smtp.Auth, host, from string, to []string, msg []byte) error {
	client, err := smtp.Dial(addr)
	if err != nil {
		return err
	}
	defer client.Close()

	if err := client.StartTLS(&tls.Config{ServerName: host}); err != nil {
		return err
	}

	if auth != nil {
		if ok, _ := client.Extension("AUTH"); ok {
			if err := client.Auth(auth); err != nil {
				return err
			}
		}
	}

	return sendSMTPData(client, from, to, msg)
}

func sendMailPlain(addr string, auth smtp.Auth, host, from string, to []string, msg []byte) error {
	client, err := smtp.Dial(addr)
	if err != nil {
		return err
	}
	defer client.Close()

	if auth != nil {
		if ok, _ := client.Extension("AUTH"); ok {
			if err := client.Auth(auth); err != nil {
				return err
			}
		}
	}

	return sendSMTPData(client, from, to, msg)
}

func sendSMTPData(client *smtp.Client, from string, to []string, msg []byte) error {
	if err := client.Mail(from); err != nil {
		return err
	}
	for _, rcpt := range to {
		if err := client.Rcpt(rcpt); err != nil {
			return err
		}
	}
	w, err := client.Data()
	if err != nil {
		return err
	}
	if _, err := w.Write(msg); err != nil {
		return err
	}
	if err := w.Close(); err != nil {
		return err
	}
	return client.Quit()
}

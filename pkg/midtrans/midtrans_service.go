package midtrans

import (
	"context"
	"errors"
	"fmt"
	"frescoguard/domain"
	"frescoguard/entities"
	"frescoguard/pkg/metrics"
	"frescoguard/pkg/user"
	"time"

	"github.com/gofiber/fiber/v2/log"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	statusCapture = "capture"
	fraudAccept   = "accept"
)

type (
	MidtransService interface {
		CreateCheckout(ctx context.Context, req domain.CheckoutRequest, userID string) (domain.CheckoutResponse, error)
		HandleNotification(ctx context.Context, notification domain.MidtransNotification) error
	}

	midtransService struct {
		midtransRepository MidtransRepository
		userRepository     user.UserRepository
		gateway            Gateway
	}
)

func NewMidtransService(
	midtransRepository MidtransRepository,
	userRepository user.UserRepository,
	gateway Gateway,
) MidtransService {
	return &midtransService{
		midtransRepository: midtransRepository,
		userRepository:     userRepository,
		gateway:            gateway,
	}
}

func (s *midtransService) CreateCheckout(ctx context.Context, req domain.CheckoutRequest, userID string) (domain.CheckoutResponse, error) {
	plan, ok := domain.SubscriptionPlans[req.PlanID]
	if !ok {
		return domain.CheckoutResponse{}, domain.ErrInvalidPlan
	}
	if !s.gateway.Enabled() {
		return domain.CheckoutResponse{}, domain.ErrPaymentsDisabled
	}

	u, err := s.userRepository.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.CheckoutResponse{}, domain.ErrUserNotFound
		}
		return domain.CheckoutResponse{}, err
	}

	orderID := fmt.Sprintf("FG-%s", uuid.NewString())
	token, redirectURL, err := s.gateway.CreateSnap(orderID, plan, u.Email)
	if err != nil {
		log.Errorf("error creating snap transaction %s (user %s): %v", orderID, userID, err)
		return domain.CheckoutResponse{}, domain.ErrPaymentGateway
	}

	transaction := &entities.Transaction{
		ID:          uuid.New(),
		UserID:      u.ID,
		OrderID:     orderID,
		PlanID:      plan.ID,
		GrossAmount: plan.GrossAmount,
		Status:      domain.TransactionPending,
		RedirectURL: redirectURL,
	}
	if err := s.midtransRepository.CreateTransaction(ctx, transaction); err != nil {
		return domain.CheckoutResponse{}, fmt.Errorf("create transaction: %w", err)
	}
	metrics.Checkouts.WithLabelValues(plan.ID).Inc()

	return domain.CheckoutResponse{
		OrderID: orderID,
		Token:   token,
		URL:     redirectURL,
	}, nil
}

// resolveStatus folds a Midtrans status pair into the stored transaction status.
func resolveStatus(transactionStatus, fraudStatus string) string {
	switch transactionStatus {
	case statusCapture:
		if fraudStatus == "" || fraudStatus == fraudAccept {
			return domain.TransactionSettlement
		}
		return domain.TransactionPending
	case domain.TransactionSettlement,
		domain.TransactionDeny,
		domain.TransactionCancel,
		domain.TransactionExpire,
		domain.TransactionFailure:
		return transactionStatus
	default:
		return domain.TransactionPending
	}
}

// HandleNotification trusts only the status read back from Midtrans, never
// the posted body. Settlement and the plan upgrade commit together, at most
// once per order.
func (s *midtransService) HandleNotification(ctx context.Context, notification domain.MidtransNotification) error {
	transaction, err := s.midtransRepository.GetTransactionByOrderID(ctx, notification.OrderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrTransactionNotFound
		}
		return err
	}
	if transaction.Status == domain.TransactionSettlement {
		return nil
	}

	transactionStatus, fraudStatus, err := s.gateway.CheckStatus(transaction.OrderID)
	if err != nil {
		log.Errorf("error checking transaction %s: %v", transaction.OrderID, err)
		return domain.ErrPaymentGateway
	}

	status := resolveStatus(transactionStatus, fraudStatus)
	if status == transaction.Status {
		return nil
	}
	if status != domain.TransactionSettlement {
		if err := s.midtransRepository.UpdateTransactionStatus(ctx, transaction.OrderID, status); err != nil {
			return fmt.Errorf("update transaction status: %w", err)
		}
		return nil
	}

	plan, ok := domain.SubscriptionPlans[transaction.PlanID]
	if !ok {
		return domain.ErrInvalidPlan
	}
	settled, err := s.midtransRepository.SettleTransaction(ctx, transaction.OrderID, extendPlan(plan, time.Now()))
	if err != nil {
		return fmt.Errorf("settle transaction %s: %w", transaction.OrderID, err)
	}
	if settled {
		log.Infof("order %s settled, user %s upgraded to %s", transaction.OrderID, transaction.UserID, plan.Plan)
	}
	return nil
}

// extendPlan stacks a purchase on top of a premium period that is still
// running, otherwise the period starts now.
func extendPlan(plan domain.SubscriptionPlan, now time.Time) PlanExtension {
	return func(u *entities.User) (string, time.Time) {
		start := now
		if domain.IsPremium(u.CurrentPlan(now)) && u.PlanExpiresAt != nil && u.PlanExpiresAt.After(now) {
			start = *u.PlanExpiresAt
		}
		return plan.Plan, start.AddDate(0, plan.Months, 0)
	}
}

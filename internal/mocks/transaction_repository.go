package mocks

import (
	"context"
	"fmt"
	"frescoguard/domain"
	"frescoguard/entities"
	"sync"
	"time"

	"gorm.io/gorm"
)

// TransactionRepository settles against Users, mirroring the database
// transaction the real repository runs.
type TransactionRepository struct {
	mu           sync.Mutex
	Transactions map[string]*entities.Transaction
	Users        *UserRepository
	Err          error
}

func NewTransactionRepository(users *UserRepository) *TransactionRepository {
	return &TransactionRepository{Transactions: map[string]*entities.Transaction{}, Users: users}
}

func (r *TransactionRepository) CreateTransaction(_ context.Context, transaction *entities.Transaction) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return r.Err
	}
	clone := *transaction
	r.Transactions[transaction.OrderID] = &clone
	return nil
}

func (r *TransactionRepository) GetTransactionByOrderID(_ context.Context, orderID string) (*entities.Transaction, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return nil, r.Err
	}
	t, ok := r.Transactions[orderID]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	clone := *t
	return &clone, nil
}

func (r *TransactionRepository) UpdateTransactionStatus(_ context.Context, orderID string, status string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return r.Err
	}
	t, ok := r.Transactions[orderID]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	if t.Status != domain.TransactionSettlement {
		t.Status = status
	}
	return nil
}

func (r *TransactionRepository) SettleTransaction(
	_ context.Context,
	orderID string,
	extend func(u *entities.User) (string, time.Time),
) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return false, r.Err
	}
	t, ok := r.Transactions[orderID]
	if !ok {
		return false, gorm.ErrRecordNotFound
	}
	if t.Status == domain.TransactionSettlement {
		return false, nil
	}

	if err := r.Users.update(t.UserID.String(), func(u *entities.User) {
		plan, expiresAt := extend(u)
		u.Plan = plan
		u.PlanExpiresAt = &expiresAt
	}); err != nil {
		return false, fmt.Errorf("load subscriber: %w", err)
	}
	t.Status = domain.TransactionSettlement
	return true, nil
}

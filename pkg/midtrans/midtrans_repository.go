package midtrans

import (
	"context"
	"fmt"
	"frescoguard/domain"
	"frescoguard/entities"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type (
	MidtransRepository interface {
		CreateTransaction(ctx context.Context, transaction *entities.Transaction) error
		GetTransactionByOrderID(ctx context.Context, orderID string) (*entities.Transaction, error)
		UpdateTransactionStatus(ctx context.Context, orderID string, status string) error
		SettleTransaction(ctx context.Context, orderID string, extend PlanExtension) (bool, error)
	}

	// PlanExtension returns the plan and expiry a settled payment grants to u.
	PlanExtension = func(u *entities.User) (plan string, expiresAt time.Time)

	midtransRepository struct {
		db *gorm.DB
	}
)

func NewMidtransRepository(db *gorm.DB) MidtransRepository {
	return &midtransRepository{db: db}
}

func (r *midtransRepository) CreateTransaction(ctx context.Context, transaction *entities.Transaction) error {
	return r.db.WithContext(ctx).Create(transaction).Error
}

func (r *midtransRepository) GetTransactionByOrderID(ctx context.Context, orderID string) (*entities.Transaction, error) {
	var transaction entities.Transaction
	if err := r.db.WithContext(ctx).
		Where("order_id = ?", orderID).
		First(&transaction).Error; err != nil {
		return nil, err
	}
	return &transaction, nil
}

// setStatus never moves a settled transaction.
func setStatus(tx *gorm.DB, orderID string, status string) *gorm.DB {
	return tx.Model(&entities.Transaction{}).
		Where("order_id = ? AND status <> ?", orderID, domain.TransactionSettlement).
		Update("status", status)
}

func (r *midtransRepository) UpdateTransactionStatus(ctx context.Context, orderID string, status string) error {
	return setStatus(r.db.WithContext(ctx), orderID, status).Error
}

// SettleTransaction marks the order settled and applies extend to its user in
// one database transaction. It reports false when the order was already
// settled, in which case the user is left untouched.
func (r *midtransRepository) SettleTransaction(ctx context.Context, orderID string, extend PlanExtension) (bool, error) {
	settled := false
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var transaction entities.Transaction
		if err := tx.Where("order_id = ?", orderID).First(&transaction).Error; err != nil {
			return err
		}

		res := setStatus(tx, orderID, domain.TransactionSettlement)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected != 1 {
			return nil
		}

		var u entities.User
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("id = ?", transaction.UserID).
			First(&u).Error; err != nil {
			return fmt.Errorf("load subscriber: %w", err)
		}

		plan, expiresAt := extend(&u)
		if err := tx.Model(&entities.User{}).
			Where("id = ?", u.ID).
			Updates(map[string]any{"plan": plan, "plan_expires_at": expiresAt}).Error; err != nil {
			return fmt.Errorf("update plan: %w", err)
		}
		settled = true
		return nil
	})
	if err != nil {
		return false, err
	}
	return settled, nil
}

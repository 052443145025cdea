package midtrans

import (
	"testing"

	"frescoguard/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func TestSetStatusSkipsSettledOrders(t *testing.T) {
	db, err := gorm.Open(postgres.Open("host=localhost user=test dbname=test sslmode=disable"), &gorm.Config{
		DryRun:               true,
		DisableAutomaticPing: true,
	})
	require.NoError(t, err)

	sql := db.ToSQL(func(tx *gorm.DB) *gorm.DB {
		return setStatus(tx, "FG-1", domain.TransactionSettlement)
	})

	assert.Contains(t, sql, `UPDATE "transactions" SET "status"='settlement'`)
	assert.Contains(t, sql, "order_id = 'FG-1' AND status <> 'settlement'")
}

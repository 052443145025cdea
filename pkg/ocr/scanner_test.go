package ocr

import (
	"context"
	"testing"
	"time"

	"frescoguard/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMockScannerResults(t *testing.T) {
	tests := []struct {
		pick       int
		foodName   string
		expiry     *string
		confidence string
	}{
		{pick: 0, foodName: "Leche Entera", expiry: date("15/02/2025"), confidence: "alta"},
		{pick: 1, foodName: "Yogur Natural", expiry: date("20/02/2025"), confidence: "media"},
		{pick: 2, foodName: "Pan Integral", expiry: nil, confidence: "baja"},
		{pick: 3, foodName: "Huevos", expiry: date("25/02/2025"), confidence: "alta"},
	}

	for _, tt := range tests {
		t.Run(tt.foodName, func(t *testing.T) {
			s := newMockScannerWithPicker(0, func(int) int { return tt.pick })
			res, err := s.Scan(context.Background(), []byte("data:image/png;base64,AAAA"))
			require.NoError(t, err)
			assert.Equal(t, tt.foodName, res.FoodName)
			assert.Equal(t, tt.expiry, res.ExpiryDate)
			assert.Equal(t, tt.confidence, res.Confidence)
		})
	}
}

func TestMockScannerRequiresImage(t *testing.T) {
	_, err := NewMockScanner(0).Scan(context.Background(), nil)
	assert.ErrorIs(t, err, domain.ErrImageNotProvided)
}

func TestMockScannerHonoursContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := NewMockScanner(time.Minute).Scan(ctx, []byte("img"))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestMockScannerDoesNotShareResults(t *testing.T) {
	s := newMockScannerWithPicker(0, func(int) int { return 0 })
	res, err := s.Scan(context.Background(), []byte("img"))
	require.NoError(t, err)
	*res.ExpiryDate = "01/01/2000"

	again, err := s.Scan(context.Background(), []byte("img"))
	require.NoError(t, err)
	assert.Equal(t, "15/02/2025", *again.ExpiryDate)
}

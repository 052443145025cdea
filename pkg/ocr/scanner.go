// Package ocr reads a food name and expiry date from a product label photo.
package ocr

import (
	"context"
	"frescoguard/domain"
	"frescoguard/pkg/metrics"
	"math/rand"
	"time"
)

// ProcessingDelay is how long the mock scanner takes to answer.
const ProcessingDelay = 1500 * time.Millisecond

type (
	Scanner interface {
		Scan(ctx context.Context, image []byte) (domain.OCRResult, error)
	}

	mockScanner struct {
		delay time.Duration
		intN  func(n int) int
	}
)

func date(s string) *string { return &s }

var mockResults = []domain.OCRResult{
	{FoodName: "Leche Entera", ExpiryDate: date("15/02/2025"), Confidence: "alta"},
	{FoodName: "Yogur Natural", ExpiryDate: date("20/02/2025"), Confidence: "media"},
	{FoodName: "Pan Integral", ExpiryDate: nil, Confidence: "baja"},
	{FoodName: "Huevos", ExpiryDate: date("25/02/2025"), Confidence: "alta"},
}

// NewMockScanner returns canned label readings after delay.
func NewMockScanner(delay time.Duration) Scanner {
	return &mockScanner{delay: delay, intN: rand.Intn}
}

func newMockScannerWithPicker(delay time.Duration, intN func(n int) int) Scanner {
	return &mockScanner{delay: delay, intN: intN}
}

func (s *mockScanner) Scan(ctx context.Context, image []byte) (domain.OCRResult, error) {
	if len(image) == 0 {
		return domain.OCRResult{}, domain.ErrImageNotProvided
	}

	if s.delay > 0 {
		timer := time.NewTimer(s.delay)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return domain.OCRResult{}, ctx.Err()
		case <-timer.C:
		}
	}

	metrics.OCRScans.Inc()
	result := mockResults[s.intN(len(mockResults))]
	if result.ExpiryDate != nil {
		result.ExpiryDate = date(*result.ExpiryDate)
	}
	return result, nil
}

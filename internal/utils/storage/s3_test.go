package storage

import (
	"context"
	"mime/multipart"
	"testing"

	"frescoguard/domain"

	"github.com/stretchr/testify/assert"
)

func TestPublicLinkRoundTrip(t *testing.T) {
	s := &awsS3{bucket: "frescoguard", region: "ap-southeast-1"}

	link := s.GetPublicLinkKey("food-items/food-item-1.png")
	assert.Equal(t, "https://frescoguard.s3.ap-southeast-1.amazonaws.com/food-items/food-item-1.png", link)
	assert.Equal(t, "food-items/food-item-1.png", s.GetObjectKeyFromLink(link))
}

func TestGetObjectKeyFromForeignLink(t *testing.T) {
	s := &awsS3{bucket: "frescoguard", region: "ap-southeast-1"}

	assert.Empty(t, s.GetObjectKeyFromLink("https://example.com/leche.png"))
	assert.Empty(t, (&awsS3{}).GetObjectKeyFromLink("https://example.com/leche.png"))
}

func TestUploadWithoutClient(t *testing.T) {
	s := &awsS3{bucket: "frescoguard", region: "ap-southeast-1"}
	file := &multipart.FileHeader{Filename: "leche.png"}

	assert.False(t, s.Enabled())
	_, err := s.UploadFile(context.Background(), "food-item-1", file, "food-items", AllowImage...)
	assert.ErrorIs(t, err, domain.ErrStorageNotAvailable)
}

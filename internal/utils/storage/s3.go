package storage

import (
	"context"
	"fmt"
	"frescoguard/domain"
	"frescoguard/internal/utils"
	"mime/multipart"
	"path/filepath"
	"slices"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/gofiber/fiber/v2/log"
)

var AllowImage = []string{".jpg", ".jpeg", ".png", ".webp"}

type (
	AwsS3 interface {
		Enabled() bool
		UploadFile(ctx context.Context, fileName string, file *multipart.FileHeader, folder string, allowedExt ...string) (string, error)
		UpdateFile(ctx context.Context, objectKey string, file *multipart.FileHeader, allowedExt ...string) (string, error)
		DeleteFile(ctx context.Context, objectKey string) error
		GetPublicLinkKey(objectKey string) string
		GetObjectKeyFromLink(link string) string
	}

	awsS3 struct {
		client *s3.Client
		bucket string
		region string
	}
)

// NewAwsS3 returns a disabled store when bucket or credentials are not configured.
func NewAwsS3() AwsS3 {
	bucket := utils.GetConfig("AWS_S3_BUCKET")
	region := utils.GetConfig("AWS_S3_REGION")
	accessKey := utils.GetConfig("AWS_ACCESS_KEY")
	secretKey := utils.GetConfig("AWS_SECRET_KEY")

	if bucket == "" || region == "" || accessKey == "" || secretKey == "" {
		log.Warn("AWS S3 is not configured, food image uploads are disabled")
		return &awsS3{bucket: bucket, region: region}
	}

	cfg, err := config.LoadDefaultConfig(
		context.Background(),
		config.WithRegion(region),
		config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(accessKey, secretKey, "")),
	)
	if err != nil {
		log.Errorf("error loading AWS config: %v", err)
		return &awsS3{bucket: bucket, region: region}
	}

	return &awsS3{
		client: s3.NewFromConfig(cfg),
		bucket: bucket,
		region: region,
	}
}

func (s *awsS3) Enabled() bool {
	return s.client != nil
}

func (s *awsS3) UploadFile(ctx context.Context, fileName string, file *multipart.FileHeader, folder string, allowedExt ...string) (string, error) {
	ext := strings.ToLower(filepath.Ext(file.Filename))
	objectKey := fmt.Sprintf("%s/%s%s", strings.Trim(folder, "/"), fileName, ext)
	return s.put(ctx, objectKey, file, allowedExt...)
}

func (s *awsS3) UpdateFile(ctx context.Context, objectKey string, file *multipart.FileHeader, allowedExt ...string) (string, error) {
	ext := strings.ToLower(filepath.Ext(file.Filename))
	newKey := strings.TrimSuffix(objectKey, filepath.Ext(objectKey)) + ext

	key, err := s.put(ctx, newKey, file, allowedExt...)
	if err != nil {
		return "", err
	}
	if newKey != objectKey {
		if err := s.DeleteFile(ctx, objectKey); err != nil {
			log.Warnf("error deleting replaced object %s: %v", objectKey, err)
		}
	}
	return key, nil
}

func (s *awsS3) put(ctx context.Context, objectKey string, file *multipart.FileHeader, allowedExt ...string) (string, error) {
	if !s.Enabled() {
		return "", domain.ErrStorageNotAvailable
	}

	ext := strings.ToLower(filepath.Ext(file.Filename))
	if len(allowedExt) > 0 && !slices.Contains(allowedExt, ext) {
		return "", domain.ErrInvalidImageFormat
	}

	src, err := file.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	_, err = s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(objectKey),
		Body:        src,
		ContentType: aws.String(file.Header.Get("Content-Type")),
	})
	if err != nil {
		return "", fmt.Errorf("put object %s: %w", objectKey, err)
	}
	return objectKey, nil
}

func (s *awsS3) DeleteFile(ctx context.Context, objectKey string) error {
	if !s.Enabled() {
		return domain.ErrStorageNotAvailable
	}
	_, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(objectKey),
	})
	return err
}

func (s *awsS3) baseURL() string {
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/", s.bucket, s.region)
}

func (s *awsS3) GetPublicLinkKey(objectKey string) string {
	return s.baseURL() + objectKey
}

// GetObjectKeyFromLink returns "" for links that do not point at this bucket.
func (s *awsS3) GetObjectKeyFromLink(link string) string {
	if s.bucket == "" || !strings.HasPrefix(link, s.baseURL()) {
		return ""
	}
	return strings.TrimPrefix(link, s.baseURL())
}

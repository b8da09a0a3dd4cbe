package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/tidemill/haulbatch/internal/logging"
	"github.com/tidemill/haulbatch/internal/server/config"
	"github.com/tidemill/haulbatch/internal/server/models"
)

// seams for tests
var (
	loadDefaultAWSConfig = awsconfig.LoadDefaultConfig

	newS3ClientFromConfig = func(cfg aws.Config, optFns ...func(*s3.Options)) s3PutObjectAPI {
		return s3.NewFromConfig(cfg, optFns...)
	}
)

type s3PutObjectAPI interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// S3Archiver uploads settlement records to an S3-compatible store (MinIO in
// the default deployment) as JSON objects keyed by batch id.
type S3Archiver struct {
	config *config.Config
	logger logging.Logger
}

func NewS3Archiver(cfg *config.Config, logger logging.Logger) *S3Archiver {
	return &S3Archiver{config: cfg, logger: logger.With("module", "archive")}
}

func (a *S3Archiver) getClient(ctx context.Context) (s3PutObjectAPI, error) {
	cfg, err := loadDefaultAWSConfig(ctx,
		awsconfig.WithRegion(a.config.S3Region),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			a.config.S3RootUser,
			a.config.S3RootPassword,
			"",
		)))
	if err != nil {
		return nil, err
	}

	client := newS3ClientFromConfig(cfg, func(o *s3.Options) {
		o.BaseEndpoint = aws.String(a.config.S3BaseEndpoint)
		o.UsePathStyle = true
	})

	return client, nil
}

// Archive uploads one settlement record. Object keys are
// settlements/<direction>/<batch id>.json. The upload is bounded by the
// configured archive timeout so a stuck store cannot hold the caller.
func (a *S3Archiver) Archive(ctx context.Context, record *models.Settlement) error {
	if a.config.ArchiveTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, a.config.ArchiveTimeout)
		defer cancel()
	}

	client, err := a.getClient(ctx)
	if err != nil {
		return fmt.Errorf("s3 client error: %w", err)
	}

	body, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("record marshal error: %w", err)
	}

	key := fmt.Sprintf("settlements/%s/%s.json", record.Direction, record.ID)
	_, err = client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(a.config.S3Bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(body),
		ContentType: aws.String("application/json"),
	})
	if err != nil {
		return fmt.Errorf("s3 upload error: %w", err)
	}

	a.logger.Debug(ctx, "settlement archived", "key", key)
	return nil
}

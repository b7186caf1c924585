package backup

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
)

// S3Settings configures the object-storage target. BaseEndpoint supports
// S3-compatible backends like MinIO.
type S3Settings struct {
	RootUser     string
	RootPassword string
	Bucket       string
	Region       string
	BaseEndpoint string
}

// objectPutter is the slice of the S3 client the uploader needs; tests
// substitute a stub.
type objectPutter interface {
	PutObject(ctx context.Context, in *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// Uploader writes snapshots to an S3-compatible bucket.
type Uploader struct {
	client objectPutter
	bucket string
}

// NewUploader builds an S3 client from static credentials and a custom base
// endpoint.
func NewUploader(ctx context.Context, settings S3Settings) (*Uploader, error) {
	cfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion(settings.Region),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			settings.RootUser,
			settings.RootPassword,
			"",
		)))
	if err != nil {
		return nil, fmt.Errorf("failed to load s3 config: %w", err)
	}

	client := s3.NewFromConfig(cfg, func(o *s3.Options) {
		o.BaseEndpoint = aws.String(settings.BaseEndpoint)
		o.UsePathStyle = true
	})

	return &Uploader{client: client, bucket: settings.Bucket}, nil
}

// objectKey spreads snapshots by owner and day so backups never collide.
func objectKey(ownerID string, now time.Time) string {
	return fmt.Sprintf("backups/%s/%d/%02d/%02d/%s.json",
		ownerID, now.Year(), int(now.Month()), now.Day(), uuid.New())
}

// Upload stores the snapshot and returns the object key it was written to.
func (u *Uploader) Upload(ctx context.Context, snap Snapshot, now time.Time) (string, error) {
	var body bytes.Buffer
	if err := snap.WriteJSON(&body); err != nil {
		return "", fmt.Errorf("failed to encode snapshot: %w", err)
	}

	key := objectKey(snap.UserID, now)
	_, err := u.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(u.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(body.Bytes()),
		ContentType: aws.String("application/json"),
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload snapshot: %w", err)
	}
	return key, nil
}

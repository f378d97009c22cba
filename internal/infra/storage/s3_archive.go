package storage

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/BruksfildServices01/office-scheduler/internal/config"
	"github.com/BruksfildServices01/office-scheduler/internal/domain/capacity"
)

type objectPutter interface {
	PutObject(ctx context.Context, in *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// S3Archive stores repair reports as JSON objects under
// repairs/<site>/<provider>/<date>/<run id>.json.
type S3Archive struct {
	client objectPutter
	bucket string
}

// NewS3Client builds a client from static credentials. An endpoint switches
// to path-style addressing for S3 compatible stores.
func NewS3Client(cfg *config.Config) *s3.Client {
	awsCfg := aws.Config{
		Region: cfg.S3Region,
	}
	if cfg.S3AccessKeyID != "" {
		awsCfg.Credentials = credentials.NewStaticCredentialsProvider(cfg.S3AccessKeyID, cfg.S3SecretAccessKey, "")
	}

	return s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.S3Endpoint == "" {
			return
		}
		endpoint := cfg.S3Endpoint
		if !strings.HasPrefix(endpoint, "https://") && !strings.HasPrefix(endpoint, "http://") {
			endpoint = "https://" + endpoint
		}
		o.BaseEndpoint = aws.String(endpoint)
		o.UsePathStyle = true
	})
}

func NewS3Archive(client objectPutter, bucket string) *S3Archive {
	return &S3Archive{client: client, bucket: bucket}
}

func ReportKey(r capacity.RepairReport) string {
	return fmt.Sprintf("repairs/%d/%d/%s/%s.json",
		r.SiteID, r.ProviderID, r.RanAt.UTC().Format("2006-01-02"), r.RunID)
}

func (a *S3Archive) Put(ctx context.Context, report capacity.RepairReport) (string, error) {
	body, err := json.Marshal(report)
	if err != nil {
		return "", err
	}

	key := ReportKey(report)
	if _, err := a.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(a.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(body),
		ContentType: aws.String("application/json"),
	}); err != nil {
		return "", fmt.Errorf("put %s: %w", key, err)
	}
	return key, nil
}

// Package archive stores exported API definitions and generated SDKs in S3.
package archive

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"path"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/fivetwenty-io/apigw/pkg/apigw"
)

var (
	ErrBucketRequired = errors.New("bucket is required")
	ErrNoExport       = errors.New("no export to store")
)

// ObjectPutter is the subset of the S3 API the archiver needs.
type ObjectPutter interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// S3Config configures the S3 archiver.
type S3Config struct {
	Bucket string
	Region string
	// Endpoint targets S3-compatible services such as MinIO or LocalStack.
	Endpoint        string
	AccessKeyID     string
	SecretAccessKey string
	Prefix          string
	UsePathStyle    bool
}

// S3Archiver writes export results to a bucket.
type S3Archiver struct {
	client ObjectPutter
	bucket string
	prefix string
	now    func() time.Time
}

// Object describes an archived export.
type Object struct {
	Bucket string
	Key    string
	Size   int
}

// URI returns the s3:// location of the object.
func (o *Object) URI() string {
	return fmt.Sprintf("s3://%s/%s", o.Bucket, o.Key)
}

// NewS3Archiver creates an archiver backed by a new S3 client.
func NewS3Archiver(ctx context.Context, cfg S3Config) (*S3Archiver, error) {
	if cfg.Bucket == "" {
		return nil, ErrBucketRequired
	}

	if cfg.Region == "" {
		cfg.Region = "us-east-1"
	}

	opts := []func(*config.LoadOptions) error{config.WithRegion(cfg.Region)}

	if cfg.AccessKeyID != "" && cfg.SecretAccessKey != "" {
		opts = append(opts, config.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKeyID, cfg.SecretAccessKey, ""),
		))
	}

	awsCfg, err := config.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	var s3Opts []func(*s3.Options)
	if cfg.Endpoint != "" {
		s3Opts = append(s3Opts, func(o *s3.Options) {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
			o.UsePathStyle = cfg.UsePathStyle
		})
	}

	return NewS3ArchiverWithClient(s3.NewFromConfig(awsCfg, s3Opts...), cfg.Bucket, cfg.Prefix), nil
}

// NewS3ArchiverWithClient creates an archiver over an existing client.
func NewS3ArchiverWithClient(client ObjectPutter, bucket, prefix string) *S3Archiver {
	return &S3Archiver{
		client: client,
		bucket: bucket,
		prefix: strings.Trim(prefix, "/"),
		now:    time.Now,
	}
}

// Key builds the object key for an export of restAPIID/stageName. Keys are
// timestamped so repeated exports never overwrite each other.
func (a *S3Archiver) Key(restAPIID, stageName, name string) string {
	stamp := a.now().UTC().Format("20060102T150405Z")

	return path.Join(a.prefix, restAPIID, stageName, stamp, name)
}

// Store uploads result under key.
func (a *S3Archiver) Store(ctx context.Context, key string, result *apigw.ExportResult) (*Object, error) {
	if result == nil {
		return nil, fmt.Errorf("storing %s: %w", key, ErrNoExport)
	}

	input := &s3.PutObjectInput{
		Bucket: aws.String(a.bucket),
		Key:    aws.String(key),
		Body:   bytes.NewReader(result.Body),
	}

	if result.ContentType != "" {
		input.ContentType = aws.String(result.ContentType)
	}

	if result.ContentDisposition != "" {
		input.ContentDisposition = aws.String(result.ContentDisposition)
	}

	_, err := a.client.PutObject(ctx, input)
	if err != nil {
		return nil, fmt.Errorf("S3 put object failed: %w", err)
	}

	return &Object{Bucket: a.bucket, Key: key, Size: len(result.Body)}, nil
}

// FileName picks a file name for an export, preferring the name the service
// suggested in Content-Disposition.
func FileName(result *apigw.ExportResult, fallback string) string {
	if result == nil {
		return fallback
	}

	const marker = "filename="

	disposition := result.ContentDisposition
	if idx := strings.Index(disposition, marker); idx >= 0 {
		name := strings.Trim(disposition[idx+len(marker):], `"; `)
		if name != "" {
			return path.Base(name)
		}
	}

	return fallback
}

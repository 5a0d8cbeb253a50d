package archive

import (
	"context"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/fivetwenty-io/apigw/pkg/apigw"
)

type MockPutter struct {
	mock.Mock
	body []byte
}

func (m *MockPutter) PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	if params.Body != nil {
		m.body, _ = io.ReadAll(params.Body)
	}

	args := m.Called(aws.ToString(params.Bucket), aws.ToString(params.Key), aws.ToString(params.ContentType))
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*s3.PutObjectOutput), args.Error(1)
}

func fixedClock() time.Time {
	return time.Date(2026, 3, 4, 5, 6, 7, 0, time.UTC)
}

func TestS3Archiver_Store(t *testing.T) {
	t.Parallel()

	putter := &MockPutter{}
	putter.On("PutObject", "exports", "team/a1/prod/20260304T050607Z/orders.yaml", "application/yaml").
		Return(&s3.PutObjectOutput{}, nil).Once()

	archiver := NewS3ArchiverWithClient(putter, "exports", "/team/")
	archiver.now = fixedClock

	key := archiver.Key("a1", "prod", "orders.yaml")
	obj, err := archiver.Store(context.Background(), key, &apigw.ExportResult{
		ContentType: "application/yaml",
		Body:        []byte("openapi: 3.0.1\n"),
	})
	require.NoError(t, err)

	assert.Equal(t, "s3://exports/team/a1/prod/20260304T050607Z/orders.yaml", obj.URI())
	assert.Equal(t, 15, obj.Size)
	assert.Equal(t, "openapi: 3.0.1\n", string(putter.body))

	putter.AssertExpectations(t)
}

func TestS3Archiver_StoreErrors(t *testing.T) {
	t.Parallel()

	putter := &MockPutter{}
	putter.On("PutObject", "exports", "k", "").Return(nil, errors.New("access denied"))

	archiver := NewS3ArchiverWithClient(putter, "exports", "")

	_, err := archiver.Store(context.Background(), "k", &apigw.ExportResult{Body: []byte("x")})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "S3 put object failed")

	_, err = archiver.Store(context.Background(), "k", nil)
	require.ErrorIs(t, err, ErrNoExport)
}

func TestNewS3Archiver_RequiresBucket(t *testing.T) {
	t.Parallel()

	_, err := NewS3Archiver(context.Background(), S3Config{})
	require.ErrorIs(t, err, ErrBucketRequired)
}

func TestFileName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		result *apigw.ExportResult
		want   string
	}{
		{"quoted", &apigw.ExportResult{ContentDisposition: `attachment; filename="orders-prod-oas30.yaml"`}, "orders-prod-oas30.yaml"},
		{"bare", &apigw.ExportResult{ContentDisposition: "attachment; filename=sdk.zip"}, "sdk.zip"},
		{"traversal", &apigw.ExportResult{ContentDisposition: `attachment; filename="../../etc/passwd"`}, "passwd"},
		{"missing", &apigw.ExportResult{}, "export.json"},
		{"nil", nil, "export.json"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, FileName(tt.result, "export.json"))
		})
	}
}

package seed

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/dmitrijs2005/minichat/internal/server/chat"
	"github.com/dmitrijs2005/minichat/internal/server/config"
)

var loadDefaultAWSConfig = awsconfig.LoadDefaultConfig

type objectGetter interface {
	GetObject(ctx context.Context, in *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
}

// S3Source reads a JSON seed object from an S3-compatible store.
type S3Source struct {
	client objectGetter
	bucket string
	key    string
}

// NewS3Source builds an S3 client from cfg. Static credentials and a custom
// endpoint (for MinIO and friends) are used when configured; otherwise the
// default AWS credential chain applies.
func NewS3Source(ctx context.Context, cfg *config.Config, bucket, key string) (*S3Source, error) {
	opts := []func(*awsconfig.LoadOptions) error{awsconfig.WithRegion(cfg.S3Region)}
	if cfg.S3User != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.S3User, cfg.S3Password, "")))
	}

	awsCfg, err := loadDefaultAWSConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("aws config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.S3BaseEndpoint != "" {
			o.BaseEndpoint = aws.String(cfg.S3BaseEndpoint)
			o.UsePathStyle = true
		}
	})

	return &S3Source{client: client, bucket: bucket, key: key}, nil
}

func (s *S3Source) Load(ctx context.Context) (chat.Seed, error) {
	out, err := s.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(s.key),
	})
	if err != nil {
		return chat.Seed{}, fmt.Errorf("get s3://%s/%s: %w", s.bucket, s.key, err)
	}
	defer out.Body.Close()

	return decode(out.Body)
}

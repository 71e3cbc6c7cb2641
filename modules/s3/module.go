// Package s3 registers the "s3" source: results files stored as objects in an
// S3 (or S3-compatible) bucket. The results path of a record becomes the
// object key, below an optional prefix.
package s3

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	awss3 "github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/aws/smithy-go"
	"github.com/specialistvlad/statgrid/internal/config"
	"github.com/specialistvlad/statgrid/internal/ctxlog"
	"github.com/specialistvlad/statgrid/internal/registry"
	"github.com/specialistvlad/statgrid/internal/source"
)

// Kind is the source kind name used in study files.
const Kind = "s3"

// Module implements the registry.Module interface for this package.
type Module struct{}

// GetObjectAPI is the subset of the S3 client the source needs.
type GetObjectAPI interface {
	GetObject(ctx context.Context, params *awss3.GetObjectInput, optFns ...func(*awss3.Options)) (*awss3.GetObjectOutput, error)
}

// Source reads results files from a bucket.
type Source struct {
	client GetObjectAPI
	bucket string
	prefix string
}

// NewSource creates a Source over an existing client.
func NewSource(client GetObjectAPI, bucket, prefix string) *Source {
	return &Source{client: client, bucket: bucket, prefix: strings.Trim(prefix, "/")}
}

// key maps a results path to an object key.
func (s *Source) key(name string) string {
	name = strings.TrimPrefix(name, "/")
	if s.prefix == "" {
		return name
	}
	return path.Join(s.prefix, name)
}

// Open implements source.Source.
func (s *Source) Open(ctx context.Context, name string) (io.ReadCloser, error) {
	key := s.key(name)
	out, err := s.client.GetObject(ctx, &awss3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		if isNotFound(err) {
			return nil, source.NotExist("s3://" + s.bucket + "/" + key)
		}
		return nil, fmt.Errorf("failed to get s3://%s/%s: %w", s.bucket, key, err)
	}
	return out.Body, nil
}

// String implements source.Source.
func (s *Source) String() string {
	return "s3://" + path.Join(s.bucket, s.prefix)
}

func isNotFound(err error) bool {
	var nsk *types.NoSuchKey
	if errors.As(err, &nsk) {
		return true
	}
	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		switch apiErr.ErrorCode() {
		case "NoSuchKey", "NotFound":
			return true
		}
	}
	return false
}

// New builds an S3 source from study options: bucket (required), prefix,
// region and endpoint (for S3-compatible stores; enables path-style access).
func New(ctx context.Context, opts config.Options) (source.Source, error) {
	bucket, err := opts.Require("bucket")
	if err != nil {
		return nil, err
	}

	var loadOpts []func(*awsconfig.LoadOptions) error
	if region := opts.Get("region", ""); region != "" {
		loadOpts = append(loadOpts, awsconfig.WithRegion(region))
	}
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, loadOpts...)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS configuration: %w", err)
	}

	endpoint := opts.Get("endpoint", "")
	client := awss3.NewFromConfig(awsCfg, func(o *awss3.Options) {
		if endpoint != "" {
			o.BaseEndpoint = aws.String(endpoint)
			o.UsePathStyle = true
		}
	})

	ctxlog.FromContext(ctx).Debug("S3 source configured.", "bucket", bucket, "prefix", opts.Get("prefix", ""), "endpoint", endpoint)
	return NewSource(client, bucket, opts.Get("prefix", "")), nil
}

// Register registers the source factory with the engine.
func (m *Module) Register(r *registry.Registry) {
	r.RegisterSource(Kind, New)
}

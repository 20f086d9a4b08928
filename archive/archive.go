// Package archive uploads run action logs to S3 so posting history
// survives the host. Archival is optional and env-gated; a run without
// S3 configuration just skips it.
package archive

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"councilbot/types"
)

const defaultPrefix = "runs"

// Archive wraps an S3 client scoped to one bucket and key prefix
type Archive struct {
	client *s3.Client
	bucket string
	prefix string
}

// NewFromEnv builds an archive from S3_BUCKET, S3_REGION and S3_PREFIX.
// Returns (nil, nil) when S3_BUCKET is unset: archival is off.
// Credentials come from the standard AWS chain.
func NewFromEnv(ctx context.Context) (*Archive, error) {
	bucket := os.Getenv("S3_BUCKET")
	if bucket == "" {
		return nil, nil
	}

	var loadOpts []func(*awsconfig.LoadOptions) error
	if region := os.Getenv("S3_REGION"); region != "" {
		loadOpts = append(loadOpts, awsconfig.WithRegion(region))
	}
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, loadOpts...)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	prefix := os.Getenv("S3_PREFIX")
	if prefix == "" {
		prefix = defaultPrefix
	}

	return &Archive{
		client: s3.NewFromConfig(awsCfg),
		bucket: bucket,
		prefix: prefix,
	}, nil
}

// UploadRun stores one run's actions as an indented JSON object keyed
// by the run timestamp
func (a *Archive) UploadRun(ctx context.Context, ranAt time.Time, actions []types.Action) (string, error) {
	payload := struct {
		RanAt   time.Time      `json:"ran_at"`
		Actions []types.Action `json:"actions"`
	}{RanAt: ranAt, Actions: actions}

	data, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to encode run actions: %w", err)
	}

	key := fmt.Sprintf("%s/%s.json", a.prefix, ranAt.UTC().Format("2006-01-02T15-04-05"))
	_, err = a.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(a.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String("application/json"),
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload run archive: %w", err)
	}
	return key, nil
}

// ListRuns returns up to maxKeys archived run keys, newest keys last
// (S3 lists lexicographically and the keys embed timestamps)
func (a *Archive) ListRuns(ctx context.Context, maxKeys int32) ([]string, error) {
	out, err := a.client.ListObjectsV2(ctx, &s3.ListObjectsV2Input{
		Bucket:  aws.String(a.bucket),
		Prefix:  aws.String(a.prefix + "/"),
		MaxKeys: aws.Int32(maxKeys),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list run archives: %w", err)
	}

	keys := make([]string, 0, len(out.Contents))
	for _, obj := range out.Contents {
		keys = append(keys, aws.ToString(obj.Key))
	}
	return keys, nil
}

// Copyright (c) 2026 Beacon. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package storage

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// S3Options configures an S3-compatible bucket.
type S3Options struct {
	Bucket    string
	Region    string
	Endpoint  string // empty for AWS itself
	AccessKey string
	SecretKey string
	PublicURL string // URL prefix objects are served from
}

// S3 stores objects in a bucket.
type S3 struct {
	client    *s3.Client
	bucket    string
	publicURL string
}

// NewS3 builds the client from static credentials, or the default AWS chain
// when no access key is configured.
func NewS3(ctx context.Context, options S3Options) (*S3, error) {
	loadOptions := []func(*awsconfig.LoadOptions) error{awsconfig.WithRegion(options.Region)}
	if options.AccessKey != "" {
		loadOptions = append(loadOptions, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(options.AccessKey, options.SecretKey, ""),
		))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, loadOptions...)
	if err != nil {
		return nil, fmt.Errorf("storage: load aws config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if options.Endpoint != "" {
			o.BaseEndpoint = aws.String(options.Endpoint)
			o.UsePathStyle = true
		}
	})

	publicURL := options.PublicURL
	if publicURL == "" {
		publicURL = defaultPublicURL(options)
	}

	return NewS3FromClient(client, options.Bucket, publicURL), nil
}

// NewS3FromClient wraps an existing client.
func NewS3FromClient(client *s3.Client, bucket, publicURL string) *S3 {
	return &S3{client: client, bucket: bucket, publicURL: strings.TrimRight(publicURL, "/")}
}

func defaultPublicURL(options S3Options) string {
	if options.Endpoint != "" {
		return strings.TrimRight(options.Endpoint, "/") + "/" + options.Bucket
	}
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com", options.Bucket, options.Region)
}

// Save implements [Backend].
func (bucket *S3) Save(ctx context.Context, key string, body io.Reader, size int64, contentType string) (string, error) {
	key, err := CleanKey(key)
	if err != nil {
		return "", err
	}

	_, err = bucket.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(bucket.bucket),
		Key:           aws.String(key),
		Body:          body,
		ContentLength: aws.Int64(size),
		ContentType:   aws.String(contentType),
	})
	if err != nil {
		return "", fmt.Errorf("storage: put object: %w", err)
	}

	return bucket.publicURL + "/" + key, nil
}

// Delete implements [Backend]. S3 reports success for missing keys.
func (bucket *S3) Delete(ctx context.Context, key string) error {
	key, err := CleanKey(key)
	if err != nil {
		return err
	}

	_, err = bucket.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(bucket.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return fmt.Errorf("storage: delete object: %w", err)
	}

	return nil
}

// KeyFromURL implements [Backend].
func (bucket *S3) KeyFromURL(rawURL string) (string, error) {
	return keyAfterPrefix(rawURL, bucket.publicURL+"/")
}

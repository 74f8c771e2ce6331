package s3

import (
	"context"
	"encoding/base64"
	"encoding/hex"
	"os"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/credentials/stscreds"
	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/aws/aws-sdk-go-v2/service/sts"
	"github.com/cloudfoundry/database-backup-and-archive/readwriter"
	"github.com/pkg/errors"
)

const (
	defaultRegion   = "us-east-1"
	defaultPartSize = 16 << 20
)

type Config struct {
	Region          string
	Endpoint        string
	AccessKeyID     string
	SecretAccessKey string
	ForcePathStyle  bool
	RoleARN         string
	// PartSize is the multipart chunk size. Files smaller than one part
	// go up in a single request.
	PartSize int64
}

// Client puts dumps into buckets. Without static keys it falls back to the
// default AWS credential chain. With a RoleARN those credentials are only
// used to assume the role.
type Client struct {
	uploader *manager.Uploader
	partSize int64
	logger   readwriter.Logger
}

func NewClient(ctx context.Context, config Config, logger readwriter.Logger) (*Client, error) {
	region := config.Region
	if region == "" {
		region = defaultRegion
	}

	loadOptions := []func(*awsconfig.LoadOptions) error{awsconfig.WithRegion(region)}
	if config.AccessKeyID != "" {
		loadOptions = append(loadOptions, awsconfig.WithCredentialsProvider(
			aws.NewCredentialsCache(credentials.NewStaticCredentialsProvider(config.AccessKeyID, config.SecretAccessKey, "")),
		))
	}

	awsConfig, err := awsconfig.LoadDefaultConfig(ctx, loadOptions...)
	if err != nil {
		return nil, errors.Wrap(err, "could not load AWS configuration")
	}

	if config.RoleARN != "" {
		awsConfig.Credentials = aws.NewCredentialsCache(
			stscreds.NewAssumeRoleProvider(sts.NewFromConfig(awsConfig), config.RoleARN),
		)
	}

	api := s3.NewFromConfig(awsConfig, func(o *s3.Options) {
		o.UsePathStyle = config.ForcePathStyle
		if config.Endpoint != "" {
			o.BaseEndpoint = aws.String(config.Endpoint)
		}
	})

	partSize := config.PartSize
	if partSize == 0 {
		partSize = defaultPartSize
	}
	if partSize < manager.MinUploadPartSize {
		return nil, errors.Errorf("part size %d is below the S3 minimum of %d bytes", partSize, manager.MinUploadPartSize)
	}

	uploader := manager.NewUploader(api, func(u *manager.Uploader) {
		u.PartSize = partSize
	})

	return &Client{uploader: uploader, partSize: partSize, logger: logger}, nil
}

// PutObject streams sourcePath to bucket/key, switching to a multipart
// upload when the file is larger than one part. A "sha256" metadata entry
// is sent as the object checksum for single requests. Multipart uploads
// get a SHA-256 checksum per part instead.
func (c *Client) PutObject(ctx context.Context, bucket, key, sourcePath string, metadata map[string]string) error {
	file, err := os.Open(sourcePath)
	if err != nil {
		return errors.Wrapf(err, "could not open %s", sourcePath)
	}
	defer file.Close()

	info, err := file.Stat()
	if err != nil {
		return errors.Wrapf(err, "could not read %s", sourcePath)
	}
	size := info.Size()

	message := "Uploading to s3://" + escapePercent(bucket+"/"+key) + "... %d%%"
	input := &s3.PutObjectInput{
		Bucket:            aws.String(bucket),
		Key:               aws.String(key),
		Body:              readwriter.NewLogPercentageReader(file, c.logger, size, "dbb", message),
		Metadata:          metadata,
		ChecksumAlgorithm: types.ChecksumAlgorithmSha256,
	}

	if digest, ok := metadata["sha256"]; ok {
		checksum, err := encodeSHA256(digest)
		if err != nil {
			return errors.Wrap(err, "invalid sha256 metadata")
		}
		if size < c.partSize {
			input.ChecksumSHA256 = aws.String(checksum)
		}
	}

	if _, err := c.uploader.Upload(ctx, input); err != nil {
		return errors.Wrapf(err, "could not put object %s into bucket %s", key, bucket)
	}
	return nil
}

func encodeSHA256(hexDigest string) (string, error) {
	raw, err := hex.DecodeString(hexDigest)
	if err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(raw), nil
}

func escapePercent(s string) string {
	return strings.ReplaceAll(s, "%", "%%")
}

package util

import (
	"context"
	"fmt"
	"net/url"
	"os"
	"path"
	"strings"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// GetS3Client connects to the host named in u. s3+https selects TLS.
// Credentials come from AWS_ACCESS_KEY_ID and AWS_SECRET_ACCESS_KEY.
func GetS3Client(u *url.URL) (*minio.Client, error) {

	useSSL := false
	if u.Scheme == "s3+https" {
		useSSL = true
	}

	accessKeyID := os.Getenv("AWS_ACCESS_KEY_ID")
	if accessKeyID == "" {
		return nil, fmt.Errorf("AWS_ACCESS_KEY_ID not set")
	}
	secretAccessKey := os.Getenv("AWS_SECRET_ACCESS_KEY")
	if secretAccessKey == "" {
		return nil, fmt.Errorf("AWS_SECRET_ACCESS_KEY not set")
	}

	mc, err := minio.New(u.Host, &minio.Options{
		Creds:  credentials.NewStaticV4(accessKeyID, secretAccessKey, ""),
		Secure: useSSL,
	})
	return mc, err
}

// GetS3URL parses s3+http:// and s3+https:// destinations. Anything else
// returns nil.
func GetS3URL(dst string) *url.URL {
	if strings.HasPrefix(dst, "s3+http://") || strings.HasPrefix(dst, "s3+https://") {
		u, err := url.Parse(dst)
		if err != nil {
			return nil
		}
		return u
	}
	return nil
}

// SplitBucket splits the URL path into a bucket name and object prefix.
func SplitBucket(u *url.URL) (string, string, error) {
	tmp := strings.SplitN(strings.TrimPrefix(u.Path, "/"), "/", 2)
	if tmp[0] == "" {
		return "", "", fmt.Errorf("no bucket in %s", u.String())
	}
	prefix := ""
	if len(tmp) > 1 {
		prefix = strings.Trim(tmp[1], "/")
	}
	return tmp[0], prefix, nil
}

// UploadFile puts the local file src under prefix in bucket, keeping its
// base name. It returns the object key.
func UploadFile(ctx context.Context, mc *minio.Client, bucket, prefix, src string) (string, error) {
	key := path.Join(prefix, path.Base(strings.ReplaceAll(src, string(os.PathSeparator), "/")))
	_, err := mc.FPutObject(ctx, bucket, key, src, minio.PutObjectOptions{
		ContentType: "application/json; charset=utf-8",
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload %s: %w", key, err)
	}
	return key, nil
}

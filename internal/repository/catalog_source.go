package repository

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/NLarchive/ai-learning-roadmap/internal/config"
	"github.com/NLarchive/ai-learning-roadmap/internal/util"

	"github.com/aliyun/aliyun-oss-go-sdk/oss"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// ResourceUnavailableError 目录资源取不到：网络错误、非 2xx 状态码或 JSON 损坏。
// 这是数据层唯一向外传播的错误类别。
type ResourceUnavailableError struct {
	Resource string
	URL      string
	Status   int
	Err      error
}

func (e *ResourceUnavailableError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("catalog resource %s unavailable (status %d): %s", e.Resource, e.Status, e.URL)
	}
	return fmt.Sprintf("catalog resource %s unavailable: %v", e.Resource, e.Err)
}

func (e *ResourceUnavailableError) Unwrap() error {
	return e.Err
}

// CatalogSource 按文件名读取目录资源的统一接口
type CatalogSource interface {
	Fetch(ctx context.Context, name string) ([]byte, error)
}

// HTTPCatalogSource 从远端静态站点拉取目录文件。不做自动重试，
// 重试由调用方重新发起。
type HTTPCatalogSource struct {
	BaseURL string
	Client  *http.Client
}

func NewHTTPCatalogSource(baseURL string, timeout time.Duration) *HTTPCatalogSource {
	return &HTTPCatalogSource{
		BaseURL: strings.TrimSuffix(baseURL, "/"),
		Client:  &http.Client{Timeout: timeout},
	}
}

func (s *HTTPCatalogSource) Fetch(ctx context.Context, name string) ([]byte, error) {
	url := s.BaseURL + "/" + name

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, &ResourceUnavailableError{Resource: name, URL: url, Err: err}
	}

	resp, err := s.Client.Do(req)
	if err != nil {
		return nil, &ResourceUnavailableError{Resource: name, URL: url, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		io.Copy(io.Discard, resp.Body)
		return nil, &ResourceUnavailableError{Resource: name, URL: url, Status: resp.StatusCode}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &ResourceUnavailableError{Resource: name, URL: url, Err: err}
	}
	return body, nil
}

// LocalCatalogSource 读本地目录，用于离线开发或与静态站点同机部署
type LocalCatalogSource struct {
	Dir string
}

func (s *LocalCatalogSource) Fetch(ctx context.Context, name string) ([]byte, error) {
	path := filepath.Join(s.Dir, name)
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &ResourceUnavailableError{Resource: name, URL: path, Err: err}
	}
	return data, nil
}

// MinioCatalogSource 从 MinIO 桶读取目录文件
type MinioCatalogSource struct {
	Client *minio.Client
	Bucket string
}

func NewMinioCatalogSource(cfg *config.CatalogConfig) (*MinioCatalogSource, error) {
	client, err := minio.New(cfg.MinioEndpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.MinioAccessID, cfg.MinioSecret, ""),
		Secure: false,
	})
	if err != nil {
		return nil, err
	}
	return &MinioCatalogSource{Client: client, Bucket: cfg.MinioBucket}, nil
}

func (s *MinioCatalogSource) Fetch(ctx context.Context, name string) ([]byte, error) {
	obj, err := s.Client.GetObject(ctx, s.Bucket, name, minio.GetObjectOptions{})
	if err != nil {
		return nil, &ResourceUnavailableError{Resource: name, URL: s.Bucket + "/" + name, Err: err}
	}
	defer obj.Close()

	// GetObject 是惰性的，错误在读取时才暴露
	data, err := io.ReadAll(obj)
	if err != nil {
		return nil, &ResourceUnavailableError{Resource: name, URL: s.Bucket + "/" + name, Err: err}
	}
	return data, nil
}

// OSSCatalogSource 从阿里云 OSS 桶读取目录文件
type OSSCatalogSource struct {
	Bucket *oss.Bucket
}

func NewOSSCatalogSource(cfg *config.CatalogConfig) (*OSSCatalogSource, error) {
	client, err := oss.New(cfg.OSSEndpoint, cfg.OSSAccessKey, cfg.OSSSecretKey)
	if err != nil {
		return nil, err
	}
	bucket, err := client.Bucket(cfg.OSSBucket)
	if err != nil {
		return nil, err
	}
	return &OSSCatalogSource{Bucket: bucket}, nil
}

func (s *OSSCatalogSource) Fetch(ctx context.Context, name string) ([]byte, error) {
	rc, err := s.Bucket.GetObject(name)
	if err != nil {
		return nil, &ResourceUnavailableError{Resource: name, URL: name, Err: err}
	}
	defer rc.Close()

	data, err := io.ReadAll(rc)
	if err != nil {
		return nil, &ResourceUnavailableError{Resource: name, URL: name, Err: err}
	}
	return data, nil
}

// NewCatalogSource 按配置选择目录数据源实现
func NewCatalogSource(cfg *config.Config) (CatalogSource, error) {
	switch cfg.Catalog.Source {
	case util.SourceLocal:
		return &LocalCatalogSource{Dir: cfg.Catalog.LocalPath}, nil
	case util.SourceMinio:
		return NewMinioCatalogSource(&cfg.Catalog)
	case util.SourceOSS:
		return NewOSSCatalogSource(&cfg.Catalog)
	default:
		timeout := time.Duration(cfg.Catalog.TimeoutSeconds) * time.Second
		return NewHTTPCatalogSource(cfg.Catalog.OriginURL, timeout), nil
	}
}

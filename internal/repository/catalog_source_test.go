package repository

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"
)

// ── HTTP 数据源 ──

func TestHTTPCatalogSource_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/data/courses.json" {
			http.NotFound(w, r)
			return
		}
		w.Write([]byte(`{"courses": []}`))
	}))
	defer server.Close()

	// 带尾斜杠的 base 应被修剪，不产生双斜杠
	source := NewHTTPCatalogSource(server.URL+"/data/", 5*time.Second)

	data, err := source.Fetch(context.Background(), "courses.json")
	if err != nil {
		t.Fatalf("抓取应成功: %v", err)
	}
	if string(data) != `{"courses": []}` {
		t.Errorf("返回内容不对: %s", data)
	}
}

func TestHTTPCatalogSource_NonSuccessStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "gone", http.StatusNotFound)
	}))
	defer server.Close()

	source := NewHTTPCatalogSource(server.URL, 5*time.Second)

	_, err := source.Fetch(context.Background(), "courses.json")
	var unavailable *ResourceUnavailableError
	if !errors.As(err, &unavailable) {
		t.Fatalf("期望 ResourceUnavailableError，实际: %v", err)
	}
	if unavailable.Status != http.StatusNotFound {
		t.Errorf("期望状态码404，实际=%d", unavailable.Status)
	}
	if unavailable.Resource != "courses.json" {
		t.Errorf("错误应携带资源名，实际=%s", unavailable.Resource)
	}
}

func TestHTTPCatalogSource_NetworkError(t *testing.T) {
	// 立刻关掉的服务器模拟网络故障
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	source := NewHTTPCatalogSource(server.URL, 2*time.Second)

	_, err := source.Fetch(context.Background(), "courses.json")
	var unavailable *ResourceUnavailableError
	if !errors.As(err, &unavailable) {
		t.Fatalf("网络错误应归为 ResourceUnavailable，实际: %v", err)
	}
}

// ── 本地目录数据源 ──

func TestLocalCatalogSource(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "paths.json"), []byte(`{}`), 0644); err != nil {
		t.Fatal(err)
	}

	source := &LocalCatalogSource{Dir: dir}

	data, err := source.Fetch(context.Background(), "paths.json")
	if err != nil {
		t.Fatalf("读取应成功: %v", err)
	}
	if string(data) != `{}` {
		t.Errorf("返回内容不对: %s", data)
	}

	_, err = source.Fetch(context.Background(), "missing.json")
	var unavailable *ResourceUnavailableError
	if !errors.As(err, &unavailable) {
		t.Fatalf("文件缺失应归为 ResourceUnavailable，实际: %v", err)
	}
}

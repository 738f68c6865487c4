package service

import (
	"context"
	"errors"
	"testing"

	"github.com/NLarchive/ai-learning-roadmap/internal/util"
)

// mockCompletionStore 内存完成状态存储
type mockCompletionStore struct {
	data map[string]map[string]bool
}

func newMockCompletionStore() *mockCompletionStore {
	return &mockCompletionStore{data: make(map[string]map[string]bool)}
}

func (m *mockCompletionStore) ListCompleted(clientID string) ([]string, error) {
	var ids []string
	for id, done := range m.data[clientID] {
		if done {
			ids = append(ids, id)
		}
	}
	return ids, nil
}

func (m *mockCompletionStore) SetCompletion(clientID, courseID string, completed bool) error {
	if m.data[clientID] == nil {
		m.data[clientID] = make(map[string]bool)
	}
	m.data[clientID][courseID] = completed
	return nil
}

func (m *mockCompletionStore) ClearAll(clientID string) error {
	delete(m.data, clientID)
	return nil
}

func setupCompletionService() (*CompletionService, *mockCompletionStore) {
	hydration, _ := newTestHydration()
	store := newMockCompletionStore()
	return NewCompletionService(store, hydration), store
}

func TestCompletionService_ToggleAndList(t *testing.T) {
	svc, _ := setupCompletionService()
	ctx := context.Background()

	if err := svc.SetCompletion(ctx, "client-1", "a", true); err != nil {
		t.Fatalf("勾选应成功: %v", err)
	}

	ids, err := svc.ListCompleted("client-1")
	if err != nil {
		t.Fatalf("查询应成功: %v", err)
	}
	if len(ids) != 1 || ids[0] != "a" {
		t.Errorf("期望 [a]，实际=%v", ids)
	}

	// 取消勾选
	if err := svc.SetCompletion(ctx, "client-1", "a", false); err != nil {
		t.Fatalf("取消勾选应成功: %v", err)
	}
	ids, _ = svc.ListCompleted("client-1")
	if len(ids) != 0 {
		t.Errorf("取消后集合应为空，实际=%v", ids)
	}
}

func TestCompletionService_UnknownCourseRejected(t *testing.T) {
	svc, _ := setupCompletionService()

	err := svc.SetCompletion(context.Background(), "client-1", "ghost", true)
	if !errors.Is(err, util.ErrCourseNotFound) {
		t.Errorf("目录里不存在的课程应拒绝勾选，实际: %v", err)
	}
}

func TestCompletionService_UnknownClientReadsEmptySet(t *testing.T) {
	svc, _ := setupCompletionService()

	ids, err := svc.ListCompleted("从未见过的客户端")
	if err != nil {
		t.Fatalf("未知客户端应得到空集合而不是错误: %v", err)
	}
	if ids == nil || len(ids) != 0 {
		t.Errorf("期望空集合，实际=%v", ids)
	}
}

func TestCompletionService_MissingClientID(t *testing.T) {
	svc, _ := setupCompletionService()

	if _, err := svc.ListCompleted(""); !errors.Is(err, util.ErrClientIDMissing) {
		t.Errorf("缺客户端标识应报错，实际: %v", err)
	}
	if err := svc.SetCompletion(context.Background(), "", "a", true); !errors.Is(err, util.ErrClientIDMissing) {
		t.Errorf("缺客户端标识应报错，实际: %v", err)
	}
}

func TestCompletionService_ClearAll(t *testing.T) {
	svc, _ := setupCompletionService()
	ctx := context.Background()

	svc.SetCompletion(ctx, "client-1", "a", true)
	svc.SetCompletion(ctx, "client-1", "b", true)

	if err := svc.ClearAll("client-1"); err != nil {
		t.Fatalf("清空应成功: %v", err)
	}
	ids, _ := svc.ListCompleted("client-1")
	if len(ids) != 0 {
		t.Errorf("清空后集合应为空，实际=%v", ids)
	}
}

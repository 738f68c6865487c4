package service

import (
	"context"

	"github.com/NLarchive/ai-learning-roadmap/internal/util"
)

// CompletionStore 完成状态的持久化接口，接口化便于测试
type CompletionStore interface {
	ListCompleted(clientID string) ([]string, error)
	SetCompletion(clientID, courseID string, completed bool) error
	ClearAll(clientID string) error
}

// CompletionService 维护每个匿名客户端的"已完成课程"集合，
// 是浏览器端 localStorage 勾选状态的服务端对应物。
type CompletionService struct {
	Store     CompletionStore
	Hydration *HydrationService
}

func NewCompletionService(store CompletionStore, hydration *HydrationService) *CompletionService {
	return &CompletionService{Store: store, Hydration: hydration}
}

// ListCompleted 返回客户端已完成的课程 ID 集合，未知客户端得到空集合
func (s *CompletionService) ListCompleted(clientID string) ([]string, error) {
	if clientID == "" {
		return nil, util.ErrClientIDMissing
	}
	ids, err := s.Store.ListCompleted(clientID)
	if err != nil {
		return nil, err
	}
	if ids == nil {
		ids = []string{}
	}
	return ids, nil
}

// SetCompletion 勾选/取消勾选一门课。课程必须存在于当前目录里，
// 避免完成集合里堆积悬空 ID。
func (s *CompletionService) SetCompletion(ctx context.Context, clientID, courseID string, completed bool) error {
	if clientID == "" {
		return util.ErrClientIDMissing
	}

	bundle, err := s.Hydration.Bundle(ctx)
	if err != nil {
		return err
	}
	if _, ok := bundle.CoursesMap[courseID]; !ok {
		return util.ErrCourseNotFound
	}

	return s.Store.SetCompletion(clientID, courseID, completed)
}

// ClearAll 清空客户端的完成集合
func (s *CompletionService) ClearAll(clientID string) error {
	if clientID == "" {
		return util.ErrClientIDMissing
	}
	return s.Store.ClearAll(clientID)
}

package service

import (
	"context"
	"strings"
	"sync"

	"github.com/NLarchive/ai-learning-roadmap/internal/model"
	"github.com/NLarchive/ai-learning-roadmap/pkg/logger"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"
)

// HydrationService 把四种原始资源合成一个自洽的、交叉引用已解析的
// 数据包，并在其上算汇总统计。数据包按会话记忆化，只在显式失效后重建。
type HydrationService struct {
	Catalog *CatalogService

	mu     sync.RWMutex
	group  singleflight.Group
	bundle *model.Bundle
}

func NewHydrationService(catalog *CatalogService) *HydrationService {
	return &HydrationService{Catalog: catalog}
}

// Bundle 返回水合后的数据包。首次调用触发构建，之后返回同一份对象；
// 并发首次调用共享一次构建。
func (s *HydrationService) Bundle(ctx context.Context) (*model.Bundle, error) {
	s.mu.RLock()
	if s.bundle != nil {
		cached := s.bundle
		s.mu.RUnlock()
		return cached, nil
	}
	s.mu.RUnlock()

	v, err, _ := s.group.Do("bundle", func() (interface{}, error) {
		s.mu.RLock()
		if s.bundle != nil {
			cached := s.bundle
			s.mu.RUnlock()
			return cached, nil
		}
		s.mu.RUnlock()

		bundle, err := s.build(ctx)
		if err != nil {
			return nil, err
		}

		s.mu.Lock()
		s.bundle = bundle
		s.mu.Unlock()
		return bundle, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*model.Bundle), nil
}

// Invalidate 丢弃记忆化的数据包，下次请求重建
func (s *HydrationService) Invalidate() {
	s.mu.Lock()
	s.bundle = nil
	s.mu.Unlock()
}

// Refresh 手动刷新：清掉取数层缓存和数据包，立即重建并返回新包
func (s *HydrationService) Refresh(ctx context.Context) (*model.Bundle, error) {
	s.Catalog.ClearCache(ctx)
	s.Invalidate()
	return s.Bundle(ctx)
}

func (s *HydrationService) build(ctx context.Context) (*model.Bundle, error) {
	var (
		coursesFile *model.CoursesFile
		categories  map[string]model.Category
		rawPaths    map[string]model.RawCareerPath
		external    []model.ExternalResource
	)

	// 四种资源相互独立，并发拉取；水合需要课程表和路径定义同时在手，
	// 所以在这里汇合，任何一个失败则整体失败。
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		coursesFile, err = s.Catalog.LoadCourses(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		categories, err = s.Catalog.LoadCategories(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		rawPaths, err = s.Catalog.LoadCareerPaths(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		external, err = s.Catalog.LoadExternalResources(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	courses := coursesFile.Courses
	base := strings.TrimSuffix(coursesFile.Meta.BaseURL, "/")
	for _, c := range courses {
		c.URL = normalizeURL(c.URL, base)
	}

	coursesMap := make(map[string]*model.Course, len(courses))
	for _, c := range courses {
		coursesMap[c.ID] = c
	}

	// 课程间的前置/后继引用同样静默过滤悬空项
	for _, c := range courses {
		c.Prerequisites = filterKnown(c.Prerequisites, coursesMap)
		c.Next = filterKnown(c.Next, coursesMap)
	}

	paths := make(map[string]*model.CareerPath, len(rawPaths))
	for id, raw := range rawPaths {
		paths[id] = hydratePath(id, raw, coursesMap)
	}

	bundle := &model.Bundle{
		Courses:           courses,
		CoursesMap:        coursesMap,
		Categories:        categories,
		Paths:             paths,
		ExternalResources: external,
		Meta:              coursesFile.Meta,
		Stats:             buildStats(courses),
	}

	logger.Log.Info("catalog bundle built",
		zap.Int("courses", len(courses)),
		zap.Int("paths", len(paths)),
		zap.Int("categories", len(categories)))

	return bundle, nil
}

// normalizeURL 把以 / 开头的站内相对路径补成绝对地址。
// 协议相对地址（//cdn.xxx/...）已经是绝对的，不动。
// 补全后的地址不再以 / 开头，所以重复调用不会二次拼接。
func normalizeURL(u, base string) string {
	if u == "" || base == "" {
		return u
	}
	if !strings.HasPrefix(u, "/") || strings.HasPrefix(u, "//") {
		return u
	}
	return base + u
}

// hydratePath 把原始路径定义归一化成水合形态。带 stages 的按阶段解析；
// 旧版扁平 courses 包成单个合成阶段，并另挂 coursesHydrated 便于旧调用方。
func hydratePath(id string, raw model.RawCareerPath, byID map[string]*model.Course) *model.CareerPath {
	p := &model.CareerPath{
		ID:          id,
		Name:        raw.Name,
		Description: raw.Description,
		Icon:        raw.Icon,
		Color:       raw.Color,
		Capstone:    raw.Capstone,
		Stages:      []model.Stage{},
	}

	if len(raw.Stages) > 0 {
		for _, rs := range raw.Stages {
			p.Stages = append(p.Stages, model.Stage{
				Name:        rs.Name,
				Description: rs.Description,
				Courses:     resolveCourses(rs.Courses, byID),
			})
		}
		return p
	}

	if len(raw.Courses) > 0 {
		resolved := resolveCourses(raw.Courses, byID)
		p.Stages = []model.Stage{{Name: raw.Name, Courses: resolved}}
		p.CoursesHydrated = resolved
	}
	return p
}

// resolveCourses 把课程引用解析成完整课程对象，悬空引用静默丢弃
func resolveCourses(refs []model.CourseRef, byID map[string]*model.Course) []*model.Course {
	out := make([]*model.Course, 0, len(refs))
	for _, ref := range refs {
		if c, ok := byID[string(ref)]; ok {
			out = append(out, c)
		}
	}
	return out
}

func filterKnown(ids []string, byID map[string]*model.Course) []string {
	if len(ids) == 0 {
		return ids
	}
	out := ids[:0]
	for _, id := range ids {
		if _, ok := byID[id]; ok {
			out = append(out, id)
		}
	}
	return out
}

func buildStats(courses []*model.Course) model.Stats {
	stats := model.Stats{
		TotalCourses: len(courses),
		ByCategory:   map[string]int{},
		ByPath:       map[string]int{},
		ByPartner:    map[string]int{},
	}

	for _, c := range courses {
		stats.TotalHours += c.DurationHours

		switch c.Difficulty {
		case model.DifficultyBeginner:
			stats.ByDifficulty.Beginner++
		case model.DifficultyIntermediate:
			stats.ByDifficulty.Intermediate++
		case model.DifficultyAdvanced:
			stats.ByDifficulty.Advanced++
		}

		if c.Category != "" {
			stats.ByCategory[c.Category]++
		}
		for _, p := range c.CareerPaths {
			stats.ByPath[p]++
		}
		if c.Partner != "" {
			stats.ByPartner[c.Partner]++
		}
	}
	return stats
}

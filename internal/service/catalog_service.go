package service

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/NLarchive/ai-learning-roadmap/internal/config"
	"github.com/NLarchive/ai-learning-roadmap/internal/model"
	"github.com/NLarchive/ai-learning-roadmap/internal/repository"
	"github.com/NLarchive/ai-learning-roadmap/internal/util"
	"github.com/NLarchive/ai-learning-roadmap/pkg/logger"
	"github.com/NLarchive/ai-learning-roadmap/pkg/monitoring"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

const catalogRawKeyPrefix = "catalog:raw:"

// CatalogService 目录数据的取数与缓存层。每种资源每个缓存周期
// 只向数据源发一次请求，之后从内存槽位直接返回；并发首次加载
// 通过 singleflight 合并成一次抓取。
type CatalogService struct {
	Source repository.CatalogSource
	Cfg    *config.Config
	Redis  *redis.Client

	mu         sync.RWMutex
	group      singleflight.Group
	courses    *model.CoursesFile
	categories map[string]model.Category
	paths      map[string]model.RawCareerPath
	external   []model.ExternalResource
}

func NewCatalogService(source repository.CatalogSource, cfg *config.Config, rdb *redis.Client) *CatalogService {
	return &CatalogService{
		Source: source,
		Cfg:    cfg,
		Redis:  rdb,
	}
}

// SetSource 热切换数据源。配置重载换了源类型或地址时由应用层调用，
// 调用方应随即 ClearCache，否则旧源的数据会继续命中缓存。
func (s *CatalogService) SetSource(source repository.CatalogSource) {
	s.mu.Lock()
	s.Source = source
	s.mu.Unlock()
}

func (s *CatalogService) currentSource() repository.CatalogSource {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.Source
}

// fetchJSON 取一个目录文件并解析 JSON。内存未命中时先查 Redis
// 透读层（多实例共享，可禁用），再回源。解析失败与取数失败同级，
// 都算 ResourceUnavailable。
func (s *CatalogService) fetchJSON(ctx context.Context, name string, out interface{}) error {
	if s.Redis != nil {
		val, err := s.Redis.Get(ctx, catalogRawKeyPrefix+name).Bytes()
		if err == nil {
			if jerr := json.Unmarshal(val, out); jerr == nil {
				monitoring.CatalogCacheCounter.WithLabelValues(name, "hit").Inc()
				return nil
			}
			// Redis 里的坏数据当未命中处理，回源覆盖
			s.Redis.Del(ctx, catalogRawKeyPrefix+name)
		} else if err != redis.Nil {
			logger.Log.Warn("redis catalog lookup failed", zap.String("resource", name), zap.Error(err))
		}
	}
	monitoring.CatalogCacheCounter.WithLabelValues(name, "miss").Inc()

	data, err := s.currentSource().Fetch(ctx, name)
	if err != nil {
		monitoring.CatalogFetchCounter.WithLabelValues(name, "error").Inc()
		return err
	}

	if err := json.Unmarshal(data, out); err != nil {
		monitoring.CatalogFetchCounter.WithLabelValues(name, "error").Inc()
		return &repository.ResourceUnavailableError{Resource: name, Err: err}
	}
	monitoring.CatalogFetchCounter.WithLabelValues(name, "ok").Inc()

	if s.Redis != nil {
		ttl := time.Duration(s.Cfg.Catalog.CacheTTLMinutes) * time.Minute
		if err := s.Redis.Set(ctx, catalogRawKeyPrefix+name, data, ttl).Err(); err != nil {
			logger.Log.Warn("redis catalog store failed", zap.String("resource", name), zap.Error(err))
		}
	}
	return nil
}

// fetchWithFallback 先试首选文件，失败再试旧版文件名；两者都失败时
// 向上传播第二次的失败。调用方不需要关心线上是哪个版本的数据格式。
func (s *CatalogService) fetchWithFallback(ctx context.Context, preferred, legacy string, out interface{}) error {
	err := s.fetchJSON(ctx, preferred, out)
	if err == nil {
		return nil
	}
	logger.Log.Info("preferred catalog file unavailable, falling back",
		zap.String("preferred", preferred),
		zap.String("legacy", legacy),
		zap.Error(err))
	return s.fetchJSON(ctx, legacy, out)
}

// LoadCourses 取课程文件（含 meta 和内联分类）。首次加载后整个会话
// 复用同一份对象，直到 ClearCache。
func (s *CatalogService) LoadCourses(ctx context.Context) (*model.CoursesFile, error) {
	s.mu.RLock()
	if s.courses != nil {
		cached := s.courses
		s.mu.RUnlock()
		return cached, nil
	}
	s.mu.RUnlock()

	v, err, _ := s.group.Do("courses", func() (interface{}, error) {
		s.mu.RLock()
		if s.courses != nil {
			cached := s.courses
			s.mu.RUnlock()
			return cached, nil
		}
		s.mu.RUnlock()

		var file model.CoursesFile
		if err := s.fetchWithFallback(ctx, util.CoursesFileName, util.CoursesLegacyFileName, &file); err != nil {
			return nil, err
		}
		// 缺失的 courses 数组按空列表处理，不让可选字段缺失拖垮视图
		if file.Courses == nil {
			file.Courses = []*model.Course{}
		}

		s.mu.Lock()
		s.courses = &file
		s.mu.Unlock()
		return &file, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*model.CoursesFile), nil
}

// LoadCategories 取分类表。旧版数据没有独立的分类文件，
// 回退到 courses 文件里的内联 categories 字段。
func (s *CatalogService) LoadCategories(ctx context.Context) (map[string]model.Category, error) {
	s.mu.RLock()
	if s.categories != nil {
		cached := s.categories
		s.mu.RUnlock()
		return cached, nil
	}
	s.mu.RUnlock()

	v, err, _ := s.group.Do("categories", func() (interface{}, error) {
		s.mu.RLock()
		if s.categories != nil {
			cached := s.categories
			s.mu.RUnlock()
			return cached, nil
		}
		s.mu.RUnlock()

		var cats map[string]model.Category
		if err := s.fetchJSON(ctx, util.CategoriesFileName, &cats); err != nil {
			file, cerr := s.LoadCourses(ctx)
			if cerr != nil {
				return nil, cerr
			}
			cats = file.Categories
		}
		if cats == nil {
			cats = map[string]model.Category{}
		}

		s.mu.Lock()
		s.categories = cats
		s.mu.Unlock()
		return cats, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(map[string]model.Category), nil
}

// LoadCareerPaths 取职业路径定义（原始形态，水合交给 HydrationService）
func (s *CatalogService) LoadCareerPaths(ctx context.Context) (map[string]model.RawCareerPath, error) {
	s.mu.RLock()
	if s.paths != nil {
		cached := s.paths
		s.mu.RUnlock()
		return cached, nil
	}
	s.mu.RUnlock()

	v, err, _ := s.group.Do("paths", func() (interface{}, error) {
		s.mu.RLock()
		if s.paths != nil {
			cached := s.paths
			s.mu.RUnlock()
			return cached, nil
		}
		s.mu.RUnlock()

		var file model.PathsFile
		if err := s.fetchWithFallback(ctx, util.PathsFileName, util.PathsLegacyFileName, &file); err != nil {
			return nil, err
		}
		paths := file.Paths
		if paths == nil {
			paths = map[string]model.RawCareerPath{}
		}

		s.mu.Lock()
		s.paths = paths
		s.mu.Unlock()
		return paths, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(map[string]model.RawCareerPath), nil
}

// LoadExternalResources 取站外资源列表，缺文件时回退到 courses
// 文件的 external_gaps 字段。
func (s *CatalogService) LoadExternalResources(ctx context.Context) ([]model.ExternalResource, error) {
	s.mu.RLock()
	if s.external != nil {
		cached := s.external
		s.mu.RUnlock()
		return cached, nil
	}
	s.mu.RUnlock()

	v, err, _ := s.group.Do("external", func() (interface{}, error) {
		s.mu.RLock()
		if s.external != nil {
			cached := s.external
			s.mu.RUnlock()
			return cached, nil
		}
		s.mu.RUnlock()

		var ext []model.ExternalResource
		if err := s.fetchJSON(ctx, util.ExternalFileName, &ext); err != nil {
			file, cerr := s.LoadCourses(ctx)
			if cerr != nil {
				return nil, cerr
			}
			ext = file.ExternalGaps
		}
		if ext == nil {
			ext = []model.ExternalResource{}
		}

		s.mu.Lock()
		s.external = ext
		s.mu.Unlock()
		return ext, nil
	})
	if err != nil {
		return nil, err
	}
	return v.([]model.ExternalResource), nil
}

// ClearCache 清空全部缓存槽位（含 Redis 透读层），之后的加载会重新回源。
// 由手动刷新动作和配置热更新触发。
func (s *CatalogService) ClearCache(ctx context.Context) {
	s.mu.Lock()
	s.courses = nil
	s.categories = nil
	s.paths = nil
	s.external = nil
	s.mu.Unlock()

	if s.Redis != nil {
		keys := []string{
			catalogRawKeyPrefix + util.CoursesFileName,
			catalogRawKeyPrefix + util.CoursesLegacyFileName,
			catalogRawKeyPrefix + util.CategoriesFileName,
			catalogRawKeyPrefix + util.PathsFileName,
			catalogRawKeyPrefix + util.PathsLegacyFileName,
			catalogRawKeyPrefix + util.ExternalFileName,
		}
		if err := s.Redis.Del(ctx, keys...).Err(); err != nil {
			logger.Log.Warn("redis catalog invalidation failed", zap.Error(err))
		}
	}

	logger.Log.Info("catalog cache cleared")
}

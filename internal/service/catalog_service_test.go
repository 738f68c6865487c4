package service

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/NLarchive/ai-learning-roadmap/internal/repository"
)

// ── 缓存语义 ──

func TestCatalogService_LoadCourses_CachesAfterFirstLoad(t *testing.T) {
	svc, source := newTestCatalog()
	ctx := context.Background()

	first, err := svc.LoadCourses(ctx)
	if err != nil {
		t.Fatalf("首次加载应成功: %v", err)
	}
	second, err := svc.LoadCourses(ctx)
	if err != nil {
		t.Fatalf("二次加载应成功: %v", err)
	}

	if first != second {
		t.Error("二次加载应返回同一份缓存对象")
	}
	if got := source.count("courses.json"); got != 1 {
		t.Errorf("期望恰好1次抓取，实际=%d", got)
	}
}

func TestCatalogService_ClearCache_ForcesRefetch(t *testing.T) {
	svc, source := newTestCatalog()
	ctx := context.Background()

	if _, err := svc.LoadCourses(ctx); err != nil {
		t.Fatalf("加载应成功: %v", err)
	}
	svc.ClearCache(ctx)
	if _, err := svc.LoadCourses(ctx); err != nil {
		t.Fatalf("清缓存后加载应成功: %v", err)
	}

	if got := source.count("courses.json"); got != 2 {
		t.Errorf("清缓存后应重新抓取，期望2次，实际=%d", got)
	}
}

func TestCatalogService_ConcurrentFirstLoad_SingleFetch(t *testing.T) {
	svc, source := newTestCatalog()
	source.delay = 100 * time.Millisecond

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := svc.LoadCourses(context.Background()); err != nil {
				t.Errorf("并发加载应成功: %v", err)
			}
		}()
	}
	wg.Wait()

	if got := source.count("courses.json"); got != 1 {
		t.Errorf("并发首次加载应合并为1次抓取，实际=%d", got)
	}
}

// ── 数据源热切换 ──

func TestCatalogService_SetSource_NextLoadUsesNewSource(t *testing.T) {
	svc, oldSource := newTestCatalog()
	ctx := context.Background()

	if _, err := svc.LoadCourses(ctx); err != nil {
		t.Fatalf("加载应成功: %v", err)
	}

	newSource := newStubSource()
	newSource.set("courses.json", `{"meta": {}, "courses": [{"id": "z", "title": "Z"}]}`)
	svc.SetSource(newSource)
	svc.ClearCache(ctx)

	file, err := svc.LoadCourses(ctx)
	if err != nil {
		t.Fatalf("换源后加载应成功: %v", err)
	}
	if len(file.Courses) != 1 || file.Courses[0].ID != "z" {
		t.Errorf("换源后应取到新源的数据，实际=%v", file.Courses)
	}
	if got := oldSource.count("courses.json"); got != 1 {
		t.Errorf("旧源不应再被抓取，实际=%d", got)
	}
	if got := newSource.count("courses.json"); got != 1 {
		t.Errorf("新源应被抓取1次，实际=%d", got)
	}
}

// ── 旧版文件名回退 ──

func TestCatalogService_LoadCourses_FallsBackToLegacyFile(t *testing.T) {
	svc, source := newTestCatalog()
	source.remove("courses.json")
	source.set("courses-index.json", coursesJSON)

	file, err := svc.LoadCourses(context.Background())
	if err != nil {
		t.Fatalf("旧版文件存在时应回退成功: %v", err)
	}
	if len(file.Courses) != 3 {
		t.Errorf("期望3门课程，实际=%d", len(file.Courses))
	}
	if source.count("courses.json") != 1 || source.count("courses-index.json") != 1 {
		t.Error("应先试首选文件，再试旧版文件，各1次")
	}
}

func TestCatalogService_LoadCourses_BothPathsFail(t *testing.T) {
	svc, source := newTestCatalog()
	source.remove("courses.json")

	_, err := svc.LoadCourses(context.Background())
	if err == nil {
		t.Fatal("两个文件都取不到时应报错，不能静默返回空数据")
	}

	var unavailable *repository.ResourceUnavailableError
	if !errors.As(err, &unavailable) {
		t.Fatalf("期望 ResourceUnavailableError，实际: %v", err)
	}
	if unavailable.Resource != "courses-index.json" {
		t.Errorf("应传播第二次（旧版文件）的失败，实际资源=%s", unavailable.Resource)
	}
}

func TestCatalogService_InvalidJSON_IsResourceUnavailable(t *testing.T) {
	svc, source := newTestCatalog()
	source.set("courses.json", "{not json")
	source.remove("courses-index.json")

	_, err := svc.LoadCourses(context.Background())
	var unavailable *repository.ResourceUnavailableError
	if !errors.As(err, &unavailable) {
		t.Fatalf("JSON损坏应归为 ResourceUnavailable，实际: %v", err)
	}
}

// ── 可选字段缺失 ──

func TestCatalogService_MissingCoursesArray_YieldsEmptyList(t *testing.T) {
	svc, source := newTestCatalog()
	source.set("courses.json", `{"meta": {"base_url": "https://x.test"}}`)

	file, err := svc.LoadCourses(context.Background())
	if err != nil {
		t.Fatalf("缺 courses 数组不应报错: %v", err)
	}
	if file.Courses == nil {
		t.Fatal("courses 应为空列表而不是 nil")
	}
	if len(file.Courses) != 0 {
		t.Errorf("期望空列表，实际=%d", len(file.Courses))
	}
}

// ── 从 courses 文件派生的回退 ──

func TestCatalogService_Categories_FallBackToInlineField(t *testing.T) {
	svc, source := newTestCatalog()
	source.remove("categories.json")

	cats, err := svc.LoadCategories(context.Background())
	if err != nil {
		t.Fatalf("分类文件缺失时应从 courses 内联字段派生: %v", err)
	}
	if _, ok := cats["inline-cat"]; !ok {
		t.Errorf("期望派生出内联分类，实际=%v", cats)
	}
}

func TestCatalogService_ExternalResources_FallBackToInlineField(t *testing.T) {
	svc, source := newTestCatalog()
	source.remove("external-resources.json")
	source.set("courses.json", `{
		"meta": {},
		"courses": [],
		"external_gaps": [{"id": "gap-1", "title": "缺口资源"}]
	}`)

	ext, err := svc.LoadExternalResources(context.Background())
	if err != nil {
		t.Fatalf("站外资源文件缺失时应从 external_gaps 派生: %v", err)
	}
	if len(ext) != 1 || ext[0].ID != "gap-1" {
		t.Errorf("期望派生出1条缺口资源，实际=%v", ext)
	}
}

// ── paths 两种顶层形态 ──

func TestCatalogService_Paths_WrappedTopLevel(t *testing.T) {
	svc, source := newTestCatalog()
	source.set("paths.json", `{"paths": {"solo": {"name": "Solo"}}}`)

	paths, err := svc.LoadCareerPaths(context.Background())
	if err != nil {
		t.Fatalf("包装形态应解析成功: %v", err)
	}
	if _, ok := paths["solo"]; !ok {
		t.Errorf("期望摊平出 solo 路径，实际=%v", paths)
	}
}

func TestCatalogService_Paths_FallsBackToLegacyFile(t *testing.T) {
	svc, source := newTestCatalog()
	source.remove("paths.json")
	source.set("career-paths.json", pathsJSON)

	paths, err := svc.LoadCareerPaths(context.Background())
	if err != nil {
		t.Fatalf("旧版路径文件应回退成功: %v", err)
	}
	if len(paths) != 3 {
		t.Errorf("期望3条路径，实际=%d", len(paths))
	}
}

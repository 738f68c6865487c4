package model

import (
	"encoding/json"
	"testing"
)

func TestCourse_PrimaryPath_Deterministic(t *testing.T) {
	c := &Course{ID: "a", CareerPaths: []string{"researcher", "trunk"}}

	// 多次调用必须稳定取首元素，绝不能取到 trunk
	for i := 0; i < 100; i++ {
		if got := c.PrimaryPath(); got != "researcher" {
			t.Fatalf("第%d次调用期望 researcher，实际=%s", i, got)
		}
	}
}

func TestCourse_PrimaryPath_EmptyList(t *testing.T) {
	c := &Course{ID: "a"}
	if got := c.PrimaryPath(); got != "" {
		t.Errorf("路径列表为空时应返回空串，实际=%s", got)
	}
}

func TestCourseRef_BothSpellings(t *testing.T) {
	var refs []CourseRef
	if err := json.Unmarshal([]byte(`["abc", {"id": "def"}]`), &refs); err != nil {
		t.Fatalf("两种写法都应解析成功: %v", err)
	}
	if len(refs) != 2 || refs[0] != "abc" || refs[1] != "def" {
		t.Errorf("期望 [abc def]，实际=%v", refs)
	}
}

func TestPathsFile_TwoTopLevelShapes(t *testing.T) {
	var direct PathsFile
	if err := json.Unmarshal([]byte(`{"builder": {"name": "Builder"}}`), &direct); err != nil {
		t.Fatalf("直接映射形态应解析成功: %v", err)
	}
	if direct.Paths["builder"].Name != "Builder" {
		t.Errorf("直接形态解析结果不对: %v", direct.Paths)
	}

	var wrapped PathsFile
	if err := json.Unmarshal([]byte(`{"paths": {"builder": {"name": "Builder"}}}`), &wrapped); err != nil {
		t.Fatalf("包装形态应解析成功: %v", err)
	}
	if wrapped.Paths["builder"].Name != "Builder" {
		t.Errorf("包装形态解析结果不对: %v", wrapped.Paths)
	}
}

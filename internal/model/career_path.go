package model

import "encoding/json"

// CourseRef 阶段里的课程引用。目录文件里有 "abc" 和 {"id":"abc"} 两种写法，
// 统一解析成课程 ID 字符串。
type CourseRef string

func (r *CourseRef) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*r = CourseRef(s)
		return nil
	}
	var obj struct {
		ID string `json:"id"`
	}
	if err := json.Unmarshal(data, &obj); err != nil {
		return err
	}
	*r = CourseRef(obj.ID)
	return nil
}

// RawStage paths.json 里的阶段定义，courses 是课程 ID 列表
type RawStage struct {
	Name        string      `json:"name"`
	Description string      `json:"description,omitempty"`
	Courses     []CourseRef `json:"courses"`
}

// RawCareerPath 职业路径的原始形态。新版带 stages 数组；
// 旧版只有扁平的 courses 列表，归一化时包成单个合成阶段。
type RawCareerPath struct {
	Name        string      `json:"name"`
	Description string      `json:"description,omitempty"`
	Icon        string      `json:"icon,omitempty"`
	Color       string      `json:"color,omitempty"`
	Capstone    string      `json:"capstone,omitempty"`
	Stages      []RawStage  `json:"stages,omitempty"`
	Courses     []CourseRef `json:"courses,omitempty"`
}

// Stage 水合后的阶段，课程 ID 已替换为完整课程对象
// swagger:model Stage
type Stage struct {
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	Courses     []*Course `json:"courses"`
}

// CareerPath 水合后的职业路径。Stages 恒为非 nil 数组，
// 下游不需要再区分新旧两种输入形态。
// swagger:model CareerPath
type CareerPath struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description,omitempty"`
	Icon        string  `json:"icon,omitempty"`
	Color       string  `json:"color,omitempty"`
	Capstone    string  `json:"capstone,omitempty"`
	Stages      []Stage `json:"stages"`
	// 旧版扁平形态的便捷字段，与合成阶段里的课程列表相同
	CoursesHydrated []*Course `json:"coursesHydrated,omitempty"`
}

package model

import "encoding/json"

// Meta courses 文件的元信息，base_url 用于相对链接补全
type Meta struct {
	BaseURL     string `json:"base_url,omitempty"`
	Version     string `json:"version,omitempty"`
	GeneratedAt string `json:"generated_at,omitempty"`
}

// CoursesFile courses.json 的顶层结构（旧版 courses-index.json 同构）。
// categories 和 external_gaps 是旧版内联字段，对应文件缺失时回退使用。
type CoursesFile struct {
	Meta         Meta                `json:"meta"`
	Courses      []*Course           `json:"courses"`
	Categories   map[string]Category `json:"categories,omitempty"`
	ExternalGaps []ExternalResource  `json:"external_gaps,omitempty"`
}

// PathsFile paths.json 有两种顶层形态：直接的 id→路径映射，
// 或包一层 {"paths": {...}}。解析时统一摊平。
type PathsFile struct {
	Paths map[string]RawCareerPath
}

func (f *PathsFile) UnmarshalJSON(data []byte) error {
	var wrapped struct {
		Paths map[string]RawCareerPath `json:"paths"`
	}
	if err := json.Unmarshal(data, &wrapped); err == nil && wrapped.Paths != nil {
		f.Paths = wrapped.Paths
		return nil
	}
	var direct map[string]RawCareerPath
	if err := json.Unmarshal(data, &direct); err != nil {
		return err
	}
	f.Paths = direct
	return nil
}

package model

// DifficultyStats 三档难度各自的课程数，未识别的难度不计入任何一档
type DifficultyStats struct {
	Beginner     int `json:"beginner"`
	Intermediate int `json:"intermediate"`
	Advanced     int `json:"advanced"`
}

// Stats 目录聚合统计
// swagger:model Stats
type Stats struct {
	TotalCourses int             `json:"totalCourses"`
	TotalHours   float64         `json:"totalHours"`
	ByDifficulty DifficultyStats `json:"byDifficulty"`
	ByCategory   map[string]int  `json:"byCategory"`
	ByPath       map[string]int  `json:"byPath"`
	ByPartner    map[string]int  `json:"byPartner"`
}

// Bundle 水合后的全量数据包，是交付给渲染端的唯一单位。
// 构建完成后只读，所有视图共享同一份。
// swagger:model Bundle
type Bundle struct {
	Courses           []*Course              `json:"courses"`
	CoursesMap        map[string]*Course     `json:"coursesMap"`
	Categories        map[string]Category    `json:"categories"`
	Paths             map[string]*CareerPath `json:"paths"`
	ExternalResources []ExternalResource     `json:"externalResources"`
	Meta              Meta                   `json:"meta"`
	Stats             Stats                  `json:"stats"`
}

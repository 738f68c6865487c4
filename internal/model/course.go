package model

// 难度枚举，与目录 JSON 中的取值严格一致（区分大小写）
const (
	DifficultyBeginner     = "Beginner"
	DifficultyIntermediate = "Intermediate"
	DifficultyAdvanced     = "Advanced"
)

// Course 单个学习单元
// swagger:model Course
type Course struct {
	ID            string   `json:"id"`
	Title         string   `json:"title"`
	Description   string   `json:"description,omitempty"`
	URL           string   `json:"url,omitempty"`
	Category      string   `json:"category,omitempty"`
	Difficulty    string   `json:"difficulty,omitempty"`
	DurationHours float64  `json:"duration_hours,omitempty"`
	CareerPaths   []string `json:"career_paths,omitempty"`
	Prerequisites []string `json:"prerequisites,omitempty"`
	Next          []string `json:"next,omitempty"`
	Skills        []string `json:"skills,omitempty"`
	Partner       string   `json:"partner,omitempty"`
	Tags          []string `json:"tags,omitempty"`
}

// PrimaryPath 返回课程所属的首个职业路径，供视图做着色/分组。
// 同一课程多次调用必须得到同一结果；列表为空时返回空串，由调用方兜底。
func (c *Course) PrimaryPath() string {
	if len(c.CareerPaths) == 0 {
		return ""
	}
	return c.CareerPaths[0]
}

package model

// Category 课程主题分类，独立于职业路径
// swagger:model Category
type Category struct {
	Name string `json:"name"`
	Icon string `json:"icon,omitempty"`
}

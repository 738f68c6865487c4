package model

import (
	"time"

	"gorm.io/gorm"
)

// CourseCompletion 记录某个客户端对课程的完成勾选状态。
// client_id 是前端生成的匿名标识，对应浏览器时代的 localStorage 键。
// swagger:model CourseCompletion
type CourseCompletion struct {
	gorm.Model
	ClientID    string `gorm:"size:64;index:idx_client_course,unique"`
	CourseID    string `gorm:"size:128;index:idx_client_course,unique"`
	Completed   bool   `gorm:"default:false"`
	CompletedAt *time.Time
}

func (CourseCompletion) TableName() string {
	return "course_completions"
}

package repository

import (
	"time"

	"github.com/NLarchive/ai-learning-roadmap/internal/model"

	"gorm.io/gorm"
)

type CompletionRepository struct {
	DB *gorm.DB
}

func NewCompletionRepository(db *gorm.DB) *CompletionRepository {
	return &CompletionRepository{DB: db}
}

// ListCompleted 返回客户端已勾选完成的课程 ID 列表。
// 没有任何记录的客户端视为空集合，不报错。
func (r *CompletionRepository) ListCompleted(clientID string) ([]string, error) {
	var ids []string
	err := r.DB.Model(&model.CourseCompletion{}).
		Where("client_id = ? AND completed = ?", clientID, true).
		Order("course_id").
		Pluck("course_id", &ids).Error
	if err != nil {
		return nil, err
	}
	return ids, nil
}

// SetCompletion 更新客户端对课程的完成状态
func (r *CompletionRepository) SetCompletion(clientID, courseID string, completed bool) error {
	tx := r.DB.Begin()
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
		}
	}()

	var existing model.CourseCompletion
	err := tx.Where("client_id = ? AND course_id = ?", clientID, courseID).First(&existing).Error

	now := time.Now()

	if err != nil {
		// 创建新记录
		completion := &model.CourseCompletion{
			ClientID:    clientID,
			CourseID:    courseID,
			Completed:   completed,
			CompletedAt: &now,
		}
		err = tx.Create(completion).Error
	} else {
		// 更新现有记录
		existing.Completed = completed
		if completed {
			existing.CompletedAt = &now
		} else {
			existing.CompletedAt = nil
		}
		err = tx.Save(&existing).Error
	}

	if err != nil {
		tx.Rollback()
		return err
	}

	tx.Commit()
	return nil
}

// ClearAll 清空客户端的全部完成记录
func (r *CompletionRepository) ClearAll(clientID string) error {
	return r.DB.Where("client_id = ?", clientID).
		Delete(&model.CourseCompletion{}).Error
}

package repository

import (
	"errors"

	"eduforum_backend/internal/model"

	"gorm.io/gorm"
)

type QuestionRepository struct {
	DB *gorm.DB
}

func NewQuestionRepository(db *gorm.DB) *QuestionRepository {
	return &QuestionRepository{DB: db}
}

func (r *QuestionRepository) Create(question *model.Question) error {
	return r.DB.Create(question).Error
}

func (r *QuestionRepository) FindByID(id uint) (*model.Question, error) {
	var question model.Question
	err := r.DB.Preload("User").First(&question, id).Error
	if err != nil {
		return nil, err
	}
	return &question, nil
}

// FindWithFilters 按学科/年级过滤，支持标题+详情模糊搜索，
// sort 取 new（最新）或 top（按点赞数）
func (r *QuestionRepository) FindWithFilters(offset, limit int, subject, grade, search, sort string) ([]model.Question, int64, error) {
	var questions []model.Question
	var total int64

	query := r.DB.Model(&model.Question{})

	if subject != "" {
		query = query.Where("subject = ?", subject)
	}
	if grade != "" {
		query = query.Where("grade = ?", grade)
	}
	if search != "" {
		like := "%" + search + "%"
		query = query.Where("title LIKE ? OR details LIKE ?", like, like)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	switch sort {
	case "top":
		query = query.Order("like_count DESC")
	default:
		query = query.Order("created_at DESC")
	}

	err := query.Preload("User").Offset(offset).Limit(limit).Find(&questions).Error
	return questions, total, err
}

func (r *QuestionRepository) FindByUserID(userID uint) ([]model.Question, error) {
	var questions []model.Question
	err := r.DB.Where("user_id = ?", userID).Order("created_at DESC").Find(&questions).Error
	return questions, err
}

func (r *QuestionRepository) Update(question *model.Question) error {
	return r.DB.Save(question).Error
}

// Delete 连同问题的投票行与回答一并删除
func (r *QuestionRepository) Delete(id uint) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		var answerIDs []uint
		if err := tx.Model(&model.Answer{}).Where("question_id = ?", id).Pluck("id", &answerIDs).Error; err != nil {
			return err
		}
		if len(answerIDs) > 0 {
			if err := tx.Where("answer_id IN ?", answerIDs).Delete(&model.AnswerVote{}).Error; err != nil {
				return err
			}
			if err := tx.Where("question_id = ?", id).Delete(&model.Answer{}).Error; err != nil {
				return err
			}
		}
		if err := tx.Where("question_id = ?", id).Delete(&model.QuestionVote{}).Error; err != nil {
			return err
		}
		return tx.Delete(&model.Question{}, id).Error
	})
}

// ToggleLike 切换点赞成员行并在同一事务内重算 like_count。
// 返回切换后的点赞状态与最新计数。
func (r *QuestionRepository) ToggleLike(userID, questionID uint) (bool, int64, error) {
	var liked bool
	var count int64

	err := r.DB.Transaction(func(tx *gorm.DB) error {
		var vote model.QuestionVote
		result := tx.Where("user_id = ? AND question_id = ?", userID, questionID).First(&vote)

		switch {
		case result.Error == nil:
			// 取消点赞（物理删除成员行）
			if err := tx.Delete(&vote).Error; err != nil {
				return err
			}
			liked = false
		case errors.Is(result.Error, gorm.ErrRecordNotFound):
			if err := tx.Create(&model.QuestionVote{UserID: userID, QuestionID: questionID}).Error; err != nil {
				return err
			}
			liked = true
		default:
			return result.Error
		}

		// 对账：从成员行重算计数并无条件覆盖聚合字段
		if err := tx.Model(&model.QuestionVote{}).Where("question_id = ?", questionID).Count(&count).Error; err != nil {
			return err
		}
		return tx.Model(&model.Question{}).Where("id = ?", questionID).Update("like_count", count).Error
	})

	return liked, count, err
}

func (r *QuestionRepository) HasLiked(userID, questionID uint) (bool, error) {
	var count int64
	err := r.DB.Model(&model.QuestionVote{}).
		Where("user_id = ? AND question_id = ?", userID, questionID).
		Count(&count).Error
	return count > 0, err
}

func (r *QuestionRepository) CountVotes(questionID uint) (int64, error) {
	var count int64
	err := r.DB.Model(&model.QuestionVote{}).Where("question_id = ?", questionID).Count(&count).Error
	return count, err
}

func (r *QuestionRepository) CountByUser(userID uint) (int64, error) {
	var count int64
	err := r.DB.Model(&model.Question{}).Where("user_id = ?", userID).Count(&count).Error
	return count, err
}

// CountLikesReceived 该用户提出的所有问题收到的点赞总数
func (r *QuestionRepository) CountLikesReceived(userID uint) (int64, error) {
	var count int64
	err := r.DB.Model(&model.QuestionVote{}).
		Joins("JOIN questions ON questions.id = question_votes.question_id").
		Where("questions.user_id = ?", userID).
		Count(&count).Error
	return count, err
}

// FindLikedByUser 用户点过赞的问题（个人中心用）
func (r *QuestionRepository) FindLikedByUser(userID uint) ([]model.Question, error) {
	var questions []model.Question
	err := r.DB.
		Joins("JOIN question_votes ON question_votes.question_id = questions.id").
		Where("question_votes.user_id = ?", userID).
		Order("question_votes.created_at DESC").
		Find(&questions).Error
	return questions, err
}

package repository

import (
	"errors"

	"eduforum_backend/internal/model"

	"gorm.io/gorm"
)

type AnswerRepository struct {
	DB *gorm.DB
}

func NewAnswerRepository(db *gorm.DB) *AnswerRepository {
	return &AnswerRepository{DB: db}
}

func (r *AnswerRepository) Create(answer *model.Answer) error {
	return r.DB.Create(answer).Error
}

func (r *AnswerRepository) FindByID(id uint) (*model.Answer, error) {
	var answer model.Answer
	err := r.DB.Preload("User").First(&answer, id).Error
	if err != nil {
		return nil, err
	}
	return &answer, nil
}

// FindByQuestionID 按 like_count 降序返回，平局保持存储默认顺序
func (r *AnswerRepository) FindByQuestionID(questionID uint) ([]model.Answer, error) {
	var answers []model.Answer
	err := r.DB.Preload("User").
		Where("question_id = ?", questionID).
		Order("like_count DESC").
		Find(&answers).Error
	return answers, err
}

func (r *AnswerRepository) FindByUserID(userID uint) ([]model.Answer, error) {
	var answers []model.Answer
	err := r.DB.Where("user_id = ?", userID).Order("created_at DESC").Find(&answers).Error
	return answers, err
}

func (r *AnswerRepository) Update(answer *model.Answer) error {
	return r.DB.Save(answer).Error
}

func (r *AnswerRepository) Delete(id uint) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("answer_id = ?", id).Delete(&model.AnswerVote{}).Error; err != nil {
			return err
		}
		return tx.Delete(&model.Answer{}, id).Error
	})
}

// ToggleVote 三态切换：无投票则插入，同类型则删除（取消），
// 异类型则原地改 vote_type（绝不允许同一 (user, answer) 出现两行）。
// 切换后在同一事务内按 vote_type 分组重算并覆盖两个聚合计数。
func (r *AnswerRepository) ToggleVote(userID, answerID uint, voteType int) (int64, int64, error) {
	var likes, dislikes int64

	err := r.DB.Transaction(func(tx *gorm.DB) error {
		var vote model.AnswerVote
		result := tx.Where("user_id = ? AND answer_id = ?", userID, answerID).First(&vote)

		switch {
		case errors.Is(result.Error, gorm.ErrRecordNotFound):
			if err := tx.Create(&model.AnswerVote{UserID: userID, AnswerID: answerID, VoteType: voteType}).Error; err != nil {
				return err
			}
		case result.Error != nil:
			return result.Error
		case vote.VoteType == voteType:
			// 点同一个按钮 = 取消投票
			if err := tx.Delete(&vote).Error; err != nil {
				return err
			}
		default:
			// 赞踩互换
			if err := tx.Model(&vote).Update("vote_type", voteType).Error; err != nil {
				return err
			}
		}

		if err := tx.Model(&model.AnswerVote{}).
			Where("answer_id = ? AND vote_type = ?", answerID, model.VoteLike).
			Count(&likes).Error; err != nil {
			return err
		}
		if err := tx.Model(&model.AnswerVote{}).
			Where("answer_id = ? AND vote_type = ?", answerID, model.VoteDislike).
			Count(&dislikes).Error; err != nil {
			return err
		}

		return tx.Model(&model.Answer{}).Where("id = ?", answerID).
			Updates(map[string]interface{}{"like_count": likes, "dislike_count": dislikes}).Error
	})

	return likes, dislikes, err
}

func (r *AnswerRepository) FindVote(userID, answerID uint) (*model.AnswerVote, error) {
	var vote model.AnswerVote
	err := r.DB.Where("user_id = ? AND answer_id = ?", userID, answerID).First(&vote).Error
	if err != nil {
		return nil, err
	}
	return &vote, nil
}

func (r *AnswerRepository) CountVotes(answerID uint, voteType int) (int64, error) {
	var count int64
	err := r.DB.Model(&model.AnswerVote{}).
		Where("answer_id = ? AND vote_type = ?", answerID, voteType).
		Count(&count).Error
	return count, err
}

func (r *AnswerRepository) CountByUser(userID uint) (int64, error) {
	var count int64
	err := r.DB.Model(&model.Answer{}).Where("user_id = ?", userID).Count(&count).Error
	return count, err
}

// CountLikesReceived 该用户的所有回答收到的点赞总数（不含点踩）
func (r *AnswerRepository) CountLikesReceived(userID uint) (int64, error) {
	var count int64
	err := r.DB.Model(&model.AnswerVote{}).
		Joins("JOIN answers ON answers.id = answer_votes.answer_id").
		Where("answers.user_id = ? AND answer_votes.vote_type = ?", userID, model.VoteLike).
		Count(&count).Error
	return count, err
}

// Verify 只置位，不提供撤销
func (r *AnswerRepository) Verify(answerID uint) error {
	return r.DB.Model(&model.Answer{}).Where("id = ?", answerID).Update("is_verified", true).Error
}

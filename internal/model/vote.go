package model

import "time"

// 投票类型：+1 点赞，-1 点踩
const (
	VoteLike    = 1
	VoteDislike = -1
)

// QuestionVote 成员行：行存在即表示该用户赞了该问题。
// 物理删除（无 DeletedAt），保证计数来源唯一。
type QuestionVote struct {
	ID         uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
	UserID     uint      `gorm:"uniqueIndex:idx_user_question;not null" json:"user_id"`
	QuestionID uint      `gorm:"uniqueIndex:idx_user_question;not null" json:"question_id"`
}

func (QuestionVote) TableName() string {
	return "question_votes"
}

// AnswerVote 每个 (user, answer) 至多一行，VoteType 区分赞/踩
type AnswerVote struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	UserID    uint      `gorm:"uniqueIndex:idx_user_answer;not null" json:"user_id"`
	AnswerID  uint      `gorm:"uniqueIndex:idx_user_answer;not null" json:"answer_id"`
	VoteType  int       `gorm:"not null" json:"vote_type"`
}

func (AnswerVote) TableName() string {
	return "answer_votes"
}

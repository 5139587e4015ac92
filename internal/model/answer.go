package model

type Answer struct {
	BaseModel
	QuestionID   uint   `gorm:"index;not null" json:"question_id"`
	UserID       uint   `gorm:"index;not null" json:"user_id"`
	User         User   `gorm:"foreignKey:UserID" json:"user"`
	AnswerText   string `gorm:"type:text;not null" json:"answer_text"`
	LikeCount    int    `gorm:"default:0" json:"like_count"`
	DislikeCount int    `gorm:"default:0" json:"dislike_count"`
	IsVerified   bool   `gorm:"default:false" json:"is_verified"` // 仅教师可置为 true，不可撤销
}

func (Answer) TableName() string {
	return "answers"
}

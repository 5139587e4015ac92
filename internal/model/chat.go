package model

import "time"

// ChatExchange 存储 AI 助手的问答记录，支持多轮对话
type ChatExchange struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID    uint      `gorm:"index" json:"user_id"`
	SessionID string    `gorm:"size:50;index" json:"session_id"` // 会话 ID，用于切断历史边界
	Question  string    `gorm:"type:text;not null" json:"question"`
	Answer    string    `gorm:"type:text;not null" json:"answer"`
	CreatedAt time.Time `gorm:"index" json:"created_at"`
}

func (ChatExchange) TableName() string {
	return "chat_exchanges"
}

package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"eduforum_backend/internal/model"

	"github.com/go-redis/redis/v8"
	"gorm.io/gorm"
)

// 近期对话窗口在 Redis 中的缓存时长
const chatCacheTTL = 30 * time.Minute

type ChatRepository struct {
	DB  *gorm.DB
	RDB *redis.Client
}

func NewChatRepository(db *gorm.DB, rdb *redis.Client) *ChatRepository {
	return &ChatRepository{DB: db, RDB: rdb}
}

func chatCacheKey(userID uint, sessionID string) string {
	return fmt.Sprintf("chat:history:%d:%s", userID, sessionID)
}

func (r *ChatRepository) CreateExchange(exchange *model.ChatExchange) error {
	if err := r.DB.Create(exchange).Error; err != nil {
		return err
	}
	// 写入后让缓存失效，下次读取重建
	if r.RDB != nil {
		r.RDB.Del(context.Background(), chatCacheKey(exchange.UserID, exchange.SessionID))
	}
	return nil
}

// RecentExchanges 返回会话内最近 limit 轮问答，按时间正序
func (r *ChatRepository) RecentExchanges(userID uint, sessionID string, limit int) ([]model.ChatExchange, error) {
	ctx := context.Background()
	key := chatCacheKey(userID, sessionID)

	if r.RDB != nil {
		if cached, err := r.RDB.Get(ctx, key).Result(); err == nil {
			var exchanges []model.ChatExchange
			if err := json.Unmarshal([]byte(cached), &exchanges); err == nil {
				return exchanges, nil
			}
		}
	}

	var exchanges []model.ChatExchange
	err := r.DB.Where("user_id = ? AND session_id = ?", userID, sessionID).
		Order("created_at DESC").
		Limit(limit).
		Find(&exchanges).Error
	if err != nil {
		return nil, err
	}

	// 反转为时间正序
	for i, j := 0, len(exchanges)-1; i < j; i, j = i+1, j-1 {
		exchanges[i], exchanges[j] = exchanges[j], exchanges[i]
	}

	if r.RDB != nil {
		if data, err := json.Marshal(exchanges); err == nil {
			r.RDB.Set(ctx, key, data, chatCacheTTL)
		}
	}

	return exchanges, nil
}

func (r *ChatRepository) SessionsByUser(userID uint) ([]string, error) {
	var sessions []string
	err := r.DB.Model(&model.ChatExchange{}).
		Where("user_id = ?", userID).
		Distinct("session_id").
		Pluck("session_id", &sessions).Error
	return sessions, err
}

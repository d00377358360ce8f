package model

import "time"

type ChatMessage struct {
	ID         uint64    `gorm:"primaryKey;autoIncrement"`
	FromUserID uint64    `gorm:"column:from_user_id;index;not null"`
	ToUserID   uint64    `gorm:"column:to_user_id;index;not null"`
	Body       string    `gorm:"column:message;type:text;not null"`
	CreatedAt  time.Time `gorm:"column:timestamp;autoCreateTime"`
}

func (ChatMessage) TableName() string {
	return "chat_messages"
}

package model

import "time"

// Interaction 是观看/点赞/点踩的审计记录，由消费者进程落库，不参与计数
type Interaction struct {
	BaseModel
	// EventID唯一索引，消息重复投递时靠它幂等
	EventID    string  `gorm:"size:36;uniqueIndex;not null"`
	VideoID    uint64  `gorm:"not null;index"`
	UserID     *uint64 `gorm:"index"` // 匿名观看时为nil
	Action     string  `gorm:"size:16;not null"`
	OccurredAt time.Time
}

func (Interaction) TableName() string {
	return "interactions"
}

package model

type User struct {
	BaseModel        // 包括 ID, CreatedAt, UpdatedAt
	Username  string `gorm:"size:20;unique;not null"`
	Email     string `gorm:"size:255;unique;not null"` // 统一小写存储
	Password  string `gorm:"not null" json:"-"`        // bcrypt哈希，永远不序列化
	Avatar    string

	// 用户拥有的频道，由channels.owner_id反推，不单独存一份id列表
	Channels []Channel `gorm:"foreignKey:OwnerID"`
}

// ChannelIDs 返回用户名下的频道ID，需要先Preload("Channels")
func (u *User) ChannelIDs() []uint64 {
	ids := make([]uint64, 0, len(u.Channels))
	for _, ch := range u.Channels {
		ids = append(ids, ch.ID)
	}
	return ids
}

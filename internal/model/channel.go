package model

const DefaultChannelBanner = "https://via.placeholder.com/1280x360"

// Channel 一个用户只能有一个频道，owner_id上的唯一索引由数据库兜底
type Channel struct {
	BaseModel
	Name        string `gorm:"not null"`
	OwnerID     uint64 `gorm:"not null;uniqueIndex"`
	Description string `gorm:"type:text"`
	Banner      string
	Subscribers uint64 `gorm:"default:0"`

	Owner  User    `gorm:"foreignKey:OwnerID;references:ID"`
	Videos []Video `gorm:"foreignKey:ChannelID"`
}

func (Channel) TableName() string {
	return "channels"
}

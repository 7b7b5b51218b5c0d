package model

// Comment 平铺评论，没有楼中楼；CreatedAt就是评论时间
type Comment struct {
	BaseModel
	VideoID  uint64 `gorm:"not null;index"` // index索引，加速按视频取评论
	AuthorID uint64 `gorm:"not null;index"`
	// TEXT是MySQL中的一种文本类型，最大长度65,535个字符
	Text string `gorm:"type:text;not null"`

	Author User `gorm:"foreignKey:AuthorID"`
}

func (Comment) TableName() string {
	return "comments"
}

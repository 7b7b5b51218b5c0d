package model

import "time"

type Category string

const (
	CategoryAll           Category = "All"
	CategoryMusic         Category = "Music"
	CategoryGaming        Category = "Gaming"
	CategoryEducation     Category = "Education"
	CategoryEntertainment Category = "Entertainment"
	CategorySports        Category = "Sports"
	CategoryTechnology    Category = "Technology"
	CategoryNews          Category = "News"
)

var Categories = []Category{
	CategoryAll, CategoryMusic, CategoryGaming, CategoryEducation,
	CategoryEntertainment, CategorySports, CategoryTechnology, CategoryNews,
}

func (c Category) Valid() bool {
	for _, v := range Categories {
		if c == v {
			return true
		}
	}
	return false
}

// Video 只保存外部播放地址（比如嵌入链接），本系统不存储也不处理视频文件
type Video struct {
	BaseModel
	Title        string `gorm:"not null"`
	Description  string `gorm:"type:text"`
	VideoURL     string `gorm:"not null"` // 创建后不可修改
	ThumbnailURL string `gorm:"not null"`
	ChannelID    uint64 `gorm:"not null;index"` // 创建后不可修改
	UploaderID   uint64 `gorm:"not null;index"`

	// 三个计数器互相独立，只增不减，不按用户去重
	Views    uint64 `gorm:"default:0"`
	Likes    uint64 `gorm:"default:0"`
	Dislikes uint64 `gorm:"default:0"`

	Category   Category  `gorm:"size:32;not null;default:All;index"`
	UploadDate time.Time `gorm:"index"`

	Channel  Channel `gorm:"foreignKey:ChannelID;references:ID"`
	Uploader User    `gorm:"foreignKey:UploaderID;references:ID"`
}

func (Video) TableName() string {
	return "videos"
}

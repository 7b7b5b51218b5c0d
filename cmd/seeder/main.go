// cmd/seeder/main.go

package main

import (
	"flag"
	"fmt"
	"log"
	"math/rand"
	"strings"
	"time"

	"VidHub/internal/model"
	"VidHub/internal/service"
	"VidHub/pkg/config"
	"VidHub/pkg/database"

	"github.com/go-faker/faker/v4"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const samplePassword = "password123"

var sampleUsers = []model.User{
	{Username: "JohnDoe", Email: "john@example.com", Avatar: "https://ui-avatars.com/api/?name=John+Doe&background=random"},
	{Username: "JaneSmith", Email: "jane@example.com", Avatar: "https://ui-avatars.com/api/?name=Jane+Smith&background=random"},
	{Username: "TechGuru", Email: "tech@example.com", Avatar: "https://ui-avatars.com/api/?name=Tech+Guru&background=random"},
}

var sampleChannels = []model.Channel{
	{Name: "Code with John", Description: "Coding tutorials and tech reviews by John Doe.", Banner: "https://via.placeholder.com/1280x360/FF0000/FFFFFF?text=Code+with+John", Subscribers: 5200},
	{Name: "Jane's Cooking Channel", Description: "Delicious recipes and cooking tips.", Banner: "https://via.placeholder.com/1280x360/00FF00/FFFFFF?text=Jane+Cooking", Subscribers: 3200},
	{Name: "Tech Reviews", Description: "Latest tech reviews and gadget unboxings.", Banner: "https://via.placeholder.com/1280x360/0000FF/FFFFFF?text=Tech+Reviews", Subscribers: 15000},
}

const sampleVideoURL = "https://www.youtube.com/embed/dQw4w9WgXcQ"

var sampleVideos = []model.Video{
	{Title: "Learn React in 30 Minutes", Description: "A quick tutorial to get started with React. We cover components, props, state, and hooks.", ThumbnailURL: "https://via.placeholder.com/640x360/FF0000/FFFFFF?text=React+Tutorial", Category: model.CategoryEducation, Views: 15200, Likes: 1023, Dislikes: 45},
	{Title: "JavaScript Basics for Beginners", Description: "Learn the fundamentals of JavaScript programming.", ThumbnailURL: "https://via.placeholder.com/640x360/FFFF00/000000?text=JavaScript+Basics", Category: model.CategoryEducation, Views: 8500, Likes: 450, Dislikes: 12},
	{Title: "Top 10 Gaming Moments 2024", Description: "The most epic gaming moments from 2024.", ThumbnailURL: "https://via.placeholder.com/640x360/00FF00/FFFFFF?text=Gaming+Moments", Category: model.CategoryGaming, Views: 25000, Likes: 2100, Dislikes: 89},
	{Title: "Best Music Hits 2024", Description: "The top music hits of 2024.", ThumbnailURL: "https://via.placeholder.com/640x360/FF00FF/FFFFFF?text=Music+Hits", Category: model.CategoryMusic, Views: 45000, Likes: 3500, Dislikes: 120},
	{Title: "Latest Tech News", Description: "Stay updated with the latest technology news.", ThumbnailURL: "https://via.placeholder.com/640x360/0000FF/FFFFFF?text=Tech+News", Category: model.CategoryNews, Views: 12000, Likes: 890, Dislikes: 34},
	{Title: "Football Highlights", Description: "Best football moments from recent matches.", ThumbnailURL: "https://via.placeholder.com/640x360/FFA500/FFFFFF?text=Football", Category: model.CategorySports, Views: 18000, Likes: 1200, Dislikes: 56},
	{Title: "Comedy Special", Description: "Funny moments and comedy sketches.", ThumbnailURL: "https://via.placeholder.com/640x360/FF1493/FFFFFF?text=Comedy", Category: model.CategoryEntertainment, Views: 30000, Likes: 2500, Dislikes: 78},
	{Title: "AI Technology Explained", Description: "Understanding artificial intelligence and machine learning.", ThumbnailURL: "https://via.placeholder.com/640x360/800080/FFFFFF?text=AI+Tech", Category: model.CategoryTechnology, Views: 22000, Likes: 1800, Dislikes: 67},
}

var sampleComments = []model.Comment{
	{Text: "Great video! Very helpful.", BaseModel: model.BaseModel{CreatedAt: time.Date(2024, 9, 21, 8, 30, 0, 0, time.UTC)}},
	{Text: "Thanks for sharing this!", BaseModel: model.BaseModel{CreatedAt: time.Date(2024, 9, 21, 10, 15, 0, 0, time.UTC)}},
	{Text: "Amazing content! Keep it up!", BaseModel: model.BaseModel{CreatedAt: time.Date(2024, 9, 21, 12, 0, 0, 0, time.UTC)}},
}

func main() {
	extraUsers := flag.Int("extra-users", 20, "额外生成的faker用户数量（每人一个频道）")
	flag.Parse()

	fmt.Println("🚀 开始填充测试数据...")

	// --- 1. 连接数据库 ---
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("❌ 配置加载失败: %v", err)
	}
	db, err := database.OpenMySQL(cfg.MySQL.DSN())
	if err != nil {
		log.Fatalf("❌ 无法连接到数据库: %v", err)
	}
	fmt.Println("✅ 数据库连接成功!")

	// --- 2. 清理旧数据 ---
	// 注意：这将删除所有数据！
	fmt.Println("🧹 正在清理旧数据...")
	if err := db.Migrator().DropTable(&model.Interaction{}, &model.Comment{}, &model.Video{}, &model.Channel{}, &model.User{}); err != nil {
		log.Fatalf("❌ 删除旧表失败: %v", err)
	}
	if err := db.AutoMigrate(model.AllModels()...); err != nil {
		log.Fatalf("❌ 数据库迁移失败: %v", err)
	}
	fmt.Println("✅ 数据库迁移成功!")

	hashed, err := bcrypt.GenerateFromPassword([]byte(samplePassword), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("❌ 密码加密失败: %v", err)
	}

	if err := db.Transaction(func(tx *gorm.DB) error {
		return seed(tx, string(hashed), *extraUsers)
	}); err != nil {
		log.Fatalf("❌ 填充数据失败: %v", err)
	}

	fmt.Println("🎉🎉🎉 所有测试数据填充完毕! 🎉🎉🎉")
	fmt.Println("\n示例登录账号:")
	for _, u := range sampleUsers {
		fmt.Printf("Email: %s, Password: %s\n", u.Email, samplePassword)
	}
}

func seed(tx *gorm.DB, hashedPassword string, extraUsers int) error {
	// --- 3. 创建用户和频道，第i个用户拥有第i个频道 ---
	users := make([]model.User, len(sampleUsers))
	copy(users, sampleUsers)
	for i := range users {
		users[i].Password = hashedPassword
	}
	if err := tx.Create(&users).Error; err != nil {
		return err
	}
	fmt.Printf("✅ 成功创建 %d 个用户!\n", len(users))

	channels := make([]model.Channel, len(sampleChannels))
	copy(channels, sampleChannels)
	for i := range channels {
		channels[i].OwnerID = users[i].ID
	}
	if err := tx.Omit("Owner", "Videos").Create(&channels).Error; err != nil {
		return err
	}
	fmt.Printf("✅ 成功创建 %d 个频道!\n", len(channels))

	// --- 4. 创建视频，轮流分配给各个频道 ---
	videos := make([]model.Video, len(sampleVideos))
	copy(videos, sampleVideos)
	now := time.Now()
	for i := range videos {
		idx := i % len(channels)
		videos[i].VideoURL = sampleVideoURL
		videos[i].ChannelID = channels[idx].ID
		videos[i].UploaderID = users[idx].ID
		videos[i].UploadDate = now.Add(-time.Duration(i) * time.Hour)
	}
	if err := tx.Omit("Channel", "Uploader").Create(&videos).Error; err != nil {
		return err
	}
	fmt.Printf("✅ 成功创建 %d 个视频!\n", len(videos))

	// --- 5. 每个视频1-3条评论，作者随机 ---
	var comments []model.Comment
	for _, v := range videos {
		n := rand.Intn(len(sampleComments)) + 1
		for j := 0; j < n; j++ {
			c := sampleComments[j%len(sampleComments)]
			c.VideoID = v.ID
			c.AuthorID = users[rand.Intn(len(users))].ID
			comments = append(comments, c)
		}
	}
	if err := tx.Omit("Author").Create(&comments).Error; err != nil {
		return err
	}
	fmt.Printf("✅ 成功创建 %d 条评论!\n", len(comments))

	// --- 6. faker生成的额外用户，每人一个频道 ---
	for i := 0; i < extraUsers; i++ {
		username := fakeUsername(i)
		user := model.User{
			Username: username,
			Email:    strings.ToLower(fmt.Sprintf("%s.%d@example.com", username, i)),
			Password: hashedPassword,
			Avatar:   service.DefaultAvatar(username),
		}
		if err := tx.Omit("Channels").Create(&user).Error; err != nil {
			return err
		}
		channel := model.Channel{
			Name:        faker.Name() + "'s Channel",
			OwnerID:     user.ID,
			Description: faker.Sentence(),
			Banner:      model.DefaultChannelBanner,
			Subscribers: uint64(rand.Intn(10000)),
		}
		if err := tx.Omit("Owner", "Videos").Create(&channel).Error; err != nil {
			return err
		}
	}
	fmt.Printf("✅ 成功创建 %d 个额外用户和频道!\n", extraUsers)
	return nil
}

// fakeUsername 用faker生成用户名，截断并加上序号保证3-20个字符且不重复
func fakeUsername(i int) string {
	suffix := fmt.Sprintf("%d", i)
	name := faker.Username()
	if limit := 20 - len(suffix); len(name) > limit {
		name = name[:limit]
	}
	if len(name) < 2 {
		name = "user"
	}
	return name + suffix
}

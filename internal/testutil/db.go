// Package testutil 给各个包的测试提供内存SQLite数据库和样例数据
package testutil

import (
	"fmt"
	"testing"
	"time"

	"VidHub/internal/model"

	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewDB 每次调用都得到一个独立的内存库，表结构已迁移
func NewDB(t testing.TB) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_foreign_keys=1", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("sqlite handle: %v", err)
	}
	// 内存库只活在连接里，单连接也避免了shared cache的表锁
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	if err := db.AutoMigrate(model.AllModels()...); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func MustCreateUser(t testing.TB, db *gorm.DB, username string) *model.User {
	t.Helper()
	u := &model.User{
		Username: username,
		Email:    username + "@example.com",
		Password: "hashed",
		Avatar:   "https://ui-avatars.com/api/?name=" + username,
	}
	if err := db.Create(u).Error; err != nil {
		t.Fatalf("create user: %v", err)
	}
	return u
}

func MustCreateChannel(t testing.TB, db *gorm.DB, owner *model.User, name string) *model.Channel {
	t.Helper()
	ch := &model.Channel{Name: name, OwnerID: owner.ID, Banner: model.DefaultChannelBanner}
	if err := db.Create(ch).Error; err != nil {
		t.Fatalf("create channel: %v", err)
	}
	return ch
}

func MustCreateVideo(t testing.TB, db *gorm.DB, ch *model.Channel, title string, category model.Category) *model.Video {
	t.Helper()
	v := &model.Video{
		Title:        title,
		VideoURL:     "https://www.youtube.com/embed/dQw4w9WgXcQ",
		ThumbnailURL: "https://via.placeholder.com/640x360",
		ChannelID:    ch.ID,
		UploaderID:   ch.OwnerID,
		Category:     category,
		UploadDate:   time.Now(),
	}
	if err := db.Create(v).Error; err != nil {
		t.Fatalf("create video: %v", err)
	}
	return v
}

func MustCreateComment(t testing.TB, db *gorm.DB, v *model.Video, author *model.User, text string, at time.Time) *model.Comment {
	t.Helper()
	c := &model.Comment{VideoID: v.ID, AuthorID: author.ID, Text: text}
	c.CreatedAt = at
	if err := db.Create(c).Error; err != nil {
		t.Fatalf("create comment: %v", err)
	}
	return c
}

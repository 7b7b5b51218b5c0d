package repository

import (
	"context"
	"testing"
	"time"

	"VidHub/internal/model"
	"VidHub/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestChannelRepository_OwnerIsUnique(t *testing.T) {
	db := testutil.NewDB(t)
	ctx := context.Background()
	user := testutil.MustCreateUser(t, db, "JohnDoe")
	repo := NewChannelRepository(db)

	require.NoError(t, repo.Create(ctx, &model.Channel{Name: "first", OwnerID: user.ID}))
	err := repo.Create(ctx, &model.Channel{Name: "second", OwnerID: user.ID})
	assert.ErrorIs(t, err, gorm.ErrDuplicatedKey)

	var count int64
	require.NoError(t, db.Model(&model.Channel{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestChannelRepository_FindDetail(t *testing.T) {
	db := testutil.NewDB(t)
	ctx := context.Background()
	user := testutil.MustCreateUser(t, db, "TechGuru")
	ch := testutil.MustCreateChannel(t, db, user, "Tech Reviews")
	older := testutil.MustCreateVideo(t, db, ch, "older", model.CategoryTechnology)
	require.NoError(t, db.Model(older).Update("upload_date", time.Now().Add(-time.Hour)).Error)
	testutil.MustCreateVideo(t, db, ch, "newer", model.CategoryTechnology)
	repo := NewChannelRepository(db)

	byID, err := repo.FindDetailByID(ctx, ch.ID)
	require.NoError(t, err)
	assert.Equal(t, "TechGuru", byID.Owner.Username)
	require.Len(t, byID.Videos, 2)
	assert.Equal(t, "newer", byID.Videos[0].Title)
	assert.Equal(t, "TechGuru", byID.Videos[0].Uploader.Username)

	byOwner, err := repo.FindDetailByOwnerID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, ch.ID, byOwner.ID)

	_, err = repo.FindDetailByOwnerID(ctx, user.ID+1)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestChannelRepository_UpdateProfile(t *testing.T) {
	db := testutil.NewDB(t)
	ctx := context.Background()
	user := testutil.MustCreateUser(t, db, "JaneSmith")
	ch := testutil.MustCreateChannel(t, db, user, "Jane")
	repo := NewChannelRepository(db)

	ch.Name = "Jane's Kitchen"
	ch.Description = ""
	ch.Banner = "https://example.com/banner.png"
	ch.Subscribers = 999 // 不可变字段，不应被写入
	require.NoError(t, repo.UpdateProfile(ctx, ch))

	got, err := repo.FindByID(ctx, ch.ID)
	require.NoError(t, err)
	assert.Equal(t, "Jane's Kitchen", got.Name)
	assert.Equal(t, "https://example.com/banner.png", got.Banner)
	assert.Equal(t, uint64(0), got.Subscribers)
}

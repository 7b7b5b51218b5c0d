package repository

import (
	"context"
	"fmt"
	"testing"
	"time"

	"VidHub/internal/model"
	"VidHub/internal/testutil"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func titles(videos []model.Video) []string {
	out := make([]string, 0, len(videos))
	for _, v := range videos {
		out = append(out, v.Title)
	}
	return out
}

func TestVideoRepository_ListFilters(t *testing.T) {
	db := testutil.NewDB(t)
	ctx := context.Background()
	user := testutil.MustCreateUser(t, db, "JohnDoe")
	ch := testutil.MustCreateChannel(t, db, user, "Code with John")
	testutil.MustCreateVideo(t, db, ch, "Learn React in 30 Minutes", model.CategoryEducation)
	testutil.MustCreateVideo(t, db, ch, "JavaScript Basics", model.CategoryEducation)
	testutil.MustCreateVideo(t, db, ch, "Top 10 Gaming Moments", model.CategoryGaming)
	testutil.MustCreateVideo(t, db, ch, "100%_done", model.CategoryNews)

	repo := NewVideoRepository(db, nil)

	tests := []struct {
		name   string
		filter VideoFilter
		want   []string
	}{
		{"search", VideoFilter{Search: "React"}, []string{"Learn React in 30 Minutes"}},
		{"search ignores case", VideoFilter{Search: "react"}, []string{"Learn React in 30 Minutes"}},
		{"category", VideoFilter{Category: model.CategoryGaming}, []string{"Top 10 Gaming Moments"}},
		{"category all", VideoFilter{Category: model.CategoryAll}, []string{"100%_done", "Top 10 Gaming Moments", "JavaScript Basics", "Learn React in 30 Minutes"}},
		{"no filter", VideoFilter{}, []string{"100%_done", "Top 10 Gaming Moments", "JavaScript Basics", "Learn React in 30 Minutes"}},
		{"search and category", VideoFilter{Search: "basics", Category: model.CategoryGaming}, []string{}},
		{"wildcards are literal", VideoFilter{Search: "%_"}, []string{"100%_done"}},
		{"underscore is literal", VideoFilter{Search: "t_p"}, []string{}},
		{"unknown category", VideoFilter{Category: "Cooking"}, []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := repo.List(ctx, tt.filter)
			require.NoError(t, err)
			assert.Equal(t, tt.want, titles(got))
		})
	}
}

func TestVideoRepository_ListPreloads(t *testing.T) {
	db := testutil.NewDB(t)
	user := testutil.MustCreateUser(t, db, "JaneSmith")
	ch := testutil.MustCreateChannel(t, db, user, "Jane's Cooking Channel")
	testutil.MustCreateVideo(t, db, ch, "Pasta", model.CategoryEntertainment)

	got, err := NewVideoRepository(db, nil).List(context.Background(), VideoFilter{})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Jane's Cooking Channel", got[0].Channel.Name)
	assert.Equal(t, "JaneSmith", got[0].Uploader.Username)
}

func TestVideoRepository_IncrementCounter(t *testing.T) {
	db := testutil.NewDB(t)
	ctx := context.Background()
	user := testutil.MustCreateUser(t, db, "TechGuru")
	ch := testutil.MustCreateChannel(t, db, user, "Tech Reviews")
	v := testutil.MustCreateVideo(t, db, ch, "AI Technology Explained", model.CategoryTechnology)
	repo := NewVideoRepository(db, nil)

	for i := 1; i <= 3; i++ {
		n, err := repo.IncrementCounter(ctx, v.ID, CounterLikes)
		require.NoError(t, err)
		assert.Equal(t, uint64(i), n)
	}
	n, err := repo.IncrementCounter(ctx, v.ID, CounterDislikes)
	require.NoError(t, err)
	assert.Equal(t, uint64(1), n)

	got, err := repo.FindByID(ctx, v.ID)
	require.NoError(t, err)
	assert.Equal(t, uint64(3), got.Likes)
	assert.Equal(t, uint64(1), got.Dislikes)
	assert.Equal(t, uint64(0), got.Views)

	_, err = repo.IncrementCounter(ctx, v.ID+100, CounterViews)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	_, err = repo.IncrementCounter(ctx, v.ID, "title")
	assert.Error(t, err)
}

func TestVideoRepository_CacheDisabledWithoutRedis(t *testing.T) {
	repo := NewVideoRepository(testutil.NewDB(t), nil)
	ctx := context.Background()

	require.NoError(t, repo.SetVideoCache(ctx, &model.Video{BaseModel: model.BaseModel{ID: 1}}))
	got, err := repo.GetVideoCache(ctx, 1)
	assert.NoError(t, err)
	assert.Nil(t, got)
	assert.NoError(t, repo.DeleteVideoCache(ctx, 1))
}

func newMiniRedis(t *testing.T) (*miniredis.Miniredis, *redis.Client) {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })
	return mr, rdb
}

func TestVideoRepository_CacheRoundTrip(t *testing.T) {
	db := testutil.NewDB(t)
	ctx := context.Background()
	mr, rdb := newMiniRedis(t)
	user := testutil.MustCreateUser(t, db, "JohnDoe")
	ch := testutil.MustCreateChannel(t, db, user, "Code with John")
	v := testutil.MustCreateVideo(t, db, ch, "Learn Go", model.CategoryEducation)
	repo := NewVideoRepository(db, rdb)

	miss, err := repo.GetVideoCache(ctx, v.ID)
	require.NoError(t, err)
	assert.Nil(t, miss)

	loaded, err := repo.FindByID(ctx, v.ID)
	require.NoError(t, err)
	require.NoError(t, repo.SetVideoCache(ctx, loaded))

	key := fmt.Sprintf("vidhub:video:%d", v.ID)
	require.True(t, mr.Exists(key))
	ttl := mr.TTL(key)
	assert.GreaterOrEqual(t, ttl, 5*time.Minute)
	assert.Less(t, ttl, 6*time.Minute)

	hit, err := repo.GetVideoCache(ctx, v.ID)
	require.NoError(t, err)
	require.NotNil(t, hit)
	assert.Equal(t, v.ID, hit.ID)
	assert.Equal(t, "Learn Go", hit.Title)
	assert.Equal(t, ch.ID, hit.ChannelID)
	assert.Equal(t, "JohnDoe", hit.Uploader.Username)

	require.NoError(t, repo.DeleteVideoCache(ctx, v.ID))
	assert.False(t, mr.Exists(key))

	// 事务内的仓库不碰Redis
	require.NoError(t, repo.WithTx(db).SetVideoCache(ctx, loaded))
	assert.False(t, mr.Exists(key))
}

func TestVideoRepository_CacheErrorsSurface(t *testing.T) {
	db := testutil.NewDB(t)
	ctx := context.Background()
	mr, rdb := newMiniRedis(t)
	repo := NewVideoRepository(db, rdb)

	mr.Set("vidhub:video:1", "{broken")
	_, err := repo.GetVideoCache(ctx, 1)
	assert.Error(t, err)

	mr.Close()
	_, err = repo.GetVideoCache(ctx, 1)
	assert.Error(t, err)
	assert.Error(t, repo.DeleteVideoCache(ctx, 1))
}

func TestVideoRepository_UpdateDetailsCanClearDescription(t *testing.T) {
	db := testutil.NewDB(t)
	ctx := context.Background()
	user := testutil.MustCreateUser(t, db, "JohnDoe")
	ch := testutil.MustCreateChannel(t, db, user, "Code with John")
	v := testutil.MustCreateVideo(t, db, ch, "Old", model.CategoryAll)
	require.NoError(t, db.Model(v).Update("description", "something").Error)
	repo := NewVideoRepository(db, nil)

	v.Title = "New"
	v.Description = ""
	v.Category = model.CategoryMusic
	require.NoError(t, repo.UpdateDetails(ctx, v))

	got, err := repo.FindByID(ctx, v.ID)
	require.NoError(t, err)
	assert.Equal(t, "New", got.Title)
	assert.Empty(t, got.Description)
	assert.Equal(t, model.CategoryMusic, got.Category)
	assert.Equal(t, v.VideoURL, got.VideoURL)
}

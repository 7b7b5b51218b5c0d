package service

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"VidHub/internal/data"
	"VidHub/internal/event"
	"VidHub/internal/repository"
	"VidHub/internal/testutil"
	"VidHub/pkg/apperr"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

// recordingPublisher 记录所有投递的事件，fail为true时模拟MQ不可用
type recordingPublisher struct {
	mu     sync.Mutex
	events []event.InteractionEvent
	fail   bool
}

func (p *recordingPublisher) Publish(_ context.Context, evt event.InteractionEvent) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.fail {
		return errors.New("broker unavailable")
	}
	p.events = append(p.events, evt)
	return nil
}

func (p *recordingPublisher) actions() []event.Action {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]event.Action, 0, len(p.events))
	for _, e := range p.events {
		out = append(out, e.Action)
	}
	return out
}

type fixture struct {
	db        *gorm.DB
	users     UserService
	channels  ChannelService
	videos    VideoService
	comments  CommentService
	publisher *recordingPublisher
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	return newFixtureWithCache(t, nil)
}

// newCachedFixture 视频仓库接上miniredis，测试缓存的读写和失效
func newCachedFixture(t *testing.T) (*fixture, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })
	return newFixtureWithCache(t, rdb), mr
}

func newFixtureWithCache(t *testing.T, rdb *redis.Client) *fixture {
	t.Helper()
	db := testutil.NewDB(t)
	userRepo := repository.NewUserRepository(db)
	channelRepo := repository.NewChannelRepository(db)
	videoRepo := repository.NewVideoRepository(db, rdb)
	commentRepo := repository.NewCommentRepository(db)
	uow := data.NewUnitOfWork(db, userRepo, channelRepo, videoRepo, commentRepo)
	pub := &recordingPublisher{}

	videos := NewVideoService(videoRepo, uow, pub)
	return &fixture{
		db:        db,
		users:     NewUserService(userRepo, "test-secret", time.Hour),
		channels:  NewChannelService(channelRepo, uow),
		videos:    videos,
		comments:  NewCommentService(commentRepo, videos),
		publisher: pub,
	}
}

func assertKind(t *testing.T, err error, kind apperr.Kind) {
	t.Helper()
	if assert.Error(t, err) {
		assert.Equal(t, kind, apperr.KindOf(err), "error: %v", err)
	}
}

func strPtr(s string) *string { return &s }

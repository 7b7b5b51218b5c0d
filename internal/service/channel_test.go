package service

import (
	"context"
	"testing"

	"VidHub/internal/model"
	"VidHub/internal/repository"
	"VidHub/internal/testutil"
	"VidHub/pkg/apperr"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChannelService_CreateChannel(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	owner := testutil.MustCreateUser(t, f.db, "JohnDoe")

	ch, err := f.channels.CreateChannel(ctx, owner.ID, CreateChannelInput{Name: "  Code with John  "})
	require.NoError(t, err)
	assert.Equal(t, "Code with John", ch.Name)
	assert.Equal(t, owner.ID, ch.OwnerID)
	assert.Equal(t, "JohnDoe", ch.Owner.Username)
	assert.Empty(t, ch.Description)
	assert.Equal(t, model.DefaultChannelBanner, ch.Banner)

	user, err := repository.NewUserRepository(f.db).FindByID(ctx, owner.ID)
	require.NoError(t, err)
	assert.Equal(t, []uint64{ch.ID}, user.ChannelIDs())
}

func TestChannelService_CreateChannelOncePerOwner(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	owner := testutil.MustCreateUser(t, f.db, "JohnDoe")

	_, err := f.channels.CreateChannel(ctx, owner.ID, CreateChannelInput{Name: "first"})
	require.NoError(t, err)

	_, err = f.channels.CreateChannel(ctx, owner.ID, CreateChannelInput{Name: "second"})
	assertKind(t, err, apperr.KindValidation)

	var count int64
	require.NoError(t, f.db.Model(&model.Channel{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestChannelService_CreateChannelValidation(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	owner := testutil.MustCreateUser(t, f.db, "JohnDoe")

	_, err := f.channels.CreateChannel(ctx, owner.ID, CreateChannelInput{Name: "   "})
	assertKind(t, err, apperr.KindValidation)

	_, err = f.channels.CreateChannel(ctx, owner.ID+100, CreateChannelInput{Name: "ghost"})
	assertKind(t, err, apperr.KindNotFound)
}

func TestChannelService_UpdateChannel(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	owner := testutil.MustCreateUser(t, f.db, "JaneSmith")
	other := testutil.MustCreateUser(t, f.db, "TechGuru")
	ch, err := f.channels.CreateChannel(ctx, owner.ID, CreateChannelInput{
		Name:        "Jane",
		Description: "Delicious recipes",
		Banner:      "https://example.com/b.png",
	})
	require.NoError(t, err)

	t.Run("not the owner", func(t *testing.T) {
		_, err := f.channels.UpdateChannel(ctx, other.ID, ch.ID, UpdateChannelInput{Name: strPtr("stolen")})
		assertKind(t, err, apperr.KindForbidden)
		got, err := f.channels.GetChannel(ctx, ch.ID)
		require.NoError(t, err)
		assert.Equal(t, "Jane", got.Name)
	})

	t.Run("absent fields untouched", func(t *testing.T) {
		got, err := f.channels.UpdateChannel(ctx, owner.ID, ch.ID, UpdateChannelInput{Name: strPtr("Jane's Cooking Channel")})
		require.NoError(t, err)
		assert.Equal(t, "Jane's Cooking Channel", got.Name)
		assert.Equal(t, "Delicious recipes", got.Description)
		assert.Equal(t, "https://example.com/b.png", got.Banner)
	})

	t.Run("empty description clears", func(t *testing.T) {
		got, err := f.channels.UpdateChannel(ctx, owner.ID, ch.ID, UpdateChannelInput{Description: strPtr("")})
		require.NoError(t, err)
		assert.Empty(t, got.Description)
	})

	t.Run("blank name and banner are ignored", func(t *testing.T) {
		got, err := f.channels.UpdateChannel(ctx, owner.ID, ch.ID, UpdateChannelInput{
			Name:   strPtr("   "),
			Banner: strPtr(""),
		})
		require.NoError(t, err)
		assert.Equal(t, "Jane's Cooking Channel", got.Name)
		assert.Equal(t, "https://example.com/b.png", got.Banner)
	})

	t.Run("missing channel", func(t *testing.T) {
		_, err := f.channels.UpdateChannel(ctx, owner.ID, ch.ID+100, UpdateChannelInput{})
		assertKind(t, err, apperr.KindNotFound)
	})
}

func TestChannelService_Reads(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	john := testutil.MustCreateUser(t, f.db, "JohnDoe")
	jane := testutil.MustCreateUser(t, f.db, "JaneSmith")
	chJohn := testutil.MustCreateChannel(t, f.db, john, "Code with John")
	testutil.MustCreateChannel(t, f.db, jane, "Jane's Cooking Channel")
	testutil.MustCreateVideo(t, f.db, chJohn, "Learn React in 30 Minutes", model.CategoryEducation)

	all, err := f.channels.ListChannels(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "JohnDoe", all[0].Owner.Username)
	assert.Len(t, all[0].Videos, 1)

	byOwner, err := f.channels.GetChannelByOwner(ctx, john.ID)
	require.NoError(t, err)
	assert.Equal(t, chJohn.ID, byOwner.ID)
	require.Len(t, byOwner.Videos, 1)
	assert.Equal(t, "JohnDoe", byOwner.Videos[0].Uploader.Username)

	_, err = f.channels.GetChannelByOwner(ctx, 9999)
	assertKind(t, err, apperr.KindNotFound)
	_, err = f.channels.GetChannel(ctx, 9999)
	assertKind(t, err, apperr.KindNotFound)
}

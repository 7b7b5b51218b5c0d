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

func TestCommentRepository_ListNewestFirst(t *testing.T) {
	db := testutil.NewDB(t)
	ctx := context.Background()
	user := testutil.MustCreateUser(t, db, "JohnDoe")
	ch := testutil.MustCreateChannel(t, db, user, "Code with John")
	v := testutil.MustCreateVideo(t, db, ch, "Learn React", model.CategoryEducation)
	other := testutil.MustCreateVideo(t, db, ch, "Other", model.CategoryEducation)

	base := time.Date(2024, 9, 21, 8, 30, 0, 0, time.UTC)
	testutil.MustCreateComment(t, db, v, user, "Great video! Very helpful.", base)
	testutil.MustCreateComment(t, db, v, user, "Amazing content! Keep it up!", base.Add(3*time.Hour))
	testutil.MustCreateComment(t, db, v, user, "Thanks for sharing this!", base.Add(time.Hour))
	testutil.MustCreateComment(t, db, other, user, "elsewhere", base.Add(5*time.Hour))

	got, err := NewCommentRepository(db).ListByVideoID(ctx, v.ID)
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, "Amazing content! Keep it up!", got[0].Text)
	assert.Equal(t, "Thanks for sharing this!", got[1].Text)
	assert.Equal(t, "Great video! Very helpful.", got[2].Text)
	assert.Equal(t, "JohnDoe", got[0].Author.Username)
}

func TestCommentRepository_DeleteByVideoID(t *testing.T) {
	db := testutil.NewDB(t)
	ctx := context.Background()
	user := testutil.MustCreateUser(t, db, "JohnDoe")
	ch := testutil.MustCreateChannel(t, db, user, "Code with John")
	v := testutil.MustCreateVideo(t, db, ch, "a", model.CategoryAll)
	keep := testutil.MustCreateVideo(t, db, ch, "b", model.CategoryAll)
	testutil.MustCreateComment(t, db, v, user, "one", time.Now())
	testutil.MustCreateComment(t, db, v, user, "two", time.Now())
	kept := testutil.MustCreateComment(t, db, keep, user, "stay", time.Now())
	repo := NewCommentRepository(db)

	n, err := repo.DeleteByVideoID(ctx, v.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)

	_, err = repo.FindByID(ctx, kept.ID)
	assert.NoError(t, err)

	assert.ErrorIs(t, repo.Delete(ctx, 9999), gorm.ErrRecordNotFound)
}

package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"matrimony-service/internal/domain"
	"matrimony-service/pkg/xerrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newProfileUC(repo *fakeProfileRepo, c *memCache, pub *fakePublisher) *ProfileUsecase {
	return NewProfileUsecase(repo, c, pub, time.Minute, zap.NewNop())
}

func TestGetRecordMissingIsEmpty(t *testing.T) {
	uc := newProfileUC(newFakeProfileRepo(), newMemCache(), &fakePublisher{})

	rec, err := uc.GetRecord(context.Background(), "u1")
	require.NoError(t, err)
	assert.Equal(t, domain.ProfileRecord{}, *rec)

	view, err := uc.GetForm(context.Background(), "u1")
	require.NoError(t, err)
	assert.Equal(t, 0, view.Completion)
}

func TestGetRecordRequiresUser(t *testing.T) {
	uc := newProfileUC(newFakeProfileRepo(), newMemCache(), &fakePublisher{})
	_, err := uc.GetRecord(context.Background(), " ")
	assert.ErrorIs(t, err, xerrors.ErrUserIDRequired)
	_, err = uc.SaveForm(context.Background(), "", domain.ProfileForm{})
	assert.ErrorIs(t, err, xerrors.ErrUserIDRequired)
}

func TestGetRecordCaches(t *testing.T) {
	repo := newFakeProfileRepo()
	repo.profiles["u1"] = &domain.Profile{UserID: "u1", Record: domain.ProfileRecord{FirstName: sp("Asha")}}
	c := newMemCache()
	uc := newProfileUC(repo, c, &fakePublisher{})

	for i := 0; i < 3; i++ {
		rec, err := uc.GetRecord(context.Background(), "u1")
		require.NoError(t, err)
		assert.Equal(t, "Asha", *rec.FirstName)
	}
	assert.Equal(t, 1, repo.gets)
	assert.True(t, c.has("profiles:u1"))
}

func TestGetRecordRepoError(t *testing.T) {
	repo := newFakeProfileRepo()
	repo.err = errors.New("conn reset")
	uc := newProfileUC(repo, newMemCache(), &fakePublisher{})

	_, err := uc.GetRecord(context.Background(), "u1")
	assert.Error(t, err)
}

func TestSaveForm(t *testing.T) {
	repo := newFakeProfileRepo()
	repo.profiles["u1"] = &domain.Profile{UserID: "u1", Record: domain.ProfileRecord{FirstName: sp("Old")}}
	c := newMemCache()
	pub := &fakePublisher{}
	uc := newProfileUC(repo, c, pub)
	ctx := context.Background()

	// warm the cache so the save has something to invalidate
	_, err := uc.GetRecord(ctx, "u1")
	require.NoError(t, err)
	require.True(t, c.has("profiles:u1"))

	saved, err := uc.SaveForm(ctx, "u1", domain.ProfileForm{
		FirstName:     " Asha ",
		Gender:        "female",
		Height:        "5.9",
		Income:        "10-20",
		MaritalStatus: "never-married",
		DateOfBirth:   "17/03/1994",
	})
	require.NoError(t, err)

	assert.Equal(t, "Asha", *saved.Record.FirstName)
	assert.Equal(t, 175, *saved.Record.HeightCm)
	assert.Equal(t, int64(1500000), *saved.Record.Income)
	assert.Equal(t, domain.MaritalSingle, *saved.Record.MaritalStatus)
	assert.Equal(t, "1994-03-17", *saved.Record.DateOfBirth)
	assert.Nil(t, saved.Record.LastName)
	assert.Equal(t, 30, saved.Completion)

	assert.False(t, c.has("profiles:u1"))
	assert.Contains(t, c.deleted, "profiles:u1")

	require.Len(t, pub.events, 1)
	evt := pub.events[0]
	assert.Equal(t, domain.EventProfileUpdated, evt.Type)
	assert.Equal(t, "u1", evt.UserID)
	assert.Equal(t, 30, evt.Completion)
	assert.True(t, strings.HasPrefix(evt.EventID, "evt_"))

	view, err := uc.GetForm(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, "5.9", view.Form.Height)
	assert.Equal(t, "10-20", view.Form.Income)
	assert.Equal(t, "never-married", view.Form.MaritalStatus)
}

func TestSaveFormPublishFailureStillSaves(t *testing.T) {
	repo := newFakeProfileRepo()
	uc := newProfileUC(repo, newMemCache(), &fakePublisher{err: errors.New("kafka down")})

	saved, err := uc.SaveForm(context.Background(), "u1", domain.ProfileForm{FirstName: "Asha"})
	require.NoError(t, err)
	assert.Equal(t, 5, saved.Completion)
	assert.Contains(t, repo.profiles, "u1")
}

func TestSaveFormRepoError(t *testing.T) {
	repo := newFakeProfileRepo()
	repo.err = errors.New("constraint")
	pub := &fakePublisher{}
	uc := newProfileUC(repo, newMemCache(), pub)

	_, err := uc.SaveForm(context.Background(), "u1", domain.ProfileForm{FirstName: "Asha"})
	assert.Error(t, err)
	assert.Empty(t, pub.events)
}

func TestPreview(t *testing.T) {
	uc := newProfileUC(newFakeProfileRepo(), newMemCache(), &fakePublisher{})

	view := uc.PreviewDecode(&domain.ProfileRecord{Gender: sp("Male"), MaritalStatus: sp("WIDOWED")})
	assert.Equal(t, "male", view.Form.Gender)
	assert.Equal(t, "widowed", view.Form.MaritalStatus)
	assert.Equal(t, 10, view.Completion)

	enc := uc.PreviewEncode(domain.ProfileForm{MaritalStatus: "awaiting-divorce"})
	assert.Equal(t, domain.MaritalDivorced, *enc.Record.MaritalStatus)
	assert.Equal(t, 5, enc.Completion)
}

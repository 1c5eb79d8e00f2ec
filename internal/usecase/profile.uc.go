package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"matrimony-service/internal/domain"
	"matrimony-service/internal/events"
	"matrimony-service/internal/profilecodec"
	"matrimony-service/internal/repository"
	"matrimony-service/pkg/cache"
	"matrimony-service/pkg/id"
	"matrimony-service/pkg/xerrors"

	"go.uber.org/zap"
)

type ProfileUsecase struct {
	repo      repository.ProfileRepository
	cache     JSONCache
	publisher events.ProfilePublisher
	ttl       time.Duration
	logger    *zap.Logger
}

func NewProfileUsecase(
	repo repository.ProfileRepository,
	c JSONCache,
	publisher events.ProfilePublisher,
	ttl time.Duration,
	logger *zap.Logger,
) *ProfileUsecase {
	return &ProfileUsecase{
		repo:      repo,
		cache:     c,
		publisher: publisher,
		ttl:       ttl,
		logger:    logger,
	}
}

// ProfileView is a profile in display form together with its completion.
type ProfileView struct {
	Form       domain.ProfileForm `json:"form"`
	Completion int                `json:"completion"`
}

// SavedProfile is returned after a save.
type SavedProfile struct {
	Record     domain.ProfileRecord `json:"record"`
	Completion int                  `json:"completion"`
}

// GetRecord loads the member's profile. A member without a profile gets an
// empty record.
func (uc *ProfileUsecase) GetRecord(ctx context.Context, userID string) (*domain.ProfileRecord, error) {
	if strings.TrimSpace(userID) == "" {
		return nil, xerrors.ErrUserIDRequired
	}

	var cached domain.ProfileRecord
	err := uc.cache.GetJSON(ctx, nsProfiles, userID, &cached)
	if err == nil {
		return &cached, nil
	}
	if !errors.Is(err, cache.ErrMiss) {
		uc.logger.Debug("profile cache read failed", zap.Error(err))
	}

	p, err := uc.repo.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, xerrors.ErrProfileNotFound) {
			return &domain.ProfileRecord{}, nil
		}
		return nil, fmt.Errorf("load profile: %w", err)
	}

	if err := uc.cache.SetJSON(ctx, nsProfiles, userID, p.Record, uc.ttl); err != nil {
		uc.logger.Debug("profile cache write failed", zap.Error(err))
	}
	return &p.Record, nil
}

// GetForm loads the profile in display form.
func (uc *ProfileUsecase) GetForm(ctx context.Context, userID string) (*ProfileView, error) {
	rec, err := uc.GetRecord(ctx, userID)
	if err != nil {
		return nil, err
	}
	return &ProfileView{
		Form:       profilecodec.Decode(rec),
		Completion: profilecodec.Completion(rec),
	}, nil
}

// Completion implements CompletionSource.
func (uc *ProfileUsecase) Completion(ctx context.Context, userID string) (int, error) {
	rec, err := uc.GetRecord(ctx, userID)
	if err != nil {
		return 0, err
	}
	return profilecodec.Completion(rec), nil
}

// SaveForm encodes and stores a submitted form, then announces the change.
// A failed publish does not fail the save.
func (uc *ProfileUsecase) SaveForm(ctx context.Context, userID string, form domain.ProfileForm) (*SavedProfile, error) {
	if strings.TrimSpace(userID) == "" {
		return nil, xerrors.ErrUserIDRequired
	}
	start := time.Now()
	defer func() { profileSaveDuration.Observe(time.Since(start).Seconds()) }()

	rec := profilecodec.Encode(form)
	p, err := uc.repo.Upsert(ctx, userID, rec)
	if err != nil {
		profileSavesTotal.WithLabelValues("error").Inc()
		uc.logger.Error("profile upsert failed", zap.String("user_id", userID), zap.Error(err))
		return nil, fmt.Errorf("save profile: %w", err)
	}
	profileSavesTotal.WithLabelValues("ok").Inc()

	if err := uc.cache.Delete(ctx, nsProfiles, userID); err != nil {
		uc.logger.Warn("profile cache invalidation failed", zap.String("user_id", userID), zap.Error(err))
	}

	completion := profilecodec.Completion(&p.Record)
	profileCompletion.Observe(float64(completion))

	evt := domain.ProfileUpdatedEvent{
		EventID:    id.GenerateEventID("evt"),
		Type:       domain.EventProfileUpdated,
		UserID:     userID,
		Completion: completion,
		OccurredAt: time.Now().UTC(),
	}
	if err := uc.publisher.PublishProfileUpdated(ctx, evt); err != nil {
		uc.logger.Warn("profile event not published",
			zap.String("user_id", userID),
			zap.String("event_id", evt.EventID),
			zap.Error(err),
		)
	}

	return &SavedProfile{Record: p.Record, Completion: completion}, nil
}

// PreviewDecode shows what a stored record looks like in the form.
func (uc *ProfileUsecase) PreviewDecode(rec *domain.ProfileRecord) ProfileView {
	return ProfileView{
		Form:       profilecodec.Decode(rec),
		Completion: profilecodec.Completion(rec),
	}
}

// PreviewEncode shows what a form would be stored as.
func (uc *ProfileUsecase) PreviewEncode(form domain.ProfileForm) SavedProfile {
	rec := profilecodec.Encode(form)
	return SavedProfile{Record: rec, Completion: profilecodec.Completion(&rec)}
}

// FormOptions lists the codes the profile form offers for its coded fields.
type FormOptions struct {
	Heights         []string `json:"heights"`
	Incomes         []string `json:"incomes"`
	MaritalStatuses []string `json:"maritalStatuses"`
}

func (uc *ProfileUsecase) FormOptions() FormOptions {
	return FormOptions{
		Heights: profilecodec.HeightCodes(),
		Incomes: profilecodec.IncomeCodes(),
		MaritalStatuses: []string{
			domain.FormNeverMarried,
			domain.FormDivorced,
			domain.FormWidowed,
			domain.FormAwaitingDivorce,
		},
	}
}

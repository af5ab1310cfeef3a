package availability

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	availabilityRepo "github.com/m04kA/SMC-AvailabilityService/internal/infra/storage/availability"
	providerClient "github.com/m04kA/SMC-AvailabilityService/internal/integrations/providerservice"
	"github.com/m04kA/SMC-AvailabilityService/internal/service/availability/models"
	"github.com/m04kA/SMC-AvailabilityService/pkg/ptr"
)

// Фейки зависимостей

type fakeSettingsRepo struct {
	settings      *domain.ProviderAvailabilitySettings
	getErr        error
	removeErr     error
	lastUpsert    *domain.WeeklySchedule
	lastRules     *domain.BookingRulesUpdate
	addedVacation *domain.VacationPeriod
}

func (r *fakeSettingsRepo) GetByProviderID(_ context.Context, _ int64) (*domain.ProviderAvailabilitySettings, error) {
	if r.getErr != nil {
		return nil, r.getErr
	}
	return r.settings, nil
}

func (r *fakeSettingsRepo) UpsertWeeklySchedule(_ context.Context, providerID int64, schedule domain.WeeklySchedule) (*domain.ProviderAvailabilitySettings, error) {
	r.lastUpsert = &schedule
	settings := domain.DefaultSettings(providerID)
	settings.WeeklySchedule = schedule
	return settings, nil
}

func (r *fakeSettingsRepo) UpdateBookingRules(_ context.Context, providerID int64, update domain.BookingRulesUpdate) (*domain.ProviderAvailabilitySettings, error) {
	r.lastRules = &update
	settings := domain.DefaultSettings(providerID)
	update.ApplyTo(settings)
	return settings, nil
}

func (r *fakeSettingsRepo) AddVacation(_ context.Context, vacation *domain.VacationPeriod) (*domain.VacationPeriod, error) {
	created := *vacation
	created.ID = uuid.New()
	created.CreatedAt = time.Now()
	r.addedVacation = &created
	return &created, nil
}

func (r *fakeSettingsRepo) RemoveVacation(_ context.Context, _ int64, _ uuid.UUID) error {
	return r.removeErr
}

func (r *fakeSettingsRepo) ListVacations(_ context.Context, _ int64) ([]domain.VacationPeriod, error) {
	return nil, nil
}

type fakeProviderClient struct {
	err error
}

func (c *fakeProviderClient) GetProvider(_ context.Context, providerID int64) (*providerClient.Provider, error) {
	if c.err != nil {
		return nil, c.err
	}
	return &providerClient.Provider{ID: providerID, IsActive: true}, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func validSchedule() domain.WeeklySchedule {
	return domain.WeeklySchedule{
		Monday: domain.DayAvailability{
			IsAvailable: true,
			Slots:       []domain.TimeWindow{{Start: "09:00", End: "18:00"}},
		},
	}
}

// Тесты

func TestGetSettings_ReturnsDefaultsWhenNotConfigured(t *testing.T) {
	svc := NewService(
		&fakeSettingsRepo{getErr: availabilityRepo.ErrSettingsNotFound},
		&fakeProviderClient{},
		nopLogger{},
	)

	resp, err := svc.GetSettings(context.Background(), 1)
	require.NoError(t, err)

	assert.Equal(t, int64(1), resp.ProviderID)
	assert.True(t, resp.IsActive)
	assert.Equal(t, domain.DefaultMaxBookingsPerDay, resp.MaxBookingsPerDay)
	// Расписание по умолчанию полностью закрыто
	assert.False(t, resp.WeeklySchedule.Monday.IsAvailable)
}

func TestGetSettings_ProviderNotFound(t *testing.T) {
	svc := NewService(
		&fakeSettingsRepo{getErr: availabilityRepo.ErrSettingsNotFound},
		&fakeProviderClient{err: providerClient.ErrProviderNotFound},
		nopLogger{},
	)

	_, err := svc.GetSettings(context.Background(), 1)
	assert.ErrorIs(t, err, ErrProviderNotFound)
}

func TestUpdateWeeklySchedule_OwnerOnly(t *testing.T) {
	svc := NewService(&fakeSettingsRepo{}, &fakeProviderClient{}, nopLogger{})

	_, err := svc.UpdateWeeklySchedule(context.Background(), &models.UpdateScheduleRequest{
		UserID:     99,
		ProviderID: 1,
		Schedule:   validSchedule(),
	})
	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestUpdateWeeklySchedule_RejectsOverlappingWindows(t *testing.T) {
	svc := NewService(&fakeSettingsRepo{}, &fakeProviderClient{}, nopLogger{})

	schedule := domain.WeeklySchedule{
		Friday: domain.DayAvailability{
			IsAvailable: true,
			Slots: []domain.TimeWindow{
				{Start: "09:00", End: "13:00"},
				{Start: "12:00", End: "18:00"},
			},
		},
	}

	_, err := svc.UpdateWeeklySchedule(context.Background(), &models.UpdateScheduleRequest{
		UserID:     1,
		ProviderID: 1,
		Schedule:   schedule,
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidSchedule)
	// Ошибка называет день и пару окон
	assert.Contains(t, err.Error(), "friday")
	assert.Contains(t, err.Error(), "09:00-13:00")
}

func TestUpdateWeeklySchedule_Success(t *testing.T) {
	repo := &fakeSettingsRepo{}
	svc := NewService(repo, &fakeProviderClient{}, nopLogger{})

	resp, err := svc.UpdateWeeklySchedule(context.Background(), &models.UpdateScheduleRequest{
		UserID:     1,
		ProviderID: 1,
		Schedule:   validSchedule(),
	})
	require.NoError(t, err)

	assert.True(t, resp.WeeklySchedule.Monday.IsAvailable)
	require.NotNil(t, repo.lastUpsert)
}

func TestAddVacationPeriod_InvalidRange(t *testing.T) {
	repo := &fakeSettingsRepo{settings: domain.DefaultSettings(1)}
	svc := NewService(repo, &fakeProviderClient{}, nopLogger{})

	start := time.Date(2026, 7, 14, 0, 0, 0, 0, time.UTC)
	_, err := svc.AddVacationPeriod(context.Background(), &models.AddVacationRequest{
		UserID:     1,
		ProviderID: 1,
		StartDate:  start,
		EndDate:    start.AddDate(0, 0, -5),
	})
	assert.ErrorIs(t, err, ErrInvalidRange)
}

func TestAddVacationPeriod_Success(t *testing.T) {
	repo := &fakeSettingsRepo{settings: domain.DefaultSettings(1)}
	svc := NewService(repo, &fakeProviderClient{}, nopLogger{})

	start := time.Date(2026, 7, 1, 0, 0, 0, 0, time.UTC)
	resp, err := svc.AddVacationPeriod(context.Background(), &models.AddVacationRequest{
		UserID:     1,
		ProviderID: 1,
		StartDate:  start,
		EndDate:    start.AddDate(0, 0, 13),
		Reason:     ptr.Ptr("отпуск"),
	})
	require.NoError(t, err)

	assert.Equal(t, "2026-07-01", resp.StartDate)
	assert.Equal(t, "2026-07-14", resp.EndDate)
	require.NotNil(t, repo.addedVacation)
}

func TestRemoveVacationPeriod_NotFound(t *testing.T) {
	repo := &fakeSettingsRepo{removeErr: availabilityRepo.ErrVacationNotFound}
	svc := NewService(repo, &fakeProviderClient{}, nopLogger{})

	err := svc.RemoveVacationPeriod(context.Background(), 1, 1, uuid.New())
	assert.ErrorIs(t, err, ErrVacationNotFound)
}

func TestUpdateBookingRules_EmptyUpdateRejected(t *testing.T) {
	svc := NewService(&fakeSettingsRepo{settings: domain.DefaultSettings(1)}, &fakeProviderClient{}, nopLogger{})

	_, err := svc.UpdateBookingRules(context.Background(), &models.UpdateBookingRulesRequest{
		UserID:     1,
		ProviderID: 1,
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestUpdateBookingRules_RejectsInvalidValues(t *testing.T) {
	svc := NewService(&fakeSettingsRepo{settings: domain.DefaultSettings(1)}, &fakeProviderClient{}, nopLogger{})

	tests := []struct {
		name string
		req  *models.UpdateBookingRulesRequest
	}{
		{name: "zero max bookings", req: &models.UpdateBookingRulesRequest{UserID: 1, ProviderID: 1, MaxBookingsPerDay: ptr.Ptr(0)}},
		{name: "negative max bookings", req: &models.UpdateBookingRulesRequest{UserID: 1, ProviderID: 1, MaxBookingsPerDay: ptr.Ptr(-3)}},
		{name: "too many bookings", req: &models.UpdateBookingRulesRequest{UserID: 1, ProviderID: 1, MaxBookingsPerDay: ptr.Ptr(101)}},
		{name: "negative notice", req: &models.UpdateBookingRulesRequest{UserID: 1, ProviderID: 1, BookingNoticeHours: ptr.Ptr(-1)}},
		{name: "notice too large", req: &models.UpdateBookingRulesRequest{UserID: 1, ProviderID: 1, BookingNoticeHours: ptr.Ptr(721)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.UpdateBookingRules(context.Background(), tt.req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestUpdateBookingRules_PartialUpdate(t *testing.T) {
	repo := &fakeSettingsRepo{settings: domain.DefaultSettings(1)}
	svc := NewService(repo, &fakeProviderClient{}, nopLogger{})

	resp, err := svc.UpdateBookingRules(context.Background(), &models.UpdateBookingRulesRequest{
		UserID:             1,
		ProviderID:         1,
		BookingNoticeHours: ptr.Ptr(48),
	})
	require.NoError(t, err)

	assert.Equal(t, 48, resp.BookingNoticeHours)
	require.NotNil(t, repo.lastRules)
	assert.Nil(t, repo.lastRules.MaxBookingsPerDay)
}

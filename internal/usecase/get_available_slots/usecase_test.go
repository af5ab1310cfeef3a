package get_available_slots

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	availabilityRepo "github.com/m04kA/SMC-AvailabilityService/internal/infra/storage/availability"
)

// Фейки зависимостей

type fakeSettingsRepo struct {
	settings *domain.ProviderAvailabilitySettings
	err      error
}

func (r *fakeSettingsRepo) GetByProviderID(_ context.Context, _ int64) (*domain.ProviderAvailabilitySettings, error) {
	if r.err != nil {
		return nil, r.err
	}
	return r.settings, nil
}

type fakeBookingRepo struct {
	bookings []*domain.Booking
	err      error
}

func (r *fakeBookingRepo) GetActiveByProviderOnDate(_ context.Context, _ int64, _ time.Time) ([]*domain.Booking, error) {
	if r.err != nil {
		return nil, r.err
	}
	return r.bookings, nil
}

type fixedTime struct {
	now time.Time
}

func (p *fixedTime) Now() time.Time {
	return p.now
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

// Хелперы

// testDate - понедельник
var testDate = time.Date(2026, 9, 14, 0, 0, 0, 0, time.UTC)

func mondaySettings(windows ...domain.TimeWindow) *domain.ProviderAvailabilitySettings {
	return &domain.ProviderAvailabilitySettings{
		ProviderID: 1,
		WeeklySchedule: domain.WeeklySchedule{
			Monday: domain.DayAvailability{IsAvailable: true, Slots: windows},
		},
		IsActive:           true,
		MaxBookingsPerDay:  10,
		BookingNoticeHours: 0,
	}
}

func newTestUseCase(settings *domain.ProviderAvailabilitySettings, bookings []*domain.Booking, now time.Time) *UseCase {
	uc := NewUseCase(
		&fakeBookingRepo{bookings: bookings},
		&fakeSettingsRepo{settings: settings},
		nopLogger{},
	)
	uc.timeProvider = &fixedTime{now: now}
	return uc
}

func activeBooking(id int64, hour, minute, durationMinutes int) *domain.Booking {
	return &domain.Booking{
		ID:              id,
		ProviderID:      1,
		ClientID:        100,
		RequestedDate:   testDate.Add(time.Duration(hour)*time.Hour + time.Duration(minute)*time.Minute),
		DurationMinutes: durationMinutes,
		Status:          domain.StatusAccepted,
	}
}

func slotStarts(slots []Slot) []string {
	starts := make([]string, len(slots))
	for i, s := range slots {
		starts[i] = s.StartTime.String()
	}
	return starts
}

// Тесты

func TestExecute_PartitionsWindow(t *testing.T) {
	uc := newTestUseCase(
		mondaySettings(domain.TimeWindow{Start: "09:00", End: "13:00"}),
		nil,
		testDate.AddDate(0, 0, -1),
	)

	resp, err := uc.Execute(context.Background(), &Request{ProviderID: 1, Date: testDate, GranularityMinutes: 60})
	require.NoError(t, err)

	assert.Equal(t, []string{"09:00", "10:00", "11:00", "12:00"}, slotStarts(resp.Slots))
	for _, slot := range resp.Slots {
		assert.True(t, slot.IsAvailable)
		assert.Empty(t, slot.ConflictingBookings)
		assert.Equal(t, 60, slot.DurationMinutes)
	}
}

func TestExecute_DropsRaggedTail(t *testing.T) {
	uc := newTestUseCase(
		mondaySettings(domain.TimeWindow{Start: "09:00", End: "12:30"}),
		nil,
		testDate.AddDate(0, 0, -1),
	)

	resp, err := uc.Execute(context.Background(), &Request{ProviderID: 1, Date: testDate, GranularityMinutes: 60})
	require.NoError(t, err)

	// Хвост 12:00-12:30 короче шага и отбрасывается
	assert.Equal(t, []string{"09:00", "10:00", "11:00"}, slotStarts(resp.Slots))
}

func TestExecute_MultipleWindowsAscending(t *testing.T) {
	uc := newTestUseCase(
		mondaySettings(
			domain.TimeWindow{Start: "14:00", End: "16:00"},
			domain.TimeWindow{Start: "09:00", End: "11:00"},
		),
		nil,
		testDate.AddDate(0, 0, -1),
	)

	resp, err := uc.Execute(context.Background(), &Request{ProviderID: 1, Date: testDate, GranularityMinutes: 60})
	require.NoError(t, err)

	assert.Equal(t, []string{"09:00", "10:00", "14:00", "15:00"}, slotStarts(resp.Slots))
}

func TestExecute_MarksConflicts(t *testing.T) {
	uc := newTestUseCase(
		mondaySettings(domain.TimeWindow{Start: "09:00", End: "13:00"}),
		[]*domain.Booking{activeBooking(42, 10, 0, 60)},
		testDate.AddDate(0, 0, -1),
	)

	resp, err := uc.Execute(context.Background(), &Request{ProviderID: 1, Date: testDate, GranularityMinutes: 60})
	require.NoError(t, err)
	require.Len(t, resp.Slots, 4)

	// Бронирование 10:00-11:00 блокирует только свой слот, границы свободны
	assert.True(t, resp.Slots[0].IsAvailable)
	assert.False(t, resp.Slots[1].IsAvailable)
	assert.Equal(t, []int64{42}, resp.Slots[1].ConflictingBookings)
	assert.True(t, resp.Slots[2].IsAvailable)
	assert.True(t, resp.Slots[3].IsAvailable)
}

func TestExecute_PartialOverlapMarksBothSlots(t *testing.T) {
	uc := newTestUseCase(
		mondaySettings(domain.TimeWindow{Start: "09:00", End: "13:00"}),
		[]*domain.Booking{activeBooking(7, 10, 30, 60)}, // 10:30-11:30
		testDate.AddDate(0, 0, -1),
	)

	resp, err := uc.Execute(context.Background(), &Request{ProviderID: 1, Date: testDate, GranularityMinutes: 60})
	require.NoError(t, err)
	require.Len(t, resp.Slots, 4)

	assert.False(t, resp.Slots[1].IsAvailable) // 10:00-11:00
	assert.False(t, resp.Slots[2].IsAvailable) // 11:00-12:00
	assert.True(t, resp.Slots[3].IsAvailable)
}

func TestExecute_InactiveBookingsIgnored(t *testing.T) {
	cancelled := activeBooking(5, 10, 0, 60)
	cancelled.Status = domain.StatusCancelled

	uc := newTestUseCase(
		mondaySettings(domain.TimeWindow{Start: "09:00", End: "13:00"}),
		[]*domain.Booking{cancelled},
		testDate.AddDate(0, 0, -1),
	)

	resp, err := uc.Execute(context.Background(), &Request{ProviderID: 1, Date: testDate, GranularityMinutes: 60})
	require.NoError(t, err)

	for _, slot := range resp.Slots {
		assert.True(t, slot.IsAvailable)
	}
}

func TestExecute_DailyCapMarksAllUnavailable(t *testing.T) {
	settings := mondaySettings(domain.TimeWindow{Start: "09:00", End: "13:00"})
	settings.MaxBookingsPerDay = 1

	uc := newTestUseCase(
		settings,
		[]*domain.Booking{activeBooking(1, 10, 0, 60)},
		testDate.AddDate(0, 0, -1),
	)

	resp, err := uc.Execute(context.Background(), &Request{ProviderID: 1, Date: testDate, GranularityMinutes: 60})
	require.NoError(t, err)
	require.Len(t, resp.Slots, 4)

	for _, slot := range resp.Slots {
		assert.False(t, slot.IsAvailable)
	}
	// Отметки о конфликтах сохраняются
	assert.Equal(t, []int64{1}, resp.Slots[1].ConflictingBookings)
}

func TestExecute_NoticeWindowMarksEarlySlots(t *testing.T) {
	settings := mondaySettings(domain.TimeWindow{Start: "09:00", End: "13:00"})
	settings.BookingNoticeHours = 2

	// Сейчас 09:00 этого же дня: слоты раньше 11:00 недоступны
	uc := newTestUseCase(settings, nil, testDate.Add(9*time.Hour))

	resp, err := uc.Execute(context.Background(), &Request{ProviderID: 1, Date: testDate, GranularityMinutes: 60})
	require.NoError(t, err)
	require.Len(t, resp.Slots, 4)

	assert.False(t, resp.Slots[0].IsAvailable) // 09:00
	assert.False(t, resp.Slots[1].IsAvailable) // 10:00
	assert.True(t, resp.Slots[2].IsAvailable)  // 11:00
	assert.True(t, resp.Slots[3].IsAvailable)  // 12:00
}

func TestExecute_InactiveProviderEmpty(t *testing.T) {
	settings := mondaySettings(domain.TimeWindow{Start: "09:00", End: "13:00"})
	settings.IsActive = false

	uc := newTestUseCase(settings, nil, testDate.AddDate(0, 0, -1))

	resp, err := uc.Execute(context.Background(), &Request{ProviderID: 1, Date: testDate, GranularityMinutes: 60})
	require.NoError(t, err)
	assert.Empty(t, resp.Slots)
}

func TestExecute_VacationDayEmpty(t *testing.T) {
	settings := mondaySettings(domain.TimeWindow{Start: "09:00", End: "13:00"})
	settings.Vacations = []domain.VacationPeriod{
		{StartDate: testDate.AddDate(0, 0, -3), EndDate: testDate.AddDate(0, 0, 3)},
	}

	uc := newTestUseCase(settings, nil, testDate.AddDate(0, 0, -1))

	resp, err := uc.Execute(context.Background(), &Request{ProviderID: 1, Date: testDate, GranularityMinutes: 60})
	require.NoError(t, err)
	assert.Empty(t, resp.Slots)
}

func TestExecute_OffDayEmpty(t *testing.T) {
	uc := newTestUseCase(
		mondaySettings(domain.TimeWindow{Start: "09:00", End: "13:00"}),
		nil,
		testDate.AddDate(0, 0, -1),
	)

	// Вторник в расписании закрыт
	tuesday := testDate.AddDate(0, 0, 1)
	resp, err := uc.Execute(context.Background(), &Request{ProviderID: 1, Date: tuesday, GranularityMinutes: 60})
	require.NoError(t, err)
	assert.Empty(t, resp.Slots)
}

func TestExecute_PastDateEmpty(t *testing.T) {
	uc := newTestUseCase(
		mondaySettings(domain.TimeWindow{Start: "09:00", End: "13:00"}),
		nil,
		testDate.AddDate(0, 0, 5),
	)

	resp, err := uc.Execute(context.Background(), &Request{ProviderID: 1, Date: testDate, GranularityMinutes: 60})
	require.NoError(t, err)
	assert.Empty(t, resp.Slots)
}

func TestExecute_NoSettingsEmpty(t *testing.T) {
	uc := NewUseCase(
		&fakeBookingRepo{},
		&fakeSettingsRepo{err: availabilityRepo.ErrSettingsNotFound},
		nopLogger{},
	)
	uc.timeProvider = &fixedTime{now: testDate.AddDate(0, 0, -1)}

	resp, err := uc.Execute(context.Background(), &Request{ProviderID: 1, Date: testDate, GranularityMinutes: 60})
	require.NoError(t, err)
	assert.Empty(t, resp.Slots)
}

func TestExecute_InvalidGranularity(t *testing.T) {
	uc := newTestUseCase(
		mondaySettings(domain.TimeWindow{Start: "09:00", End: "13:00"}),
		nil,
		testDate.AddDate(0, 0, -1),
	)

	for _, granularity := range []int{0, -30, 481} {
		_, err := uc.Execute(context.Background(), &Request{ProviderID: 1, Date: testDate, GranularityMinutes: granularity})
		assert.ErrorIs(t, err, ErrInvalidGranularity, "granularity=%d", granularity)
	}
}

func TestExecute_Deterministic(t *testing.T) {
	uc := newTestUseCase(
		mondaySettings(domain.TimeWindow{Start: "09:00", End: "13:00"}),
		[]*domain.Booking{activeBooking(3, 11, 0, 60)},
		testDate.AddDate(0, 0, -1),
	)

	req := &Request{ProviderID: 1, Date: testDate, GranularityMinutes: 30}

	first, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)
	second, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

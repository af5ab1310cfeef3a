package validate_booking

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	validateBooking "github.com/m04kA/SMC-AvailabilityService/internal/usecase/validate_booking"
)

type fakeUseCase struct {
	resp *validateBooking.Response
	err  error
}

func (uc *fakeUseCase) Execute(_ context.Context, req *validateBooking.Request) (*validateBooking.Response, error) {
	if uc.err != nil {
		return nil, uc.err
	}
	if uc.resp != nil {
		return uc.resp, nil
	}
	return &validateBooking.Response{
		ProviderID: req.ProviderID,
		ClientID:   req.ClientID,
		StartTime:  req.StartTime,
		EndTime:    req.EndTime,
		Valid:      true,
	}, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

const validBody = `{
	"providerId": 1,
	"clientId": 100,
	"startTime": "2026-09-14T10:00:00Z",
	"endTime": "2026-09-14T11:00:00Z"
}`

func doRequest(t *testing.T, uc ValidateBookingUseCase, body string) (*httptest.ResponseRecorder, ValidateBookingResponse) {
	t.Helper()

	handler := NewHandler(uc, nopLogger{})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/bookings/validate", strings.NewReader(body))
	rec := httptest.NewRecorder()

	handler.Handle(rec, req)

	var resp ValidateBookingResponse
	if rec.Code == http.StatusOK {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	}
	return rec, resp
}

func TestHandle_ValidBooking(t *testing.T) {
	rec, resp := doRequest(t, &fakeUseCase{}, validBody)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, resp.Valid)
	assert.Empty(t, resp.Reason)
}

func TestHandle_RuleViolationReturnsVerdict(t *testing.T) {
	tests := []struct {
		err    error
		reason string
	}{
		{err: validateBooking.ErrProviderUnavailable, reason: ReasonProviderUnavailable},
		{err: validateBooking.ErrInvalidWindow, reason: ReasonInvalidWindow},
		{err: validateBooking.ErrInsufficientNotice, reason: ReasonInsufficientNotice},
		{err: validateBooking.ErrProviderOnVacation, reason: ReasonProviderOnVacation},
		{err: validateBooking.ErrOutsideSchedule, reason: ReasonOutsideSchedule},
		{err: validateBooking.ErrDailyCapacityExceeded, reason: ReasonDailyCapacityExceeded},
	}

	for _, tt := range tests {
		t.Run(tt.reason, func(t *testing.T) {
			rec, resp := doRequest(t, &fakeUseCase{err: tt.err}, validBody)

			assert.Equal(t, http.StatusOK, rec.Code)
			assert.False(t, resp.Valid)
			assert.Equal(t, tt.reason, resp.Reason)
		})
	}
}

func TestHandle_SlotConflictCarriesBookingID(t *testing.T) {
	conflictErr := fmt.Errorf("%w: booking id=42", validateBooking.ErrSlotConflict)

	rec, resp := doRequest(t, &fakeUseCase{err: conflictErr}, validBody)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.False(t, resp.Valid)
	assert.Equal(t, ReasonSlotConflict, resp.Reason)
	assert.Contains(t, resp.Message, "booking id=42")
}

func TestHandle_InvalidBody(t *testing.T) {
	rec, _ := doRequest(t, &fakeUseCase{}, "{not json")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandle_InvalidTimeFormat(t *testing.T) {
	body := `{"providerId": 1, "clientId": 100, "startTime": "10:00", "endTime": "11:00"}`
	rec, _ := doRequest(t, &fakeUseCase{}, body)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandle_InternalError(t *testing.T) {
	rec, _ := doRequest(t, &fakeUseCase{err: validateBooking.ErrInternal}, validBody)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

package dto_test

import (
	"net/http"
	"testing"
	"time"

	"stay/internal/domains/booking/model/dto"
	"stay/shared/failure"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseStayWindow(t *testing.T) {
	tests := []struct {
		name     string
		checkIn  string
		checkOut string
		wantErr  bool
	}{
		{name: "valid window", checkIn: "2025-06-01", checkOut: "2025-06-03"},
		{name: "single night", checkIn: "2025-06-01", checkOut: "2025-06-02"},
		{name: "check-out before check-in", checkIn: "2025-06-03", checkOut: "2025-06-01", wantErr: true},
		{name: "same-day stay", checkIn: "2025-06-01", checkOut: "2025-06-01", wantErr: true},
		{name: "malformed check-in", checkIn: "01-06-2025", checkOut: "2025-06-03", wantErr: true},
		{name: "malformed check-out", checkIn: "2025-06-01", checkOut: "June 3rd", wantErr: true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			checkIn, checkOut, err := dto.ParseStayWindow(tc.checkIn, tc.checkOut)

			if tc.wantErr {
				require.Error(t, err)
				assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))

				return
			}

			require.NoError(t, err)
			assert.True(t, checkOut.After(checkIn))
		})
	}
}

func TestNights(t *testing.T) {
	day := func(d int) time.Time {
		return time.Date(2025, 6, d, 0, 0, 0, 0, time.UTC)
	}

	assert.Equal(t, 1, dto.Nights(day(1), day(2)))
	assert.Equal(t, 2, dto.Nights(day(1), day(3)))
	assert.Equal(t, 13, dto.Nights(day(1), day(14)))
}

func TestNightsAcrossDSTTransition(t *testing.T) {
	loc, err := time.LoadLocation("Europe/Amsterdam")
	require.NoError(t, err)

	// The spring-forward night is 23 hours long; rounding keeps it one night.
	checkIn := time.Date(2025, 3, 29, 0, 0, 0, 0, loc)
	checkOut := time.Date(2025, 3, 31, 0, 0, 0, 0, loc)

	assert.Equal(t, 2, dto.Nights(checkIn, checkOut))
}

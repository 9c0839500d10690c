package flights

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlightTime_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		in   string
		want time.Time
	}{
		{`"2024-01-01T12:00"`, time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)},
		{`"2024-01-01T12:00:30"`, time.Date(2024, 1, 1, 12, 0, 30, 0, time.UTC)},
		{`"2024-01-01T12:00:30.5"`, time.Date(2024, 1, 1, 12, 0, 30, 500000000, time.UTC)},
		{`"2024-01-01T12:00:00Z"`, time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)},
		{`"2024-01-01T15:00:00+03:00"`, time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			var ft FlightTime
			require.NoError(t, json.Unmarshal([]byte(tt.in), &ft))
			assert.True(t, tt.want.Equal(ft.Time()), "got %s", ft.Time())
		})
	}
}

func TestFlightTime_UnmarshalJSON_Invalid(t *testing.T) {
	for _, in := range []string{`"2024-01-01"`, `"tomorrow"`, `"2024-13-01T10:00"`, `1704110400`} {
		var ft FlightTime
		err := json.Unmarshal([]byte(in), &ft)

		var typeErr *json.UnmarshalTypeError
		assert.ErrorAs(t, err, &typeErr, in)
	}
}

func TestCreateFlightInput_DecodesShortTimes(t *testing.T) {
	var input CreateFlightInput
	err := json.Unmarshal([]byte(`{"route":1,"airplane":1,"departure_time":"2024-01-01T10:00","arrival_time":"2024-01-01T12:00","crew":[]}`), &input)

	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC), input.DepartureTime.Time())
	assert.Equal(t, time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC), input.ArrivalTime.Time())
}

func TestCreateFlightInput_BadTimeNamesField(t *testing.T) {
	var input CreateFlightInput
	err := json.Unmarshal([]byte(`{"route":1,"airplane":1,"departure_time":"soon","arrival_time":"2024-01-01T12:00"}`), &input)

	var typeErr *json.UnmarshalTypeError
	require.ErrorAs(t, err, &typeErr)
	assert.Equal(t, "departure_time", typeErr.Field)
}

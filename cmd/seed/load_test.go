package main

import (
	"context"
	"strings"
	"testing"

	"github.com/Domenick1991/airport-service/internal/errs"
	"github.com/Domenick1991/airport-service/internal/service/airports"
	"github.com/Domenick1991/airport-service/internal/service/crews"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Airports(t *testing.T) {
	data := "name,closest_big_city\nJFK,New York\nLHR, London\n"

	var got []airports.CreateAirportInput
	res, err := load(context.Background(), strings.NewReader(data), func(_ context.Context, in airports.CreateAirportInput) error {
		got = append(got, in)
		return nil
	})

	require.NoError(t, err)
	assert.Equal(t, 2, res.Created)
	assert.Equal(t, []airports.CreateAirportInput{
		{Name: "JFK", ClosestBigCity: "New York"},
		{Name: "LHR", ClosestBigCity: "London"},
	}, got)
}

func TestLoad_SkipsFailedRows(t *testing.T) {
	data := "first_name,last_name\nJohn,Doe\nJane,\n"

	res, err := load(context.Background(), strings.NewReader(data), func(_ context.Context, in crews.CreateCrewInput) error {
		if in.LastName == "" {
			return errs.Field("last_name", "is required")
		}
		return nil
	})

	require.NoError(t, err)
	assert.Equal(t, 1, res.Created)
	require.Len(t, res.Failed, 1)
	assert.Equal(t, 3, res.Failed[0].Line)
}

func TestLoad_EmptyInput(t *testing.T) {
	_, err := load(context.Background(), strings.NewReader(""), func(context.Context, crews.CreateCrewInput) error {
		return nil
	})

	assert.Error(t, err)
}

package day_test

import (
	"testing"
	"time"

	"github.com/on-the-ground/typed_basics_go/day"
	"github.com/rickb777/date/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTypeOf(t *testing.T) {
	tests := []struct {
		day  day.Day
		want day.Kind
	}{
		{day.Monday, day.Weekday},
		{day.Tuesday, day.Weekday},
		{day.Wednesday, day.Weekday},
		{day.Thursday, day.Weekday},
		{day.Friday, day.Weekday},
		{day.Saturday, day.Weekend},
		{day.Sunday, day.Weekend},
	}
	for _, tt := range tests {
		t.Run(tt.day.String(), func(t *testing.T) {
			assert.Equal(t, tt.want, day.TypeOf(tt.day))
		})
	}
	assert.Equal(t, "Weekday", string(day.TypeOf(day.Monday)))
	assert.Equal(t, "Weekend", string(day.TypeOf(day.Saturday)))
}

func TestTypeOf_OutOfRangePanics(t *testing.T) {
	assert.Panics(t, func() { day.TypeOf(day.Day(7)) })
}

func TestString(t *testing.T) {
	assert.Equal(t, "Wednesday", day.Wednesday.String())
	assert.Equal(t, "Day(9)", day.Day(9).String())
}

func TestParse(t *testing.T) {
	d, err := day.Parse("saturday")
	require.NoError(t, err)
	assert.Equal(t, day.Saturday, d)

	d, err = day.Parse(" Monday ")
	require.NoError(t, err)
	assert.Equal(t, day.Monday, d)

	_, err = day.Parse("Funday")
	assert.ErrorIs(t, err, day.ErrUnknownDay)
}

func TestFromWeekday(t *testing.T) {
	assert.Equal(t, day.Sunday, day.FromWeekday(time.Sunday))
	assert.Equal(t, day.Monday, day.FromWeekday(time.Monday))
	assert.Equal(t, day.Saturday, day.FromWeekday(time.Saturday))
}

func TestTypeOfDate(t *testing.T) {
	// 2026-10-17 is a Saturday, 2026-10-19 a Monday
	assert.Equal(t, day.Weekend, day.TypeOfDate(date.New(2026, time.October, 17)))
	assert.Equal(t, day.Weekend, day.TypeOfDate(date.New(2026, time.October, 18)))
	assert.Equal(t, day.Weekday, day.TypeOfDate(date.New(2026, time.October, 19)))
	assert.Equal(t, day.Weekday, day.TypeOfDate(date.New(2026, time.October, 19)))
}

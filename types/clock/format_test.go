package clock_test

import (
	"testing"
	"time"

	"github.com/alextanhongpin/lambda/types/clock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLayout(t *testing.T) {
	tests := []struct {
		pattern string
		layout  string
	}{
		{"yyyy-MM-dd", clock.ISODate},
		{"yyyy-MM-dd HH:mm:ss", "2006-01-02 15:04:05"},
		{"yyyy/MM/dd HH:mm:ss", "2006/01/02 15:04:05"},
		{"yyyy-MM-dd'T'HH:mm:ss", "2006-01-02T15:04:05"},
		{"HH:mm:ss.SSS", "15:04:05.000"},
		{"EEE, d MMM yy h:mm a", "Mon, 2 Jan 06 3:04 PM"},
		{"EEEE MMMM", "Monday January"},
		{"yyyy-MM-dd'T'HH:mm:ssXXX", "2006-01-02T15:04:05Z07:00"},
		{"'o''clock' h", "o'clock 3"},
		{"yyyy年MM月dd日", "2006年01月02日"},
	}

	for _, tc := range tests {
		t.Run(tc.pattern, func(t *testing.T) {
			got, err := clock.Layout(tc.pattern)
			require.NoError(t, err)
			assert.Equal(t, tc.layout, got)
		})
	}
}

func TestLayoutInvalid(t *testing.T) {
	for _, pattern := range []string{
		"yyyy-MM-dd T",
		"HH:mm:ssSSS",
		"ddd",
		"'unterminated",
		"yyyy 1",
		"'day 1'",
		"QQ",
		"'Mon' yyyy",
		"yyyy'PM'",
		"yyyy'pm'",
		"'MST' d",
		"'Jan' d",
		"yyyy_d",
		"'_2' yyyy",
		"E'day'",
		"'P'E",
		"Ms",
	} {
		t.Run(pattern, func(t *testing.T) {
			_, err := clock.Layout(pattern)
			assert.ErrorIs(t, err, clock.ErrInvalidPattern)
		})
	}

	assert.Panics(t, func() { clock.MustLayout("QQ") })
}

func TestLayoutLiteralText(t *testing.T) {
	dt := clock.DateTime(2025, 10, 5, 11, 30, 33)

	tests := []struct {
		pattern string
		want    string
	}{
		{"'at' HH_mm", "at 11_30"},
		{"'week of' d MMM", "week of 5 Oct"},
		{"EEEE', the' d", "Sunday, the 5"},
		{"h 'o''clock' a", "11 o'clock AM"},
	}

	for _, tc := range tests {
		t.Run(tc.pattern, func(t *testing.T) {
			got, err := clock.Format(dt, tc.pattern)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestFormatParse(t *testing.T) {
	dt := clock.DateTime(2025, 10, 26, 11, 30, 33)

	s, err := clock.Format(dt, "yyyy-MM-dd HH:mm:ss")
	require.NoError(t, err)
	assert.Equal(t, "2025-10-26 11:30:33", s)

	got, err := clock.Parse("yyyy/MM/dd HH:mm:ss", "2025/10/10 10:10:10")
	require.NoError(t, err)
	assert.Equal(t, clock.DateTime(2025, 10, 10, 10, 10, 10), got)
	assert.Equal(t, "2025-10-10T10:10:10", got.Format(clock.ISODateTime))

	frac := got.Add(250 * time.Millisecond)
	assert.Equal(t, "10:10:10.25", frac.Format(clock.ISOTime))
	assert.Equal(t, "2025-10-10T10:10:10.25", frac.Format(clock.ISODateTime))
	assert.Equal(t, "10:10:10", got.Format(clock.ISOTime))

	_, err = clock.Parse("yyyy/MM/dd", "2025-10-10")
	assert.Error(t, err)

	_, err = clock.Format(dt, "QQ")
	assert.ErrorIs(t, err, clock.ErrInvalidPattern)
}

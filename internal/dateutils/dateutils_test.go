package dateutils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToISODate(t *testing.T) {
	date := time.Date(2025, time.June, 5, 14, 30, 0, 0, time.UTC)
	assert.Equal(t, "2025-06-05", ToISODate(date))
}

func TestParseISODate(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    time.Time
		wantErr bool
	}{
		{name: "valid", input: "2025-06-05", want: time.Date(2025, time.June, 5, 0, 0, 0, 0, time.UTC)},
		{name: "slash format rejected", input: "2025/06/05", wantErr: true},
		{name: "impossible day rejected", input: "2025-02-30", wantErr: true},
		{name: "empty rejected", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseISODate(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.True(t, got.Equal(tt.want))
		})
	}
}

func TestMonthKey(t *testing.T) {
	assert.Equal(t, "2025-06", MonthKey(time.Date(2025, time.June, 30, 23, 59, 0, 0, time.UTC)))
	assert.Equal(t, "2024-12", MonthKey(time.Date(2024, time.December, 1, 0, 0, 0, 0, time.UTC)))
}

func TestStartOfMonth(t *testing.T) {
	got := StartOfMonth(time.Date(2025, time.June, 17, 9, 45, 12, 0, time.UTC))
	assert.True(t, got.Equal(time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC)))
}

func TestPreviousMonth(t *testing.T) {
	tests := []struct {
		name string
		in   time.Time
		want time.Time
	}{
		{
			name: "mid year",
			in:   time.Date(2025, time.June, 17, 10, 0, 0, 0, time.UTC),
			want: time.Date(2025, time.May, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			name: "january crosses the year boundary",
			in:   time.Date(2025, time.January, 3, 0, 0, 0, 0, time.UTC),
			want: time.Date(2024, time.December, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			name: "march after a short february",
			in:   time.Date(2025, time.March, 31, 0, 0, 0, 0, time.UTC),
			want: time.Date(2025, time.February, 1, 0, 0, 0, 0, time.UTC),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.True(t, PreviousMonth(tt.in).Equal(tt.want))
		})
	}
}

func TestTruncate(t *testing.T) {
	got := Truncate(time.Date(2025, time.June, 17, 23, 59, 59, 999, time.UTC))
	assert.True(t, got.Equal(time.Date(2025, time.June, 17, 0, 0, 0, 0, time.UTC)))
}

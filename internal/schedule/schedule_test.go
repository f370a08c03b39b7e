package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/t77yq/alerthub/internal/model"
)

func weekdayDigest() model.ScheduledConfig {
	return model.ScheduledConfig{
		Frequency:    model.FrequencyDaily,
		ScheduleTime: "08:00",
		ScheduleDays: []int{1, 2, 3, 4, 5},
		IncludedAlertTypes: []model.AlertType{
			model.AlertTypeReport,
			model.AlertTypePrice,
			model.AlertTypeNews,
		},
	}
}

func TestNextDelivery(t *testing.T) {
	cfg := weekdayDigest()

	tests := []struct {
		name string
		from time.Time
		want time.Time
	}{
		{
			name: "before delivery time on a weekday",
			from: time.Date(2024, 1, 17, 6, 30, 0, 0, time.UTC), // Wednesday
			want: time.Date(2024, 1, 17, 8, 0, 0, 0, time.UTC),
		},
		{
			name: "after delivery time rolls to next weekday",
			from: time.Date(2024, 1, 17, 9, 0, 0, 0, time.UTC), // Wednesday
			want: time.Date(2024, 1, 18, 8, 0, 0, 0, time.UTC), // Thursday
		},
		{
			name: "friday evening skips the weekend",
			from: time.Date(2024, 1, 19, 20, 0, 0, 0, time.UTC), // Friday
			want: time.Date(2024, 1, 22, 8, 0, 0, 0, time.UTC),  // Monday
		},
		{
			name: "saturday waits for monday",
			from: time.Date(2024, 1, 20, 8, 0, 0, 0, time.UTC), // Saturday
			want: time.Date(2024, 1, 22, 8, 0, 0, 0, time.UTC), // Monday
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			next, err := NextDelivery(cfg, tt.from)
			require.NoError(t, err)
			require.Equal(t, tt.want, next)
		})
	}
}

func TestNextDelivery_SundayIsZero(t *testing.T) {
	cfg := weekdayDigest()
	cfg.ScheduleDays = []int{0}
	cfg.ScheduleTime = "18:30"

	next, err := NextDelivery(cfg, time.Date(2024, 1, 17, 12, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	require.Equal(t, time.Date(2024, 1, 21, 18, 30, 0, 0, time.UTC), next) // Sunday
	require.Equal(t, time.Sunday, next.Weekday())
}

func TestNextDelivery_InvalidConfig(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*model.ScheduledConfig)
	}{
		{"missing colon", func(c *model.ScheduledConfig) { c.ScheduleTime = "0800" }},
		{"hour out of range", func(c *model.ScheduledConfig) { c.ScheduleTime = "24:00" }},
		{"minute out of range", func(c *model.ScheduledConfig) { c.ScheduleTime = "08:60" }},
		{"not a number", func(c *model.ScheduledConfig) { c.ScheduleTime = "eight:00" }},
		{"no days", func(c *model.ScheduledConfig) { c.ScheduleDays = nil }},
		{"day out of range", func(c *model.ScheduledConfig) { c.ScheduleDays = []int{7} }},
		{"negative day", func(c *model.ScheduledConfig) { c.ScheduleDays = []int{-1} }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := weekdayDigest()
			tt.modify(&cfg)
			_, err := NextDelivery(cfg, time.Now())
			require.Error(t, err)
		})
	}
}

func TestNextDelivery_DuplicateDaysTolerated(t *testing.T) {
	cfg := weekdayDigest()
	cfg.ScheduleDays = []int{5, 1, 5, 1}

	next, err := NextDelivery(cfg, time.Date(2024, 1, 17, 12, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	require.Equal(t, time.Friday, next.Weekday())
}

func TestDigestAlerts(t *testing.T) {
	cfg := weekdayDigest()
	cfg.IncludedAlertTypes = []model.AlertType{model.AlertTypePrice, model.AlertTypeNews}

	alerts := []model.Alert{
		{ID: "a-1", Type: model.AlertTypePrice, IsActive: true},
		{ID: "a-2", Type: model.AlertTypePrice, IsActive: false},
		{ID: "a-3", Type: model.AlertTypeNews, IsActive: true},
		{ID: "a-4", Type: model.AlertTypeReport, IsActive: true},
		{ID: "a-5", Type: model.AlertTypeScheduled, IsActive: true},
	}

	covered := DigestAlerts(alerts, cfg)
	require.Len(t, covered, 2)
	require.Equal(t, "a-1", covered[0].ID)
	require.Equal(t, "a-3", covered[1].ID)
}

func TestDigestAlerts_NeverIncludesScheduled(t *testing.T) {
	cfg := weekdayDigest()
	// Even if a scheduled type sneaks into the included list
	cfg.IncludedAlertTypes = append(cfg.IncludedAlertTypes, model.AlertTypeScheduled)

	alerts := []model.Alert{
		{ID: "a-1", Type: model.AlertTypeScheduled, IsActive: true},
	}

	require.Empty(t, DigestAlerts(alerts, cfg))
}

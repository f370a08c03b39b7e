// Package schedule computes delivery times for scheduled digest alerts.
// It is pure computation: no timers run here, and nothing is delivered.
package schedule

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/t77yq/alerthub/internal/model"
)

var parser = cron.NewParser(cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow)

// ErrNoScheduleDays is returned when a scheduled config selects no days
var ErrNoScheduleDays = errors.New("schedule has no days selected")

// NextDelivery returns the first delivery time strictly after from for
// the given scheduled config. ScheduleDays uses 0-6 with Sunday as 0,
// which matches cron day-of-week numbering directly.
func NextDelivery(cfg model.ScheduledConfig, from time.Time) (time.Time, error) {
	expr, err := cronExpression(cfg)
	if err != nil {
		return time.Time{}, err
	}

	sched, err := parser.Parse(expr)
	if err != nil {
		return time.Time{}, fmt.Errorf("failed to parse schedule %q: %w", expr, err)
	}

	return sched.Next(from), nil
}

// cronExpression builds a standard 5-field cron expression from the
// config's HH:MM time and weekday set.
func cronExpression(cfg model.ScheduledConfig) (string, error) {
	hour, minute, err := parseScheduleTime(cfg.ScheduleTime)
	if err != nil {
		return "", err
	}

	if len(cfg.ScheduleDays) == 0 {
		return "", ErrNoScheduleDays
	}

	days := make([]int, 0, len(cfg.ScheduleDays))
	seen := make(map[int]bool, len(cfg.ScheduleDays))
	for _, day := range cfg.ScheduleDays {
		if day < 0 || day > 6 {
			return "", fmt.Errorf("invalid schedule day %d: must be 0-6", day)
		}
		if !seen[day] {
			seen[day] = true
			days = append(days, day)
		}
	}
	sort.Ints(days)

	fields := make([]string, len(days))
	for i, day := range days {
		fields[i] = strconv.Itoa(day)
	}

	return fmt.Sprintf("%d %d * * %s", minute, hour, strings.Join(fields, ",")), nil
}

func parseScheduleTime(value string) (hour, minute int, err error) {
	parts := strings.SplitN(value, ":", 2)
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("invalid schedule time %q: want HH:MM", value)
	}
	hour, err = strconv.Atoi(parts[0])
	if err != nil {
		return 0, 0, fmt.Errorf("invalid schedule time %q: %w", value, err)
	}
	minute, err = strconv.Atoi(parts[1])
	if err != nil {
		return 0, 0, fmt.Errorf("invalid schedule time %q: %w", value, err)
	}
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return 0, 0, fmt.Errorf("invalid schedule time %q: out of range", value)
	}
	return hour, minute, nil
}

// DigestAlerts returns the active alerts a scheduled digest covers:
// those whose type is listed in the config's included types. Scheduled
// alerts never include one another.
func DigestAlerts(alerts []model.Alert, cfg model.ScheduledConfig) []model.Alert {
	included := make(map[model.AlertType]bool, len(cfg.IncludedAlertTypes))
	for _, t := range cfg.IncludedAlertTypes {
		included[t] = true
	}

	covered := make([]model.Alert, 0, len(alerts))
	for _, alert := range alerts {
		if !alert.IsActive || model.IsScheduledAlert(alert) {
			continue
		}
		if included[alert.Type] {
			covered = append(covered, alert)
		}
	}
	return covered
}

package model

import (
	"time"

	"github.com/google/uuid"
)

// DefaultConfig returns the canonical empty configuration for the given
// alert type. Scheduled alerts are daily-only by convention and default
// to 08:00 on weekdays; every other type defaults to realtime delivery.
func DefaultConfig(alertType AlertType) AlertConfig {
	switch alertType {
	case AlertTypeReport:
		return &ReportConfig{
			Frequency: FrequencyRealtime,
			Reports:   []Report{},
		}
	case AlertTypePrice:
		return &PriceConfig{
			Frequency:  FrequencyRealtime,
			Symbol:     "",
			SymbolName: "",
			Condition:  PriceConditionAbove,
			Threshold:  0,
		}
	case AlertTypeNews:
		return &NewsConfig{
			Frequency: FrequencyRealtime,
			Keywords:  []string{},
			Sources:   []string{},
			Topics:    []string{},
		}
	case AlertTypePublication:
		return &PublicationConfig{
			Frequency:    FrequencyRealtime,
			Publications: []string{},
			Categories:   []string{},
		}
	case AlertTypeScheduled:
		return &ScheduledConfig{
			Frequency:          FrequencyDaily,
			ScheduleTime:       "08:00",
			ScheduleDays:       []int{1, 2, 3, 4, 5},
			IncludedAlertTypes: []AlertType{},
		}
	}
	return nil
}

// NewAlert creates a draft alert with a fresh id, equal creation and
// update timestamps, and the default configuration for its type. The
// draft is not persisted anywhere until handed to the store.
func NewAlert(alertType AlertType, name string) Alert {
	now := time.Now().UTC()
	return Alert{
		ID:        uuid.New().String(),
		Name:      name,
		Type:      alertType,
		IsActive:  true,
		CreatedAt: now,
		UpdatedAt: now,
		Config:    DefaultConfig(alertType),
	}
}

package model

import (
	"encoding/json"
	"fmt"
	"time"
)

// AlertType represents the kind of alert and selects its config variant
type AlertType string

const (
	AlertTypeReport      AlertType = "report"
	AlertTypePrice       AlertType = "price"
	AlertTypeNews        AlertType = "news"
	AlertTypePublication AlertType = "publication"
	AlertTypeScheduled   AlertType = "scheduled"
)

// AlertFrequency represents how often an alert is delivered
type AlertFrequency string

const (
	FrequencyRealtime AlertFrequency = "realtime"
	FrequencyDaily    AlertFrequency = "daily"
	FrequencyWeekly   AlertFrequency = "weekly"
	FrequencyMonthly  AlertFrequency = "monthly"
)

// PriceCondition represents the trigger condition of a price alert
type PriceCondition string

const (
	PriceConditionAbove         PriceCondition = "above"
	PriceConditionBelow         PriceCondition = "below"
	PriceConditionChangePercent PriceCondition = "change_percent"
)

// AlertTypeLabels maps alert types to their display names
var AlertTypeLabels = map[AlertType]string{
	AlertTypeReport:      "Report Alert",
	AlertTypePrice:       "Price Alert",
	AlertTypeNews:        "News Alert",
	AlertTypePublication: "Publication Alert",
	AlertTypeScheduled:   "Scheduled Alert",
}

// FrequencyLabels maps frequencies to their display names
var FrequencyLabels = map[AlertFrequency]string{
	FrequencyRealtime: "Real-time",
	FrequencyDaily:    "Daily",
	FrequencyWeekly:   "Weekly",
	FrequencyMonthly:  "Monthly",
}

// Alert represents a user-defined notification subscription.
// The Type field is authoritative: it selects which config variant
// Config carries, never the config shape itself.
type Alert struct {
	ID        string      `json:"id"`
	Name      string      `json:"name"`
	Type      AlertType   `json:"type"`
	IsActive  bool        `json:"isActive"`
	CreatedAt time.Time   `json:"createdAt"`
	UpdatedAt time.Time   `json:"updatedAt"`
	Config    AlertConfig `json:"config"`
}

// UnmarshalJSON decodes an alert, dispatching the config variant on Type.
func (a *Alert) UnmarshalJSON(data []byte) error {
	type alias Alert
	raw := struct {
		*alias
		Config json.RawMessage `json:"config"`
	}{alias: (*alias)(a)}

	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	config, err := unmarshalConfig(a.Type, raw.Config)
	if err != nil {
		return err
	}
	a.Config = config
	return nil
}

func unmarshalConfig(alertType AlertType, data json.RawMessage) (AlertConfig, error) {
	var config AlertConfig
	switch alertType {
	case AlertTypeReport:
		config = &ReportConfig{}
	case AlertTypePrice:
		config = &PriceConfig{}
	case AlertTypeNews:
		config = &NewsConfig{}
	case AlertTypePublication:
		config = &PublicationConfig{}
	case AlertTypeScheduled:
		config = &ScheduledConfig{}
	default:
		return nil, fmt.Errorf("unknown alert type: %q", alertType)
	}

	if len(data) == 0 {
		return config, nil
	}
	if err := json.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to decode %s config: %w", alertType, err)
	}
	return config, nil
}

// Clone returns a deep copy of the alert, including its config.
func (a Alert) Clone() Alert {
	clone := a
	if a.Config != nil {
		clone.Config = a.Config.clone()
	}
	return clone
}

// IsReportAlert reports whether the alert carries a report config
func IsReportAlert(a Alert) bool { return a.Type == AlertTypeReport }

// IsPriceAlert reports whether the alert carries a price config
func IsPriceAlert(a Alert) bool { return a.Type == AlertTypePrice }

// IsNewsAlert reports whether the alert carries a news config
func IsNewsAlert(a Alert) bool { return a.Type == AlertTypeNews }

// IsPublicationAlert reports whether the alert carries a publication config
func IsPublicationAlert(a Alert) bool { return a.Type == AlertTypePublication }

// IsScheduledAlert reports whether the alert carries a scheduled config
func IsScheduledAlert(a Alert) bool { return a.Type == AlertTypeScheduled }

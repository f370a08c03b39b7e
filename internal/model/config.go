package model

import "slices"

// AlertConfig is the type-specific payload of an alert. The set of
// implementations is closed: one variant per AlertType.
type AlertConfig interface {
	// Kind returns the alert type this config belongs to
	Kind() AlertType

	clone() AlertConfig
}

// ReportConfig configures an alert over a set of selected reports.
// Reports are denormalized copies taken from the catalog at selection
// time; later catalog changes do not affect existing alerts.
type ReportConfig struct {
	Frequency AlertFrequency `json:"frequency"`
	Reports   []Report       `json:"reports"`
}

// Kind implements AlertConfig
func (c *ReportConfig) Kind() AlertType { return AlertTypeReport }

func (c *ReportConfig) clone() AlertConfig {
	clone := *c
	clone.Reports = slices.Clone(c.Reports)
	return &clone
}

// PriceConfig configures a price-threshold alert for a single symbol
type PriceConfig struct {
	Frequency    AlertFrequency `json:"frequency"`
	Symbol       string         `json:"symbol"`
	SymbolName   string         `json:"symbolName"`
	Condition    PriceCondition `json:"condition"`
	Threshold    float64        `json:"threshold"`
	CurrentPrice *float64       `json:"currentPrice,omitempty"`
}

// Kind implements AlertConfig
func (c *PriceConfig) Kind() AlertType { return AlertTypePrice }

func (c *PriceConfig) clone() AlertConfig {
	clone := *c
	if c.CurrentPrice != nil {
		price := *c.CurrentPrice
		clone.CurrentPrice = &price
	}
	return &clone
}

// NewsConfig configures a keyword-based news alert
type NewsConfig struct {
	Frequency AlertFrequency `json:"frequency"`
	Keywords  []string       `json:"keywords"`
	Sources   []string       `json:"sources"`
	Topics    []string       `json:"topics"`
}

// Kind implements AlertConfig
func (c *NewsConfig) Kind() AlertType { return AlertTypeNews }

func (c *NewsConfig) clone() AlertConfig {
	clone := *c
	clone.Keywords = slices.Clone(c.Keywords)
	clone.Sources = slices.Clone(c.Sources)
	clone.Topics = slices.Clone(c.Topics)
	return &clone
}

// PublicationConfig configures a publication-release alert
type PublicationConfig struct {
	Frequency    AlertFrequency `json:"frequency"`
	Publications []string       `json:"publications"`
	Categories   []string       `json:"categories"`
}

// Kind implements AlertConfig
func (c *PublicationConfig) Kind() AlertType { return AlertTypePublication }

func (c *PublicationConfig) clone() AlertConfig {
	clone := *c
	clone.Publications = slices.Clone(c.Publications)
	clone.Categories = slices.Clone(c.Categories)
	return &clone
}

// ScheduledConfig configures a scheduled digest alert. ScheduleDays
// uses 0-6 with Sunday as 0; ScheduleTime is a 24-hour "HH:MM" string.
type ScheduledConfig struct {
	Frequency          AlertFrequency `json:"frequency"`
	ScheduleTime       string         `json:"scheduleTime"`
	ScheduleDays       []int          `json:"scheduleDays"`
	IncludedAlertTypes []AlertType    `json:"includedAlertTypes"`
}

// Kind implements AlertConfig
func (c *ScheduledConfig) Kind() AlertType { return AlertTypeScheduled }

func (c *ScheduledConfig) clone() AlertConfig {
	clone := *c
	clone.ScheduleDays = slices.Clone(c.ScheduleDays)
	clone.IncludedAlertTypes = slices.Clone(c.IncludedAlertTypes)
	return &clone
}

package store

import (
	"time"

	"github.com/t77yq/alerthub/internal/catalog"
	"github.com/t77yq/alerthub/internal/model"
)

func seedTime(value string) time.Time {
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		panic("store: bad seed timestamp: " + value)
	}
	return t
}

func floatPtr(v float64) *float64 { return &v }

// seedAlerts returns the fixed default collection adopted on first run
// or after a failed load. Report entries are denormalized copies from
// the catalog, matching what a user would have selected.
func seedAlerts() []model.Alert {
	reports := catalog.Reports()

	return []model.Alert{
		{
			ID:        "alert-001",
			Name:      "My Energy Docs",
			Type:      model.AlertTypeReport,
			IsActive:  true,
			CreatedAt: seedTime("2024-01-15T10:00:00Z"),
			UpdatedAt: seedTime("2024-01-20T14:30:00Z"),
			Config: &model.ReportConfig{
				Frequency: model.FrequencyRealtime,
				Reports:   reports[0:6],
			},
		},
		{
			ID:        "alert-002",
			Name:      "US Northeast Power",
			Type:      model.AlertTypePrice,
			IsActive:  true,
			CreatedAt: seedTime("2024-01-10T09:00:00Z"),
			UpdatedAt: seedTime("2024-01-18T11:00:00Z"),
			Config: &model.PriceConfig{
				Frequency:    model.FrequencyRealtime,
				Symbol:       "AAGPL00",
				SymbolName:   "US Northeast Power",
				Condition:    model.PriceConditionAbove,
				Threshold:    75.0,
				CurrentPrice: floatPtr(72.5),
			},
		},
		{
			ID:        "alert-003",
			Name:      "OPEC News",
			Type:      model.AlertTypeNews,
			IsActive:  true,
			CreatedAt: seedTime("2024-01-08T08:00:00Z"),
			UpdatedAt: seedTime("2024-01-19T16:00:00Z"),
			Config: &model.NewsConfig{
				Frequency: model.FrequencyRealtime,
				Keywords:  []string{"OPEC", "oil production", "crude output"},
				Sources:   []string{"Reuters", "Bloomberg", "S&P Global"},
				Topics:    []string{"Energy", "Oil & Gas"},
			},
		},
		{
			ID:        "alert-004",
			Name:      "Gas and Power",
			Type:      model.AlertTypePublication,
			IsActive:  true,
			CreatedAt: seedTime("2024-01-05T07:00:00Z"),
			UpdatedAt: seedTime("2024-01-17T09:00:00Z"),
			Config: &model.PublicationConfig{
				Frequency:    model.FrequencyDaily,
				Publications: []string{"Gas Daily", "Megawatt Daily", "Power Markets Week"},
				Categories:   []string{"Natural Gas", "Power"},
			},
		},
		{
			ID:        "alert-005",
			Name:      "My Daily Digest",
			Type:      model.AlertTypeScheduled,
			IsActive:  true,
			CreatedAt: seedTime("2024-01-01T06:00:00Z"),
			UpdatedAt: seedTime("2024-01-16T08:00:00Z"),
			Config: &model.ScheduledConfig{
				Frequency:    model.FrequencyDaily,
				ScheduleTime: "08:00",
				ScheduleDays: []int{1, 2, 3, 4, 5},
				IncludedAlertTypes: []model.AlertType{
					model.AlertTypeReport,
					model.AlertTypePrice,
					model.AlertTypeNews,
				},
			},
		},
		{
			ID:        "alert-006",
			Name:      "OPEC News",
			Type:      model.AlertTypeNews,
			IsActive:  true,
			CreatedAt: seedTime("2024-01-12T10:00:00Z"),
			UpdatedAt: seedTime("2024-01-21T12:00:00Z"),
			Config: &model.NewsConfig{
				Frequency: model.FrequencyRealtime,
				Keywords:  []string{"OPEC+", "Saudi Arabia", "production cuts"},
				Sources:   []string{"S&P Global Platts"},
			},
		},
		{
			ID:        "alert-007",
			Name:      "Gas and Power",
			Type:      model.AlertTypePrice,
			IsActive:  true,
			CreatedAt: seedTime("2024-01-14T11:00:00Z"),
			UpdatedAt: seedTime("2024-01-22T15:00:00Z"),
			Config: &model.PriceConfig{
				Frequency:    model.FrequencyRealtime,
				Symbol:       "AAGNG00",
				SymbolName:   "Henry Hub Natural Gas",
				Condition:    model.PriceConditionChangePercent,
				Threshold:    5.0,
				CurrentPrice: floatPtr(2.85),
			},
		},
		{
			ID:        "alert-008",
			Name:      "East Texas Agua Dulce Hub",
			Type:      model.AlertTypePrice,
			IsActive:  true,
			CreatedAt: seedTime("2024-01-13T09:30:00Z"),
			UpdatedAt: seedTime("2024-01-23T10:00:00Z"),
			Config: &model.PriceConfig{
				Frequency:    model.FrequencyRealtime,
				Symbol:       "AETDH00",
				SymbolName:   "East Texas Agua Dulce Hub",
				Condition:    model.PriceConditionBelow,
				Threshold:    2.50,
				CurrentPrice: floatPtr(2.65),
			},
		},
	}
}

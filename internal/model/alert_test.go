package model

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestAlert_TypeGuards(t *testing.T) {
	guards := []struct {
		alertType AlertType
		guard     func(Alert) bool
	}{
		{AlertTypeReport, IsReportAlert},
		{AlertTypePrice, IsPriceAlert},
		{AlertTypeNews, IsNewsAlert},
		{AlertTypePublication, IsPublicationAlert},
		{AlertTypeScheduled, IsScheduledAlert},
	}

	for _, alertType := range []AlertType{
		AlertTypeReport, AlertTypePrice, AlertTypeNews,
		AlertTypePublication, AlertTypeScheduled,
	} {
		alert := NewAlert(alertType, "test")

		// Exactly one guard holds, decided by the type field alone
		matches := 0
		for _, g := range guards {
			if g.guard(alert) {
				matches++
				require.Equal(t, alertType, g.alertType)
			}
		}
		require.Equal(t, 1, matches, "alert type %s", alertType)
	}
}

func TestAlert_UnmarshalDispatchesConfig(t *testing.T) {
	tests := []struct {
		name      string
		alertType AlertType
		config    string
		want      AlertConfig
	}{
		{
			name:      "report",
			alertType: AlertTypeReport,
			config:    `{"frequency":"realtime","reports":[{"id":"rep-007","name":"Gas Daily","geography":"North America","commodity":"Natural Gas","type":"Market Report"}]}`,
			want: &ReportConfig{
				Frequency: FrequencyRealtime,
				Reports: []Report{{
					ID: "rep-007", Name: "Gas Daily", Geography: "North America",
					Commodity: "Natural Gas", Type: "Market Report",
				}},
			},
		},
		{
			name:      "price",
			alertType: AlertTypePrice,
			config:    `{"frequency":"realtime","symbol":"PCAAS00","symbolName":"Brent Crude","condition":"below","threshold":80.5}`,
			want: &PriceConfig{
				Frequency: FrequencyRealtime,
				Symbol:    "PCAAS00", SymbolName: "Brent Crude",
				Condition: PriceConditionBelow, Threshold: 80.5,
			},
		},
		{
			name:      "news",
			alertType: AlertTypeNews,
			config:    `{"frequency":"daily","keywords":["OPEC"],"sources":["Reuters"]}`,
			want: &NewsConfig{
				Frequency: FrequencyDaily,
				Keywords:  []string{"OPEC"},
				Sources:   []string{"Reuters"},
			},
		},
		{
			name:      "publication",
			alertType: AlertTypePublication,
			config:    `{"frequency":"weekly","publications":["Gas Daily"]}`,
			want: &PublicationConfig{
				Frequency:    FrequencyWeekly,
				Publications: []string{"Gas Daily"},
			},
		},
		{
			name:      "scheduled",
			alertType: AlertTypeScheduled,
			config:    `{"frequency":"daily","scheduleTime":"08:00","scheduleDays":[1,2,3,4,5],"includedAlertTypes":["report","news"]}`,
			want: &ScheduledConfig{
				Frequency:    FrequencyDaily,
				ScheduleTime: "08:00",
				ScheduleDays: []int{1, 2, 3, 4, 5},
				IncludedAlertTypes: []AlertType{
					AlertTypeReport, AlertTypeNews,
				},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data := `{"id":"a-1","name":"Test","type":"` + string(tt.alertType) +
				`","isActive":true,"createdAt":"2024-01-15T10:00:00Z","updatedAt":"2024-01-15T10:00:00Z","config":` + tt.config + `}`

			var alert Alert
			require.NoError(t, json.Unmarshal([]byte(data), &alert))
			require.Equal(t, tt.alertType, alert.Type)
			require.Equal(t, tt.want, alert.Config)
			require.Equal(t, tt.alertType, alert.Config.Kind())
		})
	}
}

func TestAlert_UnmarshalUnknownType(t *testing.T) {
	data := `{"id":"a-1","name":"Test","type":"weather","isActive":true,"config":{}}`

	var alert Alert
	err := json.Unmarshal([]byte(data), &alert)
	require.Error(t, err)
	require.Contains(t, err.Error(), "unknown alert type")
}

func TestAlert_JSONRoundTrip(t *testing.T) {
	price := 72.5
	original := Alert{
		ID:        "alert-002",
		Name:      "US Northeast Power",
		Type:      AlertTypePrice,
		IsActive:  true,
		CreatedAt: time.Date(2024, 1, 10, 9, 0, 0, 0, time.UTC),
		UpdatedAt: time.Date(2024, 1, 18, 11, 0, 0, 0, time.UTC),
		Config: &PriceConfig{
			Frequency:    FrequencyRealtime,
			Symbol:       "AAGPL00",
			SymbolName:   "US Northeast Power",
			Condition:    PriceConditionAbove,
			Threshold:    75.0,
			CurrentPrice: &price,
		},
	}

	data, err := json.Marshal(original)
	require.NoError(t, err)

	var decoded Alert
	require.NoError(t, json.Unmarshal(data, &decoded))
	require.Equal(t, original, decoded)
}

func TestAlert_CloneIsolation(t *testing.T) {
	original := Alert{
		ID:       "alert-003",
		Name:     "OPEC News",
		Type:     AlertTypeNews,
		IsActive: true,
		Config: &NewsConfig{
			Frequency: FrequencyRealtime,
			Keywords:  []string{"OPEC", "oil production"},
			Sources:   []string{"Reuters"},
		},
	}

	clone := original.Clone()
	require.Equal(t, original, clone)

	// Mutating the clone's config must not leak into the original
	cloneConfig := clone.Config.(*NewsConfig)
	cloneConfig.Keywords[0] = "changed"
	cloneConfig.Sources = append(cloneConfig.Sources, "Bloomberg")

	originalConfig := original.Config.(*NewsConfig)
	require.Equal(t, "OPEC", originalConfig.Keywords[0])
	require.Len(t, originalConfig.Sources, 1)
}

func TestAlertTypeLabels(t *testing.T) {
	for _, alertType := range []AlertType{
		AlertTypeReport, AlertTypePrice, AlertTypeNews,
		AlertTypePublication, AlertTypeScheduled,
	} {
		require.NotEmpty(t, AlertTypeLabels[alertType])
	}
	for _, frequency := range []AlertFrequency{
		FrequencyRealtime, FrequencyDaily, FrequencyWeekly, FrequencyMonthly,
	} {
		require.NotEmpty(t, FrequencyLabels[frequency])
	}
}

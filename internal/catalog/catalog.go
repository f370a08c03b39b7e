// Package catalog holds the static reference data consumed when alerts
// are created or edited: the selectable report catalog, the price symbol
// directory, and the news topic/source lists. The catalog is read-only;
// accessors return copies so callers cannot mutate it.
package catalog

import (
	"slices"

	"github.com/t77yq/alerthub/internal/model"
)

// PriceSymbol is a selectable price assessment symbol
type PriceSymbol struct {
	Symbol    string `json:"symbol"`
	Name      string `json:"name"`
	Commodity string `json:"commodity"`
}

var availableReports = []model.Report{
	{ID: "rep-001", Name: "Analytics Year-End Report", Geography: "Global", Commodity: "Multi-commodity", Type: "Analytics Report"},
	{ID: "rep-002", Name: "Australia Coal Data", Geography: "Asia Pacific", Commodity: "Coal", Type: "Market Data"},
	{ID: "rep-003", Name: "Basic Market Model: Gulf Demand", Geography: "North America", Commodity: "Oil", Type: "Market Model"},
	{ID: "rep-004", Name: "Canadian Observer History", Geography: "North America", Commodity: "Natural Gas", Type: "Market Report"},
	{ID: "rep-005", Name: "Megawatt Daily", Geography: "North America", Commodity: "Power", Type: "Market Report"},
	{ID: "rep-006", Name: "Power Sales Analysis", Geography: "North America", Commodity: "Power", Type: "Analytics Report"},
	{ID: "rep-007", Name: "Gas Daily", Geography: "North America", Commodity: "Natural Gas", Type: "Market Report"},
	{ID: "rep-008", Name: "Inside FERC", Geography: "North America", Commodity: "Power", Type: "Market Report"},
	{ID: "rep-009", Name: "European Gas Markets", Geography: "Europe", Commodity: "Natural Gas", Type: "Market Report"},
	{ID: "rep-010", Name: "LNG Daily", Geography: "Global", Commodity: "LNG", Type: "Market Report"},
	{ID: "rep-011", Name: "Crude Oil Marketwire", Geography: "Global", Commodity: "Oil", Type: "Market Report"},
	{ID: "rep-012", Name: "Metals Daily", Geography: "Global", Commodity: "Metals", Type: "Market Report"},
}

var availablePriceSymbols = []PriceSymbol{
	{Symbol: "AAGPL00", Name: "US Northeast Power", Commodity: "Power"},
	{Symbol: "AAGNG00", Name: "Henry Hub Natural Gas", Commodity: "Natural Gas"},
	{Symbol: "PCAAS00", Name: "Brent Crude", Commodity: "Oil"},
	{Symbol: "PCAAC00", Name: "WTI Crude", Commodity: "Oil"},
	{Symbol: "MTAAU00", Name: "Gold Spot", Commodity: "Metals"},
	{Symbol: "MTAAG00", Name: "Silver Spot", Commodity: "Metals"},
	{Symbol: "AAGNB00", Name: "NBP Natural Gas", Commodity: "Natural Gas"},
	{Symbol: "AETDH00", Name: "East Texas Agua Dulce Hub", Commodity: "Natural Gas"},
}

var newsTopics = []string{
	"Oil & Gas",
	"Power & Renewables",
	"Metals & Mining",
	"Petrochemicals",
	"Agriculture",
	"Shipping",
	"Carbon & ESG",
	"Economics",
	"Geopolitics",
}

var newsSources = []string{
	"S&P Global Platts",
	"S&P Global Market Intelligence",
	"Reuters",
	"Bloomberg",
	"Financial Times",
	"Wall Street Journal",
}

// Reports returns the selectable report catalog
func Reports() []model.Report {
	return slices.Clone(availableReports)
}

// PriceSymbols returns the selectable price symbol directory
func PriceSymbols() []PriceSymbol {
	return slices.Clone(availablePriceSymbols)
}

// NewsTopics returns the selectable news topics
func NewsTopics() []string {
	return slices.Clone(newsTopics)
}

// NewsSources returns the selectable news sources
func NewsSources() []string {
	return slices.Clone(newsSources)
}

// ReportByID looks up a report in the catalog
func ReportByID(id string) (model.Report, bool) {
	for _, report := range availableReports {
		if report.ID == id {
			return report, true
		}
	}
	return model.Report{}, false
}

// SymbolByCode looks up a price symbol in the directory
func SymbolByCode(code string) (PriceSymbol, bool) {
	for _, symbol := range availablePriceSymbols {
		if symbol.Symbol == code {
			return symbol, true
		}
	}
	return PriceSymbol{}, false
}

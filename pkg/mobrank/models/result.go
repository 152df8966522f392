package models

import "time"

// RawRecord is a percentage found while scanning one group.
type RawRecord struct {
	// Name is the resolved entity name.
	Name string `json:"name" yaml:"name"`
	// Value is the normalized achievement in [0, 100].
	Value float64 `json:"value" yaml:"value"`
	// Raw is the original cell content.
	Raw interface{} `json:"raw" yaml:"raw"`
	// Row is the source row (1-based).
	Row int `json:"row" yaml:"row"`
	// Column is the source column label.
	Column string `json:"column" yaml:"column"`
}

// RankedEntry is one position in a group ranking.
type RankedEntry struct {
	// Position is the dense 1-based rank.
	Position int `json:"position" yaml:"position"`
	// Name is the entity name.
	Name string `json:"name" yaml:"name"`
	// AchievementPercent is the normalized value rounded to 2 decimals.
	AchievementPercent float64 `json:"achievement_percent" yaml:"achievement_percent"`
	// RawValue is the unmodified source cell content.
	RawValue interface{} `json:"raw_value" yaml:"raw_value"`
}

// GroupResult is the outcome for a single group.
type GroupResult struct {
	// TotalRecords is the number of ranked entities.
	TotalRecords int `json:"total_records" yaml:"total_records"`
	// Ranking is ordered by descending achievement.
	Ranking []RankedEntry `json:"ranking" yaml:"ranking"`
	// ColumnsUsed lists the scanned column labels.
	ColumnsUsed []string `json:"columns_used,omitempty" yaml:"columns_used,omitempty"`
	// Message is an informational note (e.g., no records found).
	Message string `json:"message,omitempty" yaml:"message,omitempty"`
	// Error is set when extraction failed for this group.
	Error string `json:"error,omitempty" yaml:"error,omitempty"`
}

// AnalysisResult is the aggregate outcome of one analysis run.
type AnalysisResult struct {
	// Success is false only when the input could not be loaded.
	Success bool `json:"success" yaml:"success"`
	// Source names the analysed file or sheet.
	Source string `json:"source,omitempty" yaml:"source,omitempty"`
	// Rankings maps group name to its result.
	Rankings map[string]GroupResult `json:"rankings" yaml:"rankings"`
	// GroupOrder lists group names in registry order.
	GroupOrder []string `json:"group_order" yaml:"group_order"`
	// Timestamp is the generation time.
	Timestamp time.Time `json:"timestamp" yaml:"timestamp"`
	// Error is the fatal error message when Success is false.
	Error string `json:"error,omitempty" yaml:"error,omitempty"`
}

// Groups returns the group results in registry order.
func (r *AnalysisResult) Groups() []NamedGroupResult {
	out := make([]NamedGroupResult, 0, len(r.GroupOrder))
	for _, name := range r.GroupOrder {
		out = append(out, NamedGroupResult{Name: name, GroupResult: r.Rankings[name]})
	}
	return out
}

// NamedGroupResult pairs a group result with its name.
type NamedGroupResult struct {
	Name string
	GroupResult
}

package dto

// DashboardResponse aggregates activity counts and finance totals for a month window.
type DashboardResponse struct {
	TotalActivities int64            `json:"total_activities"`
	TotalIncome     float64          `json:"total_income"`
	TotalExpense    float64          `json:"total_expense"`
	PerCategory     map[string]int64 `json:"per_category"`
}

// RecapRequest selects the month window for a narrative recap.
// Zero values default to the current UTC month and year.
type RecapRequest struct {
	Month int `json:"month"`
	Year  int `json:"year"`
}

// RecapResponse carries the monthly recap breakdown and narrative summary.
type RecapResponse struct {
	Month      int              `json:"month"`
	Year       int              `json:"year"`
	Categories map[string]int64 `json:"categories"`
	Income     float64          `json:"income"`
	Expense    float64          `json:"expense"`
	Summary    string           `json:"summary"`
}

// UploadResponse describes a stored upload and its retrieval URL.
type UploadResponse struct {
	Filename    string `json:"filename"`
	URL         string `json:"url"`
	ContentType string `json:"content_type"`
	Size        int64  `json:"size"`
}

// ExportFile is a rendered export ready to be served as an attachment.
type ExportFile struct {
	Filename    string
	ContentType string
	Content     []byte
}

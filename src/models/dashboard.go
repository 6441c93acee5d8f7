package models

// DashboardSummary entity cardinalities for the admin dashboard. Counts are
// read independently; a failed count is reported as -1 with Partial set so
// the others still come through.
type DashboardSummary struct {
	Students int64 `json:"students"`
	Teachers int64 `json:"teachers"`
	Courses  int64 `json:"courses"`
	Partial  bool  `json:"partial"`
}

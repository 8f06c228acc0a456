package domain

// Sync outcome statuses. Every reconciliation call resolves to exactly one.
const (
	SyncStatusError   = "error"
	SyncStatusInfo    = "info"
	SyncStatusSuccess = "success"
)

// Daily status values reported by the status check.
const (
	DayStatusComplete = "complete"
	DayStatusMissing  = "missing"
)

// SyncResult is the structured outcome of one reconciliation call.
// Failures are reported through this payload rather than raised; partial
// progress within a date range is never broken out per date, only the
// aggregate outcome or the single date that caused an abort.
type SyncResult struct {
	Status   string   `json:"status"` // error | info | success
	Message  string   `json:"message"`
	Detail   string   `json:"detail,omitempty"`
	Inserted []string `json:"inserted,omitempty"` // currency codes with new rows
	Updated  []string `json:"updated,omitempty"`  // currency codes overwritten
	Debug    []string `json:"debug,omitempty"`    // per-currency trace lines
}

// SyncStatus reports whether rates exist for a given calendar day.
type SyncStatus struct {
	Status  string `json:"status"` // complete | missing
	Message string `json:"message"`
	Detail  string `json:"detail"` // the day, yyyy-MM-dd
}

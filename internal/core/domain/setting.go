package domain

// Setting is one per-user configuration entry.
type Setting struct {
	UserID string `json:"userID"`
	Key    string `json:"key"`
	Value  string `json:"value"`
	AuditFields
}

// Known setting keys.
const (
	SettingAdjustmentWindow = "adjustmentWindow" // Eligibility window in days
	SettingDefaultStore     = "defaultStore"     // Store name preselected in clients
)

// DefaultAdjustmentWindowDays is the policy default when a user has no
// adjustmentWindow setting stored.
const DefaultAdjustmentWindowDays = 30

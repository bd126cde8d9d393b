package dto

// SettingsResponse defines the effective per-user settings.
type SettingsResponse struct {
	AdjustmentWindow int    `json:"adjustmentWindow"` // Days; policy default when never set
	DefaultStore     string `json:"defaultStore"`
}

// UpdateSettingsRequest updates per-user settings. Pointers distinguish
// omitted fields from zero values.
type UpdateSettingsRequest struct {
	AdjustmentWindow *int    `json:"adjustmentWindow" binding:"omitempty,min=1,max=365"`
	DefaultStore     *string `json:"defaultStore"`
}

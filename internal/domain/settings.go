package domain

// DefaultRecommendedHours is used when no settings row has been saved yet.
const DefaultRecommendedHours = 8.0

// Settings is the single-row table holding user preferences.
type Settings struct {
	ID               int     `gorm:"primaryKey" json:"-"`
	RecommendedHours float64 `gorm:"not null;default:8" json:"recommended_hours"`
}

func (Settings) TableName() string {
	return "settings"
}

// UpdateSettingsRequest is the request body for changing preferences.
// @Description Request payload for updating the recommended nightly hours.
type UpdateSettingsRequest struct {
	// Recommended nightly sleep hours, between 1 and 24
	RecommendedHours float64 `json:"recommended_hours" validate:"required,gte=1,lte=24" example:"8"`
}

// SettingsResponse is the response body for settings endpoints.
// @Description Current user preferences.
type SettingsResponse struct {
	// Recommended nightly sleep hours
	RecommendedHours float64 `json:"recommended_hours" example:"8"`
}

package domain

type NotificationFrequency string

const (
	NotificationFrequencyNone     NotificationFrequency = "none"
	NotificationFrequencyDaily    NotificationFrequency = "daily"
	NotificationFrequencyRealtime NotificationFrequency = "realtime"
)

// UserPreferences are the settings a reader chooses explicitly, as opposed
// to the UserProfile which is inferred from their history.
type UserPreferences struct {
	DiversityLevel        DiversityLevel        `json:"diversity_level"`
	PreferredCategories   []string              `json:"preferred_categories"`
	PreferredCountries    []string              `json:"preferred_countries"`
	NotificationFrequency NotificationFrequency `json:"notification_frequency"`
}

func DefaultUserPreferences() UserPreferences {
	return UserPreferences{
		DiversityLevel:        DiversityMedium,
		PreferredCategories:   []string{},
		PreferredCountries:    []string{},
		NotificationFrequency: NotificationFrequencyDaily,
	}
}

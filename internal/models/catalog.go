package models

// CatalogItem is a deduplicated-by-name entry shared by the trigger and
// common symptom catalogs.
type CatalogItem struct {
	ID      uint   `gorm:"primaryKey" json:"id"`
	Name    string `gorm:"not null" json:"name"`
	NameKey string `gorm:"column:name_key;not null;uniqueIndex" json:"-"`
}

func DefaultTriggers() []string {
	return []string{
		"Stress",
		"Lack of sleep",
		"Food sensitivity",
		"Exercise",
		"Weather change",
	}
}

func DefaultCommonSymptoms() []string {
	return []string{
		"Headache",
		"Nausea",
		"Fatigue",
		"Dizziness",
		"Joint Pain",
		"Fever",
		"Chest Pain",
		"Anxiety",
	}
}

package models

import "time"

// AppSettings is the singleton settings record. It is created with defaults
// on first read and replaced wholesale on update or import.
type AppSettings struct {
	ID          uint      `gorm:"primaryKey" json:"-"`
	ProjectName string    `json:"project_name"`
	Location    string    `json:"location"`
	Budget      float64   `json:"budget"`
	Language    string    `json:"language"`
	AutoSync    bool      `json:"auto_sync"`
	SyncEmail   string    `json:"sync_email,omitempty"`
	SheetURL    string    `json:"sheet_url,omitempty"`
	SheetLink   string    `json:"sheet_link,omitempty"`
	UpdatedAt   time.Time `json:"-"`
}

// DefaultSettings returns the settings a fresh installation starts with.
func DefaultSettings() *AppSettings {
	return &AppSettings{
		ID:          1,
		ProjectName: "New Site",
		Location:    "Local",
		Budget:      5000000,
		Language:    "en",
		AutoSync:    false,
	}
}

package models

// Campaign is a tag grouping leads that came in through the same outreach
// effort. Leads and campaigns are many-to-many via lead_campaigns.
type Campaign struct {
	BaseModel
	Name string `json:"name" gorm:"uniqueIndex;not null;size:100" validate:"required,max=100"`
}

// TableName returns the table name for Campaign
func (Campaign) TableName() string {
	return "campaigns"
}

package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

// CustomFieldValue is a single free-form field on a lead, stamped with the
// user who filled it and when. Fields are one-time fills: once a value is
// present it is rendered read-only.
type CustomFieldValue struct {
	Value     string    `json:"value"`
	UpdatedBy string    `json:"updated_by"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CustomFieldMap maps custom field name to its value, stored as a jsonb column.
type CustomFieldMap map[string]CustomFieldValue

// Value implements driver.Valuer for jsonb storage
func (m CustomFieldMap) Value() (driver.Value, error) {
	if m == nil {
		return []byte("{}"), nil
	}
	return json.Marshal(m)
}

// Scan implements sql.Scanner for jsonb storage
func (m *CustomFieldMap) Scan(value interface{}) error {
	if value == nil {
		*m = CustomFieldMap{}
		return nil
	}
	var data []byte
	switch v := value.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return fmt.Errorf("unsupported type %T for CustomFieldMap", value)
	}
	if len(data) == 0 {
		*m = CustomFieldMap{}
		return nil
	}
	return json.Unmarshal(data, m)
}

// Lead represents a sales lead. Leads are created by import or manual entry
// and are never deleted; ownership and status live in the assignment log,
// not on the lead row itself.
type Lead struct {
	BaseModel
	RefID        string         `json:"ref_id" gorm:"uniqueIndex;not null;size:40" validate:"required,max=40"`
	Name         string         `json:"name" gorm:"not null;size:100" validate:"required,max=100"`
	Phone        string         `json:"phone" gorm:"not null;size:20" validate:"required,max=20"`
	Gender       string         `json:"gender" gorm:"size:20"`
	School       string         `json:"school" gorm:"size:100"`
	Locality     string         `json:"locality" gorm:"size:100"`
	District     string         `json:"district" gorm:"size:100"`
	Campaigns    []Campaign     `json:"campaigns,omitempty" gorm:"many2many:lead_campaigns;"`
	CustomFields CustomFieldMap `json:"custom_fields" gorm:"type:jsonb;default:'{}'"`
}

// TableName returns the table name for Lead
func (Lead) TableName() string {
	return "leads"
}

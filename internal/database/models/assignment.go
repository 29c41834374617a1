package models

import (
	"time"

	"github.com/google/uuid"
)

// Assignment is one event in the append-only per-lead history: a lead being
// handed to a caller, or a caller recording an outcome. Events are immutable
// once written; a new disposition is a new event, never an update.
//
// The "current state" of a lead is the event with the greatest AssignedTime
// among its events. Seq is a write-time monotonic sequence and breaks ties
// between events that carry the same AssignedTime.
type Assignment struct {
	BaseModel
	Seq                int64       `json:"seq" gorm:"autoIncrement;uniqueIndex"`
	LeadRef            string      `json:"lead_ref" gorm:"index;not null;size:40" validate:"required"`
	UserID             uuid.UUID   `json:"user_id" gorm:"type:uuid;index;not null"`
	UserName           string      `json:"user_name" gorm:"not null;size:100"`
	AssignedTime       time.Time   `json:"assigned_time" gorm:"index;not null"`
	Disposition        Disposition `json:"disposition" gorm:"type:varchar(30);not null;default:'New'"`
	DispositionTime    *time.Time  `json:"disposition_time,omitempty"`
	SubDisposition     string      `json:"sub_disposition,omitempty" gorm:"size:60"`
	SubDispositionTime *time.Time  `json:"sub_disposition_time,omitempty"`
	Remark             string      `json:"remark,omitempty" gorm:"size:500"`
	FollowUpDate       *time.Time  `json:"follow_up_date,omitempty"`
	ScheduleDate       *time.Time  `json:"schedule_date,omitempty"`
}

// TableName returns the table name for Assignment
func (Assignment) TableName() string {
	return "assignments"
}

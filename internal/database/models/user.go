package models

// User represents a call-center agent or administrator.
// New accounts start pending and must be activated by an admin before the
// user can log in or receive leads.
type User struct {
	BaseModel
	Name         string     `json:"name" gorm:"not null;size:100" validate:"required,max=100"`
	Phone        string     `json:"phone" gorm:"size:20"`
	Email        string     `json:"email" gorm:"uniqueIndex;not null;size:255" validate:"required,email,max=255"`
	Role         UserRole   `json:"role" gorm:"type:varchar(20);not null;default:'caller'"`
	Status       UserStatus `json:"status" gorm:"type:varchar(20);not null;default:'pending'"`
	PasswordHash string     `json:"-" gorm:"size:100"`
}

// TableName returns the table name for User
func (User) TableName() string {
	return "users"
}

// IsEligibleCaller reports whether the user may be the target of an
// assignment: only active users with the caller role qualify.
func (u *User) IsEligibleCaller() bool {
	return u.Role == UserRoleCaller && u.Status == UserStatusActive
}

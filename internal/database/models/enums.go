package models

// Disposition is the outcome a caller records after working a lead.
// An Assignment created by a bulk-assign carries DispositionNew until the
// caller files a real outcome.
type Disposition string

const (
	DispositionNew           Disposition = "New"
	DispositionInterested    Disposition = "Interested"
	DispositionNotInterested Disposition = "Not Interested"
	DispositionFollowUp      Disposition = "Follow-up"
	DispositionCallback      Disposition = "Callback"
	DispositionNotReachable  Disposition = "Not Reachable"
)

// IsValid checks if the Disposition is valid
func (d Disposition) IsValid() bool {
	switch d {
	case DispositionNew, DispositionInterested, DispositionNotInterested,
		DispositionFollowUp, DispositionCallback, DispositionNotReachable:
		return true
	}
	return false
}

// UserRole defines the access level of a user
type UserRole string

const (
	UserRoleAdmin  UserRole = "admin"
	UserRoleCaller UserRole = "caller"
)

// IsValid checks if the UserRole is valid
func (r UserRole) IsValid() bool {
	switch r {
	case UserRoleAdmin, UserRoleCaller:
		return true
	}
	return false
}

// UserStatus defines the lifecycle state of a user account.
// Pending users cannot log in yet; inactive users are blocked at login.
type UserStatus string

const (
	UserStatusPending  UserStatus = "pending"
	UserStatusActive   UserStatus = "active"
	UserStatusInactive UserStatus = "inactive"
)

// IsValid checks if the UserStatus is valid
func (s UserStatus) IsValid() bool {
	switch s {
	case UserStatusPending, UserStatusActive, UserStatusInactive:
		return true
	}
	return false
}

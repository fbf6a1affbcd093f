package models

import (
	"time"
)

type UserRole string

const (
	RoleAdmin   UserRole = "admin"
	RoleCarrier UserRole = "carrier"
	RoleShipper UserRole = "shipper"
)

type AccountStatus string

const (
	StatusPending   AccountStatus = "pending"
	StatusApproved  AccountStatus = "approved"
	StatusSuspended AccountStatus = "suspended"
	StatusActive    AccountStatus = "active" // admin accounts only
)

// ValidProfileStatuses are the statuses an admin may assign to a profile.
var ValidProfileStatuses = []AccountStatus{StatusPending, StatusApproved, StatusSuspended}

func IsValidProfileStatus(s AccountStatus) bool {
	for _, v := range ValidProfileStatuses {
		if s == v {
			return true
		}
	}
	return false
}

type User struct {
	ID           string        `json:"id" gorm:"primaryKey;size:36"`
	Email        string        `json:"email" gorm:"uniqueIndex;not null;size:255"`
	PasswordHash string        `json:"-" gorm:"not null;size:100"`
	Name         string        `json:"name" gorm:"size:100"`
	CompanyName  string        `json:"companyName" gorm:"size:200"`
	Role         UserRole      `json:"role" gorm:"not null;size:20"`
	Status       AccountStatus `json:"status" gorm:"not null;size:20;default:pending"`

	// Back-reference to the role-specific profile record
	CarrierID *string `json:"carrierId,omitempty" gorm:"size:36"`
	ShipperID *string `json:"shipperId,omitempty" gorm:"size:36"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (User) TableName() string {
	return "users"
}

// ProfileID returns the profile reference matching the user's role.
func (u *User) ProfileID() string {
	switch u.Role {
	case RoleCarrier:
		if u.CarrierID != nil {
			return *u.CarrierID
		}
	case RoleShipper:
		if u.ShipperID != nil {
			return *u.ShipperID
		}
	}
	return ""
}

package models

import (
	"time"

	"gorm.io/datatypes"
)

// CarrierDocuments holds the carrier compliance document slots.
// Each slot is an optional reference (inline data URL or external link).
type CarrierDocuments struct {
	W9          string `json:"w9,omitempty"`
	COI         string `json:"coi,omitempty"`
	MCAuthority string `json:"mcAuthority,omitempty"`
}

// CarrierDocumentSlots is the closed set of slot names, in review order.
var CarrierDocumentSlots = []string{"w9", "coi", "mcAuthority"}

// Get returns the reference stored in a named slot.
func (d CarrierDocuments) Get(slot string) string {
	switch slot {
	case "w9":
		return d.W9
	case "coi":
		return d.COI
	case "mcAuthority":
		return d.MCAuthority
	}
	return ""
}

// Set overwrites the reference in a named slot. Unknown slots are ignored.
func (d *CarrierDocuments) Set(slot, ref string) {
	switch slot {
	case "w9":
		d.W9 = ref
	case "coi":
		d.COI = ref
	case "mcAuthority":
		d.MCAuthority = ref
	}
}

// FilledCount returns the number of non-empty slots.
func (d CarrierDocuments) FilledCount() int {
	count := 0
	for _, slot := range CarrierDocumentSlots {
		if d.Get(slot) != "" {
			count++
		}
	}
	return count
}

type CarrierProfile struct {
	ID     string  `json:"id" gorm:"primaryKey;size:36"`
	UserID *string `json:"userId,omitempty" gorm:"size:36;index"`

	// Regulatory identity
	DOTNumber     string `json:"dotNumber" gorm:"column:dot_number;size:20"`
	MCNumber      string `json:"mcNumber" gorm:"column:mc_number;size:20"`
	AuthorityDate string `json:"authorityDate,omitempty" gorm:"size:30"`

	// Company profile
	LegalName string `json:"legalName" gorm:"size:200"`
	DBAName   string `json:"dbaName,omitempty" gorm:"column:dba_name;size:200"`
	EIN       string `json:"ein,omitempty" gorm:"size:20"`
	Address   string `json:"address,omitempty" gorm:"size:300"`
	City      string `json:"city" gorm:"size:100"`
	State     string `json:"state" gorm:"size:50"`
	Zip       string `json:"zip,omitempty" gorm:"size:20"`

	// Contact
	ContactName  string `json:"contactName,omitempty" gorm:"size:100"`
	ContactEmail string `json:"contactEmail" gorm:"size:255;index"`
	ContactPhone string `json:"contactPhone" gorm:"size:30"`

	// Operations
	EquipmentTypes datatypes.JSONSlice[string] `json:"equipmentTypes"`
	PreferredLanes datatypes.JSONSlice[string] `json:"preferredLanes"`

	Documents datatypes.JSONType[CarrierDocuments] `json:"documents"`

	Status              AccountStatus `json:"status" gorm:"not null;size:20;default:pending"`
	OnboardingCompleted bool          `json:"onboardingCompleted" gorm:"default:false"`

	// Optional enrichment computed at registration time
	Analysis string `json:"analysis,omitempty" gorm:"type:text"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (CarrierProfile) TableName() string {
	return "carriers"
}

package models

import (
	"time"

	"gorm.io/datatypes"
)

// ShipperDocuments holds the shipper compliance document slots.
type ShipperDocuments struct {
	W9                string `json:"w9,omitempty"`
	CreditApp         string `json:"creditApp,omitempty"`
	ShippingAgreement string `json:"shippingAgreement,omitempty"`
}

// ShipperDocumentSlots is the closed set of slot names, in review order.
var ShipperDocumentSlots = []string{"w9", "creditApp", "shippingAgreement"}

func (d ShipperDocuments) Get(slot string) string {
	switch slot {
	case "w9":
		return d.W9
	case "creditApp":
		return d.CreditApp
	case "shippingAgreement":
		return d.ShippingAgreement
	}
	return ""
}

func (d *ShipperDocuments) Set(slot, ref string) {
	switch slot {
	case "w9":
		d.W9 = ref
	case "creditApp":
		d.CreditApp = ref
	case "shippingAgreement":
		d.ShippingAgreement = ref
	}
}

func (d ShipperDocuments) FilledCount() int {
	count := 0
	for _, slot := range ShipperDocumentSlots {
		if d.Get(slot) != "" {
			count++
		}
	}
	return count
}

type ShipperProfile struct {
	ID     string  `json:"id" gorm:"primaryKey;size:36"`
	UserID *string `json:"userId,omitempty" gorm:"size:36;index"`

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

	// Freight profile
	CommodityType      string                      `json:"commodityType,omitempty" gorm:"size:100"`
	MonthlyVolume      string                      `json:"monthlyVolume,omitempty" gorm:"size:50"`
	AverageValue       string                      `json:"averageValue,omitempty" gorm:"size:50"`
	PreferredEquipment datatypes.JSONSlice[string] `json:"preferredEquipment"`

	Documents datatypes.JSONType[ShipperDocuments] `json:"documents"`

	Status              AccountStatus `json:"status" gorm:"not null;size:20;default:pending"`
	OnboardingCompleted bool          `json:"onboardingCompleted" gorm:"default:false"`

	Analysis string `json:"analysis,omitempty" gorm:"type:text"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (ShipperProfile) TableName() string {
	return "shippers"
}

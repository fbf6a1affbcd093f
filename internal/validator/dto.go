package validator

// CarrierOnboardRequest is the registration payload for carriers
type CarrierOnboardRequest struct {
	DOTNumber     string `json:"dotNumber"`
	MCNumber      string `json:"mcNumber"`
	AuthorityDate string `json:"authorityDate"`
	LegalName     string `json:"legalName"`
	DBAName       string `json:"dbaName"`
	EIN           string `json:"ein"`
	Address       string `json:"address"`
	City          string `json:"city"`
	State         string `json:"state"`
	Zip           string `json:"zip"`

	ContactName  string `json:"contactName"`
	ContactEmail string `json:"contactEmail"`
	ContactPhone string `json:"contactPhone"`
	Password     string `json:"password"`

	EquipmentTypes []string `json:"equipmentTypes"`
	PreferredLanes []string `json:"preferredLanes"`

	Documents map[string]string `json:"documents"`
}

// ShipperOnboardRequest is the registration payload for shippers
type ShipperOnboardRequest struct {
	LegalName string `json:"legalName"`
	DBAName   string `json:"dbaName"`
	EIN       string `json:"ein"`
	Address   string `json:"address"`
	City      string `json:"city"`
	State     string `json:"state"`
	Zip       string `json:"zip"`

	ContactName  string `json:"contactName"`
	ContactEmail string `json:"contactEmail"`
	ContactPhone string `json:"contactPhone"`
	Password     string `json:"password"`

	CommodityType      string   `json:"commodityType"`
	MonthlyVolume      string   `json:"monthlyVolume"`
	AverageValue       string   `json:"averageValue"`
	PreferredEquipment []string `json:"preferredEquipment"`

	Documents map[string]string `json:"documents"`
}

// LoginRequest is the credential check payload
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email_format"`
	Password string `json:"password" validate:"required"`
}

// CarrierUpdateRequest carries the writable carrier profile fields.
// Identity fields (dotNumber, mcNumber, contactEmail, role, status) are
// read-only from the self-service surface and deliberately absent here.
type CarrierUpdateRequest struct {
	AuthorityDate *string `json:"authorityDate"`
	LegalName     *string `json:"legalName" validate:"omitempty,max=200"`
	DBAName       *string `json:"dbaName" validate:"omitempty,max=200"`
	EIN           *string `json:"ein" validate:"omitempty,max=20"`
	Address       *string `json:"address" validate:"omitempty,max=300"`
	City          *string `json:"city" validate:"omitempty,max=100"`
	State         *string `json:"state" validate:"omitempty,max=50"`
	Zip           *string `json:"zip" validate:"omitempty,max=20"`

	ContactName  *string `json:"contactName" validate:"omitempty,max=100"`
	ContactPhone *string `json:"contactPhone" validate:"omitempty,max=30"`

	EquipmentTypes []string `json:"equipmentTypes"`
	PreferredLanes []string `json:"preferredLanes"`

	Documents map[string]string `json:"documents"`
}

// ShipperUpdateRequest carries the writable shipper profile fields
type ShipperUpdateRequest struct {
	LegalName *string `json:"legalName" validate:"omitempty,max=200"`
	DBAName   *string `json:"dbaName" validate:"omitempty,max=200"`
	EIN       *string `json:"ein" validate:"omitempty,max=20"`
	Address   *string `json:"address" validate:"omitempty,max=300"`
	City      *string `json:"city" validate:"omitempty,max=100"`
	State     *string `json:"state" validate:"omitempty,max=50"`
	Zip       *string `json:"zip" validate:"omitempty,max=20"`

	ContactName  *string `json:"contactName" validate:"omitempty,max=100"`
	ContactPhone *string `json:"contactPhone" validate:"omitempty,max=30"`

	CommodityType      *string  `json:"commodityType" validate:"omitempty,max=100"`
	MonthlyVolume      *string  `json:"monthlyVolume" validate:"omitempty,max=50"`
	AverageValue       *string  `json:"averageValue" validate:"omitempty,max=50"`
	PreferredEquipment []string `json:"preferredEquipment"`

	Documents map[string]string `json:"documents"`
}

// StatusUpdateRequest is the admin status-change payload
type StatusUpdateRequest struct {
	Status string `json:"status" validate:"required,profile_status"`
}

// StartOnboardingRequest opens a new wizard draft
type StartOnboardingRequest struct {
	Role string `json:"role" validate:"required,account_role"`
}

// AdvanceStepRequest moves the wizard one step forward or back. Fields
// collected on the current step are merged into the draft on "next".
type AdvanceStepRequest struct {
	Direction string                 `json:"direction" validate:"required,oneof=next back"`
	Fields    map[string]interface{} `json:"fields"`
}

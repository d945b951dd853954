package models

// ValidBloodTypes is the canonical set of ABO/Rh blood types accepted
// anywhere a blood type is stored.
var ValidBloodTypes = []string{"A+", "A-", "B+", "B-", "AB+", "AB-", "O+", "O-"}

// IsValidBloodType reports whether bloodType is one of the canonical types.
func IsValidBloodType(bloodType string) bool {
	for _, bt := range ValidBloodTypes {
		if bt == bloodType {
			return true
		}
	}
	return false
}

// Blood represents a single donated blood unit.
type Blood struct {
	ID              int64  `json:"blood_id" db:"blood_id"`
	BloodType       string `json:"blood_type" db:"blood_type"`
	ExpirationDate  string `json:"expiration_date" db:"expiration_date"`
	QuantityDonated int    `json:"quantity_donated" db:"quantity_donated"`
	DonorID         int64  `json:"donor_id" db:"donor_id"`
}

// BloodSearchFilters carries the optional predicates of an inventory
// search. Nil fields are not applied.
type BloodSearchFilters struct {
	BloodType       string
	BloodBankID     *int64
	ExpirationStart *string
	ExpirationEnd   *string
}

// BloodSearchResult is one inventory search match: the unit joined with
// the bank storing it and the computed days left until it expires
// (negative for already-expired stock).
type BloodSearchResult struct {
	BloodID             int64   `json:"blood_id"`
	BloodType           string  `json:"blood_type"`
	ExpirationDate      string  `json:"expiration_date"`
	QuantityDonated     int     `json:"quantity_donated"`
	BloodBankID         int64   `json:"bloodbank_id"`
	BloodBankName       string  `json:"bloodbank_name"`
	Location            *string `json:"location"`
	DaysUntilExpiration int     `json:"days_until_expiration"`
}

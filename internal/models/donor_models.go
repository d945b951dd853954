package models

// Donor represents a registered blood donor. Dates travel as YYYY-MM-DD
// strings on the wire and are parsed at the database boundary.
type Donor struct {
	ID               int64   `json:"donor_id" db:"donor_id"`
	FirstName        string  `json:"f_name" db:"f_name"`
	MiddleInitial    *string `json:"m_initial,omitempty" db:"m_initial"`
	LastName         string  `json:"l_name" db:"l_name"`
	DateOfBirth      string  `json:"date_of_birth" db:"date_of_birth"`
	PhoneNumber      string  `json:"phone_number" db:"phone_number"`
	LastDonationDate *string `json:"last_day_of_donation,omitempty" db:"last_day_of_donation"`
	Gender           *string `json:"gender,omitempty" db:"gender"`
	BloodBankID      *int64  `json:"bb_id,omitempty" db:"bb_id"`

	// Populated by the donor list query's join; absent on single-row gets.
	BloodBankName *string `json:"bloodbank_name,omitempty" db:"bloodbank_name"`
}

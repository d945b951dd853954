package models

// BloodBank represents a blood bank institution storing donated units.
type BloodBank struct {
	ID          int64   `json:"bloodbank_id" db:"bloodbank_id"`
	Name        string  `json:"bloodbank_name" db:"bloodbank_name"`
	Location    *string `json:"location" db:"location"`
	PhoneNumber *string `json:"phone_number" db:"phone_number"`
}

// Hospital represents a hospital institution.
type Hospital struct {
	ID          int64   `json:"hospital_id" db:"hospital_id"`
	Name        string  `json:"hospital_name" db:"hospital_name"`
	Location    *string `json:"location" db:"location"`
	PhoneNumber *string `json:"phone_number" db:"phone_number"`
}

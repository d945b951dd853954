package models

// Recipient represents a registered blood recipient.
type Recipient struct {
	ID            int64   `json:"recipient_id" db:"recipient_id"`
	FirstName     string  `json:"f_name" db:"f_name"`
	MiddleInitial *string `json:"m_initial,omitempty" db:"m_initial"`
	LastName      string  `json:"l_name" db:"l_name"`
	DateOfBirth   string  `json:"date_of_birth" db:"date_of_birth"`
	Gender        *string `json:"gender,omitempty" db:"gender"`
	BloodType     string  `json:"blood_type" db:"blood_type"`
	PhoneNumber   string  `json:"phone_number" db:"phone_number"`
}

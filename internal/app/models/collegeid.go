package models

import "time"

// College ID card statuses
const (
	CollegeIDStatusActive  = "Active"
	CollegeIDStatusExpired = "Expired"
)

// CollegeIDValidityYears is how long a newly issued card stays valid.
const CollegeIDValidityYears = 4

// CollegeID represents a student identity card record
type CollegeID struct {
	CollegeIDNumber string    `json:"college_id_number"`
	IssueDate       time.Time `json:"issue_date"`
	ExpiryDate      time.Time `json:"expiry_date"`
	Status          string    `json:"status"`
}

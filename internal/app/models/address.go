package models

// Address belongs to an identity card, and transitively to a student.
type Address struct {
	CollegeIDNumber string `json:"college_id_number"`
	Street          string `json:"street"`
	City            string `json:"city"`
	State           string `json:"state"`
	Zip             string `json:"zip"`
}

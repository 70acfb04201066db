package handler

import "time"

// Problem is the application/problem+json body returned for every error.
type Problem struct {
	Type      string    `json:"type"      example:"/email-already-exists"`
	Title     string    `json:"title"     example:"Email already exists"`
	Status    int       `json:"status"    example:"409"`
	Detail    string    `json:"detail"    example:"email already registered"`
	Timestamp time.Time `json:"timestamp"`
}

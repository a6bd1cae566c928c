package models

import "time"

// ChatRequest asks a question about one internship.
// @Description Question about a specific internship
type ChatRequest struct {
	InternshipID string `json:"internshipId" binding:"required" example:"int-001"`
	Question     string `json:"question" binding:"required" example:"What will I learn in this role?"`
	Language     string `json:"language,omitempty" example:"en"`
}

// ChatResponse carries the assistant answer
// @Description Assistant answer
type ChatResponse struct {
	Answer string `json:"answer" example:"This role focuses on backend services..."`
}

// InternshipListResponse wraps catalog listings.
// @Description Catalog listing
type InternshipListResponse struct {
	Internships []Internship `json:"internships"`
	Total       int          `json:"total" example:"42"`
}

// LoginRequest represents the admin login request
// @Description Admin login request
type LoginRequest struct {
	Username string `json:"username" binding:"required" example:"admin"`
	Password string `json:"password" binding:"required" example:"password123"`
}

// AuthResponse represents authentication response
// @Description Authentication response with JWT token
type AuthResponse struct {
	Token     string    `json:"token" example:"eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9..."`
	ExpiresAt time.Time `json:"expiresAt"`
}

// ReloadResponse reports the result of a catalog reload
// @Description Catalog reload result
type ReloadResponse struct {
	Source   string    `json:"source" example:"file"`
	Count    int       `json:"count" example:"42"`
	LoadedAt time.Time `json:"loadedAt"`
}

// ErrorResponse represents an API error response
// @Description Standard error response
type ErrorResponse struct {
	Error   string `json:"error" example:"Invalid request body"`
	Code    int    `json:"code" example:"400"`
	Details string `json:"details,omitempty" example:"question is required"`
}

// HealthResponse represents health check response
// @Description Server health status
type HealthResponse struct {
	Status      string `json:"status" example:"healthy"`
	Version     string `json:"version" example:"1.0.0"`
	CatalogSize int    `json:"catalogSize" example:"42"`
	Timestamp   string `json:"timestamp" example:"2024-01-15T10:30:00Z"`
}

package models

import "time"

// CustomResponseTemplate overrides the keyword answer for one classifier label.
type CustomResponseTemplate struct {
	QueryType string    `bson:"query_type" json:"query_type" binding:"required"`
	Template  string    `bson:"custom_response_template" json:"custom_response_template" binding:"required"`
	UpdatedAt time.Time `bson:"updated_at,omitempty" json:"updated_at,omitempty"`
}

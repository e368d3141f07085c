package models

import "time"

// QueryLogEntry is the audit record of one answered customer query.
type QueryLogEntry struct {
	Query     string        `bson:"query" json:"query"`
	QueryType string        `bson:"query_type" json:"query_type"`
	Response  QueryResponse `bson:"response" json:"response"`
	Timestamp time.Time     `bson:"timestamp" json:"timestamp"`
}

package models

// QueryRequest is the payload of POST /ai/ask-ai.
type QueryRequest struct {
	UserQuery string `json:"user_query"`
}

// QueryResponse is what the receptionist answers. Only the fields relevant to
// the matched rule are set.
type QueryResponse struct {
	Message  string          `bson:"message" json:"message"`
	Services []Service       `bson:"services,omitempty" json:"services,omitempty"`
	Slots    []CalendarSlot  `bson:"slots,omitempty" json:"slots,omitempty"`
	Hours    *OperatingHours `bson:"hours,omitempty" json:"hours,omitempty"`
}

// VoiceQueryResponse wraps the answer to a spoken query with its transcript.
type VoiceQueryResponse struct {
	Transcript string         `json:"transcript"`
	Response   *QueryResponse `json:"response"`
}

package models

// CalendarSlot is a bookable window. Available only ever flips from true to false.
type CalendarSlot struct {
	ID        string `bson:"_id,omitempty" json:"id,omitempty"`
	Date      string `bson:"date" json:"date"`             // "2006-01-02"
	StartTime string `bson:"start_time" json:"start_time"` // "15:04"
	EndTime   string `bson:"end_time" json:"end_time"`     // "15:04"
	Available bool   `bson:"available" json:"available"`
}

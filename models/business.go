package models

// BusinessProfile is the singleton profile document of the deployment.
type BusinessProfile struct {
	ID             string         `bson:"_id,omitempty" json:"-"`
	Name           string         `bson:"business_name" json:"business_name"`
	Services       []Service      `bson:"services" json:"services"`
	OperatingHours OperatingHours `bson:"operating_hours" json:"operating_hours"`
	ContactInfo    ContactInfo    `bson:"contact_info" json:"contact_info"`
}

// Service is one offering listed on the profile.
type Service struct {
	Name        string  `bson:"name" json:"name"`
	Description string  `bson:"description" json:"description"`
	Price       float64 `bson:"price" json:"price"`
}

type OperatingHours struct {
	Open  string `bson:"open" json:"open"`   // e.g. "09:00 AM"
	Close string `bson:"close" json:"close"` // e.g. "06:00 PM"
}

type ContactInfo struct {
	Phone string `bson:"phone" json:"phone"`
	Email string `bson:"email" json:"email"`
}

// FirstServiceName returns the name of the first listed service, or "" when none exist.
func (p *BusinessProfile) FirstServiceName() string {
	if p == nil || len(p.Services) == 0 {
		return ""
	}
	return p.Services[0].Name
}

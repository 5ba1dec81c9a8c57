package models

// Service is a catalog entry. Read-only from this service's perspective;
// legacy documents may carry either a string or an ObjectID in _id, which the
// repository layer resolves transparently.
type Service struct {
	ID          string  `bson:"_id,omitempty" json:"_id"`
	ServiceName string  `bson:"service_name" json:"service_name"`
	Cost        float64 `bson:"cost" json:"cost"`
	Category    string  `bson:"category" json:"category"`
	Unit        string  `bson:"unit" json:"unit"`
	Description string  `bson:"description,omitempty" json:"description,omitempty"`
	Image       string  `bson:"image,omitempty" json:"image,omitempty"`
}

// ServiceSummary is the bounded diagnostic projection returned alongside a
// failed service lookup.
type ServiceSummary struct {
	ID          string `bson:"_id,omitempty" json:"_id"`
	ServiceName string `bson:"service_name" json:"service_name"`
}

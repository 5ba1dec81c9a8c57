package models

// Decorator is a featured provider profile, surfaced on the landing page
// ordered by rating.
type Decorator struct {
	ID         string  `bson:"_id,omitempty" json:"_id"`
	Name       string  `bson:"name" json:"name"`
	Rating     float64 `bson:"rating" json:"rating"`
	Speciality string  `bson:"speciality,omitempty" json:"speciality,omitempty"`
	Experience string  `bson:"experience,omitempty" json:"experience,omitempty"`
	Image      string  `bson:"image,omitempty" json:"image,omitempty"`
}

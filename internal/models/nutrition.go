package models

import "time"

// Meal is stored in the meals collection. Macros are non-negative floats by
// convention; the server does not validate them.
type Meal struct {
	ID        string    `bson:"id" json:"id"`
	UserID    string    `bson:"userId" json:"userId"`
	Name      string    `bson:"name" json:"name"`
	Calories  float64   `bson:"calories" json:"calories"`
	Protein   float64   `bson:"protein" json:"protein"`
	Carbs     float64   `bson:"carbs" json:"carbs"`
	Fats      float64   `bson:"fats" json:"fats"`
	Date      string    `bson:"date" json:"date"` // YYYY-MM-DD
	Time      string    `bson:"time" json:"time"` // HH:MM
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
}

// Consumed holds the macro totals for one day. Zero-valued (never null)
// when there are no meals.
type Consumed struct {
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fats     float64 `json:"fats"`
}

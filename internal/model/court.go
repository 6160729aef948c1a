package model

// CourtCategory distinguishes covered courts from open-air ones.  The
// category drives the base rental price used by the billing
// calculator.
type CourtCategory string

const (
	CourtIndoor  CourtCategory = "indoor"  // covered court
	CourtOutdoor CourtCategory = "outdoor" // open-air court
)

// Court is a static catalog entry describing one playable court.
// Courts are reference data loaded at startup and never mutated at
// runtime.
//
// Fields:
//  ID       – numeric identity used by matches and the schedule.
//  Name     – display label (e.g. "Court 1 (Indoor)").
//  Category – indoor or outdoor, selects the base price bracket.
//  Price    – base rental price in euros for a standard booking.
type Court struct {
	ID       int           `json:"id" yaml:"id"`
	Name     string        `json:"name" yaml:"name"`
	Category CourtCategory `json:"category" yaml:"category"`
	Price    float64       `json:"price" yaml:"price"`
}

// BarProduct is one entry of the bar catalog.  The product name acts
// as the unique key; Price is the unit price in euros.
type BarProduct struct {
	Name  string  `json:"name" yaml:"name"`
	Price float64 `json:"price" yaml:"price"`
}

package models

// Product is an airship listed in the catalog. The id is an externally
// assigned slug, unique across the catalog.
type Product struct {
	ID                string `json:"id" binding:"required"`
	Title             string `json:"title" binding:"required"`
	PassengerCapacity int    `json:"passenger_capacity" binding:"gte=0"`
	MaximumSpeed      int    `json:"maximum_speed" binding:"gte=0"`
	InStock           int    `json:"in_stock" binding:"gte=0"`
}

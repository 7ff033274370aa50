package products

// ProductInput is the body accepted by create and update. Price and Quantity
// are pointers so that an explicit zero is distinguishable from a missing field.
type ProductInput struct {
	Name        string   `json:"name" validate:"required"`
	Category    string   `json:"category" validate:"required"`
	Price       *float64 `json:"price" validate:"required,gte=0"`
	Quantity    *int     `json:"quantity" validate:"required,gte=0"`
	Description string   `json:"description"`
	Image       string   `json:"image"`
}

// QuantityInput is the body accepted by the quantity patch endpoint.
type QuantityInput struct {
	Quantity *int `json:"quantity" validate:"required,gte=0"`
}

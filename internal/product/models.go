package product

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Product is a catalog entry as stored in the Products collection.
type Product struct {
	ID          primitive.ObjectID `json:"_id" bson:"_id,omitempty"`
	Name        string             `json:"name" bson:"name" validate:"required"`
	Description string             `json:"description,omitempty" bson:"description,omitempty"`
	Image       string             `json:"image,omitempty" bson:"image,omitempty"`
	Brand       string             `json:"brand" bson:"brand" validate:"required"`
	Category    string             `json:"category" bson:"category" validate:"required"`
	Price       float64            `json:"price" bson:"price" validate:"gte=0"`
	Rating      float64            `json:"rating,omitempty" bson:"rating,omitempty" validate:"gte=0,lte=5"`
	CreatedAt   time.Time          `json:"createdAt" bson:"createdAt"`
}

// Page is one page of a product listing.
type Page struct {
	Products   []Product `json:"products"`
	TotalPages int64     `json:"totalPages"`
}

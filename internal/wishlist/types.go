package wishlist

import (
	"time"

	"github.com/shopspring/decimal"
)

func init() {
	// Prices persist as JSON numbers, not quoted strings.
	decimal.MarshalJSONWithoutQuotes = true
}

// Product is always embedded inside exactly one wishlist; it has no
// independent lifecycle.
type Product struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	Price     decimal.Decimal `json:"price"`
	ImageURL  *string         `json:"imageUrl"`
	CreatorID string          `json:"creatorId"`
	CreatedAt time.Time       `json:"createdAt"`
}

type Wishlist struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	CreatorID   string    `json:"creatorId"`
	Members     []string  `json:"members"`
	Products    []Product `json:"products"`
	CreatedAt   time.Time `json:"createdAt"`
}

// CollaboratorCount is the display-time headcount: the creator is an
// implicit collaborator and never appears in Members.
func (w *Wishlist) CollaboratorCount() int {
	return len(w.Members) + 1
}

// CreateWishlistDTO holds the caller-supplied fields of a new wishlist.
type CreateWishlistDTO struct {
	Name        string
	Description string
	CreatorID   string
}

// CreateProductDTO holds the caller-supplied fields of a new product.
type CreateProductDTO struct {
	Name      string
	Price     decimal.Decimal
	ImageURL  *string
	CreatorID string
}

func (c CreateProductDTO) toModel() *Product {
	return &Product{
		Name:      c.Name,
		Price:     c.Price,
		ImageURL:  c.ImageURL,
		CreatorID: c.CreatorID,
	}
}

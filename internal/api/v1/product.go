package v1

import "time"

// Category is the storefront shelf a product is listed under.
type Category string

const (
	CategoryBeauty     Category = "beauty"
	CategorySupplement Category = "supplement"
)

// Categories lists every accepted category in display order.
var Categories = []Category{CategoryBeauty, CategorySupplement}

// Valid reports whether c is one of the known categories.
func (c Category) Valid() bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}

// Product is a single row of the shop catalog.
// ID, CreatedAt and UpdatedAt are assigned by the store.
type Product struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Category  Category  `json:"category"`
	ImageURL  string    `json:"imageUrl"`
	LinkURL   string    `json:"linkUrl"`
	CreatedBy *int64    `json:"createdBy"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// NewProduct carries the fields needed to insert a product.
type NewProduct struct {
	Name      string   `json:"name" yaml:"name"`
	Category  Category `json:"category" yaml:"category"`
	ImageURL  string   `json:"imageUrl" yaml:"image_url"`
	LinkURL   string   `json:"linkUrl" yaml:"link_url"`
	CreatedBy *int64   `json:"createdBy,omitempty" yaml:"-"`
}

// ProductPatch is a partial update. Nil fields are left untouched.
type ProductPatch struct {
	Name     *string
	Category *Category
	ImageURL *string
	LinkURL  *string
}

// Empty reports whether the patch would change nothing.
func (p ProductPatch) Empty() bool {
	return p.Name == nil && p.Category == nil && p.ImageURL == nil && p.LinkURL == nil
}

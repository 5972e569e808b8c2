package domain

import "time"

// Product is a catalog item. ImageBase64 holds an optional data-URL string
// (`data:<mime>;base64,<payload>`) or nil when no image was supplied.
type Product struct {
	ID          int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	Name        string    `gorm:"index;size:100" json:"name"`
	Description string    `gorm:"type:text" json:"description"`
	Price       float64   `json:"price"`
	Category    string    `gorm:"index;size:50" json:"category"`
	ImageBase64 *string   `gorm:"type:text" json:"image_base64"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"-"`
}

// TableName Specify table name
func (Product) TableName() string {
	return "products"
}

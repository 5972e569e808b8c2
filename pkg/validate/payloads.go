package validate

// ProductPayload is the full product shape accepted by create and by
// JSON-encoded update (full replacement, mirroring the create rules).
type ProductPayload struct {
	Name        string  `json:"name" validate:"required"`
	Description string  `json:"description"`
	Price       float64 `json:"price" validate:"gt=0"`
	Category    string  `json:"category" validate:"required"`
	ImageBase64 *string `json:"image_base64" validate:"omitempty,datauri"`
}

// Update converts a full payload into the normalized partial form.
func (p ProductPayload) Update() ProductUpdate {
	return ProductUpdate{
		Name:        &p.Name,
		Description: &p.Description,
		Price:       &p.Price,
		Category:    &p.Category,
		ImageBase64: p.ImageBase64,
	}
}

// ProductUpdate is the single normalized partial-update value. The API
// boundary parses either wire encoding (JSON or multipart form) into this
// shape; nil fields are left untouched by the store.
type ProductUpdate struct {
	Name        *string
	Description *string
	Price       *float64
	Category    *string
	ImageBase64 *string
}

// Validate applies the product field rules to whichever fields are present.
func (u ProductUpdate) Validate() error {
	var errs Errors
	if u.Name != nil && *u.Name == "" {
		errs = append(errs, FieldError{Field: "name", Message: "is required"})
	}
	if u.Price != nil && *u.Price <= 0 {
		errs = append(errs, FieldError{Field: "price", Message: "must be greater than 0"})
	}
	if u.Category != nil && *u.Category == "" {
		errs = append(errs, FieldError{Field: "category", Message: "is required"})
	}
	if u.ImageBase64 != nil {
		if err := validate.Var(*u.ImageBase64, "datauri"); err != nil {
			errs = append(errs, FieldError{Field: "image_base64",
				Message: "must be a base64 data URL (data:<mime>;base64,<payload>)"})
		}
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

// RegisterPayload is the user-registration shape.
type RegisterPayload struct {
	Username string `json:"username" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

// LoginPayload carries login credentials.
type LoginPayload struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// CheckoutPayload carries the free-text payment info recorded on an order.
type CheckoutPayload struct {
	PaymentMethod string `json:"payment_method" validate:"required"`
	Address       string `json:"address" validate:"required"`
}

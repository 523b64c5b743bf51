package request

// UpdateProfileRequest is a partial update; nil fields are left unchanged.
type UpdateProfileRequest struct {
	FirstName *string `json:"first_name,omitempty" validate:"omitempty,min=1,max=100"`
	LastName  *string `json:"last_name,omitempty" validate:"omitempty,min=1,max=100"`
	Email     *string `json:"email,omitempty" validate:"omitempty,email,max=255"`
	Company   *string `json:"company,omitempty" validate:"omitempty,max=100"`
	Position  *string `json:"position,omitempty" validate:"omitempty,max=100"`
	Type      *string `json:"type,omitempty" validate:"omitempty,oneof=customer shop"`
	Password  *string `json:"password,omitempty" validate:"omitempty,min=8,max=72,password"`
}

type CreateContactRequest struct {
	City      string `json:"city" validate:"required,max=50"`
	Street    string `json:"street" validate:"required,max=100"`
	House     string `json:"house" validate:"max=15"`
	Structure string `json:"structure" validate:"max=15"`
	Building  string `json:"building" validate:"max=15"`
	Apartment string `json:"apartment" validate:"max=15"`
	Phone     string `json:"phone" validate:"required,max=20"`
}

type UpdateContactRequest struct {
	ID        int64   `json:"id" validate:"required,min=1"`
	City      *string `json:"city,omitempty" validate:"omitempty,min=1,max=50"`
	Street    *string `json:"street,omitempty" validate:"omitempty,min=1,max=100"`
	House     *string `json:"house,omitempty" validate:"omitempty,max=15"`
	Structure *string `json:"structure,omitempty" validate:"omitempty,max=15"`
	Building  *string `json:"building,omitempty" validate:"omitempty,max=15"`
	Apartment *string `json:"apartment,omitempty" validate:"omitempty,max=15"`
	Phone     *string `json:"phone,omitempty" validate:"omitempty,min=1,max=20"`
}

// DeleteItemsRequest carries ids as a comma separated string, e.g. "1,2,3".
type DeleteItemsRequest struct {
	Items string `json:"items" validate:"required"`
}

package transport

type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type RegisterRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
	Email    string `json:"email"`
	Role     string `json:"role"`
}

type LoginResponse struct {
	Token    string `json:"token"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Role     string `json:"role"`
	ID       uint   `json:"id"`
}

type CreateUserRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
	Email    string `json:"email"`
	Role     string `json:"role"`
}

// UpdateUserRequest overwrites username/email/role; a non-empty password is
// re-hashed, an empty one keeps the stored hash.
type UpdateUserRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password"`
	Email    string `json:"email"`
	Role     string `json:"role"`
}

type CategoryRequest struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description"`
}

// CategoryRef is the nested category reference accepted in product bodies.
type CategoryRef struct {
	ID uint `json:"id"`
}

type CreateProductRequest struct {
	Name        string       `json:"name" validate:"required"`
	Description string       `json:"description"`
	Price       float64      `json:"price"`
	Quantity    uint         `json:"quantity"`
	Category    *CategoryRef `json:"category"`
	CategoryID  uint         `json:"category_id"`
}

// ResolveCategoryID prefers the nested category object over the flat id.
func (r *CreateProductRequest) ResolveCategoryID() uint {
	if r.Category != nil {
		return r.Category.ID
	}
	return r.CategoryID
}

// UpdateProductRequest overwrites name/description/price/quantity. A nil
// Category keeps the existing reference untouched.
type UpdateProductRequest struct {
	Name        string       `json:"name" validate:"required"`
	Description string       `json:"description"`
	Price       float64      `json:"price"`
	Quantity    uint         `json:"quantity"`
	Category    *CategoryRef `json:"category"`
}

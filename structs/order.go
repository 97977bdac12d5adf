package structs

type OrderRequest struct {
	Name         string `json:"name" validate:"required,min=2,max=100"`
	Email        string `json:"email" validate:"required,email"`
	Phone        string `json:"phone" validate:"required,min=7,max=20"`
	Organization string `json:"organization" validate:"omitempty,max=200"`
	Message      string `json:"message" validate:"omitempty,max=2000"`
}

// Status membership in the recognized state set is enforced by the order
// service, which distinguishes an unknown value from a missing one.
type UpdateOrderStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

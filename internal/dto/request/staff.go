package request

type CreateStaffRequest struct {
	Name       string `json:"name" validate:"required"`
	Position   string `json:"position" validate:"required"`
	Department string `json:"department" validate:"required"`
	Email      string `json:"email" validate:"required,email"`
	Phone      string `json:"phone" validate:"required"`
	JoinDate   string `json:"joinDate" validate:"required"`
	Status     string `json:"status" validate:"required"`
}

type UpdateStaffRequest struct {
	Name       string `json:"name" validate:"required"`
	Position   string `json:"position" validate:"required"`
	Department string `json:"department" validate:"required"`
	Email      string `json:"email" validate:"required,email"`
	Phone      string `json:"phone" validate:"required"`
	JoinDate   string `json:"joinDate" validate:"required"`
	Status     string `json:"status" validate:"required"`
}

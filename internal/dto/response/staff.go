package response

import "flight-booking/internal/data/entity"

type StaffResponse struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Position   string `json:"position"`
	Department string `json:"department"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
	JoinDate   string `json:"joinDate"`
	Status     string `json:"status"`
}

func StaffToResponse(s *entity.Staff) StaffResponse {
	return StaffResponse{
		ID:         s.ID.String(),
		Name:       s.Name,
		Position:   s.Position,
		Department: s.Department,
		Email:      s.Email,
		Phone:      s.Phone,
		JoinDate:   s.JoinDate,
		Status:     s.Status,
	}
}

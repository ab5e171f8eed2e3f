package response

import "flight-booking/internal/data/entity"

type PassengerOverviewResponse struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Bookings int    `json:"bookings"`
}

type NotificationsResponse struct {
	Notifications []string `json:"notifications"`
}

func UserToPassengerOverview(u *entity.User) PassengerOverviewResponse {
	return PassengerOverviewResponse{
		Username: u.Username,
		Email:    u.Email,
		Bookings: len(u.BookingIDs),
	}
}

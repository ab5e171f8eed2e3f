package response

type AuthResponse struct {
	Username string `json:"username"`
	Email    string `json:"email"`
}

type AdminAuthResponse struct {
	AdminName string `json:"adminname"`
	Email     string `json:"email"`
}

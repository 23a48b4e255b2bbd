package dto

/* =========================================================
 * REQUESTS
 * ========================================================= */

type LoginRequest struct {
	Username string `json:"username" validate:"required,min=3,max=64"`
	Password string `json:"password" validate:"required,min=6,max=128"`
}

/* =========================================================
 * RESPONSE
 * ========================================================= */

type LoginResponse struct {
	AdminID     string `json:"admin_id"`
	Username    string `json:"username"`
	AccessToken string `json:"access_token"`
}

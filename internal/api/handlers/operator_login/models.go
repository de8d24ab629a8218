package operator_login

// LoginRequest HTTP request model
type LoginRequest struct {
	Password string `json:"password"`
}

// LoginResponse HTTP response model
type LoginResponse struct {
	SessionID string `json:"sessionId"`
	Header    string `json:"header"`
}

package dto

type EstablishSessionRequest struct {
	AccessToken string `json:"access_token"`
	RememberMe  bool   `json:"remember_me"`
}

type SessionResponse struct {
	SessionToken string   `json:"session_token"`
	MemberID     int64    `json:"member_id"`
	Nickname     string   `json:"nickname"`
	Roles        []string `json:"roles"`
}

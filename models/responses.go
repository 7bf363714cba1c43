package models

// AuthResponse is returned by successful register and login calls.
// The client holds UserID for the rest of the browser session and passes
// it on every scoped request; there is no server-side session record.
type AuthResponse struct {
	Success  bool   `json:"success"`
	UserID   int64  `json:"userId"`
	Username string `json:"username"`
}

// SuccessResponse is the generic acknowledgement for mutations.
type SuccessResponse struct {
	Success bool `json:"success"`
}

// ErrorResponse carries the short human-readable message surfaced to the
// client on any failure. Internal detail stays in the server logs.
type ErrorResponse struct {
	Error string `json:"error"`
}

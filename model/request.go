package model

// --- FORM PAYLOADS (browser -> frontend) ---

// SignupForm is the email the signup screen submits.
type SignupForm struct {
	Email string `form:"email"`
}

// AddStockForm is the ticker typed into the add-subscription dialog.
type AddStockForm struct {
	Tick string `form:"tick"`
}

// ToggleForm is the notification switch submission from the detail dialog.
// Prev carries the last server-confirmed status so a failed update can fall
// back to it instead of the attempted value.
type ToggleForm struct {
	Tick    string `form:"tick"`
	Company string `form:"company"`
	Status  bool   `form:"status"`
	Prev    bool   `form:"prev"`
}

// --- WIRE PAYLOADS (frontend -> stock service) ---

type RegisterRequest struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

type AddStockRequest struct {
	UserID string `json:"user_id"`
	Tick   string `json:"tick"`
}

type PatchStatusRequest struct {
	UserID string `json:"user_id"`
	Status bool   `json:"status"`
}

// StatusResponse echoes the confirmed notification flag back from a PATCH.
type StatusResponse struct {
	Status bool `json:"status"`
}

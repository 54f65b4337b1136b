package request

// CreateGuestRequest is the request body for creating a guest player
type CreateGuestRequest struct {
	DisplayName string `json:"display_name"`
}

// RegisterRequest is the request body for registering a player
type RegisterRequest struct {
	Username    string `json:"username"`
	Password    string `json:"password"`
	DisplayName string `json:"display_name"`
}

// LoginRequest is the request body for logging in
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// CreateMatchRequest is the request body for creating a match
type CreateMatchRequest struct {
	// Opponent is "cpu" (default) or "human"
	Opponent string `json:"opponent,omitempty"`

	// CPUStrategy selects the CPU opponent's strategy for CPU matches
	CPUStrategy string `json:"cpu_strategy,omitempty"`

	// Mark is the creator's seat, "X" (default) or "O"
	Mark string `json:"mark,omitempty"`
}

// MoveRequest is the request body for submitting a move
type MoveRequest struct {
	BoardX int `json:"board_x"`
	BoardY int `json:"board_y"`
	CellX  int `json:"cell_x"`
	CellY  int `json:"cell_y"`
}

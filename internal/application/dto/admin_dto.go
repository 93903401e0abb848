package dto

// RoleRequest otorgar o revocar un rol a un principal.
type RoleRequest struct {
	PrincipalID string `json:"principal_id"`
	Role        string `json:"role"`
}

// GuardResponse estado del guard operacional.
type GuardResponse struct {
	Paused bool `json:"paused"`
}

package domain

// EnforceRequest asks whether a teacher holding Role may perform Action on
// Resource.
type EnforceRequest struct {
	TeacherID string `json:"teacherId"`
	Role      string `json:"role"`
	Resource  string `json:"resource" binding:"required"`
	Action    string `json:"action" binding:"required"`
}

type EnforceResponse struct {
	Allowed bool `json:"allowed"`
}

type PermissionResponse struct {
	Resource string `json:"resource"`
	Action   string `json:"action"`
}

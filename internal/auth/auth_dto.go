package auth

type SignupRequest struct {
	Name     string `json:"name" binding:"required,min=2,max=255"`
	Password string `json:"password" binding:"required,min=6"`
	SecretID string `json:"secretId" binding:"required"`
}

type LoginRequest struct {
	Name     string `json:"name" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type TeacherResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Role string `json:"role"`
}

type AuthResponse struct {
	Teacher TeacherResponse `json:"teacher"`
	Token   string          `json:"token"`
}

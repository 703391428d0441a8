package student

import "time"

type CreateStudentRequest struct {
	Name      string `json:"name" binding:"required,max=255"`
	Roll      string `json:"roll" binding:"required,max=50"`
	ClassName string `json:"className" binding:"required,max=100"`
	Section   string `json:"section" binding:"required,max=50"`
	Email     string `json:"email" binding:"omitempty,email"`
	Phone     string `json:"phone" binding:"omitempty,max=50"`
}

// UpdateStudentRequest is a partial update; nil fields keep their value.
type UpdateStudentRequest struct {
	Name      *string `json:"name" binding:"omitempty,min=1,max=255"`
	Roll      *string `json:"roll" binding:"omitempty,min=1,max=50"`
	ClassName *string `json:"className" binding:"omitempty,min=1,max=100"`
	Section   *string `json:"section" binding:"omitempty,min=1,max=50"`
	Email     *string `json:"email" binding:"omitempty,email"`
	Phone     *string `json:"phone" binding:"omitempty,max=50"`
}

type StudentResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Roll      string    `json:"roll"`
	ClassName string    `json:"className"`
	Section   string    `json:"section"`
	Email     string    `json:"email,omitempty"`
	Phone     string    `json:"phone,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

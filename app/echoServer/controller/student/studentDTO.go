package student

type CreateStudentReq struct {
	Name      string `json:"name" validate:"required"`
	StudentID string `json:"studentId" validate:"required"`
	Email     string `json:"email" validate:"required,email"`
	Phone     string `json:"phone"`
}

// UpdateStudentReq covers contact fields only; history is never editable
// through this endpoint.
type UpdateStudentReq struct {
	Name      string `json:"name" validate:"required"`
	StudentID string `json:"studentId" validate:"required"`
	Email     string `json:"email" validate:"required,email"`
	Phone     string `json:"phone"`
}

package book

type CreateBookReq struct {
	Title    string `json:"title" validate:"required"`
	Author   string `json:"author" validate:"required"`
	ISBN     string `json:"isbn" validate:"required"`
	Location string `json:"location"`
}

// UpdateBookReq carries the mutable catalog fields; id and isbn stay fixed
// after creation.
type UpdateBookReq struct {
	Title    string `json:"title" validate:"required"`
	Author   string `json:"author" validate:"required"`
	Location string `json:"location"`
	Status   string `json:"status" validate:"required,oneof=Available 'Checked Out' Overdue"`
}

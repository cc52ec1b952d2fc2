package admin

type AssignInput struct {
	StudentID  string `json:"studentId"`
	VerifierID string `json:"verifierId"`
}

type CreateVerifierInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password"`
}

// CreatedVerifierDTO is the only place the plaintext password ever appears.
type CreatedVerifierDTO struct {
	Message  string `json:"message"`
	UserID   string `json:"userId"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type StatsDTO struct {
	Total    int64 `json:"total"`
	Draft    int64 `json:"draft"`
	Pending  int64 `json:"pending"`
	Approved int64 `json:"approved"`
	Rejected int64 `json:"rejected"`
}

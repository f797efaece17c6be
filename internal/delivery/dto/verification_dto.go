package dto

type RequestCodeRequest struct {
	Phone string `json:"phone" validate:"required,phone10"`
}

type VerifyCodeRequest struct {
	Phone string `json:"phone" validate:"required,phone10"`
	Code  string `json:"code" validate:"required,len=6,numeric"`
}

type VerificationStatusResponse struct {
	Phone    string `json:"phone"`
	Verified bool   `json:"verified"`
}

package model

import "time"

// User 報名資料，email 全域唯一
type User struct {
	ID        string    `json:"id"`
	Name      string    `json:"name" validate:"notblank"`
	Email     string    `json:"email" validate:"notblank"`
	Mobile    string    `json:"mobile" validate:"notblank"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (u *User) Validate() error {
	return validateStruct(u)
}

// RegisterRequest is the POST /register body.
type RegisterRequest struct {
	Name   string `json:"name"`
	Email  string `json:"email"`
	Mobile string `json:"mobile"`
}

func (r RegisterRequest) ToUser() *User {
	return &User{
		Name:   r.Name,
		Email:  r.Email,
		Mobile: r.Mobile,
	}
}

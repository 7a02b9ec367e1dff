package dto

import "github.com/yigit/schoolapi/internal/app/models"

// UserRequest is the field contract for creating and updating a user.
// The password is hashed by the service before it is stored.
type UserRequest struct {
	Username string `json:"username" form:"username" binding:"required" example:"ada"`
	Email    string `json:"email" form:"email" binding:"required" example:"ada@example.com"`
	Password string `json:"password" form:"password" binding:"required" example:"s3cret"`
}

// ToModel copies the request into a user record
func (r *UserRequest) ToModel() *models.User {
	return &models.User{
		Username: r.Username,
		Email:    r.Email,
		Password: r.Password,
	}
}

// UserResponse is the external representation of a user. The password hash is never exposed.
type UserResponse struct {
	ID       int64  `json:"id" example:"1"`
	Username string `json:"username" example:"ada"`
	Email    string `json:"email" example:"ada@example.com"`
}

// NewUserResponse projects a user record
func NewUserResponse(user *models.User) UserResponse {
	return UserResponse{
		ID:       user.ID,
		Username: user.Username,
		Email:    user.Email,
	}
}

// NewUserListResponse projects a list of users
func NewUserListResponse(users []*models.User) []UserResponse {
	out := make([]UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, NewUserResponse(u))
	}
	return out
}

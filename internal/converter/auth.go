package converter

import (
	"arcade_backend/internal/api/dto/auth"
	"arcade_backend/internal/model"
)

func RegisterRequestToUserModel(req *auth.RegisterRequest) *model.User {
	return &model.User{
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
	}
}

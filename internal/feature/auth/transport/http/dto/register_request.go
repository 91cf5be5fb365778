// Package dto defines data transfer objects for the auth feature's HTTP transport layer.
package dto

import "mime/multipart"

// RegisterReq represents the multipart form body for the /register endpoint.
// Binding only requires the fields to be present; any further checks
// (password confirmation, duplicate email) belong to the usecase.
type RegisterReq struct {
	Name            string                `form:"name" binding:"required"`
	Email           string                `form:"email" binding:"required"`
	Password        string                `form:"password" binding:"required"`
	ConfirmPassword string                `form:"confirmPassword" binding:"required"`
	Avatar          *multipart.FileHeader `form:"avatar"`
}

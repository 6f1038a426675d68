package models

import "errors"

var (
	ErrWorkspaceNotFound = errors.New("workspace not found")
	ErrDatasetNotFound   = errors.New("dataset not found")
	ErrUserNotFound      = errors.New("user not found")
)

type ErrorResponse struct {
	Error string `json:"error"`
}

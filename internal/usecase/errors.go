package usecase

import "errors"

var (
	ErrInternal     = errors.New("internal error")
	ErrInvalidInput = errors.New("invalid input")
	ErrUnauthorized = errors.New("unauthorized")

	ErrProfileNotFound      = errors.New("profile not found")
	ErrSkillNotFound        = errors.New("skill not found")
	ErrRequestNotFound      = errors.New("connection request not found")
	ErrInvalidSelection     = errors.New("invalid skill selection")
	ErrInvalidState         = errors.New("request is not pending")
	ErrNoContactMethod      = errors.New("profile needs at least one contact method")
	ErrInvalidContactMethod = errors.New("invalid contact method")
)

package utils

import "errors"

var (
	ErrPlaceNotFound      = errors.New("place not found")
	ErrCityNotFound       = errors.New("no places found for city")
	ErrInvalidInput       = errors.New("invalid input")
	ErrInvalidPage        = errors.New("invalid page parameter")
	ErrInvalidPageSize    = errors.New("invalid page size parameter")
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrPreferenceNotFound = errors.New("preference not found")
	ErrDatabaseError      = errors.New("database error")
)

// Package usecase contains the application-specific business rules.
package usecase

import "context"

// UpdateLocationInput defines the coordinate pair written by a location update.
type UpdateLocationInput struct {
	Latitude  float64 `json:"latitude" validate:"min=-90,max=90"`
	Longitude float64 `json:"longitude" validate:"min=-180,max=180"`
}

// UpdateEmailInput defines the data for an email update.
type UpdateEmailInput struct {
	Email string `json:"email" validate:"required,email"`
}

// UpdatePhotoInput defines the data for a photo update.
type UpdatePhotoInput struct {
	Photo []byte `json:"photo" validate:"required"`
}

// ProfileUsecase applies partial field mutations to a user record. Each
// operation persists only the field(s) it targets and returns the number
// of rows affected.
type ProfileUsecase interface {
	UpdateLocation(ctx context.Context, userID int64, input *UpdateLocationInput) (int64, error)
	UpdateEmail(ctx context.Context, userID int64, input *UpdateEmailInput) (int64, error)
	UpdatePhoto(ctx context.Context, userID int64, input *UpdatePhotoInput) (int64, error)
}

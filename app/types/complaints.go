package types

import (
	"errors"
	"strings"

	"github.com/labstack/echo/v4"
)

type CreateComplaintRequest struct {
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Details string `json:"details"`
}

func NewCreateComplaintRequestFromContext(ctx echo.Context) (*CreateComplaintRequest, error) {
	var body CreateComplaintRequest
	if err := ctx.Bind(&body); err != nil {
		return nil, err
	}

	body.Email = strings.ToLower(strings.TrimSpace(body.Email))
	body.Subject = strings.TrimSpace(body.Subject)
	body.Details = strings.TrimSpace(body.Details)

	return &body, nil
}

func (r *CreateComplaintRequest) Validate() error {
	if r.Email == "" {
		return errors.New("email is required")
	}
	if r.Details == "" {
		return errors.New("details are required")
	}
	return nil
}

type ComplaintResponse struct {
	ID        uint64 `json:"id"`
	Email     string `json:"email"`
	Subject   string `json:"subject"`
	Details   string `json:"details"`
	CreatedAt string `json:"createdAt"`
}

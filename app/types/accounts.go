package types

import (
	"errors"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"
)

type CreateAccountRequest struct {
	Email string `json:"email"`
	Name  string `json:"name"`
	Role  string `json:"role"`
}

func NewCreateAccountRequestFromContext(ctx echo.Context) (*CreateAccountRequest, error) {
	var body CreateAccountRequest
	if err := ctx.Bind(&body); err != nil {
		return nil, err
	}

	body.Email = strings.ToLower(strings.TrimSpace(body.Email))
	body.Name = strings.TrimSpace(body.Name)
	body.Role = strings.ToLower(strings.TrimSpace(body.Role))

	return &body, nil
}

func (r *CreateAccountRequest) Validate() error {
	if r.Email == "" {
		return errors.New("email is required")
	}
	if !strings.Contains(r.Email, "@") {
		return errors.New("email is invalid")
	}
	if r.Name == "" {
		return errors.New("name is required")
	}
	if r.Role != "" && r.Role != "user" && r.Role != "manager" {
		return errors.New("role must be user or manager")
	}
	return nil
}

type UpdateAccountRoleRequest struct {
	ID   uint64 `json:"-"`
	Role string `json:"role"`
}

func NewUpdateAccountRoleRequestFromContext(ctx echo.Context) (*UpdateAccountRoleRequest, error) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil {
		return nil, err
	}

	var body UpdateAccountRoleRequest
	if err := ctx.Bind(&body); err != nil {
		return nil, err
	}
	body.ID = id
	body.Role = strings.ToLower(strings.TrimSpace(body.Role))

	return &body, nil
}

func (r *UpdateAccountRoleRequest) Validate() error {
	if r.ID == 0 {
		return errors.New("invalid account id")
	}
	if r.Role != "user" && r.Role != "manager" {
		return errors.New("role must be user or manager")
	}
	return nil
}

type IssueTokenRequest struct {
	Email string `json:"email"`
	Name  string `json:"name"`
	Role  string `json:"role"`
}

func NewIssueTokenRequestFromContext(ctx echo.Context) (*IssueTokenRequest, error) {
	var body IssueTokenRequest
	if err := ctx.Bind(&body); err != nil {
		return nil, err
	}

	body.Email = strings.ToLower(strings.TrimSpace(body.Email))
	body.Name = strings.TrimSpace(body.Name)
	body.Role = strings.ToLower(strings.TrimSpace(body.Role))

	return &body, nil
}

func (r *IssueTokenRequest) Validate() error {
	if r.Email == "" {
		return errors.New("email is required")
	}
	return nil
}

type TokenResponse struct {
	Token string `json:"token"`
}

type LogoutResponse struct {
	Success bool `json:"success"`
}

type AccountResponse struct {
	ID        uint64 `json:"id"`
	Email     string `json:"email"`
	Name      string `json:"name"`
	Role      string `json:"role"`
	CreatedAt string `json:"createdAt"`
}

type UpdateAccountRoleResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

package types

import (
	"errors"
	"strings"

	"github.com/labstack/echo/v4"
)

type CreateNoticeRequest struct {
	Notice string `json:"notice"`
	Date   string `json:"date"`
}

func NewCreateNoticeRequestFromContext(ctx echo.Context) (*CreateNoticeRequest, error) {
	var body CreateNoticeRequest
	if err := ctx.Bind(&body); err != nil {
		return nil, err
	}

	body.Notice = strings.TrimSpace(body.Notice)
	body.Date = strings.TrimSpace(body.Date)

	return &body, nil
}

func (r *CreateNoticeRequest) Validate() error {
	if r.Notice == "" || r.Date == "" {
		return errors.New("all fields are required")
	}
	return nil
}

type NoticeResponse struct {
	ID        uint64 `json:"id"`
	Notice    string `json:"notice"`
	Date      string `json:"date"`
	CreatedAt string `json:"createdAt"`
}

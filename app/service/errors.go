package service

import "errors"

var (
	ErrValidation              = errors.New("invalid request")
	ErrDuplicateResource       = errors.New("resource already exists")
	ErrNotFound                = errors.New("resource not found")
	ErrPaymentInitiationFailed = errors.New("payment initiation failed")
	ErrInvalidCallbackStatus   = errors.New("unrecognized callback status")
	ErrPaymentRecordNotFound   = errors.New("payment record not found")
	ErrCallbackRejected        = errors.New("callback rejected")
)

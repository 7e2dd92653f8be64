package controller

import (
	"context"

	"github.com/hallworks/ms-go-hall/app/entity"
	"github.com/hallworks/ms-go-hall/app/types"
)

type callbackHandler func(ctx context.Context, req *types.GatewayCallbackRequest) (*entity.Payment, error)

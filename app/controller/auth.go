package controller

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"

	"github.com/hallworks/ms-go-hall/app/auth"
	"github.com/hallworks/ms-go-hall/app/factory"
	"github.com/hallworks/ms-go-hall/app/types"
	"github.com/hallworks/ms-go-hall/config"
)

const authCookieName = "token"

type AuthController struct {
	jwtCfg config.JWTConfig
	logger logrus.FieldLogger
}

func NewAuthController(jwtCfg config.JWTConfig) *AuthController {
	return &AuthController{
		jwtCfg: jwtCfg,
		logger: factory.NewModuleLogger("auth-controller"),
	}
}

// IssueToken mints a JWT for the signed-in identity and mirrors it into
// an httpOnly cookie so browser clients authenticate without touching
// the token from script.
func (c *AuthController) IssueToken(ctx echo.Context) error {
	req, err := types.NewIssueTokenRequestFromContext(ctx)
	if err != nil {
		return c.writeError(ctx, http.StatusBadRequest, "invalid request body")
	}
	if err := req.Validate(); err != nil {
		return c.writeError(ctx, http.StatusBadRequest, err.Error())
	}

	now := time.Now()
	token, err := auth.MintAccessToken(c.jwtCfg, now, auth.AccessTokenPayload{
		Email: req.Email,
		Name:  req.Name,
		Role:  req.Role,
	})
	if err != nil {
		factory.LoggerWithContext(c.logger, ctx).WithError(err).Error("Mint access token failed")
		return c.writeError(ctx, http.StatusInternalServerError, "internal server error")
	}

	ctx.SetCookie(&http.Cookie{
		Name:     authCookieName,
		Value:    token,
		Path:     "/",
		Expires:  now.Add(c.jwtCfg.TTL),
		HttpOnly: true,
		Secure:   c.jwtCfg.SecureCookie,
		SameSite: http.SameSiteNoneMode,
	})

	return ctx.JSON(http.StatusOK, &types.TokenResponse{Token: token})
}

func (c *AuthController) Logout(ctx echo.Context) error {
	ctx.SetCookie(&http.Cookie{
		Name:     authCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   c.jwtCfg.SecureCookie,
		SameSite: http.SameSiteNoneMode,
	})

	return ctx.JSON(http.StatusOK, &types.LogoutResponse{Success: true})
}

func (c *AuthController) writeError(ctx echo.Context, statusCode int, message string) error {
	return ctx.JSON(statusCode, &types.ErrorResponse{Error: message})
}

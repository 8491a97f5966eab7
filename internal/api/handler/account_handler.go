package handler

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/mvcstore/catalog-admin/internal/api/middleware"
	"github.com/mvcstore/catalog-admin/internal/core/ports"
)

type AccountHandler struct {
	authService ports.AuthService
	tokenTTL    time.Duration
	secure      bool
}

func NewAccountHandler(authService ports.AuthService, tokenTTL time.Duration, secure bool) *AccountHandler {
	return &AccountHandler{authService: authService, tokenTTL: tokenTTL, secure: secure}
}

// LoginPrompt is where browsers land when an administration page needs a
// signed-in principal.
//
// @Summary      Login entry point
// @Tags         account
// @Produce      json
// @Param        return_url  query     string  false  "Page to return to after login"
// @Success      200         {object}  loginPromptResponse
// @Router       /account/login [get]
func (h *AccountHandler) LoginPrompt(c echo.Context) error {
	return c.JSON(http.StatusOK, loginPromptResponse{
		Message:   "sign in to continue",
		ReturnURL: safeReturnURL(c.QueryParam("return_url")),
	})
}

// Login authenticates an administration account and returns a JWT.
//
// @Summary      Login
// @Tags         account
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Login credentials"
// @Success      200   {object}  loginResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Router       /account/login [post]
func (h *AccountHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		var pe *payloadError
		if errors.As(err, &pe) {
			return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload", Fields: pe.Fields})
		}
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	token, principal, err := h.authService.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		return err
	}

	setCookie(c, middleware.AuthCookie, token, "/", h.secure, int(h.tokenTTL.Seconds()))
	return c.JSON(http.StatusOK, loginResponse{
		Token:     token,
		Principal: toPrincipalResponse(principal),
		ReturnURL: safeReturnURL(req.ReturnURL),
	})
}

// Logout ends the session and redirects to the site root.
//
// @Summary      Logout
// @Tags         account
// @Success      303
// @Router       /account/logout [post]
func (h *AccountHandler) Logout(c echo.Context) error {
	if err := h.authService.Logout(c.Request().Context(), ctxPrincipal(c)); err != nil {
		return err
	}
	clearCookie(c, middleware.AuthCookie, "/")
	clearCookie(c, CSRFCookie, "/")
	return c.Redirect(http.StatusSeeOther, "/")
}

// safeReturnURL only lets local paths through.
func safeReturnURL(raw string) string {
	if !strings.HasPrefix(raw, "/") || strings.HasPrefix(raw, "//") || strings.HasPrefix(raw, "/\\") {
		return ""
	}
	return raw
}

package handler

import (
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/mvcstore/catalog-admin/internal/api/middleware"
	"github.com/mvcstore/catalog-admin/internal/core/domain"
	"github.com/mvcstore/catalog-admin/internal/core/ports"
)

const (
	// CSRFCookie carries the cookie half of the anti-forgery token.
	CSRFCookie = "csrf_token"
	// CSRFHeader may carry the form half for non-form clients.
	CSRFHeader = "X-CSRF-Token"
	// FlashCookie holds the one-shot confirmation message shown by GET /admin.
	FlashCookie = "catalog_flash"
)

// ctxPrincipal returns the caller resolved by the Auth middleware.
func ctxPrincipal(c echo.Context) domain.Principal {
	return middleware.PrincipalFrom(c)
}

// forgeryCredentials collects the anti-forgery evidence of a mutating request.
// The header wins over the form field when both are present.
func forgeryCredentials(c echo.Context, formToken string) ports.ForgeryCredentials {
	creds := ports.ForgeryCredentials{Method: c.Request().Method, SubmittedToken: formToken}
	if h := strings.TrimSpace(c.Request().Header.Get(CSRFHeader)); h != "" {
		creds.SubmittedToken = h
	}
	if cookie, err := c.Cookie(CSRFCookie); err == nil {
		creds.CookieToken = cookie.Value
	}
	return creds
}

func setCookie(c echo.Context, name, value, path string, secure bool, maxAge int) {
	c.SetCookie(&http.Cookie{
		Name:     name,
		Value:    value,
		Path:     path,
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   maxAge,
	})
}

func clearCookie(c echo.Context, name, path string) {
	c.SetCookie(&http.Cookie{
		Name:     name,
		Value:    "",
		Path:     path,
		HttpOnly: true,
		MaxAge:   -1,
		Expires:  time.Unix(0, 0),
	})
}

func setFlash(c echo.Context, message string, secure bool) {
	if message == "" {
		return
	}
	setCookie(c, FlashCookie, url.QueryEscape(message), "/admin", secure, 0)
}

// takeFlash reads the pending flash message and clears it.
func takeFlash(c echo.Context) string {
	cookie, err := c.Cookie(FlashCookie)
	if err != nil || cookie.Value == "" {
		return ""
	}
	clearCookie(c, FlashCookie, "/admin")
	msg, err := url.QueryUnescape(cookie.Value)
	if err != nil {
		return ""
	}
	return msg
}

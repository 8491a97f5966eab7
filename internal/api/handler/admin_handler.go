package handler

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/mvcstore/catalog-admin/internal/core/domain"
	"github.com/mvcstore/catalog-admin/internal/core/ports"
	"github.com/mvcstore/catalog-admin/internal/core/service"
)

// TokenIssuer hands out the anti-forgery token of a session.
type TokenIssuer interface {
	Issue(ctx context.Context, sessionID string) (service.TokenPair, error)
}

type AdminHandler struct {
	workflow ports.AdminWorkflow
	tokens   TokenIssuer
	secure   bool
}

// NewAdminHandler sets the Secure flag on the cookies it writes when secure is true.
func NewAdminHandler(workflow ports.AdminWorkflow, tokens TokenIssuer, secure bool) *AdminHandler {
	return &AdminHandler{workflow: workflow, tokens: tokens, secure: secure}
}

// Index lists every product together with any pending confirmation message.
//
// @Summary      Administration listing
// @Tags         admin
// @Produce      json
// @Success      200  {object}  adminListResponse
// @Failure      401  {object}  errorResponse
// @Router       /admin [get]
func (h *AdminHandler) Index(c echo.Context) error {
	principal := ctxPrincipal(c)
	view, err := h.workflow.List(c.Request().Context(), principal)
	if err != nil {
		return err
	}

	token, err := h.issueToken(c, principal)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, adminListResponse{
		State:     string(view.State),
		Products:  toProductResponses(view.Products),
		Message:   takeFlash(c),
		CSRFToken: token,
	})
}

// Edit opens the product form. An unknown id yields a null product.
//
// @Summary      Edit form
// @Tags         admin
// @Produce      json
// @Param        id   path      int  true  "Product id"
// @Success      200  {object}  editResponse
// @Failure      400  {object}  errorResponse
// @Failure      401  {object}  errorResponse
// @Router       /admin/edit/{id} [get]
func (h *AdminHandler) Edit(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid product id")
	}

	principal := ctxPrincipal(c)
	view, err := h.workflow.Edit(c.Request().Context(), principal, id)
	if err != nil {
		return err
	}
	return h.renderForm(c, principal, view)
}

// Create opens an empty product form.
//
// @Summary      Create form
// @Tags         admin
// @Produce      json
// @Success      200  {object}  editResponse
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Router       /admin/create [get]
func (h *AdminHandler) Create(c echo.Context) error {
	principal := ctxPrincipal(c)
	view, err := h.workflow.Create(c.Request().Context(), principal)
	if err != nil {
		return err
	}
	return h.renderForm(c, principal, view)
}

// Save stores a submitted product form and redirects to the listing.
//
// @Summary      Save product
// @Tags         admin
// @Accept       json,x-www-form-urlencoded
// @Produce      json
// @Param        body  body      productForm  true  "Product form"
// @Success      303
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      422   {object}  editResponse
// @Router       /admin/edit [post]
func (h *AdminHandler) Save(c echo.Context) error {
	var form productForm
	if err := c.Bind(&form); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	principal := ctxPrincipal(c)
	res, view, err := h.workflow.Submit(c.Request().Context(), principal, ports.SubmitInput{
		Product: toProduct(form),
		Forgery: forgeryCredentials(c, form.CSRFToken),
	})
	if errors.Is(err, domain.ErrValidation) && view != nil {
		token, tokenErr := h.issueToken(c, principal)
		if tokenErr != nil {
			return tokenErr
		}
		return c.JSON(http.StatusUnprocessableEntity, toEditResponse(view, token))
	}
	if err != nil {
		return err
	}

	setFlash(c, res.Message, h.secure)
	return c.Redirect(http.StatusSeeOther, "/admin")
}

// Delete removes a product and redirects to the listing.
//
// @Summary      Delete product
// @Tags         admin
// @Param        id   path  int  true  "Product id"
// @Success      303
// @Failure      400  {object}  errorResponse
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Router       /admin/delete/{id} [post]
func (h *AdminHandler) Delete(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid product id")
	}

	var form deleteForm
	if err := c.Bind(&form); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	res, err := h.workflow.Delete(c.Request().Context(), ctxPrincipal(c), ports.DeleteInput{
		ProductID: id,
		Forgery:   forgeryCredentials(c, form.CSRFToken),
	})
	if err != nil {
		return err
	}

	setFlash(c, res.Message, h.secure)
	return c.Redirect(http.StatusSeeOther, "/admin")
}

func (h *AdminHandler) renderForm(c echo.Context, principal domain.Principal, view *ports.EditView) error {
	token, err := h.issueToken(c, principal)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toEditResponse(view, token))
}

// issueToken sets the cookie half and returns the form half.
func (h *AdminHandler) issueToken(c echo.Context, principal domain.Principal) (string, error) {
	if principal.SessionID == "" {
		return "", nil
	}
	pair, err := h.tokens.Issue(c.Request().Context(), principal.SessionID)
	if err != nil {
		return "", err
	}
	setCookie(c, CSRFCookie, pair.CookieToken, "/", h.secure, 0)
	return pair.FormToken, nil
}

package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/mvcstore/catalog-admin/internal/core/ports"
)

type CatalogHandler struct {
	browser ports.CatalogBrowser
}

func NewCatalogHandler(browser ports.CatalogBrowser) *CatalogHandler {
	return &CatalogHandler{browser: browser}
}

// Browse returns one page of the public catalog.
//
// @Summary      Browse products
// @Tags         catalog
// @Produce      json
// @Param        page      query     int     false  "Page number (1-based)"
// @Param        category  query     string  false  "Category filter"
// @Success      200       {object}  browseResponse
// @Router       /products [get]
func (h *CatalogHandler) Browse(c echo.Context) error {
	// Missing or malformed pages fall through to the first page.
	page, _ := strconv.Atoi(c.QueryParam("page"))

	res, err := h.browser.Browse(c.Request().Context(), ports.BrowseInput{
		Page:     page,
		Category: c.QueryParam("category"),
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toBrowseResponse(res))
}

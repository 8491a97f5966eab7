package handler

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/mvcstore/catalog-admin/internal/core/domain"
	"github.com/mvcstore/catalog-admin/internal/core/ports"
)

// --- Request → domain ---

// toProduct converts the form. An unparsable price becomes zero, which the
// product validation reports as a non-positive price.
func toProduct(f productForm) domain.Product {
	price, err := decimal.NewFromString(strings.TrimSpace(string(f.Price)))
	if err != nil {
		price = decimal.Zero
	}
	return domain.Product{
		ID:          f.ID,
		Name:        f.Name,
		Description: f.Description,
		Price:       price,
		Category:    f.Category,
	}
}

// --- Domain → HTTP response ---

func toProductResponse(p domain.Product) productResponse {
	return productResponse{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price.StringFixed(2),
		Category:    p.Category,
	}
}

func toProductResponses(items []domain.Product) []productResponse {
	out := make([]productResponse, 0, len(items))
	for _, p := range items {
		out = append(out, toProductResponse(p))
	}
	return out
}

func toBrowseResponse(r *ports.BrowseResult) browseResponse {
	return browseResponse{
		Products: toProductResponses(r.Products),
		PagingInfo: pagingResponse{
			CurrentPage:  r.Paging.CurrentPage,
			ItemsPerPage: r.Paging.ItemsPerPage,
			TotalItems:   r.Paging.TotalItems,
			TotalPages:   r.Paging.TotalPages(),
		},
		CurrentCategory: r.Category,
	}
}

func toEditResponse(v *ports.EditView, csrfToken string) editResponse {
	resp := editResponse{State: string(v.State), CSRFToken: csrfToken}
	if v.Product != nil {
		p := toProductResponse(*v.Product)
		resp.Product = &p
	}
	if len(v.Errors) > 0 {
		resp.Errors = make(map[string]string, len(v.Errors))
		for _, fe := range v.Errors {
			resp.Errors[fe.Field] = fe.Message
		}
	}
	return resp
}

func toPrincipalResponse(p domain.Principal) principalResponse {
	return principalResponse{Identifier: p.Identifier, Roles: p.Roles()}
}

package handler

import (
	"bytes"
	"encoding/json"
)

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields,omitempty"`
}

// --- Request types ---

// priceInput accepts a price as a JSON number, a JSON string or a form value.
// Anything that is not a decimal is kept verbatim and rejected by validation.
type priceInput string

func (p *priceInput) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		*p = ""
		return nil
	}
	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		*p = priceInput(s)
		return nil
	}
	*p = priceInput(b)
	return nil
}

type productForm struct {
	ID          int64      `json:"id"          form:"id"`
	Name        string     `json:"name"        form:"name"`
	Description string     `json:"description" form:"description"`
	Price       priceInput `json:"price"       form:"price"`
	Category    string     `json:"category"    form:"category"`
	CSRFToken   string     `json:"csrf_token"  form:"csrf_token"`
}

type deleteForm struct {
	CSRFToken string `json:"csrf_token" form:"csrf_token"`
}

type loginRequest struct {
	Email     string `json:"email"      form:"email"      validate:"required,email"`
	Password  string `json:"password"   form:"password"   validate:"required"`
	ReturnURL string `json:"return_url" form:"return_url"`
}

// --- Response types ---

type productResponse struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Price       string `json:"price"`
	Category    string `json:"category"`
}

type pagingResponse struct {
	CurrentPage  int   `json:"current_page"`
	ItemsPerPage int   `json:"items_per_page"`
	TotalItems   int64 `json:"total_items"`
	TotalPages   int   `json:"total_pages"`
}

type browseResponse struct {
	Products        []productResponse `json:"products"`
	PagingInfo      pagingResponse    `json:"paging_info"`
	CurrentCategory string            `json:"current_category,omitempty"`
}

type adminListResponse struct {
	State     string            `json:"state"`
	Products  []productResponse `json:"products"`
	Message   string            `json:"message,omitempty"`
	CSRFToken string            `json:"csrf_token"`
}

type editResponse struct {
	State     string            `json:"state"`
	Product   *productResponse  `json:"product"`
	Errors    map[string]string `json:"errors,omitempty"`
	CSRFToken string            `json:"csrf_token,omitempty"`
}

type principalResponse struct {
	Identifier string   `json:"identifier"`
	Roles      []string `json:"roles"`
}

type loginResponse struct {
	Token     string            `json:"token"`
	Principal principalResponse `json:"principal"`
	ReturnURL string            `json:"return_url,omitempty"`
}

type loginPromptResponse struct {
	Message   string `json:"message"`
	ReturnURL string `json:"return_url,omitempty"`
}

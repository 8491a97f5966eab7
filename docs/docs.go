// Package docs registers the OpenAPI description served under /swagger.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {},
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/products": {
            "get": {
                "produces": ["application/json"],
                "tags": ["catalog"],
                "summary": "Browse products",
                "parameters": [
                    {"type": "integer", "description": "Page number (1-based)", "name": "page", "in": "query"},
                    {"type": "string", "description": "Category filter", "name": "category", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.browseResponse"}}
                }
            }
        },
        "/admin": {
            "get": {
                "produces": ["application/json"],
                "tags": ["admin"],
                "summary": "Administration listing",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.adminListResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/handler.errorResponse"}}
                }
            }
        },
        "/admin/create": {
            "get": {
                "produces": ["application/json"],
                "tags": ["admin"],
                "summary": "Create form",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.editResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/handler.errorResponse"}},
                    "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/handler.errorResponse"}}
                }
            }
        },
        "/admin/edit": {
            "post": {
                "consumes": ["application/json", "application/x-www-form-urlencoded"],
                "produces": ["application/json"],
                "tags": ["admin"],
                "summary": "Save product",
                "parameters": [
                    {"description": "Product form", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.productForm"}}
                ],
                "responses": {
                    "303": {"description": "See Other"},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handler.errorResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/handler.errorResponse"}},
                    "422": {"description": "Unprocessable Entity", "schema": {"$ref": "#/definitions/handler.editResponse"}}
                }
            }
        },
        "/admin/edit/{id}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["admin"],
                "summary": "Edit form",
                "parameters": [
                    {"type": "integer", "description": "Product id", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.editResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handler.errorResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/handler.errorResponse"}}
                }
            }
        },
        "/admin/delete/{id}": {
            "post": {
                "tags": ["admin"],
                "summary": "Delete product",
                "parameters": [
                    {"type": "integer", "description": "Product id", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "303": {"description": "See Other"},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handler.errorResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/handler.errorResponse"}},
                    "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/handler.errorResponse"}}
                }
            }
        },
        "/account/login": {
            "get": {
                "produces": ["application/json"],
                "tags": ["account"],
                "summary": "Login entry point",
                "parameters": [
                    {"type": "string", "description": "Page to return to after login", "name": "return_url", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.loginPromptResponse"}}
                }
            },
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["account"],
                "summary": "Login",
                "parameters": [
                    {"description": "Login credentials", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.loginRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.loginResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handler.errorResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/handler.errorResponse"}}
                }
            }
        },
        "/account/logout": {
            "post": {
                "tags": ["account"],
                "summary": "Logout",
                "responses": {
                    "303": {"description": "See Other"}
                }
            }
        }
    },
    "definitions": {
        "handler.errorResponse": {
            "type": "object",
            "properties": {
                "error": {"type": "string"},
                "fields": {"type": "object", "additionalProperties": {"type": "string"}}
            }
        },
        "handler.productResponse": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "name": {"type": "string"},
                "description": {"type": "string"},
                "price": {"type": "string"},
                "category": {"type": "string"}
            }
        },
        "handler.pagingResponse": {
            "type": "object",
            "properties": {
                "current_page": {"type": "integer"},
                "items_per_page": {"type": "integer"},
                "total_items": {"type": "integer"},
                "total_pages": {"type": "integer"}
            }
        },
        "handler.browseResponse": {
            "type": "object",
            "properties": {
                "products": {"type": "array", "items": {"$ref": "#/definitions/handler.productResponse"}},
                "paging_info": {"$ref": "#/definitions/handler.pagingResponse"},
                "current_category": {"type": "string"}
            }
        },
        "handler.adminListResponse": {
            "type": "object",
            "properties": {
                "state": {"type": "string"},
                "products": {"type": "array", "items": {"$ref": "#/definitions/handler.productResponse"}},
                "message": {"type": "string"},
                "csrf_token": {"type": "string"}
            }
        },
        "handler.editResponse": {
            "type": "object",
            "properties": {
                "state": {"type": "string"},
                "product": {"$ref": "#/definitions/handler.productResponse"},
                "errors": {"type": "object", "additionalProperties": {"type": "string"}},
                "csrf_token": {"type": "string"}
            }
        },
        "handler.productForm": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "name": {"type": "string"},
                "description": {"type": "string"},
                "price": {"type": "string"},
                "category": {"type": "string"},
                "csrf_token": {"type": "string"}
            }
        },
        "handler.loginRequest": {
            "type": "object",
            "required": ["email", "password"],
            "properties": {
                "email": {"type": "string"},
                "password": {"type": "string"},
                "return_url": {"type": "string"}
            }
        },
        "handler.principalResponse": {
            "type": "object",
            "properties": {
                "identifier": {"type": "string"},
                "roles": {"type": "array", "items": {"type": "string"}}
            }
        },
        "handler.loginResponse": {
            "type": "object",
            "properties": {
                "token": {"type": "string"},
                "principal": {"$ref": "#/definitions/handler.principalResponse"},
                "return_url": {"type": "string"}
            }
        },
        "handler.loginPromptResponse": {
            "type": "object",
            "properties": {
                "message": {"type": "string"},
                "return_url": {"type": "string"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Catalog Administration API",
	Description:      "Public product catalog and role-gated catalog administration.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}

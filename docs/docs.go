// Package docs holds the swagger document served under /swagger.
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
        "/categories/{category}/products": {
            "get": {
                "description": "Merges every provider's listing, sorts it and returns one page. Ids are only valid within the response.",
                "produces": ["application/json"],
                "tags": ["products"],
                "summary": "List products of a category across all providers",
                "parameters": [
                    {"type": "string", "description": "Category name", "name": "category", "in": "path", "required": true},
                    {"type": "integer", "default": 10, "description": "Page size (1-10)", "name": "n", "in": "query"},
                    {"type": "integer", "default": 1, "description": "Page number", "name": "page", "in": "query"},
                    {"enum": ["name", "category", "company", "price", "rating", "discount"], "type": "string", "description": "Sort field", "name": "sort_by", "in": "query"},
                    {"enum": ["asc", "desc"], "type": "string", "default": "asc", "description": "Sort direction", "name": "sort_order", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handlers.ProductsSearchResult"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}},
                    "429": {"description": "Too Many Requests", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}},
                    "502": {"description": "Bad Gateway", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}
                }
            }
        },
        "/categories/{category}/products/{id}": {
            "get": {
                "description": "Asks providers in configured order and returns the first match unchanged.",
                "produces": ["application/json"],
                "tags": ["products"],
                "summary": "Get a product by its provider id",
                "parameters": [
                    {"type": "string", "description": "Category name", "name": "category", "in": "path", "required": true},
                    {"type": "string", "description": "Provider product ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handlers.ProductResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}},
                    "429": {"description": "Too Many Requests", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}
                }
            }
        },
        "/healthz": {
            "get": {
                "produces": ["application/json"],
                "tags": ["health"],
                "summary": "Liveness check",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handlers.HealthResponse"}}
                }
            }
        },
        "/metrics/providers": {
            "get": {
                "produces": ["application/json"],
                "tags": ["metrics"],
                "summary": "Per-provider call outcomes",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/handlers.ProviderStatsResponse"}}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}
                }
            }
        }
    },
    "definitions": {
        "handlers.ErrorResponse": {
            "type": "object",
            "properties": {"error": {"type": "string"}}
        },
        "handlers.HealthResponse": {
            "type": "object",
            "properties": {"providers": {"type": "integer"}, "status": {"type": "string"}}
        },
        "handlers.ProductResponse": {
            "type": "object",
            "properties": {
                "category": {"type": "string"},
                "company": {"type": "string"},
                "discount": {"type": "number"},
                "id": {"type": "string"},
                "name": {"type": "string"},
                "price": {"type": "number"},
                "rating": {"type": "number"}
            }
        },
        "handlers.ProductsSearchResult": {
            "type": "object",
            "properties": {
                "products": {"type": "array", "items": {"$ref": "#/definitions/handlers.ProductResponse"}},
                "total": {"type": "integer"}
            }
        },
        "handlers.ProviderStatsResponse": {
            "type": "object",
            "properties": {
                "failures": {"type": "integer"},
                "last_error": {"type": "string"},
                "misses": {"type": "integer"},
                "ok": {"type": "integer"},
                "provider": {"type": "string"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Catalog Aggregator API",
	Description:      "Merged product listings and lookups over several e-commerce providers.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}

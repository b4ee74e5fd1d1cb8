// Package docs registers the OpenAPI document served under /swagger.
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
        "/health": {
            "get": {"tags": ["health"], "summary": "Liveness check", "responses": {"200": {"description": "OK"}}}
        },
        "/health/ready": {
            "get": {"tags": ["health"], "summary": "Readiness check", "responses": {"200": {"description": "OK"}, "503": {"description": "Service Unavailable"}}}
        },
        "/pages/{view}": {
            "get": {
                "tags": ["pages"],
                "summary": "Page access check",
                "parameters": [
                    {"type": "string", "description": "gallery, login, admin or admin-login", "name": "view", "in": "path", "required": true},
                    {"type": "string", "description": "json to receive redirects as a decision body", "name": "format", "in": "query"}
                ],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/gate.Decision"}}, "302": {"description": "Found"}, "404": {"description": "Not Found"}}
            }
        },
        "/auth/login": {
            "post": {
                "tags": ["auth"],
                "summary": "Client login",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "parameters": [{"description": "Login credentials", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.loginRequest"}}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.sessionResponse"}}, "401": {"description": "Unauthorized"}, "422": {"description": "Unprocessable Entity"}, "429": {"description": "Too Many Requests"}}
            }
        },
        "/auth/logout": {
            "post": {"tags": ["auth"], "summary": "Client logout", "responses": {"204": {"description": "No Content"}}}
        },
        "/auth/me": {
            "get": {"tags": ["auth"], "summary": "Current client session", "produces": ["application/json"], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.sessionResponse"}}}}
        },
        "/admin/auth/login": {
            "post": {
                "tags": ["auth"],
                "summary": "Admin login",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "parameters": [{"description": "Login credentials", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.loginRequest"}}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.sessionResponse"}}, "401": {"description": "Unauthorized"}, "403": {"description": "Forbidden"}, "429": {"description": "Too Many Requests"}}
            }
        },
        "/admin/auth/logout": {
            "post": {"tags": ["auth"], "summary": "Admin logout", "responses": {"204": {"description": "No Content"}}}
        },
        "/admin/auth/me": {
            "get": {"tags": ["auth"], "summary": "Current admin session", "produces": ["application/json"], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.sessionResponse"}}}}
        },
        "/gallery": {
            "get": {"tags": ["gallery"], "summary": "My gallery", "produces": ["application/json"], "responses": {"200": {"description": "OK"}, "401": {"description": "Unauthorized"}}}
        },
        "/portfolio": {
            "get": {
                "tags": ["portfolio"],
                "summary": "List portfolio",
                "produces": ["application/json"],
                "parameters": [{"type": "string", "description": "Category filter; empty or \"all\" returns everything", "name": "category", "in": "query"}],
                "responses": {"200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/domain.PortfolioItem"}}}}
            }
        },
        "/portfolio/categories": {
            "get": {"tags": ["portfolio"], "summary": "Portfolio categories", "produces": ["application/json"], "responses": {"200": {"description": "OK", "schema": {"type": "array", "items": {"type": "string"}}}}}
        },
        "/settings": {
            "get": {"tags": ["settings"], "summary": "Studio settings", "produces": ["application/json"], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/domain.Settings"}}}}
        },
        "/theme": {
            "get": {"tags": ["theme"], "summary": "Current theme", "produces": ["application/json"], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.themeResponse"}}}},
            "put": {
                "tags": ["theme"],
                "summary": "Set theme",
                "consumes": ["application/json"],
                "parameters": [{"description": "light or dark", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.themeResponse"}}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.themeResponse"}}, "422": {"description": "Unprocessable Entity"}}
            }
        },
        "/theme/toggle": {
            "post": {"tags": ["theme"], "summary": "Toggle theme", "produces": ["application/json"], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.themeResponse"}}}}
        },
        "/admin/clients": {
            "get": {"tags": ["clients"], "summary": "List clients", "produces": ["application/json"], "responses": {"200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/handler.clientResponse"}}}, "401": {"description": "Unauthorized"}}},
            "post": {
                "tags": ["clients"],
                "summary": "Create client",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "parameters": [{"description": "Client details", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.createClientRequest"}}],
                "responses": {"201": {"description": "Created", "schema": {"$ref": "#/definitions/handler.clientResponse"}}, "409": {"description": "Conflict"}, "422": {"description": "Unprocessable Entity"}}
            }
        },
        "/admin/clients/{id}": {
            "get": {
                "tags": ["clients"],
                "summary": "Get client",
                "parameters": [{"type": "string", "description": "Client ID", "name": "id", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.clientResponse"}}, "404": {"description": "Not Found"}}
            }
        },
        "/admin/clients/{id}/delete-request": {
            "post": {
                "tags": ["clients"],
                "summary": "Request client deletion",
                "parameters": [{"type": "string", "description": "Client ID", "name": "id", "in": "path", "required": true}],
                "responses": {"202": {"description": "Accepted", "schema": {"$ref": "#/definitions/handler.confirmationResponse"}}, "404": {"description": "Not Found"}}
            }
        },
        "/admin/clients/{id}/media": {
            "post": {
                "tags": ["clients"],
                "summary": "Upload media",
                "consumes": ["application/json"],
                "parameters": [
                    {"type": "string", "description": "Client ID", "name": "id", "in": "path", "required": true},
                    {"description": "Media items", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.appendMediaRequest"}}
                ],
                "responses": {"201": {"description": "Created", "schema": {"type": "array", "items": {"$ref": "#/definitions/domain.MediaItem"}}}, "404": {"description": "Not Found"}, "422": {"description": "Unprocessable Entity"}}
            }
        },
        "/admin/clients/{id}/media/{mediaId}": {
            "delete": {
                "tags": ["clients"],
                "summary": "Remove media",
                "parameters": [
                    {"type": "string", "description": "Client ID", "name": "id", "in": "path", "required": true},
                    {"type": "string", "description": "Media ID", "name": "mediaId", "in": "path", "required": true}
                ],
                "responses": {"204": {"description": "No Content"}, "404": {"description": "Not Found"}}
            }
        },
        "/admin/clients/{id}/media/at/{index}": {
            "delete": {
                "tags": ["clients"],
                "summary": "Remove media by index",
                "parameters": [
                    {"type": "string", "description": "Client ID", "name": "id", "in": "path", "required": true},
                    {"type": "integer", "description": "Gallery position", "name": "index", "in": "path", "required": true}
                ],
                "responses": {"204": {"description": "No Content"}, "404": {"description": "Not Found"}}
            }
        },
        "/admin/portfolio": {
            "post": {
                "tags": ["portfolio"],
                "summary": "Add portfolio item",
                "consumes": ["application/json"],
                "parameters": [{"description": "Portfolio item", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.createPortfolioItemRequest"}}],
                "responses": {"201": {"description": "Created", "schema": {"$ref": "#/definitions/domain.PortfolioItem"}}, "422": {"description": "Unprocessable Entity"}}
            }
        },
        "/admin/portfolio/{id}/delete-request": {
            "post": {
                "tags": ["portfolio"],
                "summary": "Request portfolio item deletion",
                "parameters": [{"type": "string", "description": "Item ID", "name": "id", "in": "path", "required": true}],
                "responses": {"202": {"description": "Accepted", "schema": {"$ref": "#/definitions/handler.confirmationResponse"}}, "404": {"description": "Not Found"}}
            }
        },
        "/admin/confirmations": {
            "post": {
                "tags": ["confirmations"],
                "summary": "Confirm deletion",
                "consumes": ["application/json"],
                "parameters": [{"description": "Confirmation token", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.confirmRequest"}}],
                "responses": {"204": {"description": "No Content"}, "400": {"description": "Bad Request"}, "422": {"description": "Unprocessable Entity"}}
            }
        },
        "/admin/settings": {
            "put": {
                "tags": ["settings"],
                "summary": "Save studio settings",
                "consumes": ["application/json"],
                "parameters": [{"description": "Settings", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/domain.Settings"}}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/domain.Settings"}}, "422": {"description": "Unprocessable Entity"}}
            }
        }
    },
    "definitions": {
        "domain.MediaItem": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "type": {"type": "string", "enum": ["image", "video"]},
                "url": {"type": "string"},
                "filename": {"type": "string"},
                "title": {"type": "string"},
                "uploadedAt": {"type": "string"}
            }
        },
        "domain.PortfolioItem": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "title": {"type": "string"},
                "category": {"type": "string"},
                "type": {"type": "string", "enum": ["image", "video"]},
                "url": {"type": "string"},
                "thumbnail": {"type": "string"},
                "uploadedAt": {"type": "string"}
            }
        },
        "domain.Principal": {
            "type": "object",
            "properties": {
                "kind": {"type": "string", "enum": ["client", "admin"]},
                "id": {"type": "string"},
                "name": {"type": "string"},
                "email": {"type": "string"},
                "role": {"type": "string"},
                "sessionType": {"type": "string"},
                "sessionDate": {"type": "string"},
                "gallery": {"type": "array", "items": {"$ref": "#/definitions/domain.MediaItem"}}
            }
        },
        "domain.Settings": {
            "type": "object",
            "properties": {
                "studioName": {"type": "string"},
                "contactEmail": {"type": "string"},
                "contactPhone": {"type": "string"}
            }
        },
        "gate.Decision": {
            "type": "object",
            "properties": {
                "view": {"type": "string"},
                "state": {"type": "string", "enum": ["unknown", "authorized", "redirecting"]},
                "location": {"type": "string"},
                "principal": {"$ref": "#/definitions/domain.Principal"}
            }
        },
        "handler.loginRequest": {
            "type": "object",
            "properties": {"email": {"type": "string"}, "password": {"type": "string"}}
        },
        "handler.sessionResponse": {
            "type": "object",
            "properties": {"authenticated": {"type": "boolean"}, "principal": {"$ref": "#/definitions/domain.Principal"}}
        },
        "handler.createClientRequest": {
            "type": "object",
            "properties": {
                "name": {"type": "string"},
                "email": {"type": "string"},
                "password": {"type": "string"},
                "sessionType": {"type": "string"},
                "sessionDate": {"type": "string"}
            }
        },
        "handler.clientResponse": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "name": {"type": "string"},
                "email": {"type": "string"},
                "sessionType": {"type": "string"},
                "sessionDate": {"type": "string"},
                "gallery": {"type": "array", "items": {"$ref": "#/definitions/domain.MediaItem"}},
                "createdAt": {"type": "string"}
            }
        },
        "handler.appendMediaRequest": {
            "type": "object",
            "properties": {"items": {"type": "array", "items": {"$ref": "#/definitions/handler.mediaRequest"}}}
        },
        "handler.createPortfolioItemRequest": {
            "type": "object",
            "properties": {
                "title": {"type": "string"},
                "category": {"type": "string"},
                "type": {"type": "string"},
                "url": {"type": "string"},
                "thumbnail": {"type": "string"}
            }
        },
        "handler.mediaRequest": {
            "type": "object",
            "properties": {
                "type": {"type": "string", "enum": ["image", "video"]},
                "url": {"type": "string"},
                "filename": {"type": "string"},
                "title": {"type": "string"}
            }
        },
        "handler.confirmRequest": {
            "type": "object",
            "properties": {"token": {"type": "string"}}
        },
        "handler.confirmationResponse": {
            "type": "object",
            "properties": {"token": {"type": "string"}}
        },
        "handler.themeResponse": {
            "type": "object",
            "properties": {"theme": {"type": "string", "enum": ["light", "dark"]}}
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Studio API",
	Description:      "Client galleries, portfolio and admin dashboard for a photography studio.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}

// Package docs holds the OpenAPI description served under /swagger.
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
    "securityDefinitions": {
        "CookieAuth": {"type": "apiKey", "in": "header", "name": "Cookie"},
        "CSRFToken": {"type": "apiKey", "in": "header", "name": "X-CSRF-Token"}
    },
    "paths": {
        "/auth/login": {
            "post": {
                "tags": ["auth"],
                "summary": "Log in with email and password",
                "parameters": [{"in": "body", "name": "body", "required": true, "schema": {"$ref": "#/definitions/handlers.LoginRequest"}}],
                "responses": {"200": {"description": "OK"}, "401": {"description": "Unauthorized"}, "429": {"description": "Too Many Requests"}}
            }
        },
        "/auth/logout": {
            "post": {
                "tags": ["auth"],
                "summary": "End the current session",
                "security": [{"CookieAuth": [], "CSRFToken": []}],
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/panel/dashboard": {
            "get": {"tags": ["panel"], "summary": "Dashboard summary for the caller", "security": [{"CookieAuth": []}], "responses": {"200": {"description": "OK"}}}
        },
        "/panel/activities": {
            "get": {"tags": ["panel"], "summary": "Recent activity feed", "security": [{"CookieAuth": []}], "responses": {"200": {"description": "OK"}}}
        },
        "/panel/notifications/unread": {
            "get": {"tags": ["panel"], "summary": "Whether any ticket has unread replies", "security": [{"CookieAuth": []}], "responses": {"200": {"description": "OK"}}}
        },
        "/panel/contracts": {
            "get": {"tags": ["contracts"], "summary": "List visible contracts", "security": [{"CookieAuth": []}], "responses": {"200": {"description": "OK"}}}
        },
        "/panel/contracts/{id}": {
            "get": {
                "tags": ["contracts"],
                "summary": "Contract with stages and files",
                "security": [{"CookieAuth": []}],
                "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK"}, "403": {"description": "Forbidden"}, "404": {"description": "Not Found"}}
            }
        },
        "/panel/tickets": {
            "get": {"tags": ["tickets"], "summary": "List tickets", "security": [{"CookieAuth": []}], "responses": {"200": {"description": "OK"}}},
            "post": {"tags": ["tickets"], "summary": "Open a ticket", "security": [{"CookieAuth": [], "CSRFToken": []}], "responses": {"201": {"description": "Created"}}}
        },
        "/panel/tickets/files": {
            "post": {"tags": ["tickets"], "summary": "Upload a message attachment", "consumes": ["multipart/form-data"], "security": [{"CookieAuth": [], "CSRFToken": []}], "responses": {"201": {"description": "Created"}}}
        },
        "/panel/tickets/{id}": {
            "get": {
                "tags": ["tickets"],
                "summary": "Ticket thread",
                "security": [{"CookieAuth": []}],
                "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/panel/tickets/{id}/messages": {
            "post": {
                "tags": ["tickets"],
                "summary": "Reply to a ticket",
                "security": [{"CookieAuth": [], "CSRFToken": []}],
                "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true}],
                "responses": {"201": {"description": "Created"}, "409": {"description": "Conflict"}}
            }
        },
        "/admin/contracts": {
            "post": {"tags": ["admin"], "summary": "Create a contract", "security": [{"CookieAuth": [], "CSRFToken": []}], "responses": {"201": {"description": "Created"}}}
        },
        "/admin/contracts/{id}/stages": {
            "post": {
                "tags": ["admin"],
                "summary": "Append a stage",
                "security": [{"CookieAuth": [], "CSRFToken": []}],
                "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true}],
                "responses": {"201": {"description": "Created"}}
            }
        },
        "/admin/tickets/{id}/status": {
            "patch": {
                "tags": ["admin"],
                "summary": "Change ticket status",
                "security": [{"CookieAuth": [], "CSRFToken": []}],
                "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK"}}
            }
        }
    },
    "definitions": {
        "handlers.LoginRequest": {
            "type": "object",
            "required": ["email", "password"],
            "properties": {
                "email": {"type": "string"},
                "password": {"type": "string"}
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
	Title:            "ContractHub API",
	Description:      "Client portal for contracts, stages and support tickets.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}

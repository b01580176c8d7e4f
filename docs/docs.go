// Package docs registers the OpenAPI document served under /swagger/. It
// follows the layout swag init emits; keep it in step with the @Router
// annotations in handler/.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {
            "name": "Portal Support",
            "email": "support@smartcity-portal.ng"
        },
        "license": {
            "name": "MIT",
            "url": "https://opensource.org/licenses/MIT"
        },
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/admin/registrations/pending": {
            "get": {
                "security": [{"BearerAuth": []}],
                "description": "Returns registrations awaiting a decision, optionally filtered by a case-insensitive search over email, names, business name and phone.",
                "produces": ["application/json"],
                "tags": ["admin"],
                "summary": "List pending registrations",
                "parameters": [
                    {"type": "string", "description": "Search text", "name": "search", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/model.Registration"}}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/common.AppError"}},
                    "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/common.AppError"}}
                }
            }
        },
        "/admin/registrations/{id}/approve": {
            "post": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["admin"],
                "summary": "Approve a pending registration",
                "parameters": [
                    {"type": "string", "description": "Registration ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/model.DecisionResponse"}},
                    "404": {"description": "Registration not found", "schema": {"$ref": "#/definitions/common.AppError"}},
                    "409": {"description": "Registration already processed", "schema": {"$ref": "#/definitions/common.AppError"}}
                }
            }
        },
        "/admin/registrations/{id}/disapprove": {
            "post": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["admin"],
                "summary": "Disapprove a pending registration",
                "parameters": [
                    {"type": "string", "description": "Registration ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/model.DecisionResponse"}},
                    "404": {"description": "Registration not found", "schema": {"$ref": "#/definitions/common.AppError"}},
                    "409": {"description": "Registration already processed", "schema": {"$ref": "#/definitions/common.AppError"}}
                }
            }
        },
        "/auth/admin/login": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["auth"],
                "summary": "Log in to the admin console",
                "parameters": [
                    {"description": "Email and password", "name": "credentials", "in": "body", "required": true, "schema": {"$ref": "#/definitions/model.LoginRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/model.AdminLoginResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/common.AppError"}},
                    "401": {"description": "Invalid email or password", "schema": {"$ref": "#/definitions/common.AppError"}}
                }
            }
        },
        "/auth/admin/logout": {
            "post": {
                "security": [{"BearerAuth": []}],
                "tags": ["auth"],
                "summary": "Revoke the current admin session",
                "responses": {
                    "204": {"description": "No Content"},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/common.AppError"}}
                }
            }
        },
        "/auth/signin": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["auth"],
                "summary": "Sign in an approved registrant",
                "parameters": [
                    {"description": "Email and password", "name": "credentials", "in": "body", "required": true, "schema": {"$ref": "#/definitions/model.LoginRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/model.SignInResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/common.AppError"}},
                    "401": {"description": "Invalid email or password", "schema": {"$ref": "#/definitions/common.AppError"}},
                    "403": {"description": "Registration not approved", "schema": {"$ref": "#/definitions/common.AppError"}}
                }
            }
        },
        "/auth/signup": {
            "post": {
                "description": "Validates the payload for the given accountType and stores it as a pending registration awaiting admin approval.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["auth"],
                "summary": "Submit a personal or business registration",
                "parameters": [
                    {"description": "Registration details", "name": "registration", "in": "body", "required": true, "schema": {"$ref": "#/definitions/model.SignupRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/model.SignupResponse"}},
                    "400": {"description": "Validation failed; errors lists the offending fields", "schema": {"$ref": "#/definitions/common.AppError"}},
                    "409": {"description": "Email already registered", "schema": {"$ref": "#/definitions/common.AppError"}},
                    "500": {"description": "Internal server error", "schema": {"$ref": "#/definitions/common.AppError"}}
                }
            }
        },
        "/health": {
            "get": {
                "description": "get the status of server",
                "produces": ["application/json"],
                "tags": ["health"],
                "summary": "Show the status of server",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            }
        }
    },
    "definitions": {
        "common.AppError": {
            "type": "object",
            "properties": {
                "code": {"type": "integer"},
                "message": {"type": "string"},
                "errors": {"type": "array", "items": {"$ref": "#/definitions/validation.FieldError"}}
            }
        },
        "validation.FieldError": {
            "type": "object",
            "properties": {
                "field": {"type": "string"},
                "message": {"type": "string"}
            }
        },
        "model.Admin": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "name": {"type": "string"},
                "email": {"type": "string"},
                "created_at": {"type": "string"}
            }
        },
        "model.AdminLoginResponse": {
            "type": "object",
            "properties": {
                "token": {"type": "string"},
                "admin": {"$ref": "#/definitions/model.Admin"}
            }
        },
        "model.DecisionResponse": {
            "type": "object",
            "properties": {
                "message": {"type": "string"}
            }
        },
        "model.LoginRequest": {
            "type": "object",
            "required": ["email", "password"],
            "properties": {
                "email": {"type": "string"},
                "password": {"type": "string"}
            }
        },
        "model.Registration": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "accountType": {"type": "string", "enum": ["personal", "business"]},
                "status": {"type": "string", "enum": ["pending", "approved", "disapproved"]},
                "email": {"type": "string"},
                "phone": {"type": "string"},
                "first_name": {"type": "string"},
                "last_name": {"type": "string"},
                "gender": {"type": "string"},
                "nin_number": {"type": "string"},
                "address": {"type": "string"},
                "business_name": {"type": "string"},
                "business_type": {"type": "string"},
                "cac_number": {"type": "string"},
                "business_location": {"type": "string"},
                "created_at": {"type": "string"},
                "decided_at": {"type": "string"}
            }
        },
        "model.SignInResponse": {
            "type": "object",
            "properties": {
                "token": {"type": "string"},
                "user": {"$ref": "#/definitions/model.Registration"}
            }
        },
        "model.SignupRequest": {
            "type": "object",
            "properties": {
                "accountType": {"type": "string", "enum": ["personal", "business"]},
                "email": {"type": "string"},
                "phone": {"type": "string"},
                "password": {"type": "string"},
                "first_name": {"type": "string"},
                "last_name": {"type": "string"},
                "gender": {"type": "string"},
                "nin_number": {"type": "string"},
                "address": {"type": "string"},
                "business_name": {"type": "string"},
                "business_type": {"type": "string"},
                "cac_number": {"type": "string"},
                "business_location": {"type": "string"}
            }
        },
        "model.SignupResponse": {
            "type": "object",
            "properties": {
                "message": {"type": "string"},
                "user": {"$ref": "#/definitions/model.Registration"},
                "business": {"$ref": "#/definitions/model.Registration"}
            }
        }
    },
    "securityDefinitions": {
        "BearerAuth": {
            "type": "apiKey",
            "name": "Authorization",
            "in": "header"
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Smart City Portal API",
	Description:      "Registration, approval and admin session service of the Smart City Portal.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}

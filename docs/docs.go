// Package docs holds the OpenAPI description served at /swagger.
// Regenerate with: swag init -g cmd/server/main.go
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
        "/auth/login": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["session"],
                "summary": "Sign in",
                "parameters": [
                    {
                        "description": "Email and password",
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/handler.credentialsRequest"}
                    }
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/domain.SessionSnapshot"}},
                    "400": {"description": "Bad Request", "schema": {"type": "object", "additionalProperties": {"type": "string"}}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/handler.errorBody"}},
                    "429": {"description": "Too Many Requests", "schema": {"$ref": "#/definitions/handler.errorBody"}},
                    "502": {"description": "Bad Gateway", "schema": {"$ref": "#/definitions/handler.errorBody"}}
                }
            }
        },
        "/auth/signup": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["session"],
                "summary": "Quick sign up",
                "parameters": [
                    {
                        "description": "Email and password",
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/handler.credentialsRequest"}
                    }
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/domain.SessionSnapshot"}},
                    "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/handler.errorBody"}},
                    "422": {"description": "Unprocessable Entity", "schema": {"$ref": "#/definitions/handler.errorBody"}}
                }
            }
        },
        "/auth/logout": {
            "post": {
                "produces": ["application/json"],
                "tags": ["session"],
                "summary": "Sign out",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/domain.SessionSnapshot"}},
                    "502": {"description": "Bad Gateway", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            }
        },
        "/session": {
            "get": {
                "produces": ["application/json"],
                "tags": ["session"],
                "summary": "Current session",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/domain.SessionSnapshot"}}
                }
            }
        },
        "/auth/register": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["registration"],
                "summary": "Register a new member",
                "parameters": [
                    {
                        "description": "Registration form",
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/handler.registerRequest"}
                    }
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/domain.FlowStatus"}},
                    "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/domain.FlowStatus"}},
                    "422": {"description": "Unprocessable Entity", "schema": {"$ref": "#/definitions/domain.FlowStatus"}},
                    "502": {"description": "Bad Gateway", "schema": {"$ref": "#/definitions/domain.FlowStatus"}}
                }
            }
        },
        "/auth/register/status": {
            "get": {
                "produces": ["application/json"],
                "tags": ["registration"],
                "summary": "Registration status",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/domain.FlowStatus"}}
                }
            }
        },
        "/auth/password-reset": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["password-reset"],
                "summary": "Request a password reset",
                "parameters": [
                    {
                        "description": "Account email",
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/handler.resetRequest"}
                    }
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.resetResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/handler.resetResponse"}},
                    "422": {"description": "Unprocessable Entity", "schema": {"$ref": "#/definitions/handler.resetResponse"}},
                    "502": {"description": "Bad Gateway", "schema": {"$ref": "#/definitions/handler.resetResponse"}}
                }
            }
        },
        "/auth/password-reset/status": {
            "get": {
                "produces": ["application/json"],
                "tags": ["password-reset"],
                "summary": "Password-reset status",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/domain.FlowStatus"}}
                }
            }
        },
        "/navigation": {
            "get": {
                "produces": ["application/json"],
                "tags": ["navigation"],
                "summary": "Current page",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.navigationResponse"}}
                }
            },
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["navigation"],
                "summary": "Navigate",
                "parameters": [
                    {
                        "description": "View path",
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/handler.navigateRequest"}
                    }
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.navigationResponse"}},
                    "400": {"description": "Bad Request", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            }
        },
        "/profile": {
            "get": {
                "produces": ["application/json"],
                "tags": ["profile"],
                "summary": "Current profile",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/domain.ProfileRecord"}},
                    "401": {"description": "Unauthorized", "schema": {"type": "object", "additionalProperties": {"type": "string"}}},
                    "404": {"description": "Not Found", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            }
        },
        "/health": {
            "get": {
                "produces": ["application/json"],
                "tags": ["health"],
                "summary": "Liveness probe",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            }
        },
        "/health/ready": {
            "get": {
                "produces": ["application/json"],
                "tags": ["health"],
                "summary": "Readiness probe",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.readinessResponse"}},
                    "503": {"description": "Service Unavailable", "schema": {"$ref": "#/definitions/handler.readinessResponse"}}
                }
            }
        }
    },
    "definitions": {
        "domain.SessionSnapshot": {
            "type": "object",
            "properties": {
                "state": {"type": "string", "enum": ["unknown", "authenticating", "authenticated", "anonymous"]},
                "current_user_id": {"type": "string"},
                "is_authenticating": {"type": "boolean"},
                "last_error": {"type": "string"},
                "page": {"type": "string"}
            }
        },
        "domain.FlowStatus": {
            "type": "object",
            "properties": {
                "in_progress": {"type": "boolean"},
                "error_message": {"type": "string"},
                "success_message": {"type": "string"}
            }
        },
        "domain.ProfileRecord": {
            "type": "object",
            "properties": {
                "fullName": {"type": "string"},
                "email": {"type": "string"},
                "dob": {"type": "string"},
                "cpf": {"type": "string"},
                "bio": {"type": "string"},
                "city": {"type": "string"},
                "parish": {"type": "string"},
                "youthGroup": {"type": "string"},
                "isAdmin": {"type": "boolean"},
                "createdAt": {"type": "string"},
                "updatedAt": {"type": "string"}
            }
        },
        "handler.credentialsRequest": {
            "type": "object",
            "properties": {
                "email": {"type": "string"},
                "password": {"type": "string"}
            }
        },
        "handler.errorBody": {
            "type": "object",
            "properties": {
                "error": {"type": "string"},
                "session": {"$ref": "#/definitions/domain.SessionSnapshot"}
            }
        },
        "handler.registerRequest": {
            "type": "object",
            "required": ["email", "fullName"],
            "properties": {
                "fullName": {"type": "string"},
                "email": {"type": "string"},
                "password": {"type": "string"},
                "dob": {"type": "string"},
                "cpf": {"type": "string"},
                "bio": {"type": "string", "maxLength": 2000},
                "city": {"type": "string"},
                "parish": {"type": "string"},
                "youthGroup": {"type": "string"}
            }
        },
        "handler.resetRequest": {
            "type": "object",
            "properties": {
                "email": {"type": "string"}
            }
        },
        "handler.resetResponse": {
            "type": "object",
            "properties": {
                "in_progress": {"type": "boolean"},
                "error_message": {"type": "string"},
                "success_message": {"type": "string"},
                "email": {"type": "string"}
            }
        },
        "handler.navigateRequest": {
            "type": "object",
            "properties": {
                "path": {"type": "string"}
            }
        },
        "handler.navigationResponse": {
            "type": "object",
            "properties": {
                "page": {"type": "string"},
                "path": {"type": "string"},
                "history": {
                    "type": "array",
                    "items": {
                        "type": "object",
                        "properties": {
                            "from": {"type": "string"},
                            "to": {"type": "string"},
                            "at": {"type": "string"}
                        }
                    }
                }
            }
        },
        "handler.readinessResponse": {
            "type": "object",
            "properties": {
                "status": {"type": "string"},
                "dependencies": {
                    "type": "object",
                    "additionalProperties": {
                        "type": "object",
                        "properties": {
                            "status": {"type": "string"},
                            "error": {"type": "string"}
                        }
                    }
                }
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
	Title:            "Membership Portal API",
	Description:      "Session, registration and password-reset flows of the youth ministry membership portal.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}

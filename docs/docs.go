// Package docs registers the OpenAPI document served at /swagger/*. It is kept
// by hand in step with the swag annotations on the handlers.
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
            "get": {
                "produces": ["application/json"],
                "tags": ["health"],
                "summary": "Liveness probe",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {"type": "object", "additionalProperties": {"type": "string"}}
                    }
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
        },
        "/login": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["login"],
                "summary": "Validate credentials",
                "parameters": [
                    {"description": "Credentials", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.loginRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.loginResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handler.Problem"}}
                }
            }
        },
        "/users": {
            "get": {
                "produces": ["application/json"],
                "tags": ["users"],
                "summary": "Search users by name",
                "parameters": [
                    {"type": "string", "description": "Name fragment; empty lists everyone", "name": "name", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/handler.userResponse"}}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/handler.Problem"}}
                }
            },
            "post": {
                "description": "The email must not belong to any other user. The password is stored hashed.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["users"],
                "summary": "Register a user",
                "parameters": [
                    {"description": "User to register", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.registerUserRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/handler.userResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handler.Problem"}},
                    "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/handler.Problem"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/handler.Problem"}}
                }
            }
        },
        "/users/{id}": {
            "delete": {
                "tags": ["users"],
                "summary": "Delete a user",
                "parameters": [
                    {"type": "string", "description": "User ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "204": {"description": "No Content"},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/handler.Problem"}}
                }
            }
        },
        "/users/{id}/data": {
            "put": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["users"],
                "summary": "Update profile data",
                "parameters": [
                    {"type": "string", "description": "User ID", "name": "id", "in": "path", "required": true},
                    {"description": "New profile data", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.updateUserRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.userResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handler.Problem"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/handler.Problem"}},
                    "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/handler.Problem"}}
                }
            }
        },
        "/users/{id}/password": {
            "put": {
                "consumes": ["application/json"],
                "tags": ["users"],
                "summary": "Change password",
                "parameters": [
                    {"type": "string", "description": "User ID", "name": "id", "in": "path", "required": true},
                    {"description": "Current and new password", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.changePasswordRequest"}}
                ],
                "responses": {
                    "204": {"description": "No Content"},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handler.Problem"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/handler.Problem"}}
                }
            }
        }
    },
    "definitions": {
        "handler.Problem": {
            "type": "object",
            "properties": {
                "detail": {"type": "string", "example": "email already registered"},
                "status": {"type": "integer", "example": 409},
                "timestamp": {"type": "string", "format": "date-time"},
                "title": {"type": "string", "example": "Email already exists"},
                "type": {"type": "string", "example": "/email-already-exists"}
            }
        },
        "handler.addressRequest": {
            "type": "object",
            "required": ["city", "number", "street", "zipCode"],
            "properties": {
                "city": {"type": "string"},
                "number": {"type": "string"},
                "street": {"type": "string"},
                "zipCode": {"type": "string"}
            }
        },
        "handler.addressResponse": {
            "type": "object",
            "properties": {
                "city": {"type": "string"},
                "number": {"type": "string"},
                "street": {"type": "string"},
                "zipCode": {"type": "string"}
            }
        },
        "handler.changePasswordRequest": {
            "type": "object",
            "required": ["currentPassword", "newPassword"],
            "properties": {
                "currentPassword": {"type": "string"},
                "newPassword": {"type": "string", "maxLength": 72, "minLength": 6}
            }
        },
        "handler.dependencyStatus": {
            "type": "object",
            "properties": {
                "error": {"type": "string"},
                "status": {"type": "string"}
            }
        },
        "handler.loginRequest": {
            "type": "object",
            "required": ["login", "password"],
            "properties": {
                "login": {"type": "string"},
                "password": {"type": "string"}
            }
        },
        "handler.loginResponse": {
            "type": "object",
            "properties": {
                "message": {"type": "string"},
                "status": {"type": "string"}
            }
        },
        "handler.readinessResponse": {
            "type": "object",
            "properties": {
                "dependencies": {"type": "object", "additionalProperties": {"$ref": "#/definitions/handler.dependencyStatus"}},
                "status": {"type": "string"}
            }
        },
        "handler.registerUserRequest": {
            "type": "object",
            "required": ["email", "login", "name", "password", "userType"],
            "properties": {
                "address": {"$ref": "#/definitions/handler.addressRequest"},
                "email": {"type": "string"},
                "login": {"type": "string"},
                "name": {"type": "string"},
                "password": {"type": "string", "maxLength": 72, "minLength": 6},
                "userType": {"type": "string", "enum": ["CLIENT", "RESTAURANT_OWNER"]}
            }
        },
        "handler.updateUserRequest": {
            "type": "object",
            "required": ["email", "login", "name"],
            "properties": {
                "address": {"$ref": "#/definitions/handler.addressRequest"},
                "email": {"type": "string"},
                "login": {"type": "string"},
                "name": {"type": "string"}
            }
        },
        "handler.userResponse": {
            "type": "object",
            "properties": {
                "address": {"$ref": "#/definitions/handler.addressResponse"},
                "email": {"type": "string"},
                "id": {"type": "string"},
                "lastModifiedAt": {"type": "string", "format": "date-time"},
                "login": {"type": "string"},
                "name": {"type": "string"},
                "userType": {"type": "string"}
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
	Title:            "User Service API",
	Description:      "Registration, profile, password and credential checks for clients and restaurant owners.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}

// Package docs is generated by swag from the handler annotations. Regenerate
// with: swag init -g cmd/server/main.go -o internal/docs
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
        "/": {
            "get": {
                "produces": ["application/json"],
                "tags": ["system"],
                "summary": "Home page",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {"type": "string"}
                        }
                    }
                }
            }
        },
        "/data": {
            "get": {
                "produces": ["application/json"],
                "tags": ["users"],
                "summary": "List users",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "array",
                            "items": {"$ref": "#/definitions/store.User"}
                        }
                    }
                }
            },
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["users"],
                "summary": "Create a user",
                "parameters": [
                    {
                        "description": "Exactly id, Firstname and Surname",
                        "name": "user",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/handlers.createUserRequest"}
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {"$ref": "#/definitions/store.User"}
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {"$ref": "#/definitions/handlers.errorResponse"}
                    },
                    "415": {
                        "description": "Unsupported Media Type",
                        "schema": {"$ref": "#/definitions/handlers.errorResponse"}
                    }
                }
            }
        },
        "/data/{id}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["users"],
                "summary": "Get a user",
                "parameters": [
                    {
                        "type": "string",
                        "description": "User id",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {"$ref": "#/definitions/store.User"}
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {"$ref": "#/definitions/handlers.errorResponse"}
                    }
                }
            }
        },
        "/health": {
            "get": {
                "produces": ["application/json"],
                "tags": ["system"],
                "summary": "Health check",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {"$ref": "#/definitions/handlers.healthResponse"}
                    }
                }
            }
        },
        "/index": {
            "get": {
                "produces": ["application/json"],
                "tags": ["system"],
                "summary": "Hello world",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {"type": "string"}
                        }
                    }
                }
            }
        },
        "/places": {
            "get": {
                "produces": ["application/json"],
                "tags": ["places"],
                "summary": "List places",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "array",
                            "items": {"$ref": "#/definitions/store.Place"}
                        }
                    }
                }
            }
        },
        "/places/{place_id}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["places"],
                "summary": "Get a place",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Place id",
                        "name": "place_id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {"$ref": "#/definitions/store.Place"}
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {"$ref": "#/definitions/handlers.errorResponse"}
                    }
                }
            },
            "put": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["places"],
                "summary": "Create or replace a place",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Place id",
                        "name": "place_id",
                        "in": "path",
                        "required": true
                    },
                    {
                        "description": "Place name and location",
                        "name": "place",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/handlers.putPlaceRequest"}
                    }
                ],
                "responses": {
                    "200": {
                        "description": "Replaced",
                        "schema": {"$ref": "#/definitions/store.Place"}
                    },
                    "201": {
                        "description": "Created",
                        "schema": {"$ref": "#/definitions/store.Place"}
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {"$ref": "#/definitions/handlers.errorResponse"}
                    },
                    "415": {
                        "description": "Unsupported Media Type",
                        "schema": {"$ref": "#/definitions/handlers.errorResponse"}
                    }
                }
            },
            "delete": {
                "tags": ["places"],
                "summary": "Delete a place",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Place id",
                        "name": "place_id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "204": {
                        "description": "No Content"
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {"$ref": "#/definitions/handlers.errorResponse"}
                    }
                }
            }
        }
    },
    "definitions": {
        "handlers.createUserRequest": {
            "type": "object",
            "required": ["Firstname", "Surname", "id"],
            "properties": {
                "Firstname": {"type": "string", "example": "Ana"},
                "Surname": {"type": "string", "example": "Lee"},
                "id": {"type": "string", "example": "3"}
            }
        },
        "handlers.errorResponse": {
            "type": "object",
            "properties": {
                "error": {"type": "string", "example": "User not found"}
            }
        },
        "handlers.healthResponse": {
            "type": "object",
            "properties": {
                "places": {"type": "integer", "example": 2},
                "status": {"type": "string", "example": "ok"},
                "users": {"type": "integer", "example": 2}
            }
        },
        "handlers.putPlaceRequest": {
            "type": "object",
            "required": ["location", "name"],
            "properties": {
                "location": {"type": "string", "example": "Paris"},
                "name": {"type": "string", "example": "Louvre"}
            }
        },
        "store.Place": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "location": {"type": "string"},
                "name": {"type": "string"}
            }
        },
        "store.User": {
            "type": "object",
            "properties": {
                "Firstname": {"type": "string"},
                "Surname": {"type": "string"},
                "id": {"type": "string"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "User and Places API",
	Description:      "An API for managing users and places",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}

// Package apidocs registers the OpenAPI documents of both services with the
// swag registry. Each service is its own swag instance.
package apidocs

import "github.com/swaggo/swag"

const menuTemplate = `{
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
        "/menu": {
            "get": {
                "produces": ["application/json"],
                "tags": ["menu"],
                "summary": "List the catalog",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {"type": "array", "items": {"$ref": "#/definitions/menu.MenuItem"}}
                    }
                }
            }
        },
        "/order": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["order"],
                "summary": "Place an order",
                "description": "Validates the body shape and echoes it back. The total is not checked against catalog prices.",
                "parameters": [
                    {
                        "description": "order",
                        "name": "order",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/menu.Order"}
                    }
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/menu.OrderAck"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/httpx.HTTPError"}}
                }
            }
        }
    },
    "definitions": {
        "httpx.FieldError": {
            "type": "object",
            "properties": {
                "field": {"type": "string", "example": "total"},
                "reason": {"type": "string", "example": "required"}
            }
        },
        "httpx.HTTPError": {
            "type": "object",
            "properties": {
                "error": {"type": "string", "example": "invalid request body"},
                "details": {"type": "array", "items": {"$ref": "#/definitions/httpx.FieldError"}}
            }
        },
        "menu.MenuItem": {
            "type": "object",
            "properties": {
                "id": {"type": "string", "example": "1"},
                "name": {"type": "string", "example": "Normal Thali"},
                "price": {"type": "number", "example": 129},
                "image": {"type": "string", "example": "thaali1.jpg"}
            }
        },
        "menu.OrderItem": {
            "type": "object",
            "required": ["id", "quantity"],
            "properties": {
                "id": {"type": "string", "example": "1"},
                "quantity": {"type": "integer", "example": 2}
            }
        },
        "menu.Order": {
            "type": "object",
            "required": ["items", "total"],
            "properties": {
                "items": {"type": "array", "items": {"$ref": "#/definitions/menu.OrderItem"}},
                "total": {"type": "number", "example": 258}
            }
        },
        "menu.OrderAck": {
            "type": "object",
            "properties": {
                "message": {"type": "string", "example": "Order placed successfully"},
                "order": {"$ref": "#/definitions/menu.Order"}
            }
        }
    }
}`

// MenuInfo holds the exported Swagger Info of the menu service.
var MenuInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Thali Menu & Order API",
	Description:      "Static thali catalog and order submission.",
	InfoInstanceName: "menu",
	SwaggerTemplate:  menuTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(MenuInfo.InstanceName(), MenuInfo)
}

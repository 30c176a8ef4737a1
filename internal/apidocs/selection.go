package apidocs

import "github.com/swaggo/swag"

const selectionTemplate = `{
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
        "/log_selected_items/": {
            "options": {
                "produces": ["application/json"],
                "tags": ["selection"],
                "summary": "Preflight acknowledgment",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/selection.PreflightAck"}}
                }
            },
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["selection"],
                "summary": "Log selected items",
                "description": "Writes one diagnostic line per item (price x quantity) and echoes the items.",
                "parameters": [
                    {
                        "description": "selection",
                        "name": "selection",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/selection.FoodSelection"}
                    }
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/selection.SelectionAck"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/httpx.HTTPError"}}
                }
            }
        }
    },
    "definitions": {
        "httpx.FieldError": {
            "type": "object",
            "properties": {
                "field": {"type": "string", "example": "selectedItems[0].price"},
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
        "selection.FoodItem": {
            "type": "object",
            "required": ["id", "name", "price", "quantity"],
            "properties": {
                "id": {"type": "string", "example": "3"},
                "name": {"type": "string", "example": "Special Thali"},
                "price": {"type": "number", "example": 199},
                "quantity": {"type": "integer", "example": 1}
            }
        },
        "selection.FoodSelection": {
            "type": "object",
            "required": ["selectedItems"],
            "properties": {
                "selectedItems": {"type": "array", "items": {"$ref": "#/definitions/selection.FoodItem"}}
            }
        },
        "selection.PreflightAck": {
            "type": "object",
            "properties": {
                "message": {"type": "string", "example": "CORS preflight successful"}
            }
        },
        "selection.SelectionAck": {
            "type": "object",
            "properties": {
                "message": {"type": "string", "example": "Items logged successfully!"},
                "items": {"type": "array", "items": {"$ref": "#/definitions/selection.FoodItem"}}
            }
        }
    }
}`

// SelectionInfo holds the exported Swagger Info of the selection logger service.
var SelectionInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Thali Food-Selection Logger API",
	Description:      "Logs the dishes selected in the app and echoes them back.",
	InfoInstanceName: "selection",
	SwaggerTemplate:  selectionTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SelectionInfo.InstanceName(), SelectionInfo)
}

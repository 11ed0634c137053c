// Package docs registers the Swagger document served under /swagger/.
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
        "/api/v1/orders": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "summary": "Create an order",
                "operationId": "CreateOrder",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Repeating a request with the same key returns the original order.",
                        "name": "Idempotency-Key",
                        "in": "header"
                    },
                    {
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/CreateOrderRequest"}
                    }
                ],
                "responses": {
                    "201": {"description": "Order created", "schema": {"$ref": "#/definitions/CreateOrderResponse"}},
                    "400": {"description": "Invalid request or rejected by a business rule", "schema": {"$ref": "#/definitions/Error"}},
                    "409": {"description": "Conflicting request", "schema": {"$ref": "#/definitions/Error"}},
                    "500": {"description": "Unexpected error", "schema": {"$ref": "#/definitions/Error"}}
                }
            }
        },
        "/api/v1/orders/{trackingId}": {
            "get": {
                "produces": ["application/json"],
                "summary": "Track an order",
                "operationId": "TrackOrder",
                "parameters": [
                    {"type": "string", "format": "uuid", "name": "trackingId", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "Current order status", "schema": {"$ref": "#/definitions/TrackOrderResponse"}},
                    "404": {"description": "Unknown tracking id", "schema": {"$ref": "#/definitions/Error"}},
                    "500": {"description": "Unexpected error", "schema": {"$ref": "#/definitions/Error"}}
                }
            }
        }
    },
    "definitions": {
        "OrderAddress": {
            "type": "object",
            "required": ["street", "postalCode", "city"],
            "properties": {
                "street": {"type": "string"},
                "postalCode": {"type": "string"},
                "city": {"type": "string"}
            }
        },
        "OrderItem": {
            "type": "object",
            "required": ["productId", "quantity", "price", "subTotal"],
            "properties": {
                "productId": {"type": "string", "format": "uuid"},
                "quantity": {"type": "integer", "minimum": 1},
                "price": {"type": "number"},
                "subTotal": {"type": "number"}
            }
        },
        "CreateOrderRequest": {
            "type": "object",
            "required": ["customerId", "restaurantId", "price", "items", "address"],
            "properties": {
                "customerId": {"type": "string", "format": "uuid"},
                "restaurantId": {"type": "string", "format": "uuid"},
                "price": {"type": "number"},
                "items": {"type": "array", "items": {"$ref": "#/definitions/OrderItem"}},
                "address": {"$ref": "#/definitions/OrderAddress"}
            }
        },
        "CreateOrderResponse": {
            "type": "object",
            "properties": {
                "orderTrackingId": {"type": "string", "format": "uuid"},
                "orderStatus": {"type": "string", "enum": ["PENDING", "PAID", "APPROVED", "CANCELLING", "CANCELLED"]},
                "message": {"type": "string"}
            }
        },
        "TrackOrderResponse": {
            "type": "object",
            "properties": {
                "orderTrackingId": {"type": "string", "format": "uuid"},
                "orderStatus": {"type": "string", "enum": ["PENDING", "PAID", "APPROVED", "CANCELLING", "CANCELLED"]},
                "failureMessages": {"type": "array", "items": {"type": "string"}}
            }
        },
        "Error": {
            "type": "object",
            "properties": {
                "code": {"type": "integer"},
                "message": {"type": "string"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it.
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Food Ordering API",
	Description:      "Order placement and tracking.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}

// Package docs registers the OpenAPI document served under /swagger.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/account/orders": {
            "get": {
                "produces": ["application/json"],
                "tags": ["orders"],
                "summary": "Order history of the signed-in customer",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/account.OrderView"}}},
                    "502": {"description": "Bad Gateway", "schema": {"$ref": "#/definitions/product.HTTPError"}}
                }
            }
        },
        "/account/orders/summary": {
            "get": {
                "produces": ["application/json"],
                "tags": ["orders"],
                "summary": "Order count, revenue and orders in delivery",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/order.Summary"}},
                    "502": {"description": "Bad Gateway", "schema": {"$ref": "#/definitions/product.HTTPError"}}
                }
            }
        },
        "/account/orders/{id}": {
            "delete": {
                "tags": ["orders"],
                "summary": "Delete a cancelled order",
                "parameters": [{"type": "string", "description": "Order ID", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "204": {"description": "No Content"},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/product.HTTPError"}},
                    "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/product.HTTPError"}},
                    "502": {"description": "Bad Gateway", "schema": {"$ref": "#/definitions/product.HTTPError"}}
                }
            }
        },
        "/account/orders/{id}/cancel": {
            "post": {
                "description": "Cancelling an already cancelled order is a no-op.",
                "produces": ["application/json"],
                "tags": ["orders"],
                "summary": "Cancel an order",
                "parameters": [{"type": "string", "description": "Order ID", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/account.OrderView"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/product.HTTPError"}},
                    "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/product.HTTPError"}},
                    "502": {"description": "Bad Gateway", "schema": {"$ref": "#/definitions/product.HTTPError"}}
                }
            }
        },
        "/account/warranties": {
            "get": {
                "produces": ["application/json"],
                "tags": ["warranties"],
                "summary": "Warranty lookup for delivered items",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/warranty.View"}}},
                    "502": {"description": "Bad Gateway", "schema": {"$ref": "#/definitions/product.HTTPError"}}
                }
            }
        },
        "/account/notifications": {
            "get": {
                "produces": ["application/json"],
                "tags": ["notifications"],
                "description": "Reloads the customer's orders on every call; read flags are kept.",
                "summary": "Recent order notifications",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/main.NotificationList"}},
                    "502": {"description": "Bad Gateway", "schema": {"$ref": "#/definitions/product.HTTPError"}}
                }
            }
        },
        "/account/notifications/read-all": {
            "post": {
                "produces": ["application/json"],
                "tags": ["notifications"],
                "summary": "Mark every notification as read",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "object", "additionalProperties": {"type": "integer"}}}
                }
            }
        },
        "/account/notifications/{id}/read": {
            "post": {
                "produces": ["application/json"],
                "tags": ["notifications"],
                "summary": "Mark one notification as read",
                "parameters": [{"type": "string", "description": "Order ID", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "object", "additionalProperties": {"type": "integer"}}}
                }
            }
        }
    },
    "definitions": {
        "account.OrderView": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "status": {"type": "integer"},
                "statusLabel": {"type": "string"},
                "amount": {"type": "string"},
                "lines": {"type": "array", "items": {"type": "object"}}
            }
        },
        "order.Summary": {
            "type": "object",
            "properties": {
                "count": {"type": "integer"},
                "revenue": {"type": "string"},
                "shipping": {"type": "integer"}
            }
        },
        "warranty.View": {
            "type": "object",
            "properties": {
                "orderId": {"type": "string"},
                "productName": {"type": "string"},
                "purchaseDate": {"type": "string"},
                "warrantyMonths": {"type": "integer"},
                "status": {"type": "string"},
                "expiredDate": {"type": "string"},
                "daysRemaining": {"type": "integer"},
                "valid": {"type": "boolean"},
                "expiringSoon": {"type": "boolean"},
                "label": {"type": "string"},
                "mismatch": {"type": "boolean"}
            }
        },
        "main.NotificationList": {
            "type": "object",
            "properties": {
                "items": {"type": "array", "items": {"type": "object"}},
                "unread": {"type": "integer"}
            }
        },
        "product.HTTPError": {
            "type": "object",
            "properties": {
                "error": {"type": "string", "example": "not found"}
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
	Title:            "Storefront account API",
	Description:      "Order history, cancellation, warranty lookup and notifications.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}

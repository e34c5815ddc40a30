// Package docs registers the swagger spec served at /swagger/index.html.
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
                "description": "Proxy credentials upstream; on success the guest cart is merged into the server cart",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Authentication"],
                "summary": "Login",
                "responses": {
                    "200": {"description": "OK"},
                    "401": {"description": "Unauthorized"}
                }
            }
        },
        "/auth/logout": {
            "post": {
                "description": "Drop any guest cart remnant; the client discards its token",
                "produces": ["application/json"],
                "tags": ["Authentication"],
                "summary": "Logout",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/cart": {
            "get": {
                "description": "Get the cart for the current session, guest or authenticated",
                "produces": ["application/json"],
                "tags": ["cart"],
                "summary": "Get current cart",
                "responses": {"200": {"description": "OK"}}
            },
            "delete": {
                "description": "Empty the cart for the current session",
                "produces": ["application/json"],
                "tags": ["cart"],
                "summary": "Clear cart",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/cart/add": {
            "post": {
                "description": "Add a catalog product (productId, optional productVariantId) or a virtual item (productName + price)",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["cart"],
                "summary": "Add item to cart",
                "responses": {
                    "200": {"description": "OK"},
                    "400": {"description": "Bad Request"}
                }
            }
        },
        "/cart/count": {
            "get": {
                "description": "Sum of quantities across cart lines, for the navbar badge",
                "produces": ["application/json"],
                "tags": ["cart"],
                "summary": "Get cart item count",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/cart/items/{id}": {
            "put": {
                "description": "Set the quantity of a cart line; a quantity below 1 removes it",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["cart"],
                "summary": "Update cart item quantity",
                "parameters": [
                    {"type": "string", "description": "Cart item ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK"},
                    "404": {"description": "Not Found"}
                }
            }
        },
        "/cart/merge": {
            "post": {
                "security": [{"BearerAuth": []}],
                "description": "Retry the login-time merge of a guest cart; requires authentication",
                "produces": ["application/json"],
                "tags": ["cart"],
                "summary": "Merge guest cart into server cart",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/cart/{id}": {
            "delete": {
                "description": "Remove a cart line; removing an already absent line succeeds",
                "produces": ["application/json"],
                "tags": ["cart"],
                "summary": "Remove cart item",
                "parameters": [
                    {"type": "string", "description": "Cart item ID", "name": "id", "in": "path", "required": true},
                    {"type": "integer", "description": "Variant ID, for legacy lines addressed by productId", "name": "variantId", "in": "query"}
                ],
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/products/{id}": {
            "get": {
                "description": "Proxy a single catalog product from the upstream API",
                "produces": ["application/json"],
                "tags": ["catalog"],
                "summary": "Get product by ID",
                "parameters": [
                    {"type": "integer", "description": "Product ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK"},
                    "404": {"description": "Not Found"}
                }
            }
        }
    },
    "securityDefinitions": {
        "BearerAuth": {"type": "apiKey", "name": "Authorization", "in": "header"}
    }
}`

var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Cart Gateway API",
	Description:      "Storefront cart gateway: uniform cart operations for guest and authenticated shoppers, with guest cart merge on login.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}

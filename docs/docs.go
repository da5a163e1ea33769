// Package docs holds the OpenAPI document served under /swagger. Regenerate
// it with `swag init -g cmd/app/main.go` after changing handler annotations.
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
				"tags": [
					"system"
				],
				"summary": "Health check",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/api.HealthResponse"
						}
					},
					"503": {
						"description": "Service Unavailable",
						"schema": {
							"$ref": "#/definitions/api.HealthResponse"
						}
					}
				}
			}
		},
		"/metrics": {
			"get": {
				"tags": [
					"system"
				],
				"summary": "Prometheus metrics",
				"produces": [
					"text/plain"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"type": "string"
						}
					}
				}
			}
		},
		"/tenants": {
			"post": {
				"tags": [
					"tenants"
				],
				"summary": "Create tenant",
				"produces": [
					"application/json"
				],
				"parameters": [
					{
						"name": "request",
						"in": "body",
						"required": true,
						"schema": {
							"type": "object"
						},
						"description": "tenant.CreateTenantRequest"
					}
				],
				"responses": {
					"201": {
						"description": "Created"
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/api.ErrorResponse"
						}
					},
					"404": {
						"description": "Not Found",
						"schema": {
							"$ref": "#/definitions/api.ErrorResponse"
						}
					}
				},
				"consumes": [
					"application/json"
				]
			},
			"get": {
				"tags": [
					"tenants"
				],
				"summary": "List tenants",
				"description": "Not served when AUTH_ENABLED is set.",
				"produces": [
					"application/json"
				],
				"parameters": [],
				"responses": {
					"200": {
						"description": "OK"
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/api.ErrorResponse"
						}
					},
					"404": {
						"description": "Not Found",
						"schema": {
							"$ref": "#/definitions/api.ErrorResponse"
						}
					}
				},
				"consumes": [
					"application/json"
				]
			}
		},
		"/tenants/{id}": {
			"get": {
				"tags": [
					"tenants"
				],
				"summary": "Get tenant",
				"description": "With AUTH_ENABLED, requires an access token issued for this tenant.",
				"produces": [
					"application/json"
				],
				"parameters": [
					{
						"name": "id",
						"in": "path",
						"required": true,
						"type": "string"
					}
				],
				"responses": {
					"200": {
						"description": "OK"
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/api.ErrorResponse"
						}
					},
					"404": {
						"description": "Not Found",
						"schema": {
							"$ref": "#/definitions/api.ErrorResponse"
						}
					}
				},
				"consumes": [
					"application/json"
				]
			},
			"put": {
				"tags": [
					"tenants"
				],
				"summary": "Update tenant",
				"description": "With AUTH_ENABLED, requires an access token issued for this tenant.",
				"produces": [
					"application/json"
				],
				"parameters": [
					{
						"name": "id",
						"in": "path",
						"required": true,
						"type": "string"
					},
					{
						"name": "request",
						"in": "body",
						"required": true,
						"schema": {
							"type": "object"
						},
						"description": "tenant.TenantPatch"
					}
				],
				"responses": {
					"200": {
						"description": "OK"
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/api.ErrorResponse"
						}
					},
					"404": {
						"description": "Not Found",
						"schema": {
							"$ref": "#/definitions/api.ErrorResponse"
						}
					}
				},
				"consumes": [
					"application/json"
				]
			},
			"delete": {
				"tags": [
					"tenants"
				],
				"summary": "Delete tenant",
				"description": "With AUTH_ENABLED, requires an access token issued for this tenant.",
				"produces": [
					"application/json"
				],
				"parameters": [
					{
						"name": "id",
						"in": "path",
						"required": true,
						"type": "string"
					}
				],
				"responses": {
					"204": {
						"description": "No Content"
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/api.ErrorResponse"
						}
					},
					"404": {
						"description": "Not Found",
						"schema": {
							"$ref": "#/definitions/api.ErrorResponse"
						}
					}
				},
				"consumes": [
					"application/json"
				]
			}
		},
		"/tenants/validate": {
			"post": {
				"tags": [
					"tenants"
				],
				"summary": "Validate tenant credentials",
				"produces": [
					"application/json"
				],
				"parameters": [
					{
						"name": "request",
						"in": "body",
						"required": true,
						"schema": {
							"type": "object"
						},
						"description": "tenant.ValidateRequest"
					}
				],
				"responses": {
					"200": {
						"description": "OK"
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/api.ErrorResponse"
						}
					},
					"404": {
						"description": "Not Found",
						"schema": {
							"$ref": "#/definitions/api.ErrorResponse"
						}
					},
					"401": {
						"description": "Unauthorized",
						"schema": {
							"$ref": "#/definitions/api.ErrorResponse"
						}
					}
				},
				"consumes": [
					"application/json"
				]
			}
		},
		"/tenants/refresh": {
			"post": {
				"tags": [
					"tenants"
				],
				"summary": "Refresh access token",
				"produces": [
					"application/json"
				],
				"parameters": [
					{
						"name": "request",
						"in": "body",
						"required": true,
						"schema": {
							"type": "object"
						},
						"description": "tenant.RefreshRequest"
					}
				],
				"responses": {
					"200": {
						"description": "OK"
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/api.ErrorResponse"
						}
					},
					"404": {
						"description": "Not Found",
						"schema": {
							"$ref": "#/definitions/api.ErrorResponse"
						}
					},
					"401": {
						"description": "Unauthorized",
						"schema": {
							"$ref": "#/definitions/api.ErrorResponse"
						}
					}
				},
				"consumes": [
					"application/json"
				]
			}
		},
		"/users/{tenantId}": {
			"get": {
				"tags": [
					"users"
				],
				"summary": "List members",
				"produces": [
					"application/json"
				],
				"parameters": [
					{
						"name": "tenantId",
						"in": "path",
						"required": true,
						"type": "string"
					}
				],
				"responses": {
					"200": {
						"description": "OK"
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/api.ErrorResponse"
						}
					},
					"404": {
						"description": "Not Found",
						"schema": {
							"$ref": "#/definitions/api.ErrorResponse"
						}
					}
				},
				"consumes": [
					"application/json"
				]
			},
			"post": {
				"tags": [
					"users"
				],
				"summary": "Create member",
				"produces": [
					"application/json"
				],
				"parameters": [
					{
						"name": "tenantId",
						"in": "path",
						"required": true,
						"type": "string"
					},
					{
						"name": "Name",
						"in": "formData",
						"type": "string",
						"required": true
					},
					{
						"name": "MobileNo",
						"in": "formData",
						"type": "string",
						"required": true
					},
					{
						"name": "EmailId",
						"in": "formData",
						"type": "string",
						"required": true
					},
					{
						"name": "Gender",
						"in": "formData",
						"type": "string",
						"required": true
					},
					{
						"name": "Location",
						"in": "formData",
						"type": "string",
						"required": true
					},
					{
						"name": "DOB",
						"in": "formData",
						"type": "string",
						"required": true
					},
					{
						"name": "ProfileImagePath",
						"in": "formData",
						"type": "file",
						"required": false
					},
					{
						"name": "AadharImagePath",
						"in": "formData",
						"type": "file",
						"required": false
					}
				],
				"responses": {
					"201": {
						"description": "Created"
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/api.ErrorResponse"
						}
					},
					"404": {
						"description": "Not Found",
						"schema": {
							"$ref": "#/definitions/api.ErrorResponse"
						}
					}
				},
				"consumes": [
					"multipart/form-data"
				]
			}
		},
		"/users/{tenantId}/{userId}": {
			"get": {
				"tags": [
					"users"
				],
				"summary": "Get member",
				"produces": [
					"application/json"
				],
				"parameters": [
					{
						"name": "tenantId",
						"in": "path",
						"required": true,
						"type": "string"
					},
					{
						"name": "userId",
						"in": "path",
						"required": true,
						"type": "integer"
					}
				],
				"responses": {
					"200": {
						"description": "OK"
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/api.ErrorResponse"
						}
					},
					"404": {
						"description": "Not Found",
						"schema": {
							"$ref": "#/definitions/api.ErrorResponse"
						}
					}
				},
				"consumes": [
					"application/json"
				]
			},
			"put": {
				"tags": [
					"users"
				],
				"summary": "Update member",
				"produces": [
					"application/json"
				],
				"parameters": [
					{
						"name": "tenantId",
						"in": "path",
						"required": true,
						"type": "string"
					},
					{
						"name": "userId",
						"in": "path",
						"required": true,
						"type": "integer"
					},
					{
						"name": "request",
						"in": "body",
						"required": true,
						"schema": {
							"type": "object"
						},
						"description": "user.UserPatch"
					}
				],
				"responses": {
					"200": {
						"description": "OK"
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/api.ErrorResponse"
						}
					},
					"404": {
						"description": "Not Found",
						"schema": {
							"$ref": "#/definitions/api.ErrorResponse"
						}
					}
				},
				"consumes": [
					"application/json"
				]
			},
			"delete": {
				"tags": [
					"users"
				],
				"summary": "Delete member",
				"produces": [
					"application/json"
				],
				"parameters": [
					{
						"name": "tenantId",
						"in": "path",
						"required": true,
						"type": "string"
					},
					{
						"name": "userId",
						"in": "path",
						"required": true,
						"type": "integer"
					}
				],
				"responses": {
					"204": {
						"description": "No Content"
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/api.ErrorResponse"
						}
					},
					"404": {
						"description": "Not Found",
						"schema": {
							"$ref": "#/definitions/api.ErrorResponse"
						}
					}
				},
				"consumes": [
					"application/json"
				]
			}
		},
		"/subscription-plans/{tenantId}": {
			"get": {
				"tags": [
					"subscription-plans"
				],
				"summary": "List plans",
				"produces": [
					"application/json"
				],
				"parameters": [
					{
						"name": "tenantId",
						"in": "path",
						"required": true,
						"type": "string"
					}
				],
				"responses": {
					"200": {
						"description": "OK"
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/api.ErrorResponse"
						}
					},
					"404": {
						"description": "Not Found",
						"schema": {
							"$ref": "#/definitions/api.ErrorResponse"
						}
					}
				},
				"consumes": [
					"application/json"
				]
			},
			"post": {
				"tags": [
					"subscription-plans"
				],
				"summary": "Create plan",
				"produces": [
					"application/json"
				],
				"parameters": [
					{
						"name": "tenantId",
						"in": "path",
						"required": true,
						"type": "string"
					},
					{
						"name": "request",
						"in": "body",
						"required": true,
						"schema": {
							"type": "object"
						},
						"description": "plan.CreatePlanRequest"
					}
				],
				"responses": {
					"201": {
						"description": "Created"
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/api.ErrorResponse"
						}
					},
					"404": {
						"description": "Not Found",
						"schema": {
							"$ref": "#/definitions/api.ErrorResponse"
						}
					}
				},
				"consumes": [
					"application/json"
				]
			}
		},
		"/subscription-plans/{tenantId}/{planId}": {
			"get": {
				"tags": [
					"subscription-plans"
				],
				"summary": "Get plan",
				"produces": [
					"application/json"
				],
				"parameters": [
					{
						"name": "tenantId",
						"in": "path",
						"required": true,
						"type": "string"
					},
					{
						"name": "planId",
						"in": "path",
						"required": true,
						"type": "integer"
					}
				],
				"responses": {
					"200": {
						"description": "OK"
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/api.ErrorResponse"
						}
					},
					"404": {
						"description": "Not Found",
						"schema": {
							"$ref": "#/definitions/api.ErrorResponse"
						}
					}
				},
				"consumes": [
					"application/json"
				]
			},
			"put": {
				"tags": [
					"subscription-plans"
				],
				"summary": "Update plan",
				"produces": [
					"application/json"
				],
				"parameters": [
					{
						"name": "tenantId",
						"in": "path",
						"required": true,
						"type": "string"
					},
					{
						"name": "planId",
						"in": "path",
						"required": true,
						"type": "integer"
					},
					{
						"name": "request",
						"in": "body",
						"required": true,
						"schema": {
							"type": "object"
						},
						"description": "plan.PlanPatch"
					}
				],
				"responses": {
					"200": {
						"description": "OK"
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/api.ErrorResponse"
						}
					},
					"404": {
						"description": "Not Found",
						"schema": {
							"$ref": "#/definitions/api.ErrorResponse"
						}
					}
				},
				"consumes": [
					"application/json"
				]
			},
			"delete": {
				"tags": [
					"subscription-plans"
				],
				"summary": "Delete plan",
				"produces": [
					"application/json"
				],
				"parameters": [
					{
						"name": "tenantId",
						"in": "path",
						"required": true,
						"type": "string"
					},
					{
						"name": "planId",
						"in": "path",
						"required": true,
						"type": "integer"
					}
				],
				"responses": {
					"204": {
						"description": "No Content"
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/api.ErrorResponse"
						}
					},
					"404": {
						"description": "Not Found",
						"schema": {
							"$ref": "#/definitions/api.ErrorResponse"
						}
					}
				},
				"consumes": [
					"application/json"
				]
			}
		},
		"/user-subscription-plan-mappings/{tenantId}": {
			"get": {
				"tags": [
					"user-subscription-plan-mappings"
				],
				"summary": "List mappings",
				"produces": [
					"application/json"
				],
				"parameters": [
					{
						"name": "tenantId",
						"in": "path",
						"required": true,
						"type": "string"
					}
				],
				"responses": {
					"200": {
						"description": "OK"
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/api.ErrorResponse"
						}
					},
					"404": {
						"description": "Not Found",
						"schema": {
							"$ref": "#/definitions/api.ErrorResponse"
						}
					}
				},
				"consumes": [
					"application/json"
				]
			},
			"post": {
				"tags": [
					"user-subscription-plan-mappings"
				],
				"summary": "Create mapping",
				"produces": [
					"application/json"
				],
				"parameters": [
					{
						"name": "tenantId",
						"in": "path",
						"required": true,
						"type": "string"
					},
					{
						"name": "request",
						"in": "body",
						"required": true,
						"schema": {
							"type": "object"
						},
						"description": "subscription.CreateMappingRequest"
					}
				],
				"responses": {
					"201": {
						"description": "Created"
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/api.ErrorResponse"
						}
					},
					"404": {
						"description": "Not Found",
						"schema": {
							"$ref": "#/definitions/api.ErrorResponse"
						}
					}
				},
				"consumes": [
					"application/json"
				]
			}
		},
		"/user-subscription-plan-mappings/{tenantId}/{id}": {
			"get": {
				"tags": [
					"user-subscription-plan-mappings"
				],
				"summary": "Get mapping",
				"produces": [
					"application/json"
				],
				"parameters": [
					{
						"name": "tenantId",
						"in": "path",
						"required": true,
						"type": "string"
					},
					{
						"name": "id",
						"in": "path",
						"required": true,
						"type": "integer"
					}
				],
				"responses": {
					"200": {
						"description": "OK"
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/api.ErrorResponse"
						}
					},
					"404": {
						"description": "Not Found",
						"schema": {
							"$ref": "#/definitions/api.ErrorResponse"
						}
					}
				},
				"consumes": [
					"application/json"
				]
			},
			"put": {
				"tags": [
					"user-subscription-plan-mappings"
				],
				"summary": "Update mapping",
				"produces": [
					"application/json"
				],
				"parameters": [
					{
						"name": "tenantId",
						"in": "path",
						"required": true,
						"type": "string"
					},
					{
						"name": "id",
						"in": "path",
						"required": true,
						"type": "integer"
					},
					{
						"name": "request",
						"in": "body",
						"required": true,
						"schema": {
							"type": "object"
						},
						"description": "subscription.MappingPatch"
					}
				],
				"responses": {
					"200": {
						"description": "OK"
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/api.ErrorResponse"
						}
					},
					"404": {
						"description": "Not Found",
						"schema": {
							"$ref": "#/definitions/api.ErrorResponse"
						}
					}
				},
				"consumes": [
					"application/json"
				]
			},
			"delete": {
				"tags": [
					"user-subscription-plan-mappings"
				],
				"summary": "Delete mapping",
				"produces": [
					"application/json"
				],
				"parameters": [
					{
						"name": "tenantId",
						"in": "path",
						"required": true,
						"type": "string"
					},
					{
						"name": "id",
						"in": "path",
						"required": true,
						"type": "integer"
					}
				],
				"responses": {
					"204": {
						"description": "No Content"
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/api.ErrorResponse"
						}
					},
					"404": {
						"description": "Not Found",
						"schema": {
							"$ref": "#/definitions/api.ErrorResponse"
						}
					}
				},
				"consumes": [
					"application/json"
				]
			}
		},
		"/user-subscription-plan-mappings/{tenantId}/{id}/balance": {
			"get": {
				"tags": [
					"user-subscription-plan-mappings"
				],
				"summary": "Mapping balance",
				"produces": [
					"application/json"
				],
				"parameters": [
					{
						"name": "tenantId",
						"in": "path",
						"required": true,
						"type": "string"
					},
					{
						"name": "id",
						"in": "path",
						"required": true,
						"type": "integer"
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/subscription.Balance"
						}
					},
					"404": {
						"description": "Not Found",
						"schema": {
							"$ref": "#/definitions/api.ErrorResponse"
						}
					}
				},
				"consumes": [
					"application/json"
				]
			}
		},
		"/payment-history/": {
			"post": {
				"tags": [
					"payment-history"
				],
				"summary": "Record payment",
				"produces": [
					"application/json"
				],
				"parameters": [
					{
						"name": "tenantId",
						"in": "header",
						"required": true,
						"type": "string"
					},
					{
						"name": "UserId",
						"in": "formData",
						"type": "integer",
						"required": true
					},
					{
						"name": "MappingId",
						"in": "formData",
						"type": "integer",
						"required": true
					},
					{
						"name": "TransactionRefId",
						"in": "formData",
						"type": "string",
						"required": false
					},
					{
						"name": "AmountReceived",
						"in": "formData",
						"type": "string",
						"required": true
					},
					{
						"name": "PaymentType",
						"in": "formData",
						"type": "string",
						"required": true
					},
					{
						"name": "PaymentDate",
						"in": "formData",
						"type": "string",
						"required": false
					},
					{
						"name": "CreatedBy",
						"in": "formData",
						"type": "string",
						"required": false
					},
					{
						"name": "imagePath",
						"in": "formData",
						"type": "file",
						"required": false
					}
				],
				"responses": {
					"201": {
						"description": "Created"
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/api.ErrorResponse"
						}
					},
					"404": {
						"description": "Not Found",
						"schema": {
							"$ref": "#/definitions/api.ErrorResponse"
						}
					}
				},
				"description": "Rejected with 400 when the amount exceeds the pending amount of the mapping.",
				"consumes": [
					"multipart/form-data"
				]
			}
		},
		"/payment-history/{tenantId}": {
			"get": {
				"tags": [
					"payment-history"
				],
				"summary": "List payments",
				"produces": [
					"application/json"
				],
				"parameters": [
					{
						"name": "tenantId",
						"in": "path",
						"required": true,
						"type": "string"
					},
					{
						"name": "userId",
						"in": "query",
						"type": "integer"
					},
					{
						"name": "mappingId",
						"in": "query",
						"type": "integer"
					}
				],
				"responses": {
					"200": {
						"description": "OK"
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/api.ErrorResponse"
						}
					},
					"404": {
						"description": "Not Found",
						"schema": {
							"$ref": "#/definitions/api.ErrorResponse"
						}
					}
				},
				"consumes": [
					"application/json"
				]
			}
		},
		"/payment-history/{tenantId}/export": {
			"get": {
				"tags": [
					"payment-history"
				],
				"summary": "Export payments as xlsx",
				"produces": [
					"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
				],
				"parameters": [
					{
						"name": "tenantId",
						"in": "path",
						"required": true,
						"type": "string"
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"type": "file"
						}
					}
				}
			}
		},
		"/payment-history/{tenantId}/{paymentId}": {
			"get": {
				"tags": [
					"payment-history"
				],
				"summary": "Get payment",
				"produces": [
					"application/json"
				],
				"parameters": [
					{
						"name": "tenantId",
						"in": "path",
						"required": true,
						"type": "string"
					},
					{
						"name": "paymentId",
						"in": "path",
						"required": true,
						"type": "integer"
					}
				],
				"responses": {
					"200": {
						"description": "OK"
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/api.ErrorResponse"
						}
					},
					"404": {
						"description": "Not Found",
						"schema": {
							"$ref": "#/definitions/api.ErrorResponse"
						}
					}
				},
				"consumes": [
					"application/json"
				]
			},
			"put": {
				"tags": [
					"payment-history"
				],
				"summary": "Update payment",
				"produces": [
					"application/json"
				],
				"parameters": [
					{
						"name": "tenantId",
						"in": "path",
						"required": true,
						"type": "string"
					},
					{
						"name": "paymentId",
						"in": "path",
						"required": true,
						"type": "integer"
					},
					{
						"name": "request",
						"in": "body",
						"required": true,
						"schema": {
							"type": "object"
						},
						"description": "payment.PaymentPatch"
					}
				],
				"responses": {
					"200": {
						"description": "OK"
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/api.ErrorResponse"
						}
					},
					"404": {
						"description": "Not Found",
						"schema": {
							"$ref": "#/definitions/api.ErrorResponse"
						}
					}
				},
				"consumes": [
					"application/json"
				]
			},
			"delete": {
				"tags": [
					"payment-history"
				],
				"summary": "Delete payment",
				"produces": [
					"application/json"
				],
				"parameters": [
					{
						"name": "tenantId",
						"in": "path",
						"required": true,
						"type": "string"
					},
					{
						"name": "paymentId",
						"in": "path",
						"required": true,
						"type": "integer"
					}
				],
				"responses": {
					"204": {
						"description": "No Content"
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/api.ErrorResponse"
						}
					},
					"404": {
						"description": "Not Found",
						"schema": {
							"$ref": "#/definitions/api.ErrorResponse"
						}
					}
				},
				"consumes": [
					"application/json"
				]
			}
		},
		"/attendance/": {
			"post": {
				"tags": [
					"attendance"
				],
				"summary": "Check in or check out",
				"produces": [
					"application/json"
				],
				"parameters": [
					{
						"name": "tenantId",
						"in": "header",
						"required": true,
						"type": "string"
					},
					{
						"name": "request",
						"in": "body",
						"required": true,
						"schema": {
							"type": "object"
						},
						"description": "attendance.MarkRequest"
					}
				],
				"responses": {
					"201": {
						"description": "Created"
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/api.ErrorResponse"
						}
					},
					"404": {
						"description": "Not Found",
						"schema": {
							"$ref": "#/definitions/api.ErrorResponse"
						}
					}
				},
				"description": "CheckInBy checks the member in, CheckOutBy checks them out. Check-out answers 200.",
				"consumes": [
					"application/json"
				]
			}
		},
		"/attendance/{tenantId}": {
			"get": {
				"tags": [
					"attendance"
				],
				"summary": "List attendance",
				"produces": [
					"application/json"
				],
				"parameters": [
					{
						"name": "tenantId",
						"in": "path",
						"required": true,
						"type": "string"
					},
					{
						"name": "date",
						"in": "query",
						"type": "string",
						"description": "YYYY-MM-DD"
					},
					{
						"name": "userId",
						"in": "query",
						"type": "integer"
					}
				],
				"responses": {
					"200": {
						"description": "OK"
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/api.ErrorResponse"
						}
					},
					"404": {
						"description": "Not Found",
						"schema": {
							"$ref": "#/definitions/api.ErrorResponse"
						}
					}
				},
				"consumes": [
					"application/json"
				]
			}
		},
		"/system-users/": {
			"post": {
				"tags": [
					"system-users"
				],
				"summary": "Create system user",
				"produces": [
					"application/json"
				],
				"parameters": [
					{
						"name": "tenantId",
						"in": "header",
						"required": true,
						"type": "string"
					},
					{
						"name": "request",
						"in": "body",
						"required": true,
						"schema": {
							"type": "object"
						},
						"description": "systemuser.CreateSystemUserRequest"
					}
				],
				"responses": {
					"201": {
						"description": "Created"
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/api.ErrorResponse"
						}
					},
					"404": {
						"description": "Not Found",
						"schema": {
							"$ref": "#/definitions/api.ErrorResponse"
						}
					}
				},
				"consumes": [
					"application/json"
				]
			}
		},
		"/system-users/{tenantId}": {
			"get": {
				"tags": [
					"system-users"
				],
				"summary": "List system users",
				"produces": [
					"application/json"
				],
				"parameters": [
					{
						"name": "tenantId",
						"in": "path",
						"required": true,
						"type": "string"
					}
				],
				"responses": {
					"200": {
						"description": "OK"
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/api.ErrorResponse"
						}
					},
					"404": {
						"description": "Not Found",
						"schema": {
							"$ref": "#/definitions/api.ErrorResponse"
						}
					}
				},
				"consumes": [
					"application/json"
				]
			}
		},
		"/system-users/{tenantId}/{userId}": {
			"get": {
				"tags": [
					"system-users"
				],
				"summary": "Get system user",
				"produces": [
					"application/json"
				],
				"parameters": [
					{
						"name": "tenantId",
						"in": "path",
						"required": true,
						"type": "string"
					},
					{
						"name": "userId",
						"in": "path",
						"required": true,
						"type": "integer"
					}
				],
				"responses": {
					"200": {
						"description": "OK"
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/api.ErrorResponse"
						}
					},
					"404": {
						"description": "Not Found",
						"schema": {
							"$ref": "#/definitions/api.ErrorResponse"
						}
					}
				},
				"consumes": [
					"application/json"
				]
			},
			"put": {
				"tags": [
					"system-users"
				],
				"summary": "Update system user",
				"produces": [
					"application/json"
				],
				"parameters": [
					{
						"name": "tenantId",
						"in": "path",
						"required": true,
						"type": "string"
					},
					{
						"name": "userId",
						"in": "path",
						"required": true,
						"type": "integer"
					},
					{
						"name": "request",
						"in": "body",
						"required": true,
						"schema": {
							"type": "object"
						},
						"description": "systemuser.SystemUserPatch"
					}
				],
				"responses": {
					"200": {
						"description": "OK"
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/api.ErrorResponse"
						}
					},
					"404": {
						"description": "Not Found",
						"schema": {
							"$ref": "#/definitions/api.ErrorResponse"
						}
					}
				},
				"consumes": [
					"application/json"
				]
			},
			"delete": {
				"tags": [
					"system-users"
				],
				"summary": "Delete system user",
				"produces": [
					"application/json"
				],
				"parameters": [
					{
						"name": "tenantId",
						"in": "path",
						"required": true,
						"type": "string"
					},
					{
						"name": "userId",
						"in": "path",
						"required": true,
						"type": "integer"
					}
				],
				"responses": {
					"204": {
						"description": "No Content"
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/api.ErrorResponse"
						}
					},
					"404": {
						"description": "Not Found",
						"schema": {
							"$ref": "#/definitions/api.ErrorResponse"
						}
					}
				},
				"consumes": [
					"application/json"
				]
			}
		},
		"/user-details/search/{tenantId}": {
			"post": {
				"tags": [
					"user-details"
				],
				"summary": "Search members",
				"produces": [
					"application/json"
				],
				"parameters": [
					{
						"name": "tenantId",
						"in": "path",
						"required": true,
						"type": "string"
					},
					{
						"name": "request",
						"in": "body",
						"required": true,
						"schema": {
							"type": "object"
						},
						"description": "userdetail.SearchRequest"
					}
				],
				"responses": {
					"200": {
						"description": "OK"
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/api.ErrorResponse"
						}
					},
					"404": {
						"description": "Not Found",
						"schema": {
							"$ref": "#/definitions/api.ErrorResponse"
						}
					}
				},
				"consumes": [
					"application/json"
				]
			}
		},
		"/user-details/detail/{tenantId}/{id}": {
			"get": {
				"tags": [
					"user-details"
				],
				"summary": "Member detail",
				"produces": [
					"application/json"
				],
				"parameters": [
					{
						"name": "tenantId",
						"in": "path",
						"required": true,
						"type": "string"
					},
					{
						"name": "id",
						"in": "path",
						"required": true,
						"type": "integer"
					}
				],
				"responses": {
					"200": {
						"description": "OK"
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/api.ErrorResponse"
						}
					},
					"404": {
						"description": "Not Found",
						"schema": {
							"$ref": "#/definitions/api.ErrorResponse"
						}
					}
				},
				"consumes": [
					"application/json"
				]
			}
		}
	},
	"definitions": {
		"api.FieldError": {
			"type": "object",
			"properties": {
				"field": {
					"type": "string"
				},
				"message": {
					"type": "string"
				}
			}
		},
		"api.ErrorResponse": {
			"type": "object",
			"properties": {
				"error": {
					"type": "string",
					"example": "something went wrong"
				},
				"details": {
					"type": "array",
					"items": {
						"$ref": "#/definitions/api.FieldError"
					}
				}
			}
		},
		"api.HealthResponse": {
			"type": "object",
			"properties": {
				"status": {
					"type": "string",
					"example": "ok"
				}
			}
		},
		"subscription.Balance": {
			"type": "object",
			"properties": {
				"MappingId": {
					"type": "integer"
				},
				"Price": {
					"type": "string",
					"example": "1000"
				},
				"TotalPaid": {
					"type": "string",
					"example": "400"
				},
				"PendingDue": {
					"type": "string",
					"example": "600"
				},
				"PendingAmount": {
					"type": "string",
					"example": "600"
				},
				"Status": {
					"type": "string",
					"example": "Active"
				},
				"DueDate": {
					"type": "string",
					"example": "31 Mar 2025"
				}
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
	Title:            "MemberDesk API",
	Description:      "Multi-tenant membership backend: members, plans, payments and attendance.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}

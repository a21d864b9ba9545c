package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// RegisterSwagger registers the OpenAPI endpoints for the catalog service.
// - GET /swagger/index.html  -> a small HTML page that loads the OpenAPI JSON
// - GET /swagger/doc.json    -> machine-readable OpenAPI JSON
func RegisterSwagger(rg gin.IRoutes) {
	rg.GET("/swagger/index.html", func(c *gin.Context) {
		c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(swaggerHTML))
	})

	rg.GET("/swagger/doc.json", func(c *gin.Context) {
		c.Data(http.StatusOK, "application/json; charset=utf-8", []byte(swaggerJSON))
	})
}

const swaggerHTML = `<!doctype html>
<html>
  <head>
    <meta charset="utf-8" />
    <title>products-showcase — Swagger</title>
    <link rel="stylesheet" href="https://unpkg.com/swagger-ui-dist@4/swagger-ui.css" />
  </head>
  <body>
    <div id="swagger-ui"></div>
    <script src="https://unpkg.com/swagger-ui-dist@4/swagger-ui-bundle.js"></script>
    <script>
      window.ui = SwaggerUIBundle({
        url: '/swagger/doc.json',
        dom_id: '#swagger-ui',
      })
    </script>
  </body>
</html>`

const swaggerJSON = `{
  "openapi": "3.0.0",
  "info": { "title": "products-showcase", "version": "v1.0.0" },
  "components": {
    "schemas": {
      "Product": {
        "type": "object",
        "properties": {
          "_id": { "type": "string" },
          "name": { "type": "string" },
          "description": { "type": "string" },
          "image": { "type": "string" },
          "brand": { "type": "string" },
          "category": { "type": "string" },
          "price": { "type": "number" },
          "rating": { "type": "number" },
          "createdAt": { "type": "string", "format": "date-time" }
        }
      },
      "Error": { "type": "object", "properties": { "message": { "type": "string" } } }
    }
  },
  "paths": {
    "/": { "get": { "summary": "Liveness message", "responses": { "200": { "description": "plain text" } } } },
    "/products": {
      "get": {
        "summary": "List products (6 per page)",
        "parameters": [
          { "name": "page", "in": "query", "schema": { "type": "integer", "minimum": 1, "default": 1 } },
          { "name": "search", "in": "query", "schema": { "type": "string" }, "description": "case-insensitive substring of name" },
          { "name": "brand", "in": "query", "schema": { "type": "string" } },
          { "name": "category", "in": "query", "schema": { "type": "string" } },
          { "name": "minPrice", "in": "query", "schema": { "type": "number", "default": 0 } },
          { "name": "maxPrice", "in": "query", "schema": { "type": "number" } },
          { "name": "sort", "in": "query", "schema": { "type": "string", "enum": ["price_asc", "price_desc", "date_asc", "date_desc"], "default": "date_desc" } }
        ],
        "responses": {
          "200": { "description": "page of products", "content": { "application/json": { "schema": { "type": "object", "properties": { "products": { "type": "array", "items": { "$ref": "#/components/schemas/Product" } }, "totalPages": { "type": "integer" } } } } } },
          "500": { "description": "store failure", "content": { "application/json": { "schema": { "$ref": "#/components/schemas/Error" } } } }
        }
      }
    },
    "/categories": { "get": { "summary": "Distinct categories", "responses": { "200": { "description": "array of strings" }, "500": { "description": "store failure" } } } },
    "/brands": { "get": { "summary": "Distinct brands", "responses": { "200": { "description": "array of strings" }, "500": { "description": "store failure" } } } },
    "/health": { "get": { "summary": "Liveness check", "responses": { "200": { "description": "healthy" } } } },
    "/ready": { "get": { "summary": "Readiness check", "responses": { "200": { "description": "ready" }, "503": { "description": "not ready" } } } },
    "/metrics": { "get": { "summary": "Prometheus metrics", "responses": { "200": { "description": "text exposition" } } } }
  }
}`

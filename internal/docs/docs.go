// Package docs serves the machine-readable API description and the
// interactive documentation UI. The OpenAPI document is a static artifact
// embedded at build time; /swagger renders it with swagger-ui.
package docs

import (
	_ "embed"
	"net/http"

	"github.com/labstack/echo/v4"
)

//go:embed openapi.json
var openapiJSON []byte

const swaggerPage = `<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="utf-8">
  <title>Portfolio API - Swagger UI</title>
  <link rel="stylesheet" href="https://unpkg.com/swagger-ui-dist@5/swagger-ui.css">
</head>
<body>
  <div id="swagger-ui"></div>
  <script src="https://unpkg.com/swagger-ui-dist@5/swagger-ui-bundle.js"></script>
  <script>
    SwaggerUIBundle({ url: "/doc", dom_id: "#swagger-ui" });
  </script>
</body>
</html>`

// Register mounts GET /doc and GET /swagger.
func Register(e *echo.Echo) {
	e.GET("/doc", func(c echo.Context) error {
		return c.JSONBlob(http.StatusOK, openapiJSON)
	})
	e.GET("/swagger", func(c echo.Context) error {
		return c.HTML(http.StatusOK, swaggerPage)
	})
}

// Package docs embarque le document OpenAPI servi sur /api-docs.
package docs

import _ "embed"

//go:embed openapi.json
var OpenAPISpec []byte

// Page est la coquille HTML Swagger UI pointant vers le document embarqué.
const Page = `<!DOCTYPE html>
<html lang="fr">
<head>
  <meta charset="utf-8"/>
  <title>Restaurant Reviews API - Documentation</title>
  <link rel="stylesheet" href="https://unpkg.com/swagger-ui-dist@5/swagger-ui.css"/>
</head>
<body>
  <div id="swagger-ui"></div>
  <script src="https://unpkg.com/swagger-ui-dist@5/swagger-ui-bundle.js"></script>
  <script>
    SwaggerUIBundle({
      url: "/api-docs/openapi.json",
      dom_id: "#swagger-ui"
    });
  </script>
</body>
</html>`

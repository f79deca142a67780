package controllers

import (
	"net/http"

	"github.com/sumtl/restaurant-reviews-app/docs"

	"github.com/gin-gonic/gin"
)

type DocsController struct{}

func NewDocsController() *DocsController { return &DocsController{} }

// GET /api-docs
func (d *DocsController) Page(c *gin.Context) {
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(docs.Page))
}

// GET /api-docs/openapi.json
func (d *DocsController) Spec(c *gin.Context) {
	c.Data(http.StatusOK, "application/json", docs.OpenAPISpec)
}

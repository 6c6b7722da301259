package ui

import (
	_ "embed"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gomarkdown/markdown"
	"github.com/gomarkdown/markdown/html"
	"github.com/gomarkdown/markdown/parser"
)

//go:embed docs.md
var docsMarkdown []byte

// handleDocs serves the API documentation rendered from embedded markdown.
func (s *Server) handleDocs(c *gin.Context) {
	p := parser.NewWithExtensions(parser.CommonExtensions)
	renderer := html.NewRenderer(html.RendererOptions{Flags: html.CommonFlags})
	c.Data(http.StatusOK, "text/html; charset=utf-8", markdown.ToHTML(docsMarkdown, p, renderer))
}

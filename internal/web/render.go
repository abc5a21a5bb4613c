package web

import (
	"context"
	"io"
	"net/http"

	"github.com/a-h/templ"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/render"
	g "maragu.dev/gomponents"
)

// component adapts a gomponents node to templ so every view goes through
// one renderer.
func component(n g.Node) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		return n.Render(w)
	})
}

// templRender implements gin's render.Render for templ components.
type templRender struct {
	ctx       context.Context
	component templ.Component
}

var _ render.Render = templRender{}

func (r templRender) Render(w http.ResponseWriter) error {
	r.WriteContentType(w)
	return r.component.Render(r.ctx, w)
}

func (r templRender) WriteContentType(w http.ResponseWriter) {
	header := w.Header()
	if len(header["Content-Type"]) == 0 {
		header["Content-Type"] = []string{"text/html; charset=utf-8"}
	}
}

// html writes n with status code.
func html(c *gin.Context, code int, n g.Node) {
	c.Render(code, templRender{ctx: c.Request.Context(), component: component(n)})
}

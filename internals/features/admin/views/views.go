package views

import (
	"embed"
	"io/fs"
	"net/http"
	"strings"

	"github.com/gofiber/template/html/v2"
)

//go:embed templates
var files embed.FS

const (
	AdminLayout  = "layouts/main"
	PublicLayout = "layouts/public"
)

// NewEngine returns the html engine over the embedded templates.
func NewEngine() *html.Engine {
	sub, err := fs.Sub(files, "templates")
	if err != nil {
		panic(err)
	}
	engine := html.NewFileSystem(http.FS(sub), ".html")
	engine.AddFunc("upper", strings.ToUpper)
	engine.AddFunc("short", func(s string, n int) string {
		r := []rune(s)
		if len(r) <= n {
			return s
		}
		return string(r[:n]) + "…"
	})
	return engine
}

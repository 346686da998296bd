// Package catalog renders reseller catalogs as self-contained HTML documents.
package catalog

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"math"
	"strings"

	"tangoshop/internal/domain/service"

	"github.com/pkg/errors"
)

// htmlRenderer implements the service.CatalogRenderer interface using html/template.
type htmlRenderer struct {
	tmpl *template.Template
}

// NewHTMLRenderer parses the embedded catalog template and returns the renderer.
func NewHTMLRenderer() (service.CatalogRenderer, error) {
	tmpl, err := template.New("catalog").Funcs(template.FuncMap{
		"money": formatMoney,
	}).Parse(catalogTemplate)
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse catalog template")
	}

	return &htmlRenderer{tmpl: tmpl}, nil
}

// Render produces a self-contained HTML page for the given catalog data.
func (r *htmlRenderer) Render(_ context.Context, data *service.CatalogData) ([]byte, error) {
	if data == nil {
		return nil, errors.New("catalog data is nil")
	}

	var buf bytes.Buffer
	if err := r.tmpl.Execute(&buf, data); err != nil {
		return nil, errors.Wrap(err, "failed to render catalog")
	}

	return buf.Bytes(), nil
}

// formatMoney formats an amount the way prices are written in es-AR:
// thousands separated by dots, decimals by a comma, e.g. $16.500,00.
func formatMoney(amount float64) string {
	cents := int64(math.Round(amount * 100))
	negative := cents < 0
	if negative {
		cents = -cents
	}

	whole := cents / 100
	frac := cents % 100

	digits := fmt.Sprintf("%d", whole)
	var grouped strings.Builder
	for i, d := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			grouped.WriteByte('.')
		}
		grouped.WriteRune(d)
	}

	sign := ""
	if negative {
		sign = "-"
	}

	return fmt.Sprintf("%s$%s,%02d", sign, grouped.String(), frac)
}

const catalogTemplate = `<!DOCTYPE html>
<html lang="es">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>Catálogo de {{.ResellerName}}</title>
<style>
  :root { --accent: #d33682; --ink: #222; --muted: #777; }
  * { box-sizing: border-box; }
  body { font-family: 'Helvetica Neue', Arial, sans-serif; margin: 0; color: var(--ink); background: #fafafa; }
  header { background: var(--accent); color: #fff; padding: 2rem 1.5rem; text-align: center; }
  header img { width: 88px; height: 88px; border-radius: 50%; object-fit: cover; border: 3px solid #fff; }
  header h1 { margin: .5rem 0 0; font-size: 1.6rem; }
  header p { margin: .25rem 0; opacity: .9; }
  header a { color: #fff; }
  main { max-width: 960px; margin: 0 auto; padding: 1.5rem; }
  section h2 { border-bottom: 2px solid var(--accent); padding-bottom: .35rem; font-size: 1.2rem; }
  .grid { display: grid; grid-template-columns: repeat(auto-fill, minmax(220px, 1fr)); gap: 1rem; }
  .card { background: #fff; border-radius: 8px; overflow: hidden; box-shadow: 0 1px 3px rgba(0,0,0,.12); }
  .card img { width: 100%; height: 160px; object-fit: cover; display: block; background: #eee; }
  .card .body { padding: .75rem; }
  .card h3 { margin: 0 0 .25rem; font-size: 1rem; }
  .card p { margin: 0 0 .5rem; font-size: .85rem; color: var(--muted); }
  .price { font-weight: 700; color: var(--accent); font-size: 1.1rem; }
  footer { text-align: center; padding: 1.5rem; color: var(--muted); font-size: .8rem; }
</style>
</head>
<body>
<header>
  {{if .PhotoURL}}<img src="{{.PhotoURL}}" alt="{{.ResellerName}}">{{end}}
  <h1>{{.ResellerName}}</h1>
  {{if .ResellerPhone}}<p>Tel: {{.ResellerPhone}}</p>{{end}}
  {{if .ResellerEmail}}<p>{{.ResellerEmail}}</p>{{end}}
  {{if .Website}}<p><a href="{{.Website}}">{{.Website}}</a></p>{{end}}
</header>
<main>
{{range .Sections}}
  <section>
    <h2>{{.Name}}</h2>
    <div class="grid">
    {{range .Entries}}
      <div class="card">
        {{if .Product.PhotoURL}}<img src="{{.Product.PhotoURL}}" alt="{{.Product.Name}}">{{end}}
        <div class="body">
          <h3>{{.Product.Name}}</h3>
          {{if .Product.Description}}<p>{{.Product.Description}}</p>{{end}}
          <span class="price">{{money .FinalPrice}}</span>
        </div>
      </div>
    {{end}}
    </div>
  </section>
{{end}}
</main>
<footer>
  Generado el {{.GeneratedAt.Format "02/01/2006"}} &middot; Powered by TangoShop
</footer>
</body>
</html>
`

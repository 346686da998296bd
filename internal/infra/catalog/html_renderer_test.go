package catalog

import (
	"context"
	"testing"
	"time"

	"tangoshop/internal/domain/entity"
	"tangoshop/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatMoney(t *testing.T) {
	assert.Equal(t, "$16.500,00", formatMoney(16500))
	assert.Equal(t, "$112,49", formatMoney(112.49))
	assert.Equal(t, "$1.234.567,89", formatMoney(1234567.89))
	assert.Equal(t, "$0,00", formatMoney(0))
	assert.Equal(t, "-$300,00", formatMoney(-300))
}

func TestHTMLRenderer_Render(t *testing.T) {
	renderer, err := NewHTMLRenderer()
	require.NoError(t, err)

	data := &service.CatalogData{
		ResellerName:  "María González",
		ResellerPhone: "+54 11 5555-1234",
		ResellerEmail: "maria@example.com",
		Sections: []service.CatalogSection{
			{
				Name: "Electrónica",
				Entries: []entity.CatalogEntry{
					{
						Product:    entity.Product{Name: "Auriculares", Description: "Inalámbricos", Price: 15000},
						FinalPrice: 16500,
					},
				},
			},
			{
				Name: entity.UncategorizedLabel,
				Entries: []entity.CatalogEntry{
					{
						Product:    entity.Product{Name: "Termo"},
						FinalPrice: 300,
					},
				},
			},
		},
		GeneratedAt: time.Date(2025, 3, 15, 10, 0, 0, 0, time.UTC),
	}

	html, err := renderer.Render(context.Background(), data)
	require.NoError(t, err)

	out := string(html)
	assert.Contains(t, out, "María González")
	assert.Contains(t, out, "Electrónica")
	assert.Contains(t, out, "Sin categoría")
	assert.Contains(t, out, "$16.500,00")
	assert.Contains(t, out, "$300,00")
	assert.Contains(t, out, "Powered by TangoShop")
	assert.Contains(t, out, "15/03/2025")
}

func TestHTMLRenderer_RenderNilData(t *testing.T) {
	renderer, err := NewHTMLRenderer()
	require.NoError(t, err)

	_, err = renderer.Render(context.Background(), nil)
	assert.Error(t, err)
}

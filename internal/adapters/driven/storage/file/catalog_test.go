package file

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/atelier-labs/vitrina/internal/core/domain"
)

func writeCatalog(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "catalog.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

func TestCatalogFile_Load(t *testing.T) {
	path := writeCatalog(t, `[
		{
			"id": "p1",
			"name": "Вечернее платье",
			"description": "Изысканное платье",
			"category": "clothing",
			"subcategory": "платье",
			"gender": "women",
			"price": 12900,
			"colors": ["черный"],
			"sizes": ["S", "M"],
			"tags": ["элегантный"],
			"inStock": true
		}
	]`)

	products, err := NewCatalogFile(path).Load(context.Background())

	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, "p1", products[0].ID)
	assert.Equal(t, domain.CategoryClothing, products[0].Category)
	assert.Equal(t, domain.GenderWomen, products[0].Gender)
	assert.Equal(t, 12900.0, products[0].Price)
	assert.True(t, products[0].InStock)
}

func TestCatalogFile_Load_MissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nope.json")

	_, err := NewCatalogFile(path).Load(context.Background())

	assert.Error(t, err)
}

func TestCatalogFile_Load_MalformedJSON(t *testing.T) {
	path := writeCatalog(t, `{"not": "an array"`)

	_, err := NewCatalogFile(path).Load(context.Background())

	assert.ErrorContains(t, err, "parse catalog")
}

func TestCatalogFile_Load_InvalidRecordFailsWholeLoad(t *testing.T) {
	path := writeCatalog(t, `[
		{"id": "ok", "name": "Ремень", "category": "accessories", "gender": "men", "price": 100},
		{"id": "bad", "name": "Шляпа", "category": "hats", "gender": "men", "price": 100}
	]`)

	_, err := NewCatalogFile(path).Load(context.Background())

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestCatalogFile_Path(t *testing.T) {
	assert.Equal(t, "/tmp/c.json", NewCatalogFile("/tmp/c.json").Path())
}

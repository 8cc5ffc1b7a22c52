package domain

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestProductCatalog_Describe(t *testing.T) {
	catalog := DefaultProductCatalog()

	assert.Equal(t, 5, catalog.Len())
	assert.Contains(t, catalog.Describe("Mouse"), "input device")
	assert.Equal(t, DefaultDescription, catalog.Describe("Toaster"))
	assert.Equal(t, DefaultDescription, catalog.Describe("mouse"))
}

func TestProductCatalog_IsolatedFromSourceMap(t *testing.T) {
	source := map[string]string{"Mouse": "original"}
	catalog := NewProductCatalog(source)

	source["Mouse"] = "changed"
	source["Laptop"] = "new"

	assert.Equal(t, "original", catalog.Describe("Mouse"))
	assert.Equal(t, DefaultDescription, catalog.Describe("Laptop"))
}

func TestSalesRecord_TotalSales(t *testing.T) {
	record := SalesRecord{
		Date:         time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		Product:      "Mouse",
		QuantitySold: 3,
		PricePerUnit: decimal.RequireFromString("19.99"),
	}

	assert.True(t, record.TotalSales().Equal(decimal.RequireFromString("59.97")))
	assert.Equal(t, "2024-01-01", record.DateKey())
}

func TestCanonicalDate(t *testing.T) {
	loc := time.FixedZone("BRT", -3*60*60)
	raw := time.Date(2024, 3, 5, 22, 30, 0, 0, loc)

	got := CanonicalDate(raw)

	assert.Equal(t, time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC), got)
}

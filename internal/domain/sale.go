// Package domain contém as estruturas de dados do domínio da aplicação
package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// DateLayout é o formato canônico das datas de venda
const DateLayout = "2006-01-02"

// SalesRecord representa uma linha do arquivo de vendas
type SalesRecord struct {
	Date         time.Time       `json:"date"`
	Product      string          `json:"product"`
	QuantitySold int             `json:"quantity_sold"`
	PricePerUnit decimal.Decimal `json:"price_per_unit"`
}

// TotalSales é sempre recalculado a partir da quantidade e do preço unitário
func (r SalesRecord) TotalSales() decimal.Decimal {
	return r.PricePerUnit.Mul(decimal.NewFromInt(int64(r.QuantitySold)))
}

// DateKey retorna a chave de agrupamento por data
func (r SalesRecord) DateKey() string {
	return r.Date.Format(DateLayout)
}

// SalesTable é o conjunto de vendas carregado de uma fonte. Não deve ser alterado após a carga.
type SalesTable struct {
	Source   string        `json:"source"`
	Records  []SalesRecord `json:"records"`
	LoadedAt time.Time     `json:"loaded_at"`
}

func (t *SalesTable) Len() int {
	if t == nil {
		return 0
	}
	return len(t.Records)
}

// CanonicalDate remove hora e fuso, mantendo apenas o dia do calendário
func CanonicalDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

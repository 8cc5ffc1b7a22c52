package utils

import "github.com/shopspring/decimal"

// RoundWithTwoDecimalPlace converte o valor monetário para float64 com duas casas,
// usado apenas na saída para gráficos e planilhas
func RoundWithTwoDecimalPlace(d decimal.Decimal) float64 {
	if d.IsZero() {
		return 0
	}

	return d.Round(2).InexactFloat64()
}

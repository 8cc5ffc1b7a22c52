// Package source carrega a tabela de vendas a partir de um arquivo CSV
package source

import (
	"encoding/csv"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/vfg2006/sales-report/internal/domain"
)

const (
	ColumnDate         = "Date"
	ColumnProduct      = "Product"
	ColumnQuantitySold = "Quantity_Sold"
	ColumnPricePerUnit = "Price_per_Unit"
)

// Header é o cabeçalho mínimo exigido, na ordem padrão
var Header = []string{ColumnDate, ColumnProduct, ColumnQuantitySold, ColumnPricePerUnit}

// Formatos aceitos para a coluna Date, em ordem de tentativa
var dateLayouts = []string{
	domain.DateLayout,
	"2006/01/02",
	"01/02/2006",
	"2006-01-02 15:04:05",
	time.RFC3339,
}

type columns struct {
	date, product, quantity, price int
}

// Load lê o arquivo em path. Cada chamada relê o arquivo, sem cache.
func Load(path string) (*domain.SalesTable, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrapf(ErrSourceNotFound, "%s", path)
		}
		return nil, errors.Wrapf(err, "erro ao abrir %s", path)
	}
	defer f.Close()

	return Read(f, path)
}

// Read lê a tabela de vendas de r. name identifica a fonte nas mensagens de erro.
func Read(r io.Reader, name string) (*domain.SalesTable, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err == io.EOF {
		return nil, errors.Wrapf(ErrMalformedInput, "%s: cabeçalho ausente", name)
	}
	if err != nil {
		return nil, errors.Wrapf(ErrMalformedInput, "%s: %v", name, err)
	}

	cols, err := locateColumns(header)
	if err != nil {
		return nil, errors.Wrapf(err, "%s", name)
	}
	cr.FieldsPerRecord = len(header)

	table := &domain.SalesTable{
		Source:   name,
		Records:  make([]domain.SalesRecord, 0),
		LoadedAt: time.Now(),
	}

	// Linha 1 é o cabeçalho
	row := 1
	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		row++
		if err != nil {
			return nil, errors.Wrapf(ErrMalformedInput, "%s: linha %d: %v", name, row, err)
		}

		sale, err := parseRecord(record, cols)
		if err != nil {
			return nil, errors.Wrapf(err, "%s: linha %d", name, row)
		}
		table.Records = append(table.Records, sale)
	}

	return table, nil
}

func locateColumns(header []string) (columns, error) {
	index := make(map[string]int, len(header))
	for i, name := range header {
		// O BOM do UTF-8 pode aparecer no primeiro campo
		name = strings.TrimPrefix(name, "\ufeff")
		index[strings.TrimSpace(name)] = i
	}

	var missing []string
	lookup := func(name string) int {
		i, ok := index[name]
		if !ok {
			missing = append(missing, name)
			return -1
		}
		return i
	}

	cols := columns{
		date:     lookup(ColumnDate),
		product:  lookup(ColumnProduct),
		quantity: lookup(ColumnQuantitySold),
		price:    lookup(ColumnPricePerUnit),
	}
	if len(missing) > 0 {
		return columns{}, errors.Wrapf(ErrMalformedInput, "colunas ausentes: %s", strings.Join(missing, ", "))
	}

	return cols, nil
}

func parseRecord(record []string, cols columns) (domain.SalesRecord, error) {
	date, err := ParseDate(record[cols.date])
	if err != nil {
		return domain.SalesRecord{}, err
	}

	product := strings.TrimSpace(record[cols.product])
	if product == "" {
		return domain.SalesRecord{}, errors.Wrap(ErrMalformedInput, "produto vazio")
	}

	rawQuantity := strings.TrimSpace(record[cols.quantity])
	quantity, err := strconv.Atoi(rawQuantity)
	if err != nil {
		return domain.SalesRecord{}, errors.Wrapf(ErrMalformedInput, "%s inválido %q", ColumnQuantitySold, rawQuantity)
	}
	if quantity < 0 {
		return domain.SalesRecord{}, errors.Wrapf(ErrMalformedInput, "%s negativo: %d", ColumnQuantitySold, quantity)
	}

	rawPrice := strings.TrimSpace(record[cols.price])
	price, err := decimal.NewFromString(rawPrice)
	if err != nil {
		return domain.SalesRecord{}, errors.Wrapf(ErrMalformedInput, "%s inválido %q", ColumnPricePerUnit, rawPrice)
	}
	if price.IsNegative() {
		return domain.SalesRecord{}, errors.Wrapf(ErrMalformedInput, "%s negativo: %s", ColumnPricePerUnit, rawPrice)
	}

	return domain.SalesRecord{
		Date:         date,
		Product:      product,
		QuantitySold: quantity,
		PricePerUnit: price,
	}, nil
}

// ParseDate converte o texto da coluna Date para a data canônica
func ParseDate(raw string) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	for _, layout := range dateLayouts {
		if parsed, err := time.Parse(layout, raw); err == nil {
			return domain.CanonicalDate(parsed), nil
		}
	}
	return time.Time{}, errors.Wrapf(ErrMalformedInput, "data inválida %q", raw)
}

package source

import stderrors "errors"

var (
	// ErrSourceNotFound indica que o arquivo CSV de vendas não existe
	ErrSourceNotFound = stderrors.New("sales source not found")
	// ErrMalformedInput indica colunas ausentes, datas ou números inválidos, ou valores negativos
	ErrMalformedInput = stderrors.New("malformed sales input")
)

// Package paginate percorre fontes que limitam a quantidade de linhas por requisição
package paginate

import (
	"context"
	"errors"
)

// ErrInvalidPageSize é retornado quando o tamanho de página não é positivo
var ErrInvalidPageSize = errors.New("paginate: tamanho de página deve ser positivo")

// PageFunc busca uma página a partir de offset com no máximo limit linhas
type PageFunc[T any] func(ctx context.Context, offset, limit int) ([]T, error)

// PageError indica qual página falhou
type PageError struct {
	Offset int
	Err    error
}

func (e *PageError) Error() string { return e.Err.Error() }

func (e *PageError) Unwrap() error { return e.Err }

// All requisita páginas em sequência até receber uma página com menos de pageSize
// linhas. Em qualquer falha o acumulado é descartado e nada parcial é retornado.
func All[T any](ctx context.Context, pageSize int, fetch PageFunc[T]) ([]T, error) {
	if pageSize <= 0 {
		return nil, ErrInvalidPageSize
	}

	result := make([]T, 0)
	offset := 0

	for {
		if err := ctx.Err(); err != nil {
			return nil, &PageError{Offset: offset, Err: err}
		}

		page, err := fetch(ctx, offset, pageSize)
		if err != nil {
			return nil, &PageError{Offset: offset, Err: err}
		}

		result = append(result, page...)

		if len(page) < pageSize {
			return result, nil
		}
		offset += len(page)
	}
}

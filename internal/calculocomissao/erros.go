// internal/calculocomissao/erros.go
package calculocomissao

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// ErroNotaKPIForaDoIntervalo indica componente de KPI fora de [0, 100].
type ErroNotaKPIForaDoIntervalo struct {
	Componente string
	Valor      decimal.Decimal
}

func (e *ErroNotaKPIForaDoIntervalo) Error() string {
	return fmt.Sprintf("nota de KPI %q fora do intervalo [0, 100]: %s", e.Componente, e.Valor)
}

// ErroValorNegativo indica valor de vendas ou quantidade de indicações negativa.
type ErroValorNegativo struct {
	Campo string
	Valor string
}

func (e *ErroValorNegativo) Error() string {
	return fmt.Sprintf("campo %q não pode ser negativo: %s", e.Campo, e.Valor)
}

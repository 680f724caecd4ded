// internal/pagamentocomissao/relatorio.go
package pagamentocomissao

import (
	"github.com/shopspring/decimal"
)

// Agregações puras sobre listas de pagamentos, usadas pelos painéis da tela de
// gestão. Nenhuma delas muta os pagamentos recebidos.

// TotalPago soma o valor líquido dos pagamentos já efetuados.
func TotalPago(pagamentos []PagamentoComissao) decimal.Decimal {
	return somaLiquidoPorStatus(pagamentos, StatusPago)
}

// TotalPendente soma o valor líquido dos pagamentos ainda pendentes.
func TotalPendente(pagamentos []PagamentoComissao) decimal.Decimal {
	return somaLiquidoPorStatus(pagamentos, StatusPendente)
}

func somaLiquidoPorStatus(pagamentos []PagamentoComissao, status string) decimal.Decimal {
	total := decimal.Zero
	for _, p := range pagamentos {
		if p.Status == status {
			total = total.Add(p.Calculo.ValorLiquido)
		}
	}
	return total
}

// TotalPorRecebedor agrupa o valor líquido por recebedor, em todos os status.
func TotalPorRecebedor(pagamentos []PagamentoComissao) map[uint]decimal.Decimal {
	totais := make(map[uint]decimal.Decimal, len(pagamentos))
	for _, p := range pagamentos {
		atual, ok := totais[p.RecebedorID]
		if !ok {
			atual = decimal.Zero
		}
		totais[p.RecebedorID] = atual.Add(p.Calculo.ValorLiquido)
	}
	return totais
}

// MediaKPI devolve a média das notas agregadas de KPI do conjunto,
// arredondada para 2 casas. Conjunto vazio devolve zero.
func MediaKPI(pagamentos []PagamentoComissao) decimal.Decimal {
	if len(pagamentos) == 0 {
		return decimal.Zero
	}
	soma := decimal.Zero
	for _, p := range pagamentos {
		soma = soma.Add(p.Calculo.NotaKPI)
	}
	return soma.Div(decimal.NewFromInt(int64(len(pagamentos)))).Round(2)
}

// internal/calculocomissao/kpi.go
package calculocomissao

import (
	"github.com/shopspring/decimal"
)

// NotasKPI agrupa as cinco notas de desempenho de um recebedor no período.
// Cada componente vai de 0 a 100.
type NotasKPI struct {
	PrazoEntrega          decimal.Decimal `json:"prazoEntrega"`
	SatisfacaoCliente     decimal.Decimal `json:"satisfacaoCliente"`
	Seguranca             decimal.Decimal `json:"seguranca"`
	EficienciaCombustivel decimal.Decimal `json:"eficienciaCombustivel"`
	Assiduidade           decimal.Decimal `json:"assiduidade"`
}

// componentes devolve pares nome/valor na ordem fixa de validação.
func (n NotasKPI) componentes() []componenteKPI {
	return []componenteKPI{
		{"prazoEntrega", n.PrazoEntrega},
		{"satisfacaoCliente", n.SatisfacaoCliente},
		{"seguranca", n.Seguranca},
		{"eficienciaCombustivel", n.EficienciaCombustivel},
		{"assiduidade", n.Assiduidade},
	}
}

type componenteKPI struct {
	Nome  string
	Valor decimal.Decimal
}

// Validar garante que todos os componentes estão em [0, 100].
// Nunca fazemos clamp de nota fora do intervalo: o erro sobe para o chamador.
func (n NotasKPI) Validar() error {
	for _, c := range n.componentes() {
		if c.Valor.LessThan(decimal.Zero) || c.Valor.GreaterThan(cem) {
			return &ErroNotaKPIForaDoIntervalo{Componente: c.Nome, Valor: c.Valor}
		}
	}
	return nil
}

// NotaAgregada calcula a média ponderada das cinco notas, limitada a [0, 100]
// e arredondada para 2 casas. Com os pesos padrão (todos 1) é a média simples.
func (n NotasKPI) NotaAgregada(pesos PesosKPI) decimal.Decimal {
	soma := decimal.Zero
	totalPesos := decimal.Zero
	valores := n.componentes()
	for i, peso := range pesos.lista() {
		soma = soma.Add(valores[i].Valor.Mul(peso))
		totalPesos = totalPesos.Add(peso)
	}
	if totalPesos.IsZero() {
		return decimal.Zero
	}
	nota := soma.Div(totalPesos).Round(2)
	if nota.LessThan(decimal.Zero) {
		return decimal.Zero
	}
	if nota.GreaterThan(cem) {
		return cem
	}
	return nota
}

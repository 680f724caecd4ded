// internal/faixacomissao/resolver.go
package faixacomissao

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// ErrNenhumaFaixa indica que nenhuma faixa da tabela cobre o valor de vendas.
// Nunca assumimos uma faixa padrão: pagar comissão com faixa errada é pior
// do que falhar a requisição.
var ErrNenhumaFaixa = errors.New("nenhuma faixa de comissão cobre o valor informado")

// ErrFaixaDesconhecida indica que o código de faixa pedido não existe na tabela.
var ErrFaixaDesconhecida = errors.New("código de faixa de comissão desconhecido")

// cobre informa se a faixa contém o valor de vendas.
func (f FaixaComissao) cobre(valor decimal.Decimal) bool {
	if valor.LessThan(f.MetaMinima) {
		return false
	}
	if f.MetaMaxima != nil && valor.GreaterThan(*f.MetaMaxima) {
		return false
	}
	return true
}

// ResolverFaixa devolve a faixa cuja meta contém o valor de vendas.
// Numa tabela bem configurada (faixas contíguas e sem sobreposição) existe
// exatamente uma candidata. Se a tabela tiver sobreposição, vence a faixa de
// maior MetaMinima que não excede o valor, e os avisos devolvem o problema de
// configuração para o chamador — não é falha dura, porque históricos podem ter
// sido calculados sob uma tabela depois corrigida.
func ResolverFaixa(valorVendas decimal.Decimal, faixas []FaixaComissao) (*FaixaComissao, []string, error) {
	var avisos []string
	var vencedora *FaixaComissao
	candidatas := 0

	for i := range faixas {
		f := &faixas[i]
		if !f.cobre(valorVendas) {
			continue
		}
		candidatas++
		if vencedora == nil || f.MetaMinima.GreaterThan(vencedora.MetaMinima) {
			vencedora = f
		}
	}

	if vencedora == nil {
		return nil, nil, fmt.Errorf("%w: valor %s", ErrNenhumaFaixa, valorVendas.StringFixed(2))
	}
	if candidatas > 1 {
		avisos = append(avisos, fmt.Sprintf(
			"tabela com faixas sobrepostas para o valor %s; aplicada a faixa %q (maior meta mínima)",
			valorVendas.StringFixed(2), vencedora.Codigo))
	}
	return vencedora, avisos, nil
}

// BuscarPorCodigo localiza uma faixa pelo código dentro da tabela informada.
func BuscarPorCodigo(codigo string, faixas []FaixaComissao) (*FaixaComissao, error) {
	for i := range faixas {
		if faixas[i].Codigo == codigo {
			return &faixas[i], nil
		}
	}
	return nil, fmt.Errorf("%w: %q", ErrFaixaDesconhecida, codigo)
}

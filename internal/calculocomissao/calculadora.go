// internal/calculocomissao/calculadora.go
package calculocomissao

import (
	"strconv"

	"github.com/CacambaFacil/api-gestao/internal/faixacomissao"
	"github.com/shopspring/decimal"
)

// Calcular transforma o desempenho de um recebedor no detalhamento da comissão.
// É função pura: sem I/O, sem estado escondido — entradas iguais produzem
// saídas idênticas. O chamador é quem embute o resultado num pagamento.
//
// Todos os valores monetários são arredondados para 2 casas (meio para cima)
// no momento em que são calculados, de modo que
// ComissaoBase + BonusDesempenho + BonusIndicacao == TotalBruto e
// TotalBruto - DeducaoImposto == ValorLiquido valem exatamente.
func Calcular(
	valorVendas decimal.Decimal,
	notas NotasKPI,
	qtdIndicacoes int,
	faixa faixacomissao.FaixaComissao,
	params Parametros,
) (CalculoComissao, error) {
	if valorVendas.LessThan(decimal.Zero) {
		return CalculoComissao{}, &ErroValorNegativo{Campo: "valorVendas", Valor: valorVendas.String()}
	}
	if qtdIndicacoes < 0 {
		return CalculoComissao{}, &ErroValorNegativo{Campo: "qtdIndicacoes", Valor: strconv.Itoa(qtdIndicacoes)}
	}
	if err := notas.Validar(); err != nil {
		return CalculoComissao{}, err
	}

	notaKPI := notas.NotaAgregada(params.PesosKPI)

	comissaoBase := valorVendas.Mul(faixa.TaxaBase).Div(cem).Round(2)

	// Bônus escala com a generosidade da faixa e com o desempenho real:
	// nota 0 zera o bônus em qualquer faixa; nota 100 paga até
	// TaxaBonus × MultiplicadorKPI por cento da base.
	bonusDesempenho := comissaoBase.
		Mul(faixa.TaxaBonus).Div(cem).
		Mul(notaKPI.Div(cem)).
		Mul(faixa.MultiplicadorKPI).
		Round(2)

	// Indicações pagam valor fixo, sem depender da faixa.
	bonusIndicacao := params.ValorPorIndicacao.
		Mul(decimal.NewFromInt(int64(qtdIndicacoes))).
		Round(2)

	totalBruto := comissaoBase.Add(bonusDesempenho).Add(bonusIndicacao)
	deducaoImposto := totalBruto.Mul(params.AliquotaImposto).Div(cem).Round(2)
	valorLiquido := totalBruto.Sub(deducaoImposto)

	return CalculoComissao{
		FaixaCodigo:           faixa.Codigo,
		ValorVendas:           valorVendas.Round(2),
		QtdIndicacoes:         qtdIndicacoes,
		PrazoEntrega:          notas.PrazoEntrega,
		SatisfacaoCliente:     notas.SatisfacaoCliente,
		Seguranca:             notas.Seguranca,
		EficienciaCombustivel: notas.EficienciaCombustivel,
		Assiduidade:           notas.Assiduidade,
		NotaKPI:               notaKPI,
		ComissaoBase:          comissaoBase,
		BonusDesempenho:       bonusDesempenho,
		BonusIndicacao:        bonusIndicacao,
		TotalBruto:            totalBruto,
		DeducaoImposto:        deducaoImposto,
		ValorLiquido:          valorLiquido,
	}, nil
}

// CalcularComTabela resolve a faixa pela tabela informada e calcula.
// Devolve também os avisos de configuração do resolvedor de faixas.
func CalcularComTabela(
	valorVendas decimal.Decimal,
	notas NotasKPI,
	qtdIndicacoes int,
	faixas []faixacomissao.FaixaComissao,
	params Parametros,
) (CalculoComissao, []string, error) {
	if valorVendas.LessThan(decimal.Zero) {
		return CalculoComissao{}, nil, &ErroValorNegativo{Campo: "valorVendas", Valor: valorVendas.String()}
	}
	faixa, avisos, err := faixacomissao.ResolverFaixa(valorVendas, faixas)
	if err != nil {
		return CalculoComissao{}, nil, err
	}
	calc, err := Calcular(valorVendas, notas, qtdIndicacoes, *faixa, params)
	return calc, avisos, err
}

// CalcularPorCodigo valida um código de faixa explícito contra a tabela e calcula.
func CalcularPorCodigo(
	valorVendas decimal.Decimal,
	notas NotasKPI,
	qtdIndicacoes int,
	codigo string,
	faixas []faixacomissao.FaixaComissao,
	params Parametros,
) (CalculoComissao, error) {
	faixa, err := faixacomissao.BuscarPorCodigo(codigo, faixas)
	if err != nil {
		return CalculoComissao{}, err
	}
	return Calcular(valorVendas, notas, qtdIndicacoes, *faixa, params)
}

package calculocomissao

import (
	"testing"

	"github.com/CacambaFacil/api-gestao/internal/faixacomissao"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func decPtr(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

func faixaSilver() faixacomissao.FaixaComissao {
	return faixacomissao.FaixaComissao{
		Codigo:           "SILVER",
		MetaMinima:       dec("10000"),
		MetaMaxima:       decPtr("50000"),
		TaxaBase:         dec("8"),
		TaxaBonus:        dec("20"),
		MultiplicadorKPI: dec("1.2"),
	}
}

func notasExemplo() NotasKPI {
	return NotasKPI{
		PrazoEntrega:          dec("85"),
		SatisfacaoCliente:     dec("92"),
		Seguranca:             dec("88"),
		EficienciaCombustivel: dec("78"),
		Assiduidade:           dec("95"),
	}
}

// Caso de referência do mês de um motorista SILVER:
// R$ 45.000 em vendas, 3 indicações, notas médias 87,60.
func TestCalcularCasoReferencia(t *testing.T) {
	calc, err := Calcular(dec("45000"), notasExemplo(), 3, faixaSilver(), ParametrosPadrao())
	require.NoError(t, err)

	assert.Equal(t, "SILVER", calc.FaixaCodigo)
	assert.Equal(t, "87.60", calc.NotaKPI.StringFixed(2))
	assert.Equal(t, "3600.00", calc.ComissaoBase.StringFixed(2))
	assert.Equal(t, "756.86", calc.BonusDesempenho.StringFixed(2))
	assert.Equal(t, "150.00", calc.BonusIndicacao.StringFixed(2))
	assert.Equal(t, "4506.86", calc.TotalBruto.StringFixed(2))
	assert.Equal(t, "450.69", calc.DeducaoImposto.StringFixed(2))
	assert.Equal(t, "4056.17", calc.ValorLiquido.StringFixed(2))
}

// As somas têm que fechar exatamente, sem resíduo de arredondamento.
func TestCalcularSomasFechamExatamente(t *testing.T) {
	casos := []struct {
		vendas     string
		indicacoes int
	}{
		{"0", 0},
		{"10000", 1},
		{"33333.33", 2},
		{"45000", 3},
		{"49999.99", 10},
	}
	for _, c := range casos {
		calc, err := Calcular(dec(c.vendas), notasExemplo(), c.indicacoes, faixaSilver(), ParametrosPadrao())
		require.NoError(t, err, "vendas %s", c.vendas)

		soma := calc.ComissaoBase.Add(calc.BonusDesempenho).Add(calc.BonusIndicacao)
		assert.True(t, soma.Equal(calc.TotalBruto),
			"vendas %s: base+bonus+indicacao = %s, bruto = %s", c.vendas, soma, calc.TotalBruto)

		liquido := calc.TotalBruto.Sub(calc.DeducaoImposto)
		assert.True(t, liquido.Equal(calc.ValorLiquido),
			"vendas %s: bruto-imposto = %s, liquido = %s", c.vendas, liquido, calc.ValorLiquido)
	}
}

func TestCalcularNotaZeroZeraBonus(t *testing.T) {
	calc, err := Calcular(dec("45000"), NotasKPI{}, 0, faixaSilver(), ParametrosPadrao())
	require.NoError(t, err)
	assert.True(t, calc.BonusDesempenho.IsZero(), "bonus = %s", calc.BonusDesempenho)
	assert.Equal(t, "3600.00", calc.ComissaoBase.StringFixed(2))
}

func TestCalcularArredondaMeioParaCima(t *testing.T) {
	// 100.10 × 5% = 5.005 → 5.01
	faixa := faixacomissao.FaixaComissao{
		Codigo:           "BRONZE",
		MetaMinima:       dec("0"),
		TaxaBase:         dec("5"),
		TaxaBonus:        dec("10"),
		MultiplicadorKPI: dec("1"),
	}
	calc, err := Calcular(dec("100.10"), NotasKPI{}, 0, faixa, ParametrosPadrao())
	require.NoError(t, err)
	assert.Equal(t, "5.01", calc.ComissaoBase.StringFixed(2))
}

// Mesma faixa, nota maior nunca paga menos.
func TestCalcularBonusMonotonicoNaNota(t *testing.T) {
	params := ParametrosPadrao()
	anterior := decimal.Zero
	for nota := int64(0); nota <= 100; nota += 5 {
		n := decimal.NewFromInt(nota)
		notas := NotasKPI{
			PrazoEntrega:          n,
			SatisfacaoCliente:     n,
			Seguranca:             n,
			EficienciaCombustivel: n,
			Assiduidade:           n,
		}
		calc, err := Calcular(dec("45000"), notas, 0, faixaSilver(), params)
		require.NoError(t, err)
		assert.True(t, calc.BonusDesempenho.GreaterThanOrEqual(anterior),
			"nota %d: bonus %s caiu abaixo de %s", nota, calc.BonusDesempenho, anterior)
		anterior = calc.BonusDesempenho
	}
}

func TestCalcularDeterministico(t *testing.T) {
	a, err := Calcular(dec("45000"), notasExemplo(), 3, faixaSilver(), ParametrosPadrao())
	require.NoError(t, err)
	b, err := Calcular(dec("45000"), notasExemplo(), 3, faixaSilver(), ParametrosPadrao())
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestCalcularRejeitaEntradasInvalidas(t *testing.T) {
	params := ParametrosPadrao()

	_, err := Calcular(dec("-1"), notasExemplo(), 0, faixaSilver(), params)
	var negativo *ErroValorNegativo
	require.ErrorAs(t, err, &negativo)
	assert.Equal(t, "valorVendas", negativo.Campo)

	_, err = Calcular(dec("1000"), notasExemplo(), -2, faixaSilver(), params)
	require.ErrorAs(t, err, &negativo)
	assert.Equal(t, "qtdIndicacoes", negativo.Campo)

	notas := notasExemplo()
	notas.SatisfacaoCliente = dec("100.5")
	_, err = Calcular(dec("1000"), notas, 0, faixaSilver(), params)
	var foraDoIntervalo *ErroNotaKPIForaDoIntervalo
	require.ErrorAs(t, err, &foraDoIntervalo)
	assert.Equal(t, "satisfacaoCliente", foraDoIntervalo.Componente)

	notas = notasExemplo()
	notas.Seguranca = dec("-0.01")
	_, err = Calcular(dec("1000"), notas, 0, faixaSilver(), params)
	require.ErrorAs(t, err, &foraDoIntervalo)
	assert.Equal(t, "seguranca", foraDoIntervalo.Componente)
}

func TestCalcularComTabela(t *testing.T) {
	faixas := []faixacomissao.FaixaComissao{
		{Codigo: "BRONZE", MetaMinima: dec("0"), MetaMaxima: decPtr("9999.99"), TaxaBase: dec("5"), TaxaBonus: dec("10"), MultiplicadorKPI: dec("1")},
		faixaSilver(),
	}
	params := ParametrosPadrao()

	calc, avisos, err := CalcularComTabela(dec("45000"), notasExemplo(), 3, faixas, params)
	require.NoError(t, err)
	assert.Empty(t, avisos)
	assert.Equal(t, "SILVER", calc.FaixaCodigo)
	assert.Equal(t, "4056.17", calc.ValorLiquido.StringFixed(2))

	// acima do teto da SILVER e sem faixa seguinte
	_, _, err = CalcularComTabela(dec("60000"), notasExemplo(), 0, faixas, params)
	require.ErrorIs(t, err, faixacomissao.ErrNenhumaFaixa)
}

func TestCalcularPorCodigo(t *testing.T) {
	faixas := []faixacomissao.FaixaComissao{faixaSilver()}
	params := ParametrosPadrao()

	calc, err := CalcularPorCodigo(dec("45000"), notasExemplo(), 3, "SILVER", faixas, params)
	require.NoError(t, err)
	assert.Equal(t, "4056.17", calc.ValorLiquido.StringFixed(2))

	_, err = CalcularPorCodigo(dec("45000"), notasExemplo(), 3, "DIAMANTE", faixas, params)
	require.ErrorIs(t, err, faixacomissao.ErrFaixaDesconhecida)
}

package faixacomissao

import (
	"testing"

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

// tabelaPadrao é contígua e sem sobreposição: BRONZE até 9999.99,
// SILVER de 10000 a 50000, GOLD de 50000.01 sem teto.
func tabelaPadrao() []FaixaComissao {
	return []FaixaComissao{
		{Codigo: "BRONZE", MetaMinima: dec("0"), MetaMaxima: decPtr("9999.99"), TaxaBase: dec("5"), TaxaBonus: dec("10"), MultiplicadorKPI: dec("1")},
		{Codigo: "SILVER", MetaMinima: dec("10000"), MetaMaxima: decPtr("50000"), TaxaBase: dec("8"), TaxaBonus: dec("20"), MultiplicadorKPI: dec("1.2")},
		{Codigo: "GOLD", MetaMinima: dec("50000.01"), MetaMaxima: nil, TaxaBase: dec("10"), TaxaBonus: dec("25"), MultiplicadorKPI: dec("1.5")},
	}
}

func TestResolverFaixaCobreTodaATabela(t *testing.T) {
	faixas := tabelaPadrao()
	casos := []struct {
		valor  string
		codigo string
	}{
		{"0", "BRONZE"},
		{"9999.99", "BRONZE"},
		{"10000", "SILVER"},
		{"45000", "SILVER"},
		{"50000", "SILVER"},
		{"50000.01", "GOLD"},
		{"123456789.99", "GOLD"},
	}
	for _, c := range casos {
		faixa, avisos, err := ResolverFaixa(dec(c.valor), faixas)
		require.NoError(t, err, "valor %s", c.valor)
		assert.Equal(t, c.codigo, faixa.Codigo, "valor %s", c.valor)
		assert.Empty(t, avisos)
	}
}

func TestResolverFaixaSemCobertura(t *testing.T) {
	// tabela com buraco entre 1000 e 2000
	faixas := []FaixaComissao{
		{Codigo: "A", MetaMinima: dec("0"), MetaMaxima: decPtr("1000")},
		{Codigo: "B", MetaMinima: dec("2000"), MetaMaxima: nil},
	}
	_, _, err := ResolverFaixa(dec("1500"), faixas)
	require.ErrorIs(t, err, ErrNenhumaFaixa)
}

func TestResolverFaixaTabelaVazia(t *testing.T) {
	_, _, err := ResolverFaixa(dec("100"), nil)
	require.ErrorIs(t, err, ErrNenhumaFaixa)
}

func TestResolverFaixaSobreposicaoVenceMaiorMetaMinima(t *testing.T) {
	// tabela mal configurada: as duas faixas cobrem 20000
	faixas := []FaixaComissao{
		{Codigo: "LARGA", MetaMinima: dec("0"), MetaMaxima: nil},
		{Codigo: "ESTREITA", MetaMinima: dec("10000"), MetaMaxima: decPtr("30000")},
	}
	faixa, avisos, err := ResolverFaixa(dec("20000"), faixas)
	require.NoError(t, err)
	assert.Equal(t, "ESTREITA", faixa.Codigo)
	require.Len(t, avisos, 1)
	assert.Contains(t, avisos[0], "sobrepostas")
}

func TestBuscarPorCodigo(t *testing.T) {
	faixas := tabelaPadrao()

	faixa, err := BuscarPorCodigo("SILVER", faixas)
	require.NoError(t, err)
	assert.Equal(t, "SILVER", faixa.Codigo)

	_, err = BuscarPorCodigo("PLATINUM", faixas)
	require.ErrorIs(t, err, ErrFaixaDesconhecida)
}

package calculocomissao

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNotaAgregadaMediaSimples(t *testing.T) {
	notas := NotasKPI{
		PrazoEntrega:          dec("85"),
		SatisfacaoCliente:     dec("92"),
		Seguranca:             dec("88"),
		EficienciaCombustivel: dec("78"),
		Assiduidade:           dec("95"),
	}
	nota := notas.NotaAgregada(PesosIguais())
	assert.Equal(t, "87.60", nota.StringFixed(2))
}

func TestNotaAgregadaPonderada(t *testing.T) {
	notas := NotasKPI{
		PrazoEntrega:          dec("100"),
		SatisfacaoCliente:     dec("50"),
		Seguranca:             dec("0"),
		EficienciaCombustivel: dec("0"),
		Assiduidade:           dec("0"),
	}
	// só prazo conta
	pesos := PesosKPI{PrazoEntrega: dec("1")}
	assert.Equal(t, "100.00", notas.NotaAgregada(pesos).StringFixed(2))

	// prazo pesa o dobro da satisfação: (200 + 50) / 3
	pesos = PesosKPI{PrazoEntrega: dec("2"), SatisfacaoCliente: dec("1")}
	assert.Equal(t, "83.33", notas.NotaAgregada(pesos).StringFixed(2))
}

func TestNotaAgregadaPesosZerados(t *testing.T) {
	notas := NotasKPI{PrazoEntrega: dec("90")}
	assert.True(t, notas.NotaAgregada(PesosKPI{}).IsZero())
}

func TestValidarNotas(t *testing.T) {
	valida := NotasKPI{
		PrazoEntrega:          dec("0"),
		SatisfacaoCliente:     dec("100"),
		Seguranca:             dec("55.5"),
		EficienciaCombustivel: dec("1"),
		Assiduidade:           dec("99.99"),
	}
	require.NoError(t, valida.Validar())

	casos := []struct {
		nome  string
		notas NotasKPI
	}{
		{"prazoEntrega", NotasKPI{PrazoEntrega: dec("-1")}},
		{"satisfacaoCliente", NotasKPI{SatisfacaoCliente: dec("100.01")}},
		{"eficienciaCombustivel", NotasKPI{EficienciaCombustivel: dec("1000")}},
	}
	for _, c := range casos {
		err := c.notas.Validar()
		var foraDoIntervalo *ErroNotaKPIForaDoIntervalo
		require.ErrorAs(t, err, &foraDoIntervalo, c.nome)
		assert.Equal(t, c.nome, foraDoIntervalo.Componente)
	}
}

func TestCarregarParametrosDoAmbiente(t *testing.T) {
	t.Setenv("COMISSAO_VALOR_INDICACAO", "75.50")
	t.Setenv("COMISSAO_ALIQUOTA_IMPOSTO", "12")
	t.Setenv("COMISSAO_PESO_SEGURANCA", "2")

	p := CarregarParametros()
	assert.Equal(t, "75.50", p.ValorPorIndicacao.StringFixed(2))
	assert.Equal(t, "12", p.AliquotaImposto.String())
	assert.True(t, p.PesosKPI.Seguranca.Equal(decimal.NewFromInt(2)))
	// não configurado mantém o padrão
	assert.True(t, p.PesosKPI.PrazoEntrega.Equal(decimal.NewFromInt(1)))
}

func TestCarregarParametrosValorInvalidoMantemPadrao(t *testing.T) {
	t.Setenv("COMISSAO_ALIQUOTA_IMPOSTO", "dez")
	p := CarregarParametros()
	assert.True(t, p.AliquotaImposto.Equal(decimal.NewFromInt(10)))
}

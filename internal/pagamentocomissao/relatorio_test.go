package pagamentocomissao

import (
	"testing"

	"github.com/CacambaFacil/api-gestao/internal/calculocomissao"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pagamentoDe(recebedorID uint, status, liquido, notaKPI string) PagamentoComissao {
	return PagamentoComissao{
		RecebedorID: recebedorID,
		Status:      status,
		Calculo: calculocomissao.CalculoComissao{
			ValorLiquido: dec(liquido),
			NotaKPI:      dec(notaKPI),
		},
	}
}

func TestTotaisPorStatus(t *testing.T) {
	pagamentos := []PagamentoComissao{
		pagamentoDe(1, StatusPago, "100.00", "80"),
		pagamentoDe(1, StatusPendente, "50.50", "90"),
		pagamentoDe(2, StatusContestado, "10.00", "70"),
		pagamentoDe(2, StatusPago, "200.25", "85"),
	}

	assert.Equal(t, "300.25", TotalPago(pagamentos).StringFixed(2))
	assert.Equal(t, "50.50", TotalPendente(pagamentos).StringFixed(2))
}

func TestTotaisComListaVazia(t *testing.T) {
	assert.True(t, TotalPago(nil).IsZero())
	assert.True(t, TotalPendente(nil).IsZero())
	assert.Empty(t, TotalPorRecebedor(nil))
	assert.True(t, MediaKPI(nil).IsZero())
}

func TestTotalPorRecebedor(t *testing.T) {
	pagamentos := []PagamentoComissao{
		pagamentoDe(1, StatusPago, "100.00", "80"),
		pagamentoDe(1, StatusPendente, "50.50", "90"),
		pagamentoDe(2, StatusContestado, "10.00", "70"),
	}

	totais := TotalPorRecebedor(pagamentos)
	require.Len(t, totais, 2)
	assert.Equal(t, "150.50", totais[1].StringFixed(2))
	assert.Equal(t, "10.00", totais[2].StringFixed(2))
}

func TestMediaKPI(t *testing.T) {
	pagamentos := []PagamentoComissao{
		pagamentoDe(1, StatusPago, "0", "80"),
		pagamentoDe(2, StatusPendente, "0", "90"),
		pagamentoDe(3, StatusAprovado, "0", "70.5"),
	}
	// (80 + 90 + 70.5) / 3 = 80.166... → 80.17
	assert.Equal(t, "80.17", MediaKPI(pagamentos).StringFixed(2))
}

// As agregações não mutam a lista recebida.
func TestAgregacoesNaoMutam(t *testing.T) {
	pagamentos := []PagamentoComissao{
		pagamentoDe(1, StatusPago, "100.00", "80"),
	}
	antes := pagamentos[0]

	_ = TotalPago(pagamentos)
	_ = TotalPorRecebedor(pagamentos)
	_ = MediaKPI(pagamentos)

	assert.Equal(t, antes, pagamentos[0])
	assert.True(t, decimal.NewFromInt(100).Equal(pagamentos[0].Calculo.ValorLiquido))
}

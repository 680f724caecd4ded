package pagamentocomissao

import (
	"testing"
	"time"

	"github.com/CacambaFacil/api-gestao/internal/calculocomissao"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func pagamentoEm(status string) PagamentoComissao {
	return PagamentoComissao{
		ID:            1,
		RecebedorID:   10,
		TipoRecebedor: TipoMotorista,
		Periodo:       "2026-08",
		Status:        status,
		Calculo: calculocomissao.CalculoComissao{
			FaixaCodigo:  "SILVER",
			NotaKPI:      dec("87.60"),
			ValorLiquido: dec("4056.17"),
		},
	}
}

var agora = time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)

func TestTransicionarFluxoFeliz(t *testing.T) {
	p := pagamentoEm(StatusPendente)

	p, err := Transicionar(p, EventoAprovar, DadosTransicao{}, StatusPendente, agora)
	require.NoError(t, err)
	assert.Equal(t, StatusAprovado, p.Status)
	assert.Nil(t, p.DataPagamento)

	p, err = Transicionar(p, EventoPagar, DadosTransicao{}, StatusAprovado, agora)
	require.NoError(t, err)
	assert.Equal(t, StatusPago, p.Status)
	require.NotNil(t, p.DataPagamento)
	assert.Equal(t, agora, *p.DataPagamento)
}

func TestTransicionarPagarDiretoDePendente(t *testing.T) {
	p := pagamentoEm(StatusPendente)
	_, err := Transicionar(p, EventoPagar, DadosTransicao{}, StatusPendente, agora)

	var invalida *ErroTransicaoInvalida
	require.ErrorAs(t, err, &invalida)
	assert.Equal(t, EventoPagar, invalida.Evento)
	assert.Equal(t, StatusPendente, invalida.StatusAtual)
}

func TestTransicionarPagoEhTerminal(t *testing.T) {
	p := pagamentoEm(StatusPago)
	for _, evento := range []string{EventoAprovar, EventoPagar, EventoContestar, EventoResolver} {
		_, err := Transicionar(p, evento, DadosTransicao{Motivo: "x", Destino: StatusPendente}, StatusPago, agora)
		require.ErrorIs(t, err, ErrStatusTerminal, "evento %s", evento)
	}
}

func TestTransicionarPreCondicaoDivergente(t *testing.T) {
	// operador viu Pendente, mas outro já aprovou
	p := pagamentoEm(StatusAprovado)
	_, err := Transicionar(p, EventoAprovar, DadosTransicao{}, StatusPendente, agora)
	require.ErrorIs(t, err, ErrModificacaoConcorrente)

	// a pré-condição vence até o status terminal
	p = pagamentoEm(StatusPago)
	_, err = Transicionar(p, EventoAprovar, DadosTransicao{}, StatusPendente, agora)
	require.ErrorIs(t, err, ErrModificacaoConcorrente)
}

func TestTransicionarContestar(t *testing.T) {
	for _, origem := range []string{StatusPendente, StatusAprovado} {
		p := pagamentoEm(origem)
		p, err := Transicionar(p, EventoContestar, DadosTransicao{Motivo: "  valor de vendas errado  "}, origem, agora)
		require.NoError(t, err, "origem %s", origem)
		assert.Equal(t, StatusContestado, p.Status)
		assert.Equal(t, "valor de vendas errado", p.MotivoContestacao)
	}

	p := pagamentoEm(StatusPendente)
	_, err := Transicionar(p, EventoContestar, DadosTransicao{Motivo: "   "}, StatusPendente, agora)
	require.ErrorIs(t, err, ErrMotivoObrigatorio)

	p = pagamentoEm(StatusContestado)
	_, err = Transicionar(p, EventoContestar, DadosTransicao{Motivo: "de novo"}, StatusContestado, agora)
	var invalida *ErroTransicaoInvalida
	require.ErrorAs(t, err, &invalida)
}

func TestTransicionarResolver(t *testing.T) {
	p := pagamentoEm(StatusContestado)
	p.MotivoContestacao = "valor de vendas errado"

	resolvido, err := Transicionar(p, EventoResolver, DadosTransicao{Destino: StatusAprovado}, StatusContestado, agora)
	require.NoError(t, err)
	assert.Equal(t, StatusAprovado, resolvido.Status)
	assert.Empty(t, resolvido.MotivoContestacao)
	assert.Empty(t, resolvido.NotaResolucao)

	resolvido, err = Transicionar(p, EventoResolver, DadosTransicao{Destino: StatusPendente}, StatusContestado, agora)
	require.NoError(t, err)
	assert.Equal(t, StatusPendente, resolvido.Status)

	_, err = Transicionar(p, EventoResolver, DadosTransicao{Destino: StatusPago}, StatusContestado, agora)
	require.ErrorIs(t, err, ErrDestinoResolucaoInvalido)

	_, err = Transicionar(p, EventoResolver, DadosTransicao{Destino: ""}, StatusContestado, agora)
	require.ErrorIs(t, err, ErrDestinoResolucaoInvalido)
}

// A nota de resolução é opcional, fica gravada no pagamento e cai se o
// pagamento for contestado de novo.
func TestTransicionarResolverComNota(t *testing.T) {
	p := pagamentoEm(StatusContestado)
	p.MotivoContestacao = "valor de vendas errado"

	resolvido, err := Transicionar(p, EventoResolver, DadosTransicao{
		Destino: StatusAprovado,
		Motivo:  "  valor conferido com o financeiro  ",
	}, StatusContestado, agora)
	require.NoError(t, err)
	assert.Equal(t, StatusAprovado, resolvido.Status)
	assert.Empty(t, resolvido.MotivoContestacao)
	assert.Equal(t, "valor conferido com o financeiro", resolvido.NotaResolucao)

	contestado, err := Transicionar(resolvido, EventoContestar, DadosTransicao{Motivo: "ainda em desacordo"}, StatusAprovado, agora)
	require.NoError(t, err)
	assert.Equal(t, "ainda em desacordo", contestado.MotivoContestacao)
	assert.Empty(t, contestado.NotaResolucao)
}

// Contestação e resolução não mexem no cálculo: o detalhamento em disputa é
// exatamente o que o recebedor viu.
func TestTransicionarNaoAlteraCalculo(t *testing.T) {
	p := pagamentoEm(StatusAprovado)
	original := p.Calculo

	contestado, err := Transicionar(p, EventoContestar, DadosTransicao{Motivo: "nota KPI baixa demais"}, StatusAprovado, agora)
	require.NoError(t, err)
	assert.Equal(t, original, contestado.Calculo)

	resolvido, err := Transicionar(contestado, EventoResolver, DadosTransicao{Destino: StatusAprovado}, StatusContestado, agora)
	require.NoError(t, err)
	assert.Equal(t, original, resolvido.Calculo)

	// depois de resolvido para Aprovado, pagar segue o fluxo normal
	pago, err := Transicionar(resolvido, EventoPagar, DadosTransicao{}, StatusAprovado, agora)
	require.NoError(t, err)
	assert.Equal(t, StatusPago, pago.Status)
}

func TestTransicionarEventoDesconhecido(t *testing.T) {
	p := pagamentoEm(StatusPendente)
	_, err := Transicionar(p, "estornar", DadosTransicao{}, StatusPendente, agora)
	var invalida *ErroTransicaoInvalida
	require.ErrorAs(t, err, &invalida)
	assert.Equal(t, "estornar", invalida.Evento)
}

func TestTipoValido(t *testing.T) {
	assert.True(t, TipoValido(TipoMotorista))
	assert.True(t, TipoValido(TipoIndicador))
	assert.True(t, TipoValido(TipoParceiro))
	assert.False(t, TipoValido("gerente"))
	assert.False(t, TipoValido(""))
}

// internal/pagamentocomissao/transicao.go
package pagamentocomissao

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// ErrStatusTerminal indica tentativa de transição a partir de "Pago".
// Pagamento efetuado é imutável.
var ErrStatusTerminal = errors.New("pagamento em status terminal não admite transições")

// ErrModificacaoConcorrente indica que o status atual do pagamento não é mais
// o que o operador viu na tela. O chamador deve recarregar e tentar de novo.
var ErrModificacaoConcorrente = errors.New("o pagamento foi modificado por outra operação")

// ErrMotivoObrigatorio indica contestação sem motivo.
var ErrMotivoObrigatorio = errors.New("contestação exige motivo não vazio")

// ErrDestinoResolucaoInvalido indica resolução para um status que não é
// Pendente nem Aprovado.
var ErrDestinoResolucaoInvalido = errors.New("resolução só pode voltar para Pendente ou Aprovado")

// ErroTransicaoInvalida nomeia o evento tentado e o status corrente.
// Transição ilegal nunca vira no-op silencioso: dinheiro mal rastreado é pior
// que requisição recusada.
type ErroTransicaoInvalida struct {
	Evento      string
	StatusAtual string
}

func (e *ErroTransicaoInvalida) Error() string {
	return fmt.Sprintf("evento %q não é permitido no status %q", e.Evento, e.StatusAtual)
}

// DadosTransicao carrega o payload dos eventos que precisam de um.
type DadosTransicao struct {
	// Motivo é obrigatório em "contestar" e opcional em "resolver",
	// onde vira a nota de resolução gravada no pagamento.
	Motivo string
	// Destino é obrigatório em "resolver": Pendente ou Aprovado.
	Destino string
}

// Transicionar aplica um evento do ciclo de vida e devolve a cópia atualizada
// do pagamento. É pura: não grava nada; o repositório aplica o resultado com a
// mesma pré-condição de status.
//
// statusEsperado é a pré-condição de concorrência otimista: o status que o
// operador acreditava estar vigente. Divergência falha com
// ErrModificacaoConcorrente em vez de sobrescrever em silêncio.
func Transicionar(p PagamentoComissao, evento string, dados DadosTransicao, statusEsperado string, agora time.Time) (PagamentoComissao, error) {
	if p.Status != statusEsperado {
		return PagamentoComissao{}, fmt.Errorf("%w: esperado %q, atual %q",
			ErrModificacaoConcorrente, statusEsperado, p.Status)
	}
	if p.Status == StatusPago {
		return PagamentoComissao{}, fmt.Errorf("%w: evento %q", ErrStatusTerminal, evento)
	}

	switch evento {
	case EventoAprovar:
		if p.Status != StatusPendente {
			return PagamentoComissao{}, &ErroTransicaoInvalida{Evento: evento, StatusAtual: p.Status}
		}
		p.Status = StatusAprovado

	case EventoPagar:
		// Pagar direto de Pendente é ilegal: precisa passar por aprovação.
		if p.Status != StatusAprovado {
			return PagamentoComissao{}, &ErroTransicaoInvalida{Evento: evento, StatusAtual: p.Status}
		}
		p.Status = StatusPago
		p.DataPagamento = &agora

	case EventoContestar:
		if p.Status != StatusPendente && p.Status != StatusAprovado {
			return PagamentoComissao{}, &ErroTransicaoInvalida{Evento: evento, StatusAtual: p.Status}
		}
		if strings.TrimSpace(dados.Motivo) == "" {
			return PagamentoComissao{}, ErrMotivoObrigatorio
		}
		p.Status = StatusContestado
		p.MotivoContestacao = strings.TrimSpace(dados.Motivo)
		// contestação nova invalida a nota da resolução anterior
		p.NotaResolucao = ""

	case EventoResolver:
		if p.Status != StatusContestado {
			return PagamentoComissao{}, &ErroTransicaoInvalida{Evento: evento, StatusAtual: p.Status}
		}
		if dados.Destino != StatusPendente && dados.Destino != StatusAprovado {
			return PagamentoComissao{}, fmt.Errorf("%w: %q", ErrDestinoResolucaoInvalido, dados.Destino)
		}
		p.Status = dados.Destino
		p.MotivoContestacao = ""
		p.NotaResolucao = strings.TrimSpace(dados.Motivo)

	default:
		return PagamentoComissao{}, &ErroTransicaoInvalida{Evento: evento, StatusAtual: p.Status}
	}

	return p, nil
}

// internal/calculocomissao/parametros.go
package calculocomissao

import (
	"os"

	"github.com/shopspring/decimal"
)

var cem = decimal.NewFromInt(100)

// PesosKPI permite configurar o peso de cada componente na nota agregada.
// A regra de negócio original usa pesos iguais; mantemos configurável caso
// a ponderação real venha a ser outra.
type PesosKPI struct {
	PrazoEntrega          decimal.Decimal `json:"prazoEntrega"`
	SatisfacaoCliente     decimal.Decimal `json:"satisfacaoCliente"`
	Seguranca             decimal.Decimal `json:"seguranca"`
	EficienciaCombustivel decimal.Decimal `json:"eficienciaCombustivel"`
	Assiduidade           decimal.Decimal `json:"assiduidade"`
}

func (p PesosKPI) lista() []decimal.Decimal {
	return []decimal.Decimal{
		p.PrazoEntrega,
		p.SatisfacaoCliente,
		p.Seguranca,
		p.EficienciaCombustivel,
		p.Assiduidade,
	}
}

// PesosIguais é o padrão: média simples das cinco notas.
func PesosIguais() PesosKPI {
	um := decimal.NewFromInt(1)
	return PesosKPI{
		PrazoEntrega:          um,
		SatisfacaoCliente:     um,
		Seguranca:             um,
		EficienciaCombustivel: um,
		Assiduidade:           um,
	}
}

// Parametros reúne as constantes de configuração do cálculo de comissão.
type Parametros struct {
	// Valor fixo pago por indicação, independente da faixa.
	ValorPorIndicacao decimal.Decimal `json:"valorPorIndicacao"`
	// Alíquota única de imposto retido sobre o total bruto (0-100).
	AliquotaImposto decimal.Decimal `json:"aliquotaImposto"`
	PesosKPI        PesosKPI        `json:"pesosKpi"`
}

// ParametrosPadrao devolve os valores usados quando o ambiente não configura nada.
func ParametrosPadrao() Parametros {
	return Parametros{
		ValorPorIndicacao: decimal.NewFromInt(50),
		AliquotaImposto:   decimal.NewFromInt(10),
		PesosKPI:          PesosIguais(),
	}
}

// CarregarParametros lê a configuração do ambiente, com fallback nos padrões.
// Variáveis: COMISSAO_VALOR_INDICACAO, COMISSAO_ALIQUOTA_IMPOSTO e
// COMISSAO_PESO_{PRAZO,SATISFACAO,SEGURANCA,COMBUSTIVEL,ASSIDUIDADE}.
func CarregarParametros() Parametros {
	p := ParametrosPadrao()
	p.ValorPorIndicacao = decimalDoAmbiente("COMISSAO_VALOR_INDICACAO", p.ValorPorIndicacao)
	p.AliquotaImposto = decimalDoAmbiente("COMISSAO_ALIQUOTA_IMPOSTO", p.AliquotaImposto)
	p.PesosKPI.PrazoEntrega = decimalDoAmbiente("COMISSAO_PESO_PRAZO", p.PesosKPI.PrazoEntrega)
	p.PesosKPI.SatisfacaoCliente = decimalDoAmbiente("COMISSAO_PESO_SATISFACAO", p.PesosKPI.SatisfacaoCliente)
	p.PesosKPI.Seguranca = decimalDoAmbiente("COMISSAO_PESO_SEGURANCA", p.PesosKPI.Seguranca)
	p.PesosKPI.EficienciaCombustivel = decimalDoAmbiente("COMISSAO_PESO_COMBUSTIVEL", p.PesosKPI.EficienciaCombustivel)
	p.PesosKPI.Assiduidade = decimalDoAmbiente("COMISSAO_PESO_ASSIDUIDADE", p.PesosKPI.Assiduidade)
	return p
}

func decimalDoAmbiente(chave string, padrao decimal.Decimal) decimal.Decimal {
	s := os.Getenv(chave)
	if s == "" {
		return padrao
	}
	v, err := decimal.NewFromString(s)
	if err != nil {
		return padrao
	}
	return v
}

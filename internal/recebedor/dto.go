package recebedor

import "github.com/shopspring/decimal"

// LoginRequest é usado em POST /recebedores/login
type LoginRequest struct {
	Login    string `json:"login" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// CreateRecebedorRequest é usado em POST /recebedores.
// Senha vazia faz o cadastro gerar uma senha temporária, devolvida uma única
// vez na resposta; o recebedor é obrigado a redefini-la.
type CreateRecebedorRequest struct {
	Nome      string `json:"nome" validate:"required,max=100"`
	Sobrenome string `json:"sobrenome" validate:"max=100"`
	Tipo      string `json:"tipo" validate:"required,oneof=motorista indicador parceiro"`
	Documento string `json:"documento" validate:"required,max=20"`
	Email     string `json:"email" validate:"required,email"`
	Telefone  string `json:"telefone" validate:"max=20"`
	Foto      string `json:"foto"`
	Senha     string `json:"senha" validate:"omitempty,min=8"`
	IsAdmin   bool   `json:"isAdmin"`
}

// RecebedorCriadoDTO é a resposta de POST /recebedores.
// SenhaTemporaria só aparece quando o cadastro veio sem senha.
type RecebedorCriadoDTO struct {
	Recebedor       Recebedor `json:"recebedor"`
	SenhaTemporaria string    `json:"senhaTemporaria,omitempty"`
}

// AlterarSenhaRequest é usado em PUT /recebedores/{id}/senha
type AlterarSenhaRequest struct {
	SenhaAtual string `json:"senhaAtual" validate:"required"`
	SenhaNova  string `json:"senhaNova" validate:"required,min=8"`
}

// LoginResponse devolve o token e avisa se a senha em uso é temporária.
type LoginResponse struct {
	Token                 string `json:"token"`
	PrecisaRedefinirSenha bool   `json:"precisaRedefinirSenha"`
}

// UpdateRecebedorRequest é usado em PUT /recebedores/{id}
// Campos como ponteiro permitem omitir no JSON se não quiser alterar
type UpdateRecebedorRequest struct {
	Nome      *string `json:"nome,omitempty"`
	Sobrenome *string `json:"sobrenome,omitempty"`
	Telefone  *string `json:"telefone,omitempty"`
	Foto      *string `json:"foto,omitempty"`
}

// ResumoRecebedorDTO é a resposta de GET /recebedores/{id}/resumo
type ResumoRecebedorDTO struct {
	Recebedor     Recebedor       `json:"recebedor"`
	TotalLiquido  decimal.Decimal `json:"totalLiquido"`
	TotalPago     decimal.Decimal `json:"totalPago"`
	TotalPendente decimal.Decimal `json:"totalPendente"`
	MediaKPI      decimal.Decimal `json:"mediaKpi"`
	QtdPagamentos int             `json:"qtdPagamentos"`
}

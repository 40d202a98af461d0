package vendedor

import "time"

// VendedorAuth é a sessão autenticada: identidade do vendedor mais o vínculo
// de rota. Gravada no sign-in, limpa no sign-out, recarregável para restaurar
// a sessão sem nova autenticação.
type VendedorAuth struct {
	SessaoID   string    `json:"sessaoId"`
	VendedorID uint      `json:"vendedorId"`
	Nome       string    `json:"nome"`
	EmpresaID  uint      `json:"empresaId"`
	RotaID     uint      `json:"rotaId"`
	RotaNome   string    `json:"rotaNome"`
	CriadoEm   time.Time `json:"criadoEm"`
}

// LoginRequest é o payload do POST /login.
type LoginRequest struct {
	CodigoAcesso string `json:"codigoAcesso"`
	Senha        string `json:"senha"`
}

// LoginResponse devolve o token e a sessão criada.
type LoginResponse struct {
	Token    string       `json:"token"`
	Vendedor VendedorAuth `json:"vendedor"`
}

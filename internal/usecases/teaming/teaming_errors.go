package teaming

import "errors"

var (
	ErrTeamNotFound      = errors.New("time não encontrado")
	ErrNotTeamMember     = errors.New("usuário não é membro do time")
	ErrNotTeamOwner      = errors.New("apenas o dono do time pode realizar esta ação")
	ErrMissingTeamName   = errors.New("nome do time é obrigatório")
	ErrDatabaseOperation = errors.New("erro ao realizar operação no banco de dados")
)

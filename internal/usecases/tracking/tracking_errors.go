package tracking

import "errors"

var (
	ErrTeamNotFound      = errors.New("time não encontrado")
	ErrNotTeamMember     = errors.New("usuário não é membro do time")
	ErrInvalidLog        = errors.New("registro de atividades inválido")
	ErrMissingDate       = errors.New("data do registro é obrigatória")
	ErrDatabaseOperation = errors.New("erro ao realizar operação no banco de dados")
)

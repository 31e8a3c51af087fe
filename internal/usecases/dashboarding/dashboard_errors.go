package dashboarding

import "errors"

var (
	ErrDashboardNotFound = errors.New("dashboard não encontrado")
	ErrInvalidOwnership  = errors.New("dashboard deve pertencer a exatamente um usuário ou um time")
	ErrInvalidConfig     = errors.New("configuração de dashboard inválida")
	ErrNotAllowed        = errors.New("usuário não tem acesso a este dashboard")
	ErrDatabaseOperation = errors.New("erro ao realizar operação no banco de dados")
)

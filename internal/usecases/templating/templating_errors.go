package templating

import "errors"

var (
	ErrTemplateNotFound  = errors.New("template não encontrado")
	ErrNotOwner          = errors.New("apenas o dono pode alterar o template")
	ErrNotVisible        = errors.New("template não está visível para o usuário")
	ErrInvalidTemplate   = errors.New("template inválido")
	ErrInvalidOwnership  = errors.New("clone deve pertencer a exatamente um usuário ou um time")
	ErrDatabaseOperation = errors.New("erro ao realizar operação no banco de dados")
)

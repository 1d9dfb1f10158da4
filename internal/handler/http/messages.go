package http

// Response messages (the "mensagem" field).
const (
	msgWelcome = "Seja bem-vindo a nossa API de clínica!"

	msgLoginSuccess       = "Login bem-sucedido!"
	msgInvalidCredentials = "Usuário ou senha inválidos."
	msgInternalError      = "Erro interno no servidor."
	msgBadRequest         = "Requisição inválida."

	msgMissingToken = "Token de autenticação não fornecido."
	msgInvalidToken = "Token inválido."
	msgExpiredToken = "Token expirado."

	msgPatientList     = "Lista de pacientes recuperada."
	msgPatientNotFound = "Paciente não encontrado."
	msgCreateFailed    = "Erro ao criar paciente."
	msgListFailed      = "Erro do servidor."
	msgGetFailed       = "Erro ao buscar paciente."
	msgUpdateFailed    = "Erro ao atualizar paciente."
	msgDeleteFailed    = "Erro ao deletar paciente."
)

// operationMessages selects the mensagem written for each error class of a
// patient operation.
type operationMessages struct {
	invalid  string
	internal string
}

var (
	createMessages = operationMessages{invalid: msgCreateFailed, internal: msgCreateFailed}
	listMessages   = operationMessages{invalid: msgListFailed, internal: msgListFailed}
	getMessages    = operationMessages{invalid: msgGetFailed, internal: msgGetFailed}
	updateMessages = operationMessages{invalid: msgUpdateFailed, internal: msgUpdateFailed}
	deleteMessages = operationMessages{invalid: msgDeleteFailed, internal: msgDeleteFailed}
)

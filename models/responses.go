package models

// MessageResponse is the generic body used for errors and acknowledgements.
// Erro carries the underlying reason for validation failures only.
type MessageResponse struct {
	Mensagem string `json:"mensagem"`
	Erro     string `json:"erro,omitempty"`
}

// LoginResponse is returned by a successful login.
type LoginResponse struct {
	Mensagem string `json:"mensagem"`
	Token    string `json:"token"`
}

// PatientListResponse is returned by the patient listing endpoint.
type PatientListResponse struct {
	Mensagem  string    `json:"mensagem"`
	Pacientes []Patient `json:"pacientes"`
}

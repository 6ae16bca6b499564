package dto

// AskAIRequest pregunta libre sobre la analítica del restaurante.
type AskAIRequest struct {
	Query string `json:"query" validate:"required,max=4000"`
}

// AskAIResponse respuesta del asistente.
type AskAIResponse struct {
	Success  bool   `json:"success"`
	Response string `json:"response"`
}

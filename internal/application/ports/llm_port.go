package ports

import "context"

// LLMService define el puerto de salida para los servicios de inteligencia artificial.
// Cualquier adaptador (Anthropic, Gemini, mock) debe implementar esta interfaz.
// Siguiendo el principio de inversión de dependencias (DIP), la aplicación
// solo conoce este contrato, no la implementación concreta.
type LLMService interface {
	// Complete envía un prompt con instrucciones de sistema y devuelve el texto generado.
	// El contexto debe llevar un timeout para evitar bloqueos en llamadas externas.
	// Devuelve domain.ErrAIUnavailable si el proveedor no está configurado.
	Complete(ctx context.Context, system, prompt string) (string, error)
}

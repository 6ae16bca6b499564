package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ArjunTewari/plexora/internal/application/dto"
	"github.com/ArjunTewari/plexora/internal/application/usecase"
	"github.com/ArjunTewari/plexora/internal/domain"
)

func TestAI_SinProveedor(t *testing.T) {
	uc := usecase.NewAIUseCase(nil, 0)
	_, err := uc.Ask(context.Background(), dto.AskAIRequest{Query: "¿cómo vamos?"})
	assert.ErrorIs(t, err, domain.ErrAIUnavailable)
}

func TestAI_QueryObligatoria(t *testing.T) {
	uc := usecase.NewAIUseCase(&stubLLM{text: "ok"}, 0)
	_, err := uc.Ask(context.Background(), dto.AskAIRequest{})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestAI_Ask(t *testing.T) {
	uc := usecase.NewAIUseCase(&stubLLM{text: "Revenue is up 4% week over week."}, 0)
	out, err := uc.Ask(context.Background(), dto.AskAIRequest{Query: "How are sales?"})
	require.NoError(t, err)
	assert.True(t, out.Success)
	assert.Equal(t, "Revenue is up 4% week over week.", out.Response)
}

func TestAI_Timeout(t *testing.T) {
	uc := usecase.NewAIUseCase(&stubLLM{text: "tarde", wait: time.Second}, 20*time.Millisecond)
	_, err := uc.Ask(context.Background(), dto.AskAIRequest{Query: "hola"})
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

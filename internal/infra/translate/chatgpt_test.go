package translate

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/yanqian/faq-service/internal/infra/llm/chatgpt"
)

type stubCompleter struct {
	req  chatgpt.ChatCompletionRequest
	resp chatgpt.ChatCompletionResponse
	err  error
}

func (s *stubCompleter) CreateChatCompletion(_ context.Context, req chatgpt.ChatCompletionRequest) (chatgpt.ChatCompletionResponse, error) {
	s.req = req
	return s.resp, s.err
}

func TestChatGPTTranslator_Translate(t *testing.T) {
	stub := &stubCompleter{resp: chatgpt.ChatCompletionResponse{
		Choices: []chatgpt.Choice{{Message: chatgpt.Message{Role: "assistant", Content: " হ্যালো \n"}}},
	}}

	out, err := NewChatGPTTranslator(stub, "gpt-4o-mini", 0.1).Translate(context.Background(), "hello", "bn")
	require.NoError(t, err)
	require.Equal(t, "হ্যালো", out)
	require.Equal(t, "gpt-4o-mini", stub.req.Model)
	require.Contains(t, stub.req.Messages[0].Content, "Bengali")
	require.Equal(t, "hello", stub.req.Messages[1].Content)
}

func TestChatGPTTranslator_Failures(t *testing.T) {
	_, err := NewChatGPTTranslator(&stubCompleter{}, "m", 0).Translate(context.Background(), "hello", "hi")
	require.ErrorIs(t, err, chatgpt.ErrNoChoices)

	_, err = NewChatGPTTranslator(&stubCompleter{err: errors.New("boom")}, "m", 0).Translate(context.Background(), "hello", "hi")
	require.ErrorContains(t, err, "boom")
}

func TestLanguageName(t *testing.T) {
	require.Equal(t, "Hindi", languageName("hi"))
	require.Equal(t, "Bengali", languageName("bn"))
	require.Equal(t, "!!", languageName("!!"))
}

package translate

import (
	"context"
	"fmt"

	"golang.org/x/text/language"
	"golang.org/x/text/language/display"

	"github.com/yanqian/faq-service/internal/domain/faq"
	"github.com/yanqian/faq-service/internal/infra/llm/chatgpt"
)

const systemPrompt = "You are a translation engine. Translate the user's text into %s. " +
	"Reply with the translation only, without quotes or commentary."

// ChatCompleter is the subset of the ChatGPT client the translator needs.
type ChatCompleter interface {
	CreateChatCompletion(ctx context.Context, req chatgpt.ChatCompletionRequest) (chatgpt.ChatCompletionResponse, error)
}

// ChatGPTTranslator asks a chat model for translations.
type ChatGPTTranslator struct {
	client      ChatCompleter
	model       string
	temperature float32
}

// NewChatGPTTranslator constructs the adapter.
func NewChatGPTTranslator(client ChatCompleter, model string, temperature float32) *ChatGPTTranslator {
	return &ChatGPTTranslator{client: client, model: model, temperature: temperature}
}

// Translate implements faq.Translator.
func (t *ChatGPTTranslator) Translate(ctx context.Context, text string, target faq.Language) (string, error) {
	resp, err := t.client.CreateChatCompletion(ctx, chatgpt.ChatCompletionRequest{
		Model:       t.model,
		Temperature: t.temperature,
		Messages: []chatgpt.Message{
			{Role: "system", Content: fmt.Sprintf(systemPrompt, languageName(target))},
			{Role: "user", Content: text},
		},
	})
	if err != nil {
		return "", err
	}
	return resp.Content()
}

// languageName gives the model an English language name, e.g. "Bengali"
// for "bn", falling back to the code itself.
func languageName(lang faq.Language) string {
	tag, err := language.Parse(string(lang))
	if err != nil {
		return string(lang)
	}
	if name := display.English.Languages().Name(tag); name != "" {
		return name
	}
	return string(lang)
}

var _ faq.Translator = (*ChatGPTTranslator)(nil)

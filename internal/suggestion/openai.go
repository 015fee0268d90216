package suggestion

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	openai "github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
	"github.com/openai/openai-go/shared"
)

const functionName = "report_suggestions"

var errNoFunctionCall = errors.New("no function call returned")

const systemPrompt = "Sei un assistente per proprietari di immobili. Rispondi sempre chiamando la funzione " + functionName + "."

// openAIGateway talks to any OpenAI-compatible chat completions endpoint.
type openAIGateway struct {
	client  openai.Client
	model   string
	timeout time.Duration
	logger  *slog.Logger
}

func newOpenAIGateway(cfg Config, logger *slog.Logger) *openAIGateway {
	client := openai.NewClient(
		option.WithAPIKey(cfg.APIKey),
		option.WithBaseURL(cfg.BaseURL),
		option.WithMaxRetries(0),
	)
	return &openAIGateway{
		client:  client,
		model:   cfg.Model,
		timeout: cfg.Timeout,
		logger:  logger,
	}
}

func (g *openAIGateway) Suggest(ctx context.Context, problem string) Result {
	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	suggestions, err := g.request(ctx, problem)
	if err != nil {
		g.logger.Warn("maintenance suggestions unavailable", "error", err)
		return Unavailable()
	}
	return Result{Suggestions: suggestions, Available: true}
}

func (g *openAIGateway) request(ctx context.Context, problem string) ([]string, error) {
	schema := map[string]any{
		"type": "object",
		"properties": map[string]any{
			"suggestions": map[string]any{
				"type":        "array",
				"description": "Una lista di suggerimenti per la risoluzione dei problemi in italiano.",
				"items":       map[string]string{"type": "string"},
			},
		},
		"required": []string{"suggestions"},
	}

	fn := shared.FunctionDefinitionParam{
		Name:        functionName,
		Description: openai.String("Restituisce i passaggi di risoluzione dei problemi suggeriti."),
		Parameters:  schema,
	}

	req := openai.ChatCompletionNewParams{
		Model: shared.ChatModel(g.model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(systemPrompt),
			openai.UserMessage(userPrompt(problem)),
		},
		Tools: []openai.ChatCompletionToolParam{{
			Function: fn,
		}},
		ToolChoice: openai.ChatCompletionToolChoiceOptionUnionParam{
			OfChatCompletionNamedToolChoice: &openai.ChatCompletionNamedToolChoiceParam{
				Function: openai.ChatCompletionNamedToolChoiceFunctionParam{
					Name: functionName,
				},
			},
		},
	}

	resp, err := g.client.Chat.Completions.New(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("chat completion: %w", err)
	}
	if len(resp.Choices) == 0 || len(resp.Choices[0].Message.ToolCalls) == 0 {
		return nil, errNoFunctionCall
	}

	var out struct {
		Suggestions []string `json:"suggestions"`
	}
	if err := json.Unmarshal([]byte(resp.Choices[0].Message.ToolCalls[0].Function.Arguments), &out); err != nil {
		return nil, fmt.Errorf("unmarshal suggestions: %w", err)
	}

	suggestions := make([]string, 0, len(out.Suggestions))
	for _, s := range out.Suggestions {
		if s = strings.TrimSpace(s); s != "" {
			suggestions = append(suggestions, s)
		}
	}
	return suggestions, nil
}

func userPrompt(problem string) string {
	return fmt.Sprintf(
		"Un inquilino ha segnalato il seguente problema di manutenzione: %q. "+
			"Fornisci un elenco in italiano di 3-4 semplici passaggi per la risoluzione dei problemi "+
			"che un proprietario potrebbe eseguire prima di chiamare un professionista. "+
			"I passaggi dovrebbero essere sicuri e non richiedere strumenti specializzati. "+
			"Concentrati sulla diagnosi e su soluzioni semplici.",
		problem,
	)
}

package describe

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Azure/azure-sdk-for-go/sdk/ai/azopenai"
	"github.com/Azure/azure-sdk-for-go/sdk/azcore"
	"github.com/Azure/azure-sdk-for-go/sdk/azcore/to"
)

// ErrEmptyCompletion indicates the service answered without usable text.
var ErrEmptyCompletion = errors.New("no completion received from service")

const promptTemplate = `Generate a concise one-sentence description for this web tool.

Title: %s
Page snippet:
%s

Return only the description, no preamble.`

// AzureGenerator produces descriptions via an Azure OpenAI chat deployment.
type AzureGenerator struct {
	client     *azopenai.Client
	deployment string
	timeout    time.Duration
}

// NewAzureGenerator creates a generator bound to one deployment.
func NewAzureGenerator(endpoint, apiKey, deployment string, timeout time.Duration) (*AzureGenerator, error) {
	client, err := azopenai.NewClientWithKeyCredential(endpoint, azcore.NewKeyCredential(apiKey), nil)
	if err != nil {
		return nil, fmt.Errorf("create Azure OpenAI client: %w", err)
	}
	return &AzureGenerator{
		client:     client,
		deployment: deployment,
		timeout:    timeout,
	}, nil
}

// Enabled reports the live capability.
func (g *AzureGenerator) Enabled() bool { return true }

// Describe sends a single prompt and returns the trimmed completion text.
// Each call is attempted at most once and bounded by the configured timeout.
func (g *AzureGenerator) Describe(ctx context.Context, title, excerpt string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	resp, err := g.client.GetChatCompletions(ctx, azopenai.ChatCompletionsOptions{
		DeploymentName: to.Ptr(g.deployment),
		MaxTokens:      to.Ptr(int32(150)),
		Messages: []azopenai.ChatRequestMessageClassification{
			&azopenai.ChatRequestUserMessage{
				Content: azopenai.NewChatRequestUserMessageContent(fmt.Sprintf(promptTemplate, title, excerpt)),
			},
		},
	}, nil)
	if err != nil {
		return "", err
	}

	if len(resp.Choices) > 0 && resp.Choices[0].Message != nil && resp.Choices[0].Message.Content != nil {
		return *resp.Choices[0].Message.Content, nil
	}
	return "", ErrEmptyCompletion
}

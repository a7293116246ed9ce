package advisor

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/hashicorp/go-retryablehttp"

	"github.com/ericmurielchan/chanmkt/internal/entity"
	"github.com/ericmurielchan/chanmkt/pkg/config"
)

const systemInstruction = "You are an expert agency operations consultant. " +
	"Analyze project data and provide actionable recommendations to improve workflow, " +
	"reduce bottlenecks and increase client satisfaction. " +
	"Focus on kanban metrics, deadline adherence and resource allocation. " +
	"Keep advice concise, professional and encouraging."

// fallbackHTML is returned verbatim whenever the upstream call fails
// for any reason. Callers never see an error from this client.
const fallbackHTML = "<ul><li>The analysis service could not be reached right now. " +
	"Please check the API key and try again later.</li></ul>"

const defaultRetryWaitMax = 5 * time.Second

type Client struct {
	client  *http.Client
	baseURL string
	apiKey  string
}

func NewClient(cfg config.Config) *Client {
	retryClient := retryablehttp.NewClient()
	retryClient.RetryMax = cfg.Advisor.RetryAttempts
	retryClient.RetryWaitMin = 1 * time.Second
	retryClient.RetryWaitMax = defaultRetryWaitMax
	retryClient.HTTPClient.Timeout = cfg.Advisor.Timeout

	retryClient.Logger = nil

	return &Client{
		client:  retryClient.StandardClient(),
		baseURL: cfg.Advisor.BaseURL,
		apiKey:  cfg.Advisor.APIKey,
	}
}

type generateRequest struct {
	SystemInstruction string `json:"systemInstruction"`
	Prompt            string `json:"prompt"`
}

type generateResponse struct {
	Text string `json:"text"`
}

// Analyze asks the text-generation API for recommendations over the
// board snapshot. On any failure it degrades to the static fallback.
func (c *Client) Analyze(ctx context.Context, snapshot entity.BoardSnapshot) string {
	if c.apiKey == "" || c.baseURL == "" {
		return fallbackHTML
	}

	byStatus, err := json.Marshal(snapshot.ByStatus)
	if err != nil {
		return fallbackHTML
	}

	prompt := fmt.Sprintf(
		"Analyze the following agency data:\n"+
			"- Role requesting analysis: %s\n"+
			"- Total tasks: %d\n"+
			"- Task distribution: %s\n"+
			"- Overdue tasks: %d\n\n"+
			"Provide 3 specific recommendations to improve the agency's process. "+
			"Format as a clean HTML list (<ul><li>...</li></ul>) without markdown code blocks.",
		snapshot.Role, snapshot.TotalCards, byStatus, snapshot.OverdueCount,
	)

	body, err := json.Marshal(generateRequest{
		SystemInstruction: systemInstruction,
		Prompt:            prompt,
	})
	if err != nil {
		return fallbackHTML
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/v1/generate", bytes.NewReader(body))
	if err != nil {
		return fallbackHTML
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.client.Do(req)
	if err != nil {
		slog.WarnContext(ctx, "advisor call failed", "error", err)
		return fallbackHTML
	}

	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		slog.WarnContext(ctx, "advisor call failed", "status", resp.StatusCode)
		return fallbackHTML
	}

	var out generateResponse

	err = json.NewDecoder(resp.Body).Decode(&out)
	if err != nil || out.Text == "" {
		return fallbackHTML
	}

	return out.Text
}

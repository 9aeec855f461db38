package narrative

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"foodbridge/internal/domain/forecast"
	"foodbridge/internal/pkg/config"
	"foodbridge/internal/pkg/errs"

	"github.com/invopop/jsonschema"
	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
	"github.com/openai/openai-go/packages/param"
	"github.com/openai/openai-go/responses"
	"github.com/openai/openai-go/shared"
	"github.com/openai/openai-go/shared/constant"
)

const instructions = `You write short demand briefings for food producers.
Using only the ranked demand data below, explain in two or three sentences which items
distributors requested most and how a producer could plan supply for them.
Do not invent items or numbers.`

// narrativeReply is the structured output the model must return.
type narrativeReply struct {
	Narrative string `json:"narrative" jsonschema:"description=Two or three sentence demand briefing"`
}

type promptSample struct {
	ItemName      string `json:"item_name"`
	TotalQuantity string `json:"total_quantity"`
	RequestCount  int    `json:"request_count"`
}

type OpenAINarrator struct {
	client  *openai.Client
	model   string
	timeout time.Duration
	schema  map[string]any
}

var _ forecast.NarrativeGenerator = (*OpenAINarrator)(nil)

func NewOpenAINarrator(cfg config.OpenAIConfig) (*OpenAINarrator, error) {
	schema, err := replySchema()
	if err != nil {
		return nil, err
	}
	client := openai.NewClient(option.WithAPIKey(cfg.APIKey))
	return &OpenAINarrator{
		client:  &client,
		model:   cfg.Model,
		timeout: cfg.Timeout,
		schema:  schema,
	}, nil
}

func (n *OpenAINarrator) Generate(ctx context.Context, samples []forecast.DemandSample) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, n.timeout)
	defer cancel()

	prompt, err := buildPrompt(samples)
	if err != nil {
		return "", err
	}

	params := responses.ResponseNewParams{
		Model: shared.ResponsesModel(n.model),
		Input: responses.ResponseNewParamsInputUnion{
			OfString: param.NewOpt(prompt),
		},
		Text: responses.ResponseTextConfigParam{
			Format: responses.ResponseFormatTextConfigUnionParam{
				OfJSONSchema: &responses.ResponseFormatTextJSONSchemaConfigParam{
					Type:   constant.JSONSchema("json_schema"),
					Name:   "demand_narrative",
					Strict: param.NewOpt(true),
					Schema: n.schema,
				},
			},
		},
	}

	resp, err := n.client.Responses.New(ctx, params)
	if err != nil {
		return "", errs.Mark(errs.Wrap(err, "openai responses request"), errs.ErrUpstream)
	}

	var reply narrativeReply
	if err := json.Unmarshal([]byte(resp.OutputText()), &reply); err != nil {
		return "", errs.Mark(errs.Wrap(err, "parse narrative reply"), errs.ErrUpstream)
	}
	text := strings.TrimSpace(reply.Narrative)
	if text == "" {
		return "", errs.Mark(errs.New("empty narrative"), errs.ErrUpstream)
	}
	return text, nil
}

func buildPrompt(samples []forecast.DemandSample) (string, error) {
	rows := make([]promptSample, len(samples))
	for i, s := range samples {
		rows[i] = promptSample{
			ItemName:      s.ItemName,
			TotalQuantity: s.TotalRequestedQuantity.String(),
			RequestCount:  s.RequestCount,
		}
	}
	data, err := json.Marshal(rows)
	if err != nil {
		return "", errs.Wrap(err, "encode demand samples")
	}
	return fmt.Sprintf("%s\n\nDemand data:\n%s", instructions, data), nil
}

func replySchema() (map[string]any, error) {
	reflector := jsonschema.Reflector{
		AllowAdditionalProperties: false,
		DoNotReference:            true,
	}
	raw, err := json.Marshal(reflector.Reflect(&narrativeReply{}))
	if err != nil {
		return nil, errs.Wrap(err, "marshal narrative schema")
	}
	var schema map[string]any
	if err := json.Unmarshal(raw, &schema); err != nil {
		return nil, errs.Wrap(err, "unmarshal narrative schema")
	}
	return schema, nil
}

// New picks the generator named by NARRATIVE_PROVIDER.
func New(cfg config.Config) (forecast.NarrativeGenerator, error) {
	switch cfg.Forecast.NarrativeProvider {
	case config.NarrativeOpenAI:
		return NewOpenAINarrator(cfg.OpenAI)
	default:
		return forecast.NewTemplateNarrator(), nil
	}
}

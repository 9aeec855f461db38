//go:build unit

package narrative

import (
	"encoding/json"
	"strings"
	"testing"

	"foodbridge/internal/domain/forecast"
	"foodbridge/internal/pkg/config"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildPrompt(t *testing.T) {
	prompt, err := buildPrompt([]forecast.DemandSample{
		{ItemName: "Rice", TotalRequestedQuantity: decimal.RequireFromString("120.50"), RequestCount: 9},
		{ItemName: "Dal", TotalRequestedQuantity: decimal.NewFromInt(40), RequestCount: 3},
	})
	require.NoError(t, err)

	require.True(t, strings.HasPrefix(prompt, instructions))
	idx := strings.Index(prompt, "Demand data:\n")
	require.Positive(t, idx)

	var rows []promptSample
	require.NoError(t, json.Unmarshal([]byte(prompt[idx+len("Demand data:\n"):]), &rows))
	require.Len(t, rows, 2)
	assert.Equal(t, promptSample{ItemName: "Rice", TotalQuantity: "120.5", RequestCount: 9}, rows[0])
	assert.Equal(t, "Dal", rows[1].ItemName)
}

func TestReplySchema(t *testing.T) {
	schema, err := replySchema()
	require.NoError(t, err)

	assert.Equal(t, "object", schema["type"])
	assert.Equal(t, false, schema["additionalProperties"])
	props, ok := schema["properties"].(map[string]any)
	require.True(t, ok)
	assert.Contains(t, props, "narrative")
	assert.Equal(t, []any{"narrative"}, schema["required"])
}

func TestNew_SelectsProvider(t *testing.T) {
	cfg := config.NewTestConfig()
	cfg.Forecast.NarrativeProvider = config.NarrativeTemplate
	gen, err := New(cfg)
	require.NoError(t, err)
	_, isOpenAI := gen.(*OpenAINarrator)
	assert.False(t, isOpenAI)

	cfg.Forecast.NarrativeProvider = config.NarrativeOpenAI
	cfg.OpenAI.APIKey = "sk-test"
	gen, err = New(cfg)
	require.NoError(t, err)
	narrator, isOpenAI := gen.(*OpenAINarrator)
	require.True(t, isOpenAI)
	assert.Equal(t, cfg.OpenAI.Model, narrator.model)
}

package forecast

import (
	"cmp"
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/shopspring/decimal"
)

// fallbackSamples is served when history is too thin to be meaningful.
var fallbackSamples = []DemandSample{
	{ItemName: "Rice", TotalRequestedQuantity: decimal.NewFromInt(120)},
	{ItemName: "Wheat Flour", TotalRequestedQuantity: decimal.NewFromInt(95)},
	{ItemName: "Lentils", TotalRequestedQuantity: decimal.NewFromInt(80)},
	{ItemName: "Fresh Vegetables", TotalRequestedQuantity: decimal.NewFromInt(70)},
	{ItemName: "Milk", TotalRequestedQuantity: decimal.NewFromInt(60)},
}

func FallbackSamples(topN int) []DemandSample {
	return Rank(slices.Clone(fallbackSamples), topN)
}

// Rank orders samples by total quantity descending (ties by name) and keeps topN.
func Rank(samples []DemandSample, topN int) []DemandSample {
	slices.SortStableFunc(samples, func(a, b DemandSample) int {
		if c := b.TotalRequestedQuantity.Cmp(a.TotalRequestedQuantity); c != 0 {
			return c
		}
		return cmp.Compare(a.ItemName, b.ItemName)
	})
	if topN > 0 && len(samples) > topN {
		samples = samples[:topN]
	}
	return samples
}

// TemplateNarrator is the deterministic generator; it never fails.
type TemplateNarrator struct{}

func NewTemplateNarrator() *TemplateNarrator {
	return &TemplateNarrator{}
}

func (TemplateNarrator) Generate(_ context.Context, samples []DemandSample) (string, error) {
	return TemplateNarrative(samples), nil
}

func TemplateNarrative(samples []DemandSample) string {
	if len(samples) == 0 {
		return "No distributor demand has been recorded for this region yet."
	}

	top := samples[0]
	var b strings.Builder
	fmt.Fprintf(&b, "%s is the most requested item with %s units requested.",
		top.ItemName, top.TotalRequestedQuantity.StringFixed(1))

	if len(samples) > 1 {
		rest := make([]string, 0, len(samples)-1)
		for _, s := range samples[1:] {
			rest = append(rest, fmt.Sprintf("%s (%s)", s.ItemName, s.TotalRequestedQuantity.StringFixed(1)))
		}
		fmt.Fprintf(&b, " Other items in demand: %s.", strings.Join(rest, ", "))
	}
	b.WriteString(" Planning production around these items is likely to meet local need.")
	return b.String()
}

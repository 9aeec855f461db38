package bootstrap

import (
	"foodbridge/internal/infra/narrative"

	"go.uber.org/fx"
)

var NarrativeModule = fx.Module("narrative",
	fx.Provide(
		narrative.New,
	),
)

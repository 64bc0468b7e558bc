package fx

import (
	"github.com/orgball2608/insta-virality-exporter/internal/repositories/scraperun"
	"go.uber.org/fx"
)

var Module = fx.Options(
	scraperun.Module,
)

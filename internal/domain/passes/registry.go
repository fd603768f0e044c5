package passes

import (
	"fmt"

	"github.com/codeclear/unveil/internal/domain"
	"github.com/codeclear/unveil/internal/model"
)

// DefaultOrder is the pass schedule used when the configuration gives none.
var DefaultOrder = []string{NameLiteralArrays}

// Build assembles the pipeline cfg schedules, bound to root. A pass name may
// appear more than once in the order; repeated slots share one pass instance
// so state like the literal pass's seen-set carries across slots.
func Build(root *model.Node, cfg model.Config, trace func(pass string)) (*domain.Pipeline, error) {
	order := cfg.Passes.Order
	if len(order) == 0 {
		order = DefaultOrder
	}

	built := make(map[string]domain.Pass)
	var slots []domain.Pass
	for _, name := range order {
		switch name {
		case NameLiteralArrays:
			if !cfg.Passes.LiteralArrays.Enabled {
				continue
			}
			pass, ok := built[name]
			if !ok {
				pass = NewLiteralArrays(root, cfg.Passes.LiteralArrays)
				built[name] = pass
			}
			slots = append(slots, pass)
		default:
			return nil, fmt.Errorf("unknown pass %q in schedule", name)
		}
	}
	return domain.NewPipeline(slots, trace), nil
}

// Describe reports the known passes and whether cfg schedules them.
func Describe(cfg model.Config) []model.PassInfo {
	detail := "cleanup off"
	if cfg.Passes.LiteralArrays.Cleanup {
		detail = "cleanup on"
	}
	return []model.PassInfo{
		{
			Name:    NameLiteralArrays,
			Enabled: cfg.Passes.LiteralArrays.Enabled,
			Detail:  detail,
		},
	}
}

package openapi

import "slices"

// GroupConfig holds the defaults a RouteGroup applies to each route.
type GroupConfig struct {
	Tag        string
	Parameters []*Parameter
	Responses  Responses
	Security   []SecurityRequirement
}

// RouteGroup provides shared metadata defaults for a logical group of
// routes. Groups are a construction convenience only; their output is the
// same fragment NewRoute returns.
//
// Override/merge semantics per field:
//
//   - Tag: route tag replaces the group tag
//   - Parameters: append (group parameters first, then route parameters)
//   - Responses: merge (route response wins per status code)
//   - Security: route security replaces the group value
type RouteGroup struct {
	defaults GroupConfig
}

// NewGroup creates a RouteGroup with the given defaults.
func NewGroup(cfg GroupConfig) *RouteGroup {
	return &RouteGroup{defaults: cfg}
}

// Route applies the group defaults to cfg and builds the fragment with
// NewRoute.
func (g *RouteGroup) Route(cfg RouteConfig) (Paths, error) {
	d := g.defaults

	if cfg.Tag == "" {
		cfg.Tag = d.Tag
	}
	if len(d.Parameters) > 0 {
		cfg.Parameters = append(slices.Clip(d.Parameters), cfg.Parameters...)
	}
	if len(d.Responses) > 0 {
		cfg.Responses = MergeResponses(d.Responses, cfg.Responses)
	}
	if cfg.Security == nil {
		cfg.Security = d.Security
	}

	return NewRoute(cfg)
}

// Routes builds every route in order and returns the fragments, stopping
// at the first invalid route.
func (g *RouteGroup) Routes(cfgs ...RouteConfig) ([]Paths, error) {
	fragments := make([]Paths, 0, len(cfgs))
	for _, cfg := range cfgs {
		fragment, err := g.Route(cfg)
		if err != nil {
			return nil, err
		}
		fragments = append(fragments, fragment)
	}
	return fragments, nil
}

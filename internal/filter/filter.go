// Package filter implements the hard-filter chain: ordered blocking rules
// evaluated before any scoring. A block is a hard stop, not a penalty.
package filter

import (
	"fmt"

	"jobfit-engine/internal/config"
	"jobfit-engine/internal/domain"
)

// Handler is one blocking criterion. Check returns (blocked, reason);
// handlers must be pure over the job.
type Handler struct {
	Name  string
	Check func(domain.Job) (bool, string)
}

// Decision is the outcome of running the chain.
type Decision struct {
	Blocked bool
	Reason  string
	Handler string
}

// Chain evaluates handlers in order with early exit on the first block.
type Chain struct {
	handlers []Handler
}

// NewChain builds the per-profile chain: seniority, role, department and
// sales/marketing blocks, each honoring the profile's exception keywords.
func NewChain(p *config.Profile) *Chain {
	return &Chain{handlers: []Handler{
		blockRule("seniority_block", p.Filters.Seniority),
		blockRule("role_block", p.Filters.Roles),
		blockRule("department_block", p.Filters.Departments),
		blockRule("sales_marketing_block", p.Filters.SalesMarketing),
	}}
}

// blockRule blocks when any keyword token-matches the title or description,
// unless an exception token-matches the title (the C-level override case).
func blockRule(name string, rule config.BlockRule) Handler {
	return Handler{
		Name: name,
		Check: func(j domain.Job) (bool, string) {
			if len(rule.Any) == 0 {
				return false, ""
			}

			kw, hit := domain.ContainsAnyToken(j.Title, rule.Any)
			if !hit {
				kw, hit = domain.ContainsAnyToken(j.Description, rule.Any)
			}
			if !hit {
				return false, ""
			}

			if _, ok := domain.ContainsAnyToken(j.Title, rule.Exceptions); ok {
				return false, ""
			}
			return true, fmt.Sprintf("%s: matched %q", name, kw)
		},
	}
}

// Append adds a handler at the end of the chain.
func (c *Chain) Append(h Handler) { c.handlers = append(c.handlers, h) }

// Prepend adds a handler at the front of the chain.
func (c *Chain) Prepend(h Handler) {
	c.handlers = append([]Handler{h}, c.handlers...)
}

// Remove drops the named handler, if present.
func (c *Chain) Remove(name string) {
	out := c.handlers[:0]
	for _, h := range c.handlers {
		if h.Name != name {
			out = append(out, h)
		}
	}
	c.handlers = out
}

// Handlers returns the current handler names in evaluation order.
func (c *Chain) Handlers() []string {
	names := make([]string, len(c.handlers))
	for i, h := range c.handlers {
		names[i] = h.Name
	}
	return names
}

// Run evaluates the chain. The first blocking handler wins; a clean pass
// returns Decision{Blocked: false}.
func (c *Chain) Run(j domain.Job) Decision {
	for _, h := range c.handlers {
		if blocked, reason := h.Check(j); blocked {
			return Decision{Blocked: true, Reason: reason, Handler: h.Name}
		}
	}
	return Decision{}
}

// Package catalog holds the fixed set of chat models advertised to the web client.
//
// A Catalog is built once at startup and never changes afterwards, so it is
// safe for concurrent use without locking.
package catalog

import (
	"encoding/json"
	"fmt"

	"github.com/go-playground/validator/v10"

	"nexus/pkg/types"
)

// builtin is the model list served by GET /models. Order is significant: the
// client selects the first entry by default.
var builtin = []types.ModelDescriptor{
	{ID: "gpt-4o", Name: "GPT-4o", Provider: "OpenAI", Icon: "⚡"},
	{ID: "gpt-4o-mini", Name: "GPT-4o Mini", Provider: "OpenAI", Icon: "🚀"},
	{ID: "claude-sonnet-4.5", Name: "Claude Sonnet 4.5", Provider: "Anthropic", Icon: "🧠"},
	{ID: "gemini-1.5-pro", Name: "Gemini 1.5 Pro", Provider: "Google", Icon: "💎"},
	{ID: "meta-llama/llama-3.1-70b-instruct", Name: "Llama 3.1 70B", Provider: "Meta", Icon: "🦙"},
	{ID: "mistral-large-latest", Name: "Mistral Large", Provider: "Mistral", Icon: "🌪️"},
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Catalog is an immutable, ordered list of model descriptors.
type Catalog struct {
	models []types.ModelDescriptor
	body   []byte
}

// New validates models and returns a catalog holding its own copy of them.
// Every field must be non-empty and ids must be unique.
func New(models []types.ModelDescriptor) (*Catalog, error) {
	seen := make(map[string]int, len(models))
	for i, m := range models {
		if err := validate.Struct(m); err != nil {
			return nil, fmt.Errorf("model %d: %w", i, err)
		}
		if j, dup := seen[m.ID]; dup {
			return nil, fmt.Errorf("model %d: duplicate id %q (first at %d)", i, m.ID, j)
		}
		seen[m.ID] = i
	}
	cp := append([]types.ModelDescriptor(nil), models...)
	if cp == nil {
		cp = []types.ModelDescriptor{}
	}
	body, err := json.Marshal(cp)
	if err != nil {
		return nil, fmt.Errorf("encode models: %w", err)
	}
	return &Catalog{models: cp, body: body}, nil
}

// Default returns the built-in catalog.
func Default() *Catalog {
	c, err := New(builtin)
	if err != nil {
		panic("catalog: invalid builtin models: " + err.Error())
	}
	return c
}

// List returns a copy of the models in catalog order.
func (c *Catalog) List() []types.ModelDescriptor {
	return append([]types.ModelDescriptor(nil), c.models...)
}

// ListModels satisfies httpapi.Service.
func (c *Catalog) ListModels() []types.ModelDescriptor { return c.List() }

// JSON returns the catalog rendered as a JSON array. The same bytes are
// returned on every call; callers must not modify them.
func (c *Catalog) JSON() []byte { return c.body }

// Len reports the number of models.
func (c *Catalog) Len() int { return len(c.models) }

// Ready reports whether there is anything to serve.
func (c *Catalog) Ready() bool { return len(c.models) > 0 }

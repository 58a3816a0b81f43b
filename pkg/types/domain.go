package types

// ModelDescriptor describes one selectable chat model offered to the web client.
type ModelDescriptor struct {
	// Stable identifier passed to the client-side chat library.
	// example: gpt-4o
	ID string `json:"id" validate:"required" example:"gpt-4o"`
	// Human-friendly name.
	// example: GPT-4o
	Name string `json:"name" validate:"required" example:"GPT-4o"`
	// Vendor of the model.
	// example: OpenAI
	Provider string `json:"provider" validate:"required" example:"OpenAI"`
	// Single glyph shown next to the name.
	// example: ⚡
	Icon string `json:"icon" validate:"required" example:"⚡"`
}

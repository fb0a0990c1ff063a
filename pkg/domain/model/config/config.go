package config

// Category is one entry of the action-category catalog shown by the back
// office when creating process actions. Informational only: the engine never
// rejects an action type that is not listed here.
type Category struct {
	ID          string
	Name        string
	Description string
}

// ProcessConfig holds workspace-level process configuration
type ProcessConfig struct {
	Categories []Category
}

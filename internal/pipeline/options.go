package pipeline

import (
	"roster/internal/prompt"
	"roster/internal/storage"
)

// NoManagerLabel is the label of the synthetic option that stores a null manager.
const NoManagerLabel = "No Manager"

// OptionsFromRefs maps reference rows into an option list, keeping order and ids.
func OptionsFromRefs(refs []storage.Ref) []prompt.Option {
	options := make([]prompt.Option, 0, len(refs))
	for _, ref := range refs {
		options = append(options, prompt.NewOption(ref.Label, ref.ID))
	}
	return options
}

// ManagerOptions maps employees into manager choices and appends the "No Manager"
// option, whose identifier is null, after all real options.
func ManagerOptions(refs []storage.Ref) []prompt.Option {
	return append(OptionsFromRefs(refs), prompt.Option{Label: NoManagerLabel})
}

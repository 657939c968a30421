package prompt

import (
	"fmt"
	"strconv"
	"strings"
)

// parseChoice resolves an answer to a Select prompt. The answer may be the
// option's label (case-insensitive) or the 1-based number shown next to it.
// Labels win, so a numeric label such as "2024" stays selectable by name.
func parseChoice(answer string, options []Option) (Option, error) {
	answer = strings.TrimSpace(answer)
	if answer == "" {
		return Option{}, fmt.Errorf("please choose one of the listed options")
	}

	for _, opt := range options {
		if strings.EqualFold(opt.Label, answer) {
			return opt, nil
		}
	}

	if n, err := strconv.Atoi(answer); err == nil {
		if n < 1 || n > len(options) {
			return Option{}, fmt.Errorf("choice %d is out of range (1-%d)", n, len(options))
		}
		return options[n-1], nil
	}
	return Option{}, fmt.Errorf("%q is not one of the listed options", answer)
}

// parseConfirm resolves an answer to a yes/no prompt.
func parseConfirm(answer string, def bool) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(answer)) {
	case "":
		return def, nil
	case "y", "yes":
		return true, nil
	case "n", "no":
		return false, nil
	default:
		return false, fmt.Errorf("please answer yes or no")
	}
}

// confirmSuffix renders the "(y/N)" hint with the default capitalized.
func confirmSuffix(def bool) string {
	if def {
		return "(Y/n)"
	}
	return "(y/N)"
}

// formatOptions renders the numbered option list shown above a Select prompt.
func formatOptions(options []Option) string {
	var sb strings.Builder
	width := len(strconv.Itoa(len(options)))
	for i, opt := range options {
		fmt.Fprintf(&sb, "  %*d) %s\n", width, i+1, opt.Label)
	}
	return sb.String()
}

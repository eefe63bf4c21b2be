package cli

import (
	"errors"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/terminal"
)

// confirm asks the user a yes/no question, defaulting to no. An interrupt
// (Ctrl-C at the prompt) counts as declining.
func confirm(question string) (bool, error) {
	var answer bool
	prompt := &survey.Confirm{
		Message: question,
		Default: false,
	}
	if err := survey.AskOne(prompt, &answer); err != nil {
		if errors.Is(err, terminal.InterruptErr) {
			return false, nil
		}
		return false, err
	}
	return answer, nil
}

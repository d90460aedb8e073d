package prompt

// Scripted answers prompts from prepared queues. It is used in tests and
// anywhere a non-interactive run needs deterministic answers.
type Scripted struct {
	Texts    []string
	Confirms []bool

	// Asked records every prompt message in order.
	Asked []string
	// Rejected records the validation error for each text answer that was skipped.
	Rejected []error
}

// AskText returns the first queued answer that satisfies c. Answers that fail
// validation are dropped, the way a user would be asked again.
func (s *Scripted) AskText(message string, c TextConstraints) (string, error) {
	s.Asked = append(s.Asked, message)
	for len(s.Texts) > 0 {
		answer := s.Texts[0]
		s.Texts = s.Texts[1:]
		if err := c.Validate(answer); err != nil {
			s.Rejected = append(s.Rejected, err)
			continue
		}
		return answer, nil
	}
	return "", ErrNoAnswer
}

// AskConfirm pops the next queued confirmation.
func (s *Scripted) AskConfirm(message string) (bool, error) {
	s.Asked = append(s.Asked, message)
	if len(s.Confirms) == 0 {
		return false, ErrNoAnswer
	}
	answer := s.Confirms[0]
	s.Confirms = s.Confirms[1:]
	return answer, nil
}

var (
	_ Prompter = (*Scripted)(nil)
	_ Prompter = (*Survey)(nil)
	_ Prompter = (*Lines)(nil)
	_ Prompter = Yes{}
)

package console

import "io"

// Script replays canned answers, for tests and non-interactive runs.
// Once the answers run out every read returns io.EOF.
type Script struct {
	lines   []string
	pos     int
	Prompts []string
	hook    func(prompt string)
}

var _ Input = (*Script)(nil)

func NewScript(lines ...string) *Script {
	return &Script{lines: lines}
}

// OnRead registers a callback run before each answer is handed out.
func (s *Script) OnRead(fn func(prompt string)) {
	s.hook = fn
}

func (s *Script) ReadLine(prompt string) (string, error) {
	s.Prompts = append(s.Prompts, prompt)
	if s.hook != nil {
		s.hook(prompt)
	}
	if s.pos >= len(s.lines) {
		return "", io.EOF
	}
	line := s.lines[s.pos]
	s.pos++
	return line, nil
}

func (s *Script) ReadSecret(prompt string) (string, error) {
	return s.ReadLine(prompt)
}

// Remaining is the number of answers not consumed yet.
func (s *Script) Remaining() int {
	return len(s.lines) - s.pos
}

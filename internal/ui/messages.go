package ui

import "formkit/internal/domain"

// CommittedMsg is sent once for every successful combobox commit
type CommittedMsg struct {
	Field  string
	Value  any
	Option domain.Option
}

// ToggledMsg is sent when a checkbox changes state
type ToggledMsg struct {
	Field   string
	Value   any
	Checked bool
}

// helpPagerMsg contains the result of a help pager command
type helpPagerMsg struct {
	err error
}

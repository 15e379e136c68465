package ui

// fileChangedMsg is sent when a watched file was written
type fileChangedMsg struct {
	path string
}

// helpPagerMsg contains the result of a help pager command
type helpPagerMsg struct {
	err error
}

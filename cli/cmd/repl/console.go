package repl

// captureConsole buffers interpreter output so the model can print it
// through Bubble Tea instead of writing to the terminal directly.
type captureConsole struct {
	lines []string
}

// Print implements [lang.Console].
func (c *captureConsole) Print(line string) {
	c.lines = append(c.lines, line)
}

// ReadLine implements [lang.Console]. Blocking reads would deadlock the
// event loop, so INPUT fails at the prompt.
func (c *captureConsole) ReadLine(string) (string, error) {
	return "", ErrInteractiveInput
}

// drain returns the buffered lines and clears the buffer.
func (c *captureConsole) drain() []string {
	lines := c.lines
	c.lines = nil

	return lines
}

package lang

import (
	"bufio"
	"io"
	"os"
	"strings"
	"time"
)

// FileStore is the file surface scripts reach through IMPORT, EXPORT,
// READ_FILE, WRITE_FILE, APPEND_FILE, and EXISTS. The default
// implementation wraps the operating system; tests substitute an
// in-memory store.
type FileStore interface {
	ReadFile(path string) (string, error)
	WriteFile(path, data string) error
	AppendFile(path, data string) error
	Exists(path string) bool
}

// Console is the console surface behind PRINT, MANIFEST, the chatty
// operation confirmations, and INPUT.
type Console interface {
	Print(line string)
	ReadLine(prompt string) (string, error)
}

// Clock supplies SLEEP. Tests substitute a clock that only records.
type Clock interface {
	Sleep(d time.Duration)
}

// OSFiles is a FileStore over the process working directory.
type OSFiles struct{}

func (OSFiles) ReadFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}

	return string(data), nil
}

func (OSFiles) WriteFile(path, data string) error {
	return os.WriteFile(path, []byte(data), 0o644)
}

func (OSFiles) AppendFile(path, data string) error {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return err
	}

	if _, err := f.WriteString(data); err != nil {
		f.Close()
		return err
	}

	return f.Close()
}

func (OSFiles) Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// IOConsole is a Console over arbitrary reader/writer pairs. The REPL
// and tests both use it; NewStdConsole binds it to the process
// standard streams.
type IOConsole struct {
	out io.Writer
	in  *bufio.Reader
}

// NewIOConsole returns a console reading from in and writing to out.
func NewIOConsole(in io.Reader, out io.Writer) *IOConsole {
	return &IOConsole{out: out, in: bufio.NewReader(in)}
}

// NewStdConsole returns a console over stdin and stdout.
func NewStdConsole() *IOConsole {
	return NewIOConsole(os.Stdin, os.Stdout)
}

func (c *IOConsole) Print(line string) {
	io.WriteString(c.out, line+"\n")
}

// ReadLine writes the prompt without a trailing newline, then reads
// one line. The result keeps no line terminator.
func (c *IOConsole) ReadLine(prompt string) (string, error) {
	if _, err := io.WriteString(c.out, prompt); err != nil {
		return "", err
	}

	line, err := c.in.ReadString('\n')
	if err != nil && line == "" {
		return "", err
	}

	return strings.TrimRight(line, "\r\n"), nil
}

// SystemClock sleeps for real.
type SystemClock struct{}

func (SystemClock) Sleep(d time.Duration) { time.Sleep(d) }

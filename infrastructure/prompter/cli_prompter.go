package prompter

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/reglet-dev/wallet-bindings/domain/ports"
)

// CliPrompter implements ports.Prompter for CLI environments.
// Concurrent prompts are asked one at a time.
type CliPrompter struct {
	mu  sync.Mutex
	in  *bufio.Reader
	raw io.Reader
	out io.Writer
}

var _ ports.Prompter = (*CliPrompter)(nil)

// NewCliPrompter creates a new CliPrompter.
func NewCliPrompter(in io.Reader, out io.Writer) *CliPrompter {
	return &CliPrompter{in: bufio.NewReader(in), raw: in, out: out}
}

// IsInteractive checks if the input is a terminal.
func (p *CliPrompter) IsInteractive() bool {
	if f, ok := p.raw.(*os.File); ok {
		stat, err := f.Stat()
		if err != nil {
			return false
		}
		return (stat.Mode() & os.ModeCharDevice) != 0
	}
	return false
}

// PromptForMethod asks the user to approve one method call.
// Anything but yes or always is a refusal.
func (p *CliPrompter) PromptForMethod(req ports.MethodRequest) (granted bool, always bool, err error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	_, _ = fmt.Fprintf(p.out, "Method request: %s\n", req.Description)
	_, _ = fmt.Fprintf(p.out, "Key: %s\n", req.Key)
	_, _ = fmt.Fprintf(p.out, "Risk: %s\n", req.Risk)
	_, _ = fmt.Fprintf(p.out, "Allow? [y/n/always]: ")

	line, err := p.in.ReadString('\n')
	if err != nil && (err != io.EOF || line == "") {
		return false, false, err
	}

	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes":
		return true, false, nil
	case "a", "always":
		return true, true, nil
	default:
		return false, false, nil
	}
}

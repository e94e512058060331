package ui

import (
	"fmt"
	"os"
	"os/exec"
	"regexp"
	"strings"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
)

// Composing and editing happen in the user's own editor. The terminal
// is handed over to the external process and the text comes back
// through a temp file once it exits.

type execKind int

const (
	execReply execKind = iota
	execEdit
	execPost
	execMessage
)

// execDoneMsg carries the text written in the editor back into the
// update loop. An empty text means the user aborted.
type execDoneMsg struct {
	kind   execKind
	target string
	text   string
	err    error
}

type pagerDoneMsg struct {
	err error
}

const replyTemplate = `<!--INSTRUCTIONS
Replying to %s's %s:
%s

Enter your reply below this instruction block,
an empty message will abort the comment.
INSTRUCTIONS-->
`

const editTemplate = `<!--INSTRUCTIONS
Editing %s.
The text is shown below, update it and save the file.
INSTRUCTIONS-->

%s
`

const postTemplate = `<!--INSTRUCTIONS
Submitting a selfpost to %s.

Enter your submission below this instruction block:
- The first line will be interpreted as the title
- The following lines will be interpreted as the body
- An empty message will abort the submission
INSTRUCTIONS-->
`

const messageTemplate = `<!--INSTRUCTIONS
Compose a new private message

Enter your message below this instruction block:
- The first line should contain the recipient's name
- The second line should contain the message subject
- Subsequent lines will be interpreted as the message body
INSTRUCTIONS-->
`

var instructionBlock = regexp.MustCompile(`(?s)<!--INSTRUCTIONS.*?INSTRUCTIONS-->`)

// stripInstructions removes the instruction banner and surrounding
// whitespace from editor output.
func stripInstructions(text string) string {
	return strings.TrimSpace(instructionBlock.ReplaceAllString(text, ""))
}

// parseSubmission splits editor output into a title line and body.
func parseSubmission(text string) (title, body string) {
	title, body, _ = strings.Cut(text, "\n")
	return strings.TrimSpace(title), strings.TrimSpace(body)
}

// parseMessage splits editor output into recipient, subject, and body.
func parseMessage(text string) (to, subject, body string, err error) {
	lines := strings.SplitN(text, "\n", 3)
	if len(lines) < 3 {
		return "", "", "", fmt.Errorf("message needs a recipient, a subject, and a body")
	}
	to = strings.TrimSpace(lines[0])
	subject = strings.TrimSpace(lines[1])
	body = strings.TrimSpace(lines[2])
	if to == "" || subject == "" || body == "" {
		return "", "", "", fmt.Errorf("message needs a recipient, a subject, and a body")
	}
	return to, subject, body, nil
}

func editorArgv() []string {
	for _, env := range []string{"PERCH_EDITOR", "EDITOR"} {
		if v := strings.TrimSpace(os.Getenv(env)); v != "" {
			return strings.Fields(v)
		}
	}
	return []string{"nano"}
}

func pagerArgv() []string {
	for _, env := range []string{"PERCH_PAGER", "PAGER"} {
		if v := strings.TrimSpace(os.Getenv(env)); v != "" {
			return strings.Fields(v)
		}
	}
	return []string{"less", "-R"}
}

// editorCmd opens the user's editor on a temp file seeded with the
// given contents and reports the stripped result.
func editorCmd(kind execKind, target, contents string) tea.Cmd {
	path, err := writeTempFile(contents)
	if err != nil {
		return func() tea.Msg {
			return execDoneMsg{kind: kind, target: target, err: err}
		}
	}
	argv := editorArgv()
	c := exec.Command(argv[0], append(argv[1:], path)...)
	return tea.ExecProcess(c, func(execErr error) tea.Msg {
		defer os.Remove(path)
		if execErr != nil {
			return execDoneMsg{kind: kind, target: target, err: execErr}
		}
		raw, readErr := os.ReadFile(path)
		if readErr != nil {
			return execDoneMsg{kind: kind, target: target, err: readErr}
		}
		return execDoneMsg{kind: kind, target: target, text: stripInstructions(string(raw))}
	})
}

// pagerCmd pipes text through the user's pager.
func pagerCmd(text string) tea.Cmd {
	argv := pagerArgv()
	c := exec.Command(argv[0], argv[1:]...)
	c.Stdin = strings.NewReader(text)
	return tea.ExecProcess(c, func(err error) tea.Msg {
		return pagerDoneMsg{err: err}
	})
}

// yankCmd copies text to the system clipboard.
func yankCmd(label, text string) tea.Cmd {
	return func() tea.Msg {
		if err := clipboard.WriteAll(text); err != nil {
			return actionMsg{err: fmt.Errorf("copy %s: %w", label, err)}
		}
		return actionMsg{notice: successNotice(label + " copied to clipboard")}
	}
}

func writeTempFile(contents string) (string, error) {
	f, err := os.CreateTemp("", "perch-*.txt")
	if err != nil {
		return "", err
	}
	if _, err := f.WriteString(contents); err != nil {
		f.Close()
		os.Remove(f.Name())
		return "", err
	}
	if err := f.Close(); err != nil {
		os.Remove(f.Name())
		return "", err
	}
	return f.Name(), nil
}

package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

// noticeStyles styles the short status lines written to stderr
type noticeStyles struct {
	Symbol lipgloss.Style
	Path   lipgloss.Style
	Detail lipgloss.Style
}

func defaultNoticeStyles() noticeStyles {
	return noticeStyles{
		Symbol: lipgloss.NewStyle().Foreground(lipgloss.Color("42")).Bold(true),
		Path:   lipgloss.NewStyle().Bold(true),
		Detail: lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	}
}

// notifier writes user-facing notices, styled only when w is a terminal
type notifier struct {
	w        io.Writer
	useColor bool
	styles   noticeStyles
}

func newNotifier(w io.Writer) *notifier {
	return &notifier{
		w:        w,
		useColor: isTerminal(w),
		styles:   defaultNoticeStyles(),
	}
}

// Created reports that a missing file was written from a template.
func (n *notifier) Created(path, what string) {
	if !n.useColor {
		fmt.Fprintf(n.w, "+ created %s (%s)\n", path, what)
		return
	}
	fmt.Fprintf(n.w, "%s created %s %s\n",
		n.styles.Symbol.Render("+"),
		n.styles.Path.Render(path),
		n.styles.Detail.Render("("+what+")"))
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

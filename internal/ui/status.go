package ui

import (
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
)

const (
	// loaderDelay is how long a background fetch runs silently before
	// the loader message appears.
	loaderDelay = 500 * time.Millisecond

	// loaderInterval is the dot animation period once visible.
	loaderInterval = 400 * time.Millisecond

	// flashDuration is how long the cursor row drops its highlight
	// after an invalid movement.
	flashDuration = 150 * time.Millisecond
)

type noticeKind int

const (
	noticeNone noticeKind = iota
	noticeInfo
	noticeSuccess
	noticeError
)

// notice is a transient message shown on the status line in place of
// the help bar. It stays up until the next keypress or replacement.
type notice struct {
	kind noticeKind
	text string
}

func infoNotice(text string) notice    { return notice{kind: noticeInfo, text: text} }
func successNotice(text string) notice { return notice{kind: noticeSuccess, text: text} }

func errorNotice(err error) notice {
	return notice{kind: noticeError, text: err.Error()}
}

func (n notice) empty() bool { return n.kind == noticeNone }

func (n notice) style(styles *Styles) lipgloss.Style {
	switch n.kind {
	case noticeError:
		return styles.NoticeError
	case noticeSuccess:
		return styles.NoticeSuccess
	default:
		return styles.NoticeInfo
	}
}

// loader tracks a background fetch for the status line. The message
// stays hidden for a grace period so fast responses never flicker, then
// animates trailing dots. seq invalidates ticks from an earlier fetch.
type loader struct {
	message string
	active  bool
	visible bool
	dots    int
	seq     int
}

func (l *loader) start(message string) int {
	l.seq++
	l.message = message
	l.active = true
	l.visible = false
	l.dots = 0
	return l.seq
}

func (l *loader) stop() {
	l.active = false
	l.visible = false
}

// advance moves the animation one tick. It reports whether another tick
// should be scheduled.
func (l *loader) advance(seq int) bool {
	if !l.active || seq != l.seq {
		return false
	}
	if !l.visible {
		l.visible = true
	} else {
		l.dots = (l.dots + 1) % 4
	}
	return true
}

func (l *loader) text() string {
	return l.message + strings.Repeat(".", l.dots)
}

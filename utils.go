package main

import (
	"os/exec"
	"runtime"
	"strings"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
)

func (m *model) copyCommentToClipboard() tea.Cmd {
	text := m.comment.Value()
	if strings.TrimSpace(text) == "" {
		return m.setError("nothing to copy")
	}
	if err := clipboard.WriteAll(text); err != nil {
		return m.setError("clipboard unavailable")
	}
	return m.setStatus("comment copied")
}

func (m *model) pasteIntoComment() tea.Cmd {
	text, err := readClipboardText()
	if err != nil {
		return m.setError("clipboard unavailable")
	}
	text = sanitizePaste(text)
	if text == "" {
		return nil
	}
	m.comment.InsertString(text)
	m.commitComment()
	return nil
}

func readClipboardText() (string, error) {
	// macOS pasteboards often hand over RTF first; ask for plain text.
	if runtime.GOOS == "darwin" {
		if output, err := exec.Command("pbpaste", "-Prefer", "txt").Output(); err == nil {
			return string(output), nil
		}
	}
	return clipboard.ReadAll()
}

// sanitizePaste reduces clipboard payloads to plain text: RTF and HTML
// wrappers are stripped, line endings normalized, control runes dropped.
func sanitizePaste(text string) string {
	switch {
	case strings.HasPrefix(text, "{\\rtf") || strings.Contains(text, "\\rtf1"):
		text = stripRTF(text)
	case looksLikeHTML(text):
		text = stripHTML(text)
	}

	var out strings.Builder
	out.Grow(len(text))
	for _, r := range text {
		if r == '\n' || r == '\r' || r == '\t' || r >= 32 {
			out.WriteRune(r)
		}
	}
	s := strings.ReplaceAll(out.String(), "\r\n", "\n")
	return strings.ReplaceAll(s, "\r", "\n")
}

func looksLikeHTML(text string) bool {
	t := strings.TrimSpace(text)
	return strings.HasPrefix(t, "<") &&
		(strings.Contains(t, "<html") || strings.Contains(t, "<body") || strings.Contains(t, "<div"))
}

func stripHTML(html string) string {
	var out strings.Builder
	out.Grow(len(html))
	inTag := false
	for _, r := range html {
		switch {
		case r == '<':
			inTag = true
		case r == '>':
			inTag = false
		case !inTag:
			out.WriteRune(r)
		}
	}
	text := out.String()
	for entity, repl := range map[string]string{
		"&lt;": "<", "&gt;": ">", "&amp;": "&",
		"&quot;": "\"", "&#39;": "'", "&nbsp;": " ",
	} {
		text = strings.ReplaceAll(text, entity, repl)
	}
	return text
}

// stripRTF drops group braces and control words, keeping \par and \line as
// newlines. Good enough for pasted prose; not a full RTF parser.
func stripRTF(text string) string {
	var out strings.Builder
	out.Grow(len(text))
	runes := []rune(text)
	for i := 0; i < len(runes); i++ {
		r := runes[i]
		switch r {
		case '{', '}':
			continue
		case '\\':
			if i+1 >= len(runes) {
				continue
			}
			next := runes[i+1]
			if next == '\\' || next == '{' || next == '}' {
				out.WriteRune(next)
				i++
				continue
			}
			if !isRTFWordRune(next) {
				i++
				continue
			}
			start := i + 1
			for i+1 < len(runes) && isRTFWordRune(runes[i+1]) {
				i++
			}
			word := string(runes[start : i+1])
			for i+1 < len(runes) && (runes[i+1] == '-' || (runes[i+1] >= '0' && runes[i+1] <= '9')) {
				i++
			}
			if i+1 < len(runes) && runes[i+1] == ' ' {
				i++
			}
			switch word {
			case "par", "line":
				out.WriteRune('\n')
			case "tab":
				out.WriteRune('\t')
			}
		default:
			out.WriteRune(r)
		}
	}
	return out.String()
}

func isRTFWordRune(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}

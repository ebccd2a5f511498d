package logging

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"github.com/MAPO-UPTC/mapo-cli/tui/theme"
	"github.com/sirupsen/logrus"
)

// TextFormatter renders log entries as single lines for the terminal. The
// level tag is colored by severity and extra fields are emitted in sorted
// order so consecutive entries line up when scanning a session.
type TextFormatter struct {
	Config FormatConfig
}

// Format renders a single log entry.
func (f *TextFormatter) Format(entry *logrus.Entry) ([]byte, error) {
	var b strings.Builder

	if !f.Config.DisableTimestamp {
		b.WriteString(entry.Time.Format("2006-01-02 15:04:05"))
		b.WriteString(" ")
	}

	b.WriteString(levelTag(entry.Level))

	if component, ok := entry.Data["component"]; ok && !f.Config.DisableComponent {
		componentStr := fmt.Sprintf("%v", component)
		b.WriteString(fmt.Sprintf(" [%s]", theme.DefaultTheme.Accent.Render(componentStr)))
	}

	if entry.HasCaller() {
		fileName := filepath.Base(entry.Caller.File)
		funcName := filepath.Base(entry.Caller.Function)
		b.WriteString(fmt.Sprintf(" [%s:%d %s]", fileName, entry.Caller.Line, funcName))
	}

	b.WriteString(" ")
	b.WriteString(entry.Message)

	keys := make([]string, 0, len(entry.Data))
	for key := range entry.Data {
		if key != "component" {
			keys = append(keys, key)
		}
	}
	sort.Strings(keys)
	for _, key := range keys {
		value := fmt.Sprintf("%v", entry.Data[key])
		if strings.ContainsAny(value, " \t") {
			value = fmt.Sprintf("%q", value)
		}
		b.WriteString(fmt.Sprintf(" %s=%s", key, value))
	}

	b.WriteString("\n")
	return []byte(b.String()), nil
}

// levelTag renders the bracketed level marker, shortened and colored by
// severity. Colors resolve through the active theme styles, which already
// degrade to plain text on non-tty output.
func levelTag(level logrus.Level) string {
	label := level.String()
	if label == "warning" {
		label = "warn"
	}
	label = strings.ToUpper(label)

	t := theme.DefaultTheme
	switch level {
	case logrus.ErrorLevel, logrus.FatalLevel, logrus.PanicLevel:
		label = t.Error.Render(label)
	case logrus.WarnLevel:
		label = t.Warning.Render(label)
	case logrus.DebugLevel, logrus.TraceLevel:
		label = t.Muted.Render(label)
	}
	return "[" + label + "]"
}

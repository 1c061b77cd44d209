package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/bytedance/sonic"
	"github.com/spf13/cobra"

	"github.com/thenoetrevino/kanban/internal/notifications"
)

// OutputFormatter handles three output modes: JSON, quiet, and human-readable
type OutputFormatter struct {
	JSON  bool
	Quiet bool
	Out   io.Writer
	Err   io.Writer
}

// NewFormatter reads the --json and --quiet flags of cmd and writes to the
// command's output streams
func NewFormatter(cmd *cobra.Command) *OutputFormatter {
	jsonOutput, _ := cmd.Flags().GetBool("json")
	quietMode, _ := cmd.Flags().GetBool("quiet")
	return &OutputFormatter{
		JSON:  jsonOutput,
		Quiet: quietMode,
		Out:   cmd.OutOrStdout(),
		Err:   cmd.ErrOrStderr(),
	}
}

type noteJSON struct {
	Level   string `json:"level"`
	Message string `json:"message"`
	Mock    bool   `json:"mock"`
}

// Success outputs a JSON success envelope with the command's data and the
// notifications produced while syncing it
func (f *OutputFormatter) Success(data any, notes []notifications.Notification) error {
	envelope := map[string]any{
		"success": true,
		"data":    data,
	}
	if len(notes) > 0 {
		list := make([]noteJSON, len(notes))
		for i, n := range notes {
			list[i] = noteJSON{Level: n.Level.String(), Message: n.Message, Mock: n.Mock()}
		}
		envelope["notifications"] = list
	}
	return f.encode(envelope)
}

// Printf writes human-readable output unless quiet or JSON mode is on
func (f *OutputFormatter) Printf(format string, args ...any) {
	if f.Quiet || f.JSON {
		return
	}
	_, _ = fmt.Fprintf(f.Out, format, args...)
}

// Notes prints notifications in human-readable mode
func (f *OutputFormatter) Notes(notes []notifications.Notification) {
	if f.Quiet || f.JSON {
		return
	}
	for _, n := range notes {
		marker := "•"
		if n.Level != notifications.LevelInfo {
			marker = "⚠"
		}
		_, _ = fmt.Fprintf(f.Err, "%s %s\n", marker, n.Message)
	}
}

// Error outputs error information
func (f *OutputFormatter) Error(code string, message string) error {
	return f.ErrorWithSuggestion(code, message, "")
}

// ErrorWithSuggestion outputs error information with an optional suggestion
func (f *OutputFormatter) ErrorWithSuggestion(code string, message string, suggestion string) error {
	if f.JSON {
		errData := map[string]any{
			"code":    code,
			"message": message,
		}
		if suggestion != "" {
			errData["suggestion"] = suggestion
		}
		return f.encode(map[string]any{
			"success": false,
			"error":   errData,
		})
	}

	// Human-readable error
	_, _ = fmt.Fprintf(f.Err, "❌ Error: %s\n", message)
	if suggestion != "" {
		_, _ = fmt.Fprintf(f.Err, "💡 Suggestion: %s\n", suggestion)
	}
	return nil
}

// Fail reports err in the current output mode and returns it so that the
// caller can hand it back to cobra and the exit code reflects it. The
// returned error is marked as reported.
func (f *OutputFormatter) Fail(err error) error {
	suggestion := ""
	var usage *UsageError
	if errors.As(err, &usage) {
		suggestion = "Run with --help to see the available flags"
	}
	_ = f.ErrorWithSuggestion(errorCode(err), err.Error(), suggestion)
	return &reportedError{err: err}
}

// reportedError marks an error the user has already been shown
type reportedError struct {
	err error
}

func (e *reportedError) Error() string { return e.err.Error() }
func (e *reportedError) Unwrap() error { return e.err }

// Reported reports whether err was already printed by Fail
func Reported(err error) bool {
	var r *reportedError
	return errors.As(err, &r)
}

func (f *OutputFormatter) encode(v any) error {
	data, err := sonic.Marshal(v)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(f.Out, string(data))
	return err
}

// ID prints one identifier per line; this is the quiet-mode output
func (f *OutputFormatter) ID(id fmt.Stringer) {
	_, _ = fmt.Fprintln(f.Out, id.String())
}

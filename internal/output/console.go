package output

import (
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

var (
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))   // green
	warningStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))  // yellow
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))   // red
	dimStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("240")) // grey
)

func Successf(format string, a ...any) {
	fmt.Println(successStyle.Render(fmt.Sprintf(format, a...)))
}

func Warnf(format string, a ...any) {
	fmt.Println(warningStyle.Render(fmt.Sprintf(format, a...)))
}

func Errorf(format string, a ...any) {
	fmt.Fprintln(os.Stderr, errorStyle.Render(fmt.Sprintf(format, a...)))
}

func Dimf(format string, a ...any) {
	fmt.Println(dimStyle.Render(fmt.Sprintf(format, a...)))
}

// SetupLogging routes the global logger through a console writer on
// stderr so generated output on stdout stays clean.
func SetupLogging(verbose bool) {
	w := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: "15:04:05"}
	log.Logger = zerolog.New(w).With().Timestamp().Logger()

	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
}

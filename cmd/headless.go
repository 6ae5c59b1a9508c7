package main

import (
	"errors"
	"fmt"
	"image/color"
	"io"
	"math"
	"os"
	"os/signal"
	"strings"
	"syscall"

	fcolor "github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"pomotimer/internal/core/frameloop"
	"pomotimer/internal/core/model"
	"pomotimer/internal/core/timer"
	"pomotimer/internal/ui/notify"
)

const progressWidth = 24

func NewHeadlessCommand() *cobra.Command {
	var (
		speed  float64
		paused bool
	)

	cmd := &cobra.Command{
		Use:   "headless",
		Short: "Run the timer in the terminal",
		Long: `Run the same timer in the terminal without opening a window.

Press Ctrl-C to stop. --speed multiplies elapsed time, which is handy for
watching a whole cycle go by.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !(speed > 0) || math.IsInf(speed, 1) {
				return errors.New("speed must be a positive number")
			}

			file, err := openPreferences()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			inPlace := term.IsTerminal(int(os.Stdout.Fd()))
			display := newTerminalDisplay(out, inPlace)
			engine := timer.New(file.Load(), timer.Collaborators{
				Display: display,
				Cues:    &bellCues{out: out, player: notify.New(nil)},
				Store:   file,
			})
			if !paused {
				engine.TogglePauseResume()
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			frameloop.New(frameloop.DefaultInterval, nil).Run(ctx, func(elapsed float64) {
				engine.Tick(elapsed * speed)
			})
			if inPlace {
				fmt.Fprintln(out)
			}
			return nil
		},
	}

	cmd.Flags().Float64Var(&speed, "speed", 1, "time multiplier")
	cmd.Flags().BoolVar(&paused, "paused", false, "start paused (the timer cannot be resumed from the terminal)")

	return cmd
}

// terminalDisplay renders one status line per update. On a terminal the
// line is redrawn in place and each phase starts a new line.
type terminalDisplay struct {
	out      io.Writer
	inPlace  bool
	started  bool
	phase    model.Phase
	timeText string
	upper    float64
	lower    float64
	active   bool
}

func newTerminalDisplay(out io.Writer, inPlace bool) *terminalDisplay {
	return &terminalDisplay{out: out, inPlace: inPlace}
}

func (display *terminalDisplay) ShowPhase(phase model.Phase) {
	if display.started && display.inPlace {
		fmt.Fprintln(display.out)
	}
	display.phase = phase
}

func (display *terminalDisplay) ShowTime(text string) {
	display.timeText = text
	display.render()
}

func (display *terminalDisplay) ShowRatios(upper, lower float64) {
	display.upper = upper
	display.lower = lower
}

func (display *terminalDisplay) ShowColors(upper, lower color.NRGBA) {}

func (display *terminalDisplay) ShowActive(active bool) {
	display.active = active
	display.render()
}

func (display *terminalDisplay) render() {
	display.started = true
	line := fmt.Sprintf("%s %s %s", phaseColor(display.phase).Sprintf("%-11s", display.phase.Title()),
		fcolor.New(fcolor.Bold).Sprintf("%6s", display.timeText), progressBar(display.upper, display.lower))
	if !display.active {
		line += fcolor.New(fcolor.Faint).Sprint(" paused")
	}
	if display.inPlace {
		fmt.Fprintf(display.out, "\r\033[K%s", line)
		return
	}
	fmt.Fprintln(display.out, line)
}

func phaseColor(phase model.Phase) *fcolor.Color {
	switch phase {
	case model.PhaseShortBreak:
		return fcolor.New(fcolor.FgCyan, fcolor.Bold)
	case model.PhaseLongBreak:
		return fcolor.New(fcolor.FgBlue, fcolor.Bold)
	default:
		return fcolor.New(fcolor.FgRed, fcolor.Bold)
	}
}

func progressBar(upper, lower float64) string {
	total := upper + lower
	share := 0.5
	if total > 0 {
		share = upper / total
	}
	filled := int(math.Round(share * progressWidth))
	if filled < 0 {
		filled = 0
	}
	if filled > progressWidth {
		filled = progressWidth
	}
	return "[" + strings.Repeat("#", filled) + strings.Repeat("-", progressWidth-filled) + "]"
}

// bellCues rings the terminal bell on phase starts.
type bellCues struct {
	out    io.Writer
	player *notify.Player
}

func (cues *bellCues) PlayCue(cue timer.Cue) {
	cues.player.PlayCue(cue)
	if cues.player.Volume() > 0 {
		fmt.Fprint(cues.out, "\a")
	}
}

func (cues *bellCues) SetVolume(percent float64) {
	cues.player.SetVolume(percent)
}

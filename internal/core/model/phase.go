package model

// Phase is a countdown segment of the pomodoro cycle.
type Phase int

const (
	PhaseWork Phase = iota
	PhaseShortBreak
	PhaseLongBreak
)

func (phase Phase) String() string {
	switch phase {
	case PhaseWork:
		return "work"
	case PhaseShortBreak:
		return "short_break"
	case PhaseLongBreak:
		return "long_break"
	default:
		return "unknown"
	}
}

// Title is the human readable phase name.
func (phase Phase) Title() string {
	switch phase {
	case PhaseShortBreak:
		return "Short break"
	case PhaseLongBreak:
		return "Long break"
	default:
		return "Work"
	}
}

// IsBreak reports whether phase is one of the two breaks.
func (phase Phase) IsBreak() bool {
	return phase == PhaseShortBreak || phase == PhaseLongBreak
}

// Field names a user-editable preference.
type Field int

const (
	FieldSfxVolume Field = iota
	FieldUpperTimerColor
	FieldLowerTimerColor
	FieldWorkMinutes
	FieldShortBreakMinutes
	FieldLongBreakMinutes
	FieldLongBreakFrequency
)

// Fields lists every editable field in display order.
var Fields = []Field{
	FieldSfxVolume,
	FieldUpperTimerColor,
	FieldLowerTimerColor,
	FieldWorkMinutes,
	FieldShortBreakMinutes,
	FieldLongBreakMinutes,
	FieldLongBreakFrequency,
}

func (field Field) String() string {
	switch field {
	case FieldSfxVolume:
		return "sfx_volume"
	case FieldUpperTimerColor:
		return "upper_timer_color"
	case FieldLowerTimerColor:
		return "lower_timer_color"
	case FieldWorkMinutes:
		return "work_minutes"
	case FieldShortBreakMinutes:
		return "short_break_minutes"
	case FieldLongBreakMinutes:
		return "long_break_minutes"
	case FieldLongBreakFrequency:
		return "long_break_frequency"
	default:
		return "unknown"
	}
}

// DurationPhase maps a duration field to its phase.
func (field Field) DurationPhase() (Phase, bool) {
	switch field {
	case FieldWorkMinutes:
		return PhaseWork, true
	case FieldShortBreakMinutes:
		return PhaseShortBreak, true
	case FieldLongBreakMinutes:
		return PhaseLongBreak, true
	default:
		return PhaseWork, false
	}
}

// ParseField looks a field up by its String name.
func ParseField(name string) (Field, bool) {
	for _, field := range Fields {
		if field.String() == name {
			return field, true
		}
	}
	return 0, false
}

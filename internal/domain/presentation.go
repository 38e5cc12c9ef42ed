package domain

// Theme is the page background mode.
type Theme string

const (
	ThemeDay   Theme = "day"
	ThemeNight Theme = "night"
)

// Opposite returns the other theme.
func (t Theme) Opposite() Theme {
	if t == ThemeNight {
		return ThemeDay
	}
	return ThemeNight
}

// PresentationState tracks the user's manual theme override. The zero value
// has no override. It is a value: Toggle returns the next state rather than
// mutating in place, and the owner decides where it lives.
type PresentationState struct {
	overrideActive bool
	override       Theme
}

// OverrideActive reports whether a manual override is in effect.
func (p PresentationState) OverrideActive() bool { return p.overrideActive }

// ResolveTheme returns the override when active, otherwise day or night from isDay.
func (p PresentationState) ResolveTheme(isDay bool) Theme {
	if p.overrideActive {
		return p.override
	}
	if isDay {
		return ThemeDay
	}
	return ThemeNight
}

// Toggle flips the override flag and pins the override to the opposite of
// the currently rendered theme. The returned theme is applied right away in
// both directions; once the override is off, ResolveTheme follows isDay again.
func (p PresentationState) Toggle(current Theme) (PresentationState, Theme) {
	next := PresentationState{
		overrideActive: !p.overrideActive,
		override:       current.Opposite(),
	}
	return next, next.override
}

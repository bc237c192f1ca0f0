package main

// WidgetFactory produces a whole family of themed widgets.
type WidgetFactory interface {
	CreateButton() Button
	CreateCheckbox() Checkbox
}

type DarkThemeFactory struct{}

func (DarkThemeFactory) CreateButton() Button {
	return DarkButton{}
}

func (DarkThemeFactory) CreateCheckbox() Checkbox {
	return DarkCheckbox{}
}

type LightThemeFactory struct{}

func (LightThemeFactory) CreateButton() Button {
	return LightButton{}
}

func (LightThemeFactory) CreateCheckbox() Checkbox {
	return LightCheckbox{}
}

type Theme int

const (
	DarkTheme Theme = iota
	LightTheme
)

// FactoryFor picks the concrete factory for a theme. Past this point the
// client never mentions a concrete widget type again.
func FactoryFor(theme Theme) WidgetFactory {
	switch theme {
	case LightTheme:
		return LightThemeFactory{}
	default:
		return DarkThemeFactory{}
	}
}

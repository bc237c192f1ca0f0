package main

// Button is one product of the widget family.
type Button interface {
	Paint() string
}

// Checkbox is another product of the same family. Factories guarantee that
// buttons and checkboxes from one factory always match in theme.
type Checkbox interface {
	Paint() string
}

type DarkButton struct{}

func (DarkButton) Paint() string {
	return "Rendering a button in the dark theme."
}

type LightButton struct{}

func (LightButton) Paint() string {
	return "Rendering a button in the light theme."
}

type DarkCheckbox struct{}

func (DarkCheckbox) Paint() string {
	return "Rendering a checkbox in the dark theme."
}

type LightCheckbox struct{}

func (LightCheckbox) Paint() string {
	return "Rendering a checkbox in the light theme."
}

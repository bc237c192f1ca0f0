package main

import "fmt"

func renderDialog(factory WidgetFactory) {
	button := factory.CreateButton()
	checkbox := factory.CreateCheckbox()
	fmt.Println(button.Paint())
	fmt.Println(checkbox.Paint())
}

func main() {
	fmt.Println("Client: rendering the dialog with the dark factory.")
	renderDialog(FactoryFor(DarkTheme))
	fmt.Println()

	fmt.Println("Client: rendering the same dialog with the light factory.")
	renderDialog(FactoryFor(LightTheme))
}

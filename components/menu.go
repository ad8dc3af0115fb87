package components

import "github.com/yohamta/donburi"

// MainMenuOption represents the available main menu selections
type MainMenuOption int

const (
	MainMenuStart MainMenuOption = iota
	MainMenuFullscreen
	MainMenuExit
)

// MenuData stores the current state of the main menu
type MenuData struct {
	SelectedIndex int
	Options       []MainMenuOption
	BestLevel     int // Highest level reached, shown under the title
}

// Menu is the component type for main menu state
var Menu = donburi.NewComponentType[MenuData]()

package event

import (
	tea "github.com/charmbracelet/bubbletea"
)

// HitTest resolves a terminal cell to the element drawn there, or nil.
type HitTest func(x, y int) any

type teaKey struct {
	name string
	mods Modifier
}

var teaKeys = map[tea.KeyType]teaKey{
	tea.KeyUp:             {KeyArrowUp, ModNone},
	tea.KeyDown:           {KeyArrowDown, ModNone},
	tea.KeyLeft:           {KeyArrowLeft, ModNone},
	tea.KeyRight:          {KeyArrowRight, ModNone},
	tea.KeyShiftUp:        {KeyArrowUp, ModShift},
	tea.KeyShiftDown:      {KeyArrowDown, ModShift},
	tea.KeyShiftLeft:      {KeyArrowLeft, ModShift},
	tea.KeyShiftRight:     {KeyArrowRight, ModShift},
	tea.KeyCtrlUp:         {KeyArrowUp, ModCtrl},
	tea.KeyCtrlDown:       {KeyArrowDown, ModCtrl},
	tea.KeyCtrlLeft:       {KeyArrowLeft, ModCtrl},
	tea.KeyCtrlRight:      {KeyArrowRight, ModCtrl},
	tea.KeyCtrlShiftUp:    {KeyArrowUp, ModCtrl | ModShift},
	tea.KeyCtrlShiftDown:  {KeyArrowDown, ModCtrl | ModShift},
	tea.KeyCtrlShiftLeft:  {KeyArrowLeft, ModCtrl | ModShift},
	tea.KeyCtrlShiftRight: {KeyArrowRight, ModCtrl | ModShift},
	tea.KeyHome:           {KeyHome, ModNone},
	tea.KeyEnd:            {KeyEnd, ModNone},
	tea.KeyShiftHome:      {KeyHome, ModShift},
	tea.KeyShiftEnd:       {KeyEnd, ModShift},
	tea.KeyCtrlHome:       {KeyHome, ModCtrl},
	tea.KeyCtrlEnd:        {KeyEnd, ModCtrl},
	tea.KeyCtrlShiftHome:  {KeyHome, ModCtrl | ModShift},
	tea.KeyCtrlShiftEnd:   {KeyEnd, ModCtrl | ModShift},
	tea.KeyPgUp:           {KeyPageUp, ModNone},
	tea.KeyPgDown:         {KeyPageDown, ModNone},
	tea.KeySpace:          {KeySpace, ModNone},
	tea.KeyEnter:          {KeyEnter, ModNone},
	tea.KeyTab:            {KeyTab, ModNone},
	tea.KeyShiftTab:       {KeyTab, ModShift},
	tea.KeyEsc:            {KeyEscape, ModNone},
	tea.KeyBackspace:      {KeyBackspace, ModNone},
	tea.KeyDelete:         {KeyDelete, ModNone},
	tea.KeyCtrlAt:         {KeySpace, ModCtrl},
}

// FromKeyMsg converts a bubbletea key press into a KeyboardEvent.
func FromKeyMsg(msg tea.KeyMsg) KeyboardEvent {
	var ev KeyboardEvent
	switch {
	case msg.Type == tea.KeyRunes:
		ev.Key = string(msg.Runes)
	default:
		if k, ok := teaKeys[msg.Type]; ok {
			ev.Key = k.name
			ev.Mods = k.mods
		} else if msg.Type >= tea.KeyCtrlA && msg.Type <= tea.KeyCtrlZ {
			ev.Key = string(rune('a' + int(msg.Type-tea.KeyCtrlA)))
			ev.Mods = ModCtrl
		} else {
			ev.Key = msg.String()
		}
	}
	if msg.Alt {
		ev.Mods |= ModAlt
	}
	return ev
}

// FromMouseMsg converts a left-button press into a PointerEvent whose target
// is resolved through hit. Other mouse activity reports false.
func FromMouseMsg(msg tea.MouseMsg, hit HitTest) (PointerEvent, bool) {
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return PointerEvent{}, false
	}
	ev := PointerEvent{X: msg.X, Y: msg.Y}
	if hit != nil {
		ev.Target = hit(msg.X, msg.Y)
	}
	if msg.Shift {
		ev.Mods |= ModShift
	}
	if msg.Ctrl {
		ev.Mods |= ModCtrl
	}
	if msg.Alt {
		ev.Mods |= ModAlt
	}
	return ev, true
}

// Package main starts the inputhook daemon.
package main

import (
	"fmt"

	"github.com/frudas24/inputhook/internal/tap"
	"github.com/frudas24/inputhook/internal/winapi"
	"github.com/frudas24/inputhook/synth"
)

// commandHandler routes inbound tap commands to the input synthesizer.
func commandHandler(injector synth.Injector) tap.CommandHandler {
	return func(cmd tap.Command) error {
		switch cmd.T {
		case "type":
			return injector.TypeUnicode(cmd.Text)
		case "tap":
			return tapChar(injector, cmd.Char)
		case "move":
			return injector.MoveAbs(cmd.X, cmd.Y)
		case "click":
			if err := injector.MoveAbs(cmd.X, cmd.Y); err != nil {
				return err
			}
			return injector.Click(synth.Left)
		case "wheel":
			return injector.Wheel(cmd.Delta)
		default:
			return nil
		}
	}
}

// tapChar presses and releases the key producing the given character, holding
// whatever modifiers the active layout requires for it.
func tapChar(injector synth.Injector, char string) error {
	runes := []rune(char)
	if len(runes) != 1 {
		return fmt.Errorf("tap: need exactly one character, got %q", char)
	}
	vk, mods, err := synth.KeyFromChar(runes[0])
	if err != nil {
		return err
	}

	var held []uint16
	if mods.Shift {
		held = append(held, winapi.VK_SHIFT)
	}
	if mods.Ctrl {
		held = append(held, winapi.VK_CONTROL)
	}
	if mods.Alt {
		held = append(held, winapi.VK_MENU)
	}
	for _, m := range held {
		if err := injector.KeyDown(m); err != nil {
			return err
		}
	}

	tapErr := injector.KeyTap(vk)
	for i := len(held) - 1; i >= 0; i-- {
		if err := injector.KeyUp(held[i]); err != nil && tapErr == nil {
			tapErr = err
		}
	}
	return tapErr
}

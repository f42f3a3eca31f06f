package state

import tele "gopkg.in/telebot.v4"

var modeHandlers = map[Mode]tele.HandlerFunc{}

// RegisterHandler associates a mode with its handler.
func RegisterHandler(mode Mode, h tele.HandlerFunc) {
	if h == nil {
		return
	}
	modeHandlers[mode] = h
}

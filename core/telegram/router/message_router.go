package router

import (
	"time"

	tg "barbot/core/telegram"
	"barbot/core/telegram/middleware"

	tele "gopkg.in/telebot.v4"
)

// FSM defines the minimal interface for a session mode manager.
type FSM interface {
	InProgress(userID int64) bool
	ManagerHandler(c tele.Context) error
	Do(userID int64, fn func() error) error
}

// TextOptions controls fallback behaviour for text updates.
type TextOptions struct {
	// UnknownText runs when no mode, label, or command matched the text.
	// Free-text lookups (brand search) are usually wired here.
	UnknownText tele.HandlerFunc
}

// TextRoutes builds the handler for plain text routing. Matching goes in
// priority order: active session mode, exact button label, command alias,
// then the fallback. Updates from one user are processed one at a time.
func TextRoutes(fsmMgr FSM, reg *tg.Registry, opts TextOptions) []tg.Route {
	handler := func(c tele.Context) error {
		start := time.Now()
		text := c.Text()
		userID := c.Sender().ID

		route := func() error {
			if fsmMgr != nil && fsmMgr.InProgress(userID) {
				return handleWithSummary(c, "mode", start, "", "", func() error {
					return fsmMgr.ManagerHandler(c)
				})
			}

			if reg != nil {
				if h, ok := reg.LookupLabel(text); ok {
					return handleWithSummary(c, "label."+normalizeHandlerName(text), start, "", "", func() error {
						return h(c)
					})
				}
				if key, cmd, ok := reg.LookupCommand(text); ok && cmd.Handler != nil {
					name := normalizeHandlerName(key)
					return handleWithSummary(c, name, start, "", "", func() error {
						return cmd.Handler(c)
					})
				}
				if fb := reg.TextFallback(); fb != nil {
					return handleWithSummary(c, "fallback", start, "", "", func() error {
						return fb(c)
					})
				}
			}

			if opts.UnknownText != nil {
				return handleWithSummary(c, "unknown_text", start, "", "", func() error {
					return opts.UnknownText(c)
				})
			}

			logHandlerSummary(c, "unknown_text", start, "skip", "ok", nil)
			return nil
		}

		if fsmMgr != nil {
			return fsmMgr.Do(userID, route)
		}
		return route()
	}

	return []tg.Route{
		{
			Endpoint: tele.OnText,
			Handler:  middleware.RecoverMiddleware(middleware.LoggerMiddleware(handler)),
		},
	}
}

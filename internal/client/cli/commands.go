package cli

import (
	"context"
	"fmt"
)

// Run dispatches a command. Unknown commands print usage and fail.
func (c *Cli) Run(ctx context.Context, command string, args []string) error {
	switch command {
	case "signup":
		return c.runSignup(ctx)
	case "verify":
		return c.runVerify(ctx)
	case "login":
		return c.runLogin(ctx)
	case "logout":
		return c.runLogout(ctx)
	case "status":
		return c.runStatus(ctx)
	case "forgot-password":
		return c.runForgotPassword(ctx)
	case "profile":
		if len(args) > 0 && args[0] == "edit" {
			return c.runProfileEdit(ctx)
		}
		return c.runProfile(ctx)
	case "browse":
		return c.runBrowse(ctx, args)
	case "search":
		return c.runSearch(ctx, args)
	case "sneaker":
		return c.runSneaker(ctx, args)
	case "upc":
		return c.runUPC(ctx, args)
	case "closet":
		if len(args) > 0 && args[0] == "add" {
			return c.runClosetAdd(ctx, args[1:])
		}
		return c.runCloset(ctx)
	case "outfits":
		return c.runOutfits(ctx)
	case "history":
		if len(args) > 0 && args[0] == "clear" {
			return c.runHistoryClear(ctx)
		}
		return c.runHistory(ctx)
	default:
		PrintUsage()
		return fmt.Errorf("unknown command: %s", command)
	}
}

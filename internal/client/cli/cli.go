package cli

import (
	"fmt"

	"github.com/talariafits/talaria/internal/client/api"
	"github.com/talariafits/talaria/internal/client/catalog"
	"github.com/talariafits/talaria/internal/client/history"
	"github.com/talariafits/talaria/internal/client/iocli"
	"github.com/talariafits/talaria/internal/client/session"
)

// Cli wires the commands to their collaborators.
type Cli struct {
	io      iocli.IO
	backend *api.Client
	catalog *catalog.QueryCache
	session *session.Manager
	history *history.Store
}

func New(io iocli.IO, backend *api.Client, cat *catalog.QueryCache, sess *session.Manager, hist *history.Store) *Cli {
	return &Cli{
		io:      io,
		backend: backend,
		catalog: cat,
		session: sess,
		history: hist,
	}
}

func PrintUsage() {
	fmt.Println("Talaria Fits Client")
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Println("  talaria [OPTIONS] COMMAND")
	fmt.Println()
	fmt.Println("Options:")
	fmt.Println("  --version            Show version information")
	fmt.Println("  --backend URL        Backend URL")
	fmt.Println("  --db PATH            Path to local session database")
	fmt.Println("  --keyfile PATH       Path to device keyfile")
	fmt.Println("  --history PATH       Path to local history database")
	fmt.Println()
	fmt.Println("Account commands:")
	fmt.Println("  signup                  Create a new account")
	fmt.Println("  verify                  Verify a new account with the emailed code")
	fmt.Println("  login                   Log in")
	fmt.Println("  logout                  Log out")
	fmt.Println("  status                  Show session status")
	fmt.Println("  forgot-password         Reset a forgotten password")
	fmt.Println("  profile                 Show the profile")
	fmt.Println("  profile edit            Edit profile fields")
	fmt.Println()
	fmt.Println("Catalog commands:")
	fmt.Println("  browse [page]           Browse the sneaker feed")
	fmt.Println("  search <query> [page]   Search the catalog")
	fmt.Println("  sneaker <id>            Show sneaker details")
	fmt.Println("  upc <code>              Look up sneakers by UPC")
	fmt.Println()
	fmt.Println("Closet commands:")
	fmt.Println("  closet                  List saved sneakers")
	fmt.Println("  closet add <id>         Save a sneaker to the closet")
	fmt.Println("  outfits                 List outfits")
	fmt.Println()
	fmt.Println("Other commands:")
	fmt.Println("  history                 Show recent searches and views")
	fmt.Println("  history clear           Delete local history")
	fmt.Println()
	fmt.Println("Examples:")
	fmt.Println("  talaria login")
	fmt.Println("  talaria search jordan")
	fmt.Println("  talaria search jordan 1")
	fmt.Println("  talaria closet add 8225ee4d-a9e4-4cb2-966e-e2927e6325a9")
}

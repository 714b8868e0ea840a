package main

import (
	"fmt"
	"os"
	"strings"

	"luminous/app/config"
	"luminous/service"
)

const CliVersion = "1.0.0"

var exit = os.Exit

func main() {
	RealMain()
}

// RealMain dispatches the command line. It is separate from main so tests can drive it.
func RealMain() {
	if len(os.Args) < 2 {
		printHelp()
		exit(1)
		return
	}

	cmd := strings.ToLower(os.Args[1])
	switch cmd {
	case "help":
		printHelp()
	case "version":
		fmt.Printf("luminous version %s\n", CliVersion)
	case "serve":
		if code := service.RunAppServer(os.Args[2:]); code != 0 {
			exit(code)
		}
	case "posts":
		cfg, err := config.Load("")
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			exit(1)
			return
		}
		service.SetDBPath(cfg.DBPath)
		if code := service.HandleCommand(os.Args[2:]); code != 0 {
			exit(code)
		}
	default:
		fmt.Printf("Unknown command: %s\n\n", os.Args[1])
		printHelp()
		exit(1)
	}
}

func printHelp() {
	helpText := `Usage: luminous <command> [options]
Commands:
  help                           Display this help message.
  version                        Show version information.
  serve [--config <file>]        Run the blog landing page server.
  posts <command>                Manage the Badger post store (init, seed, list, backup, restore, clean).
`
	fmt.Println(helpText)
}

package main

import (
	"fmt"
	"os"
)

const usage = `quicktheories - property-based testing toolkit

Usage:
  quicktheories <command> [arguments]

Commands:
  corpus list [property]   List recorded failing cases
  corpus seeds <property>  Print replay seeds for a property
  corpus clear [property]  Delete recorded failing cases
  corpus tail              Follow the corpus as failures are recorded

Options:
  -h, --help    Show this help message

The corpus location is read from quicktheories.ini ([corpus] path) and
defaults to .quicktheories/corpus.db.
`

func main() {
	if len(os.Args) < 2 {
		fmt.Print(usage)
		os.Exit(0)
	}

	cmd := os.Args[1]

	switch cmd {
	case "-h", "--help", "help":
		fmt.Print(usage)
		os.Exit(0)

	case "corpus":
		if len(os.Args) < 3 {
			fmt.Fprintln(os.Stderr, "error: 'quicktheories corpus' requires a subcommand")
			fmt.Fprintln(os.Stderr, "")
			fmt.Fprintln(os.Stderr, "Available subcommands:")
			fmt.Fprintln(os.Stderr, "  list [property]   List recorded failing cases")
			fmt.Fprintln(os.Stderr, "  seeds <property>  Print replay seeds for a property")
			fmt.Fprintln(os.Stderr, "  clear [property]  Delete recorded failing cases")
			fmt.Fprintln(os.Stderr, "  tail              Follow the corpus live")
			os.Exit(1)
		}

		subCmd := os.Args[2]
		switch subCmd {
		case "list":
			corpusListCmd(optionalArg(3))

		case "seeds":
			if len(os.Args) < 4 {
				fmt.Fprintln(os.Stderr, "error: 'quicktheories corpus seeds' requires a property name")
				os.Exit(1)
			}
			corpusSeedsCmd(os.Args[3])

		case "clear":
			corpusClearCmd(optionalArg(3))

		case "tail":
			corpusTailCmd()

		case "-h", "--help", "help":
			fmt.Println("quicktheories corpus - Failure corpus commands")
			fmt.Println("")
			fmt.Println("Subcommands:")
			fmt.Println("  list [property]   List recorded failing cases")
			fmt.Println("  seeds <property>  Print replay seeds for a property")
			fmt.Println("  clear [property]  Delete recorded failing cases")
			fmt.Println("  tail              Follow the corpus live")
			os.Exit(0)

		default:
			fmt.Fprintf(os.Stderr, "error: unknown corpus subcommand: %s\n", subCmd)
			fmt.Fprintln(os.Stderr, "Run 'quicktheories corpus --help' for usage.")
			os.Exit(1)
		}

	default:
		fmt.Fprintf(os.Stderr, "error: unknown command: %s\n", cmd)
		fmt.Fprintln(os.Stderr, "Run 'quicktheories --help' for usage.")
		os.Exit(1)
	}
}

// optionalArg returns os.Args[i] when present, else "".
func optionalArg(i int) string {
	if len(os.Args) > i {
		return os.Args[i]
	}
	return ""
}

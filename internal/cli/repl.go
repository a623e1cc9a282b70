package cli

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// execIface is what the REPL dispatches to. App satisfies it.
type execIface interface {
	Add() error
	List() error
	Search(keyword string) error
	Stats() error
	Edit(arg string) error
	Delete(arg string) error
}

const helpText = "Available commands: add, (l)ist, search <keyword>, stats, edit <n>, delete <n>, exit"

// runREPL reads one command per line until EOF, exit or quit. Handler errors
// are already reported to the user, so the loop ignores them. Commands share
// reader with the prompts they run, so it must not be wrapped in a Scanner.
func runREPL(a execIface, reader *bufio.Reader, out io.Writer) {
	for {
		fmt.Fprint(out, "diary> ")
		line, err := reader.ReadString('\n')
		if err != nil && line == "" {
			fmt.Fprintln(out)
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		switch cmd {
		case "help":
			fmt.Fprintln(out, helpText)

		case "add":
			_ = a.Add()

		case "l", "list":
			_ = a.List()

		case "search":
			if len(args) == 0 {
				fmt.Fprintln(out, "usage: search <keyword>")
				continue
			}
			_ = a.Search(argumentText(line, cmd))

		case "stats":
			_ = a.Stats()

		case "edit", "delete":
			if len(args) != 1 {
				fmt.Fprintf(out, "usage: %s <n>\n", cmd)
				continue
			}
			if cmd == "edit" {
				_ = a.Edit(args[0])
			} else {
				_ = a.Delete(args[0])
			}

		case "exit", "quit":
			fmt.Fprintln(out, "Bye!")
			return

		default:
			fmt.Fprintln(out, "Unknown command:", cmd)
		}
	}
}

// argumentText returns everything after cmd on line with its inner spacing
// intact. Only the separating blanks and the line ending are dropped.
func argumentText(line, cmd string) string {
	rest := strings.TrimLeft(line, " \t")
	rest = strings.TrimPrefix(rest, cmd)
	rest = strings.TrimLeft(rest, " \t")
	return strings.TrimRight(rest, "\r\n")
}

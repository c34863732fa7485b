package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/enzojs/enzo/generator"
	"github.com/enzojs/enzo/output"
)

// ScriptCmd adds a script to ./package.json.
func ScriptCmd(app *App) *cobra.Command {
	var keep bool

	cmd := &cobra.Command{
		Use:   "script <name> <command...>",
		Short: "Add a script to package.json",
		Long: `Adds or replaces a script in ./package.json. Every other key in the
file is kept as it was. With --keep an existing script is left alone.
Flags go before the script name; everything after it is the command.

Example:
  enzo script lint eslint src --fix`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			m := app.mutator("")
			name := args[0]
			if keep {
				taken, err := m.ScriptTaken(name)
				if err == nil && taken {
					output.Warning(fmt.Sprintf("Script %q is already defined in %s, keeping it", name, generator.ManifestFile))
					return nil
				}
			}
			return failed(m.AddScript(name, strings.Join(args[1:], " ")))
		},
	}

	cmd.Flags().BoolVar(&keep, "keep", false, "Leave an existing script with the same name unchanged")
	// flags after the script name belong to the script body
	cmd.Flags().SetInterspersed(false)
	return cmd
}

// InsertCmd splices a line into a file.
func InsertCmd(app *App) *cobra.Command {
	var line int
	var after string

	cmd := &cobra.Command{
		Use:   "insert <file> <content>",
		Short: "Insert a line into a file",
		Long: `Inserts content as a new line of file.

  --line N      insert before line N (0 is the top; past the end appends)
  --after TEXT  insert after the first line equal to TEXT

Without either flag the lines of the file are listed to choose from,
when running in a terminal.

Example:
  enzo insert src/index.js "import './styles.css'" --after "import App from './App/App'"`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			lineSet := cmd.Flags().Changed("line")
			afterSet := cmd.Flags().Changed("after")
			if lineSet && afterSet {
				return fmt.Errorf("--line and --after are mutually exclusive")
			}

			var loc generator.Locator
			switch {
			case lineSet:
				loc = generator.AtLine(line)
			case afterSet:
				loc = generator.After(after)
			}

			m := app.mutator("")
			return failed(m.Insert(args[0], args[1], loc))
		},
	}

	cmd.Flags().IntVar(&line, "line", 0, "Line index to insert at")
	cmd.Flags().StringVar(&after, "after", "", "Insert after the line equal to this text")
	return cmd
}

// AppendCmd appends text to a file.
func AppendCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "append <file> <content>",
		Short: "Append text to a file, creating it if needed",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			m := app.mutator("")
			return failed(m.AppendFile(args[0], args[1]))
		},
	}
}

// MoveCmd moves the contents of one directory into another.
func MoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "move <src-dir> <dst-dir>",
		Short: "Move every file of a directory into another and remove it",
		Long: `Moves the entries of src-dir into dst-dir, then removes src-dir.
The folders actions, components, store and api are left in place, so
src-dir is only removed when nothing else remains.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			m := app.mutator("")
			for _, res := range m.MoveAllFilesInDir(args[0], args[1]) {
				if !res.OK() {
					return ErrFailed
				}
			}
			return nil
		},
	}
}

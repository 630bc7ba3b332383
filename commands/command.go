package commands

import (
	"flag"
	"fmt"
	"log"
	"path/filepath"
)

const APP = "sheetlens"

// Options holds the flags shared by all commands.
type Options struct {
	Debug bool
}

// Command is the interface implemented by all sheetlens subcommands.
type Command interface {
	Name() string
	Description() string
	Usage() string
	Help()
	FlagSet() *flag.FlagSet
	Execute(args ...any) error
}

type command struct {
	workdir     string
	credentials string
	debug       bool
}

func (c *command) flagset(name string) *flag.FlagSet {
	flagset := flag.NewFlagSet(name, flag.ExitOnError)

	flagset.StringVar(&c.workdir, "workdir", c.workdir, "Directory for working files (reports, etc)")
	flagset.StringVar(&c.credentials, "credentials", c.credentials, "Path for the service account key file")

	return flagset
}

// resolve locates an output file relative to the working directory. Absolute
// paths are returned unchanged.
func (c *command) resolve(file string) string {
	if filepath.IsAbs(file) {
		return file
	}

	return filepath.Join(c.workdir, file)
}

// Parse resolves the command line arguments (after the global flags) to a command
// and parses that command's own flags. Returns nil if no command was given.
func Parse(cli []Command, args []string) (Command, error) {
	if len(args) == 0 {
		return nil, nil
	}

	if args[0] == "help" {
		return &HelpCmd{cli: cli, args: args[1:]}, nil
	}

	for _, cmd := range cli {
		if cmd.Name() == args[0] {
			if err := cmd.FlagSet().Parse(args[1:]); err != nil {
				return nil, err
			}

			return cmd, nil
		}
	}

	return nil, fmt.Errorf("invalid command '%s'", args[0])
}

// Usage prints the one line summary for each command.
func Usage(cli []Command) {
	fmt.Println()
	fmt.Printf("  Usage: %s [--debug] <command> [options]\n", APP)
	fmt.Println()
	fmt.Println("  Commands:")
	fmt.Println()
	fmt.Printf("    %-13s %s\n", "help", "Displays this message, or help for a command")

	for _, cmd := range cli {
		fmt.Printf("    %-13s %s\n", cmd.Name(), cmd.Description())
	}

	fmt.Println()
	fmt.Printf("  Use '%s help <command>' for command specific information\n", APP)
	fmt.Println()
}

// HelpCmd displays the command overview or the long form help for a command.
type HelpCmd struct {
	cli  []Command
	args []string
}

func (cmd *HelpCmd) Name() string {
	return "help"
}

func (cmd *HelpCmd) Description() string {
	return "Displays this message, or help for a command"
}

func (cmd *HelpCmd) Usage() string {
	return "[command]"
}

func (cmd *HelpCmd) Help() {
	Usage(cmd.cli)
}

func (cmd *HelpCmd) FlagSet() *flag.FlagSet {
	return flag.NewFlagSet("help", flag.ExitOnError)
}

func (cmd *HelpCmd) Execute(args ...any) error {
	if len(cmd.args) > 0 {
		for _, c := range cmd.cli {
			if c.Name() == cmd.args[0] {
				c.Help()
				return nil
			}
		}

		return fmt.Errorf("invalid command '%s'", cmd.args[0])
	}

	Usage(cmd.cli)

	return nil
}

func helpOptions(flagset *flag.FlagSet) {
	fmt.Println("  Options:")
	fmt.Println()

	flagset.VisitAll(func(f *flag.Flag) {
		fmt.Printf("    --%-13s %s\n", f.Name, f.Usage)
	})
}

func debugf(format string, args ...any) {
	log.Printf("%-5s %s", "DEBUG", fmt.Sprintf(format, args...))
}

func infof(format string, args ...any) {
	log.Printf("%-5s %s", "INFO", fmt.Sprintf(format, args...))
}

func warnf(format string, args ...any) {
	log.Printf("%-5s %s", "WARN", fmt.Sprintf(format, args...))
}

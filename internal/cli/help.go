package cli

import (
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// envVars are documented in the root help.
var envVars = [][2]string{
	{"DOCCMP_CONFIG", "Default rules file when --config is not given"},
	{"DOCCMP_<FLAG>", "Default for any flag, e.g. DOCCMP_ONLY_DIFF=true"},
	{"NO_COLOR", "Disable colored output"},
}

// printHelp renders help for cmd through the output writer.
func (a *app) printHelp(cmd *cobra.Command) {
	w := a.out

	title := cmd.CommandPath()
	if cmd.Short != "" {
		title += " - " + cmd.Short
	}
	w.HelpTitle(title)
	if cmd.Long != "" {
		w.Println("")
		w.Println("%s", cmd.Long)
	}

	w.HelpSection("usage")
	w.HelpUsage(cmd.UseLine())
	if cmd.HasAvailableSubCommands() {
		w.HelpUsage(cmd.CommandPath() + " <command>")
	}

	if cmd.HasAvailableSubCommands() {
		w.HelpSection("commands")
		var subs []*cobra.Command
		width := 0
		for _, sub := range cmd.Commands() {
			if !sub.IsAvailableCommand() {
				continue
			}
			subs = append(subs, sub)
			if n := len(sub.Name()); n > width {
				width = n
			}
		}
		for _, sub := range subs {
			w.HelpCommand(sub.Name(), sub.Short, width)
		}
	}

	if cmd.HasAvailableLocalFlags() {
		w.HelpSection("flags")
		a.printFlags(cmd.LocalFlags())
	}
	if cmd.HasAvailableInheritedFlags() {
		w.HelpSection("global flags")
		a.printFlags(cmd.InheritedFlags())
	}

	if cmd.HasExample() {
		w.HelpSection("examples")
		for _, line := range strings.Split(cmd.Example, "\n") {
			w.HelpExample(line, "")
		}
	}

	if !cmd.HasParent() {
		w.HelpSection("environment")
		width := 0
		for _, e := range envVars {
			if len(e[0]) > width {
				width = len(e[0])
			}
		}
		for _, e := range envVars {
			w.HelpEnvVar(e[0], e[1], width)
		}
	}
}

func (a *app) printFlags(fs *pflag.FlagSet) {
	type entry struct{ name, usage string }
	var entries []entry
	width := 0
	fs.VisitAll(func(f *pflag.Flag) {
		if f.Hidden {
			return
		}
		name, usage := flagHelp(f)
		entries = append(entries, entry{name, usage})
		if len(name) > width {
			width = len(name)
		}
	})
	for _, e := range entries {
		a.out.HelpFlag(e.name, e.usage, width)
	}
}

// flagHelp returns the display name and usage text for f, e.g.
// "-c, --config <path>".
func flagHelp(f *pflag.Flag) (string, string) {
	varname, usage := pflag.UnquoteUsage(f)

	var b strings.Builder
	if f.Shorthand != "" {
		b.WriteString("-" + f.Shorthand + ", ")
	} else {
		b.WriteString("    ")
	}
	b.WriteString("--" + f.Name)
	if varname != "" {
		b.WriteString(" <" + varname + ">")
	}

	if f.DefValue != "" && f.DefValue != "false" {
		usage += " (default " + f.DefValue + ")"
	}
	return b.String(), usage
}

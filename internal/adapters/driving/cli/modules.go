package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
)

var modulesCmd = &cobra.Command{
	Use:   "modules",
	Short: "Manage the training-module list",
	Long: `View and modify the list of training modules for the next session.

Positions shown by 'modules list' are 1-based and are the positions
'modules remove' accepts.`,
	RunE: runModulesList,
}

var modulesListCmd = &cobra.Command{
	Use:   "list",
	Short: "Show the configured training modules",
	RunE:  runModulesList,
}

var modulesRemoveCmd = &cobra.Command{
	Use:   "remove <position>",
	Short: "Remove the module at a position",
	Args:  cobra.ExactArgs(1),
	RunE:  runModulesRemove,
}

var modulesClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove all modules",
	RunE:  runModulesClear,
}

var modulesAddCmd = &cobra.Command{
	Use:   "add <name>",
	Short: "Add a module to the end of the list",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runModulesAdd,
}

func init() {
	modulesCmd.AddCommand(modulesListCmd)
	modulesCmd.AddCommand(modulesRemoveCmd)
	modulesCmd.AddCommand(modulesClearCmd)
	modulesCmd.AddCommand(modulesAddCmd)
	rootCmd.AddCommand(modulesCmd)
}

// attachConsole attaches a console presenter so the session renders its
// state to the command's output after each operation. Mutation commands
// pass suppressInitial to skip the render that attaching itself triggers.
func attachConsole(cmd *cobra.Command, suppressInitial bool) {
	presenter := newConsolePresenter(cmd.OutOrStdout(), cmd.ErrOrStderr(), suppressInitial)
	sessionService.Attach(cmd.Context(), presenter)
}

func runModulesList(cmd *cobra.Command, _ []string) error {
	if err := requireServices(); err != nil {
		return err
	}

	// Attach renders the current list once.
	attachConsole(cmd, false)
	return nil
}

func runModulesRemove(cmd *cobra.Command, args []string) error {
	if err := requireServices(); err != nil {
		return err
	}

	position, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("invalid position %q: expected a number", args[0])
	}

	attachConsole(cmd, true)
	// Positions are 1-based on the command line.
	return sessionService.RemoveAt(cmd.Context(), position-1)
}

func runModulesClear(cmd *cobra.Command, _ []string) error {
	if err := requireServices(); err != nil {
		return err
	}

	attachConsole(cmd, true)
	return sessionService.ClearAll(cmd.Context())
}

func runModulesAdd(cmd *cobra.Command, args []string) error {
	if err := requireServices(); err != nil {
		return err
	}

	attachConsole(cmd, true)
	return sessionService.Add(cmd.Context(), strings.Join(args, " "))
}

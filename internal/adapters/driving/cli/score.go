package cli

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/airobo-labs/trainer-cli/internal/core/domain"
)

var scoreSubmitName string

var scoreCmd = &cobra.Command{
	Use:   "score",
	Short: "Score recorded training sessions",
}

var scoreReplayCmd = &cobra.Command{
	Use:   "replay <file>",
	Short: "Replay a recorded intention log and compute its score",
	Long: `Replays a session log and prints the final score.

Each line is either an instruction change or an intention sample:

  mode left
  72 10
  95 12
  mode relax

Samples are "<left> <right>" intention percentages (0-100). "mode <name>"
switches the instruction to left, right or relax, closing the previous
period. Blank lines and lines starting with # are skipped.`,
	Args: cobra.ExactArgs(1),
	RunE: runScoreReplay,
}

func init() {
	scoreReplayCmd.Flags().StringVar(&scoreSubmitName, "submit", "",
		"submit the score to the leaderboard under this name")
	scoreCmd.AddCommand(scoreReplayCmd)
	rootCmd.AddCommand(scoreCmd)
}

func runScoreReplay(cmd *cobra.Command, args []string) error {
	if err := requireServices(); err != nil {
		return err
	}

	f, err := os.Open(args[0])
	if err != nil {
		return fmt.Errorf("opening session log: %w", err)
	}
	defer f.Close()

	ctx := cmd.Context()
	scoringService.StartSession(ctx)

	scanner := bufio.NewScanner(f)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		if mode, ok := strings.CutPrefix(line, "mode "); ok {
			err := scoringService.ChangeInstruction(ctx, domain.InstructionMode(strings.TrimSpace(mode)))
			if err != nil {
				return fmt.Errorf("line %d: %w", lineNo, err)
			}
			continue
		}

		fields := strings.Fields(line)
		if len(fields) != 2 {
			return fmt.Errorf("line %d: expected \"<left> <right>\" or \"mode <name>\"", lineNo)
		}
		left, err := strconv.Atoi(fields[0])
		if err != nil {
			return fmt.Errorf("line %d: invalid left value %q", lineNo, fields[0])
		}
		right, err := strconv.Atoi(fields[1])
		if err != nil {
			return fmt.Errorf("line %d: invalid right value %q", lineNo, fields[1])
		}
		scoringService.RecordIntention(ctx, left, right)
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("reading session log: %w", err)
	}

	total := scoringService.Finish(ctx)
	cmd.Printf("Final score: %d\n", total)

	if scoreSubmitName == "" {
		return nil
	}

	kept, err := scoringService.Submit(ctx, scoreSubmitName)
	if err != nil {
		return fmt.Errorf("submitting score: %w", err)
	}
	if kept {
		cmd.Printf("Score submitted for %s.\n", strings.TrimSpace(scoreSubmitName))
	} else {
		cmd.Println("Score did not make the leaderboard.")
	}

	return nil
}

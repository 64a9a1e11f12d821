// Play subcommands: cursor-driven interaction with a persisted session.
// Each invocation reopens the store, applies one operation, and prints the
// effective (overlay-projected) state, so a whole playthrough can be driven
// from the shell against the same log file or database.

package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/koryo-sim/koryo-sim/sim/overlay"
	"github.com/koryo-sim/koryo-sim/sim/session"
)

var (
	playOut  string // JSONL log path
	playDB   string // SQLite database path
	playSeed int64  // Session seed (must match the run that wrote the log)

	feedTail int // Number of trailing feed events to print

	budgetSecurity int
	budgetEconomy  int
	budgetIntel    int
)

func openPlaySession() *session.Session {
	if (playOut == "") == (playDB == "") {
		logrus.Fatalf("Exactly one of --out and --db is required")
	}
	store, err := openStore(playOut, playDB)
	if err != nil {
		logrus.Fatalf("Could not open store: %v", err)
	}
	key := playOut
	if key == "" {
		key = playDB
	}
	return session.New(key, store, playSeed)
}

func printJSON(v any) {
	body, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		logrus.Fatalf("Could not encode output: %v", err)
	}
	fmt.Println(string(body))
}

func printEffective(sess *session.Session) {
	state, err := sess.EffectiveState()
	if err != nil {
		logrus.Fatalf("Could not project state: %v", err)
	}
	printJSON(state)
}

// stateCmd shows the effective state plus the pending decision, if any
var stateCmd = &cobra.Command{
	Use:   "state",
	Short: "Show the effective state at the cursor",
	Run: func(cmd *cobra.Command, args []string) {
		sess := openPlaySession()
		defer sess.Close()

		cursor, err := sess.Cursor()
		if err != nil {
			logrus.Fatalf("Could not read cursor: %v", err)
		}
		pending, err := sess.PendingDecision()
		if err != nil {
			logrus.Fatalf("Could not evaluate pending decision: %v", err)
		}
		fmt.Printf("cursor: %d\n", cursor)
		if pending != "" {
			fmt.Printf("pending_decision: %s\n", pending)
		}
		printEffective(sess)
	},
}

// advanceCmd moves the cursor one turn forward
var advanceCmd = &cobra.Command{
	Use:   "advance",
	Short: "Advance the cursor one turn",
	Run: func(cmd *cobra.Command, args []string) {
		sess := openPlaySession()
		defer sess.Close()

		cursor, err := sess.Advance()
		if err != nil {
			logrus.Fatalf("Could not advance: %v", err)
		}
		fmt.Printf("cursor: %d\n", cursor)
		printEffective(sess)
	},
}

// feedCmd lists the events visible at the cursor
var feedCmd = &cobra.Command{
	Use:   "feed",
	Short: "List the events visible at the cursor",
	Run: func(cmd *cobra.Command, args []string) {
		sess := openPlaySession()
		defer sess.Close()

		events, err := sess.Feed(feedTail)
		if err != nil {
			logrus.Fatalf("Could not read feed: %v", err)
		}
		printJSON(events)
	},
}

// decideCmd resolves the pending decision
var decideCmd = &cobra.Command{
	Use:   "decide <decision-id> <choice-id>",
	Short: "Resolve the pending decision at the cursor",
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		sess := openPlaySession()
		defer sess.Close()

		state, err := sess.RecordDecision(args[0], args[1])
		if err != nil {
			logrus.Fatalf("Could not record decision: %v", err)
		}
		printJSON(state)
	},
}

// budgetCmd sets the budget allocation at the cursor
var budgetCmd = &cobra.Command{
	Use:   "budget",
	Short: "Set the security/economy/intel budget split at the cursor",
	Run: func(cmd *cobra.Command, args []string) {
		sess := openPlaySession()
		defer sess.Close()

		state, err := sess.SetBudget(overlay.BudgetAllocation{
			Security: budgetSecurity,
			Economy:  budgetEconomy,
			Intel:    budgetIntel,
		})
		if err != nil {
			logrus.Fatalf("Could not set budget: %v", err)
		}
		printJSON(state)
	},
}

func init() {
	for _, c := range []*cobra.Command{stateCmd, advanceCmd, feedCmd, decideCmd, budgetCmd} {
		c.Flags().StringVar(&playOut, "out", "", "JSONL log path")
		c.Flags().StringVar(&playDB, "db", "", "SQLite database path")
		c.Flags().Int64Var(&playSeed, "seed", 42, "Session seed")
		rootCmd.AddCommand(c)
	}
	feedCmd.Flags().IntVar(&feedTail, "tail", 10, "Number of trailing events (0 for all)")
	budgetCmd.Flags().IntVar(&budgetSecurity, "security", 34, "Security share")
	budgetCmd.Flags().IntVar(&budgetEconomy, "economy", 33, "Economy share")
	budgetCmd.Flags().IntVar(&budgetIntel, "intel", 33, "Intel share")
}

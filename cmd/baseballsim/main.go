// Command baseballsim is the reference driver for the season
// simulator. It is a thin wrapper over internal/season: every team gets
// a synthetic league-average roster and lineup (buildSyntheticTeam) and
// plays in ratings.DefaultPark; the only file it loads through
// internal/rosterio is the injury catalog. It wires these to the
// simulation core and reports results.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := RootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

package main

import (
	"fmt"

	"github.com/baseball-sim/core/internal/game"
	"github.com/baseball-sim/core/internal/ratings"
)

var fieldOrder = []ratings.Position{
	ratings.PosCatcher, ratings.PosFirst, ratings.PosSecond, ratings.PosThird,
	ratings.PosShortstop, ratings.PosLeftField, ratings.PosCenterField, ratings.PosRightField,
}

// buildSyntheticTeam assembles a league-average roster for teamID.
// run_long_term_sim builds every team this way, so it runs end to end
// on a bare data directory.
func buildSyntheticTeam(teamID string) *game.Team {
	order := make([]string, 0, 9)
	positions := make(map[string]ratings.Position, 9)
	players := make(map[string]*ratings.Batter, 9)

	for i, pos := range fieldOrder {
		id := fmt.Sprintf("%s-bat%d", teamID, i+1)
		players[id] = &ratings.Batter{
			ID: id, Bats: ratings.Right, PrimaryPosition: pos,
			Contact: 50, Power: 50, GroundBall: 50, Pull: 50, VsLeft: 50,
			Fielding: 50, Arm: 50, Speed: 50, Eye: 50, Durability: 50,
			ZoneBottom: 1.5, ZoneTop: 3.5, HeightIn: 72,
		}
		order = append(order, id)
		positions[id] = pos
	}
	dhID := fmt.Sprintf("%s-bat9", teamID)
	players[dhID] = &ratings.Batter{
		ID: dhID, Bats: ratings.Right, PrimaryPosition: ratings.PosDH,
		Contact: 50, Power: 55, GroundBall: 50, Pull: 50, VsLeft: 50,
		Fielding: 40, Arm: 40, Speed: 45, Eye: 50, Durability: 50,
		ZoneBottom: 1.5, ZoneTop: 3.5, HeightIn: 72,
	}
	order = append(order, dhID)
	positions[dhID] = ratings.PosDH

	lineup := game.NewLineupState(order, positions, players, nil)

	starter := &ratings.Pitcher{
		ID: teamID + "-sp1", Throws: ratings.Right, Role: ratings.RoleStarter,
		Control: 50, Movement: 50, ArmStrength: 50, Endurance: 70, Durability: 50,
		HoldRunner: 50, VsLeft: 50, Repertoire: ratings.Repertoire{"fb": 55, "sl": 45},
	}
	startState := &game.PitcherState{
		Pitcher: starter, FatigueStart: 75, FatigueLimit: 105, Available: true, StaffRole: ratings.RoleStarter,
	}

	bullpen := make([]*game.PitcherState, 0, 4)
	roles := []ratings.Role{ratings.RoleLongRelief, ratings.RoleMiddleRelief, ratings.RoleSetup, ratings.RoleCloser}
	for i, role := range roles {
		id := fmt.Sprintf("%s-rp%d", teamID, i+1)
		p := &ratings.Pitcher{
			ID: id, Throws: ratings.Right, Role: role,
			Control: 50, Movement: 50, ArmStrength: 50, Endurance: 20, Durability: 50,
			HoldRunner: 50, VsLeft: 50, Repertoire: ratings.Repertoire{"fb": 52},
		}
		bullpen = append(bullpen, &game.PitcherState{
			Pitcher: p, FatigueStart: 15, FatigueLimit: 30, Available: true, StaffRole: role,
		})
	}

	pitching := game.NewTeamPitchingState(startState, bullpen)

	return &game.Team{Lineup: lineup, Pitching: pitching}
}

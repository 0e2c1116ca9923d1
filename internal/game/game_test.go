package game

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/baseball-sim/core/internal/ratings"
	"github.com/baseball-sim/core/internal/simctx"
	"github.com/baseball-sim/core/internal/tuning"
	"github.com/baseball-sim/core/internal/workload"
)

func newCtx(seed int64) *simctx.Context {
	park := ratings.DefaultPark()
	return simctx.New(seed, tuning.New(), &park, workload.NewState())
}

func buildTeam(prefix string) *Team {
	positions := []ratings.Position{
		ratings.PosCatcher, ratings.PosFirst, ratings.PosSecond, ratings.PosThird,
		ratings.PosShortstop, ratings.PosLeftField, ratings.PosCenterField, ratings.PosRightField, ratings.PosDH,
	}
	order := make([]string, 9)
	players := make(map[string]*ratings.Batter)
	posMap := make(map[string]ratings.Position)
	for i := 0; i < 9; i++ {
		id := fmt.Sprintf("%s-bat%d", prefix, i)
		order[i] = id
		players[id] = &ratings.Batter{
			ID: id, Bats: ratings.Right, Contact: 50, Power: 50, Eye: 50,
			GroundBall: 50, Pull: 50, Fielding: 50, Arm: 50, Speed: 50,
			PrimaryPosition: positions[i],
		}
		posMap[id] = positions[i]
	}
	lineup := NewLineupState(order, posMap, players, nil)

	starter := &ratings.Pitcher{
		ID: prefix + "-sp1", Throws: ratings.Right, Role: "SP1",
		Control: 50, Movement: 50, ArmStrength: 50, Endurance: 50, Durability: 50,
		Repertoire: ratings.Repertoire{"fb": 50},
	}
	ps := &PitcherState{Pitcher: starter, FatigueStart: 80, FatigueLimit: 100, Available: true, StaffRole: ratings.RoleStarter}

	var bullpen []*PitcherState
	roles := []ratings.Role{ratings.RoleLongRelief, ratings.RoleMiddleRelief, ratings.RoleSetup, ratings.RoleCloser}
	for i, role := range roles {
		p := &ratings.Pitcher{
			ID: fmt.Sprintf("%s-%s", prefix, role), Throws: ratings.Right, Role: role,
			Control: 50, Movement: 50, ArmStrength: 50, Endurance: 50, Durability: 50,
			Repertoire: ratings.Repertoire{"fb": 50},
		}
		bullpen = append(bullpen, &PitcherState{Pitcher: p, FatigueStart: 20, FatigueLimit: 30, Available: true, StaffRole: role})
		_ = i
	}

	pitching := NewTeamPitchingState(ps, bullpen)
	return &Team{Lineup: lineup, Pitching: pitching}
}

func TestPlayProducesConsistentScoreAndInnings(t *testing.T) {
	ctx := newCtx(42)
	home := buildTeam("home")
	away := buildTeam("away")

	res := Play(ctx, home, away, Config{MaxInnings: 9})

	require.GreaterOrEqual(t, res.Innings, 9)
	assert.GreaterOrEqual(t, res.HomeScore, 0)
	assert.GreaterOrEqual(t, res.AwayScore, 0)
}

func TestPlayIsDeterministicForSameSeed(t *testing.T) {
	res1 := Play(newCtx(7), buildTeam("home"), buildTeam("away"), Config{MaxInnings: 9})
	res2 := Play(newCtx(7), buildTeam("home"), buildTeam("away"), Config{MaxInnings: 9})
	assert.Equal(t, res1.HomeScore, res2.HomeScore)
	assert.Equal(t, res1.AwayScore, res2.AwayScore)
}

func TestTimesThroughOrderComputesCorrectly(t *testing.T) {
	assert.Equal(t, 1, TimesThroughOrder(1, 9))
	assert.Equal(t, 1, TimesThroughOrder(9, 9))
	assert.Equal(t, 2, TimesThroughOrder(10, 9))
}

func TestOrderRotationSortsBySuffix(t *testing.T) {
	p1 := &ratings.Pitcher{ID: "a", Role: "SP2"}
	p2 := &ratings.Pitcher{ID: "b", Role: "SP1"}
	out := OrderRotation([]*ratings.Pitcher{p1, p2})
	assert.Equal(t, "SP1", string(out[0].Role))
}

func TestSelectReliever_FallsBackToCurrentWhenNoneAvailable(t *testing.T) {
	ctx := newCtx(1)
	current := &PitcherState{Pitcher: &ratings.Pitcher{ID: "cur"}}
	out := SelectReliever(ctx, nil, current, LeverageHigh, ratings.Right, 0)
	assert.Same(t, current, out)
}

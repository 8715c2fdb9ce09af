package replay

// #region imports
import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/fkramer/rps-advisor/internal/engine"
	"github.com/fkramer/rps-advisor/internal/game"
)

// #endregion

// #region fixture-types

// Fixture is the top-level JSON structure for a replay fixture.
type Fixture struct {
	Description   string          `json:"description"`
	GridSize      int             `json:"grid_size"`
	History       [][2]int        `json:"history"`
	Observed      []int           `json:"observed"`
	ExpectedFirst int             `json:"expected_first_recommendation"`
	Expected      []ExpectedRound `json:"expected"`
}

// #endregion fixture-types

// #region fixture-loader

// LoadFixture reads and parses a JSON fixture file.
func LoadFixture(path string) (*Fixture, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read fixture %s: %w", path, err)
	}
	var f Fixture
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse fixture %s: %w", path, err)
	}
	return &f, nil
}

// #endregion fixture-loader

// #region fixture-run

// RunFixture replays a fixture and returns the divergences from its
// expectations. Move values in the fixture are validated here; the engine
// itself does not check them.
func RunFixture(f *Fixture) ([]string, error) {
	pairs := make([][2]game.Move, len(f.History))
	for i, p := range f.History {
		h, c := game.Move(p[0]), game.Move(p[1])
		if !h.Valid() || !c.Valid() {
			return nil, fmt.Errorf("history pair %d out of range: %v", i, p)
		}
		pairs[i] = [2]game.Move{h, c}
	}
	observed := make([]game.Move, len(f.Observed))
	for i, m := range f.Observed {
		mv := game.Move(m)
		if !mv.Valid() {
			return nil, fmt.Errorf("observed move %d out of range: %d", i, m)
		}
		observed[i] = mv
	}

	cfg := engine.DefaultConfig()
	if f.GridSize != 0 {
		cfg.GridSize = f.GridSize
	}
	res, err := Run(cfg, pairs, observed)
	if err != nil {
		return nil, err
	}

	divergences := Verify(f.Expected, res)
	if int(res.FirstRecommendation) != f.ExpectedFirst {
		divergences = append([]string{
			fmt.Sprintf("first recommendation: %s, expected %s",
				res.FirstRecommendation, game.Move(f.ExpectedFirst)),
		}, divergences...)
	}
	return divergences, nil
}

// #endregion fixture-run

// SPDX-License-Identifier: MIT

package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/indoornav/directions"
)

// run executes the CLI against a missing config file, so the built-in
// defaults (campus map) apply unless args say otherwise.
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	base := []string{"--config", filepath.Join(t.TempDir(), "none.yaml"), "--color", "never"}
	cmd.SetArgs(append(base, args...))
	err := cmd.Execute()

	return out.String(), err
}

func TestRoute_Human(t *testing.T) {
	out, err := run(t, "route", "F", "J", "--verbal")
	require.NoError(t, err)

	assert.Contains(t, out, "F -> J")
	assert.Contains(t, out, "levels  0:Level 1  2:Level 2  3:Level 3")
	assert.Contains(t, out, "start")
	assert.Contains(t, out, "Walk east on FG.")
	assert.Contains(t, out, "elevator_enter   Take the elevator to Level 2.")
	assert.Contains(t, out, "Continue for 400 meters.")
	assert.Contains(t, out, "You have arrived at your destination.")
}

func TestRoute_JSON(t *testing.T) {
	out, err := run(t, "--map", "elevator-hub", "--format", "json", "route", "A", "F")
	require.NoError(t, err)

	var leg struct {
		LevelChanges []struct {
			Position int     `json:"position"`
			Level    float64 `json:"level"`
		} `json:"level_changes"`
		Maneuvers []struct {
			Type         string `json:"type"`
			Instructions struct {
				VerbalPostTransition string `json:"verbal_post_transition"`
			} `json:"instructions"`
		} `json:"maneuvers"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &leg))
	require.Len(t, leg.Maneuvers, 5)
	assert.Equal(t, "elevator_enter", leg.Maneuvers[1].Type)
	assert.Equal(t, "Take the elevator to Level 3. Then Turn right onto CF.", leg.Maneuvers[1].Instructions.VerbalPostTransition)
	require.Len(t, leg.LevelChanges, 2)
	assert.Equal(t, 3.0, leg.LevelChanges[1].Level)
}

func TestRoute_LevelHints(t *testing.T) {
	out, err := run(t, "--map", "split-stairs", "route", "z", "x", "--start-level", "0", "--end-level", "4", "--verbal")
	require.NoError(t, err)
	assert.Contains(t, out, "Take the stairs to Level 4. Then Continue on Dx.")
}

func TestRoute_Errors(t *testing.T) {
	_, err := run(t, "route", "F")
	assert.Error(t, err)

	_, err = run(t, "route", "F", "nowhere")
	assert.Error(t, err)

	_, err = run(t, "--map", "mall", "route", "A", "B")
	assert.Error(t, err)

	_, err = run(t, "--format", "xml", "route", "F", "J")
	assert.Error(t, err)
}

func TestLevels(t *testing.T) {
	out, err := run(t, "--map", "levels", "levels", "0")
	require.NoError(t, err)
	assert.Contains(t, out, "EDGE")
	assert.Contains(t, out, "[0,3]")
	assert.Contains(t, out, "Lobby")
	assert.NotContains(t, out, "Parking")

	out, err = run(t, "--map", "levels", "--format", "json", "levels", "50")
	require.NoError(t, err)
	assert.JSONEq(t, "[]", out)

	_, err = run(t, "levels", "first")
	assert.Error(t, err)
}

func TestLocate(t *testing.T) {
	out, err := run(t, "--map", "levels", "--format", "json", "locate", "s")
	require.NoError(t, err)

	var infos []directions.EdgeInfo
	require.NoError(t, json.Unmarshal([]byte(out), &infos))
	require.Len(t, infos, 1)
	assert.Equal(t, "HI", infos[0].Way)
	raw, err := json.Marshal(infos[0].Levels)
	require.NoError(t, err)
	assert.JSONEq(t, "[-2,-1,[0,3]]", string(raw))

	out, err = run(t, "--map", "levels", "--format", "json", "locate", "s", "--level", "7")
	require.NoError(t, err)
	assert.JSONEq(t, "[]", out)

	_, err = run(t, "--map", "levels", "locate", "nope")
	assert.Error(t, err)
	_, err = run(t, "--map", "levels", "locate")
	assert.Error(t, err)
}

func TestFixtures(t *testing.T) {
	out, err := run(t, "fixtures")
	require.NoError(t, err)
	assert.Equal(t, "campus\nelevator-hub\nlevels\nsplit-stairs\n", out)
}

func TestConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "indoornav.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
map:
  fixture: campus
costing:
  elevator_penalty_s: 3600
logging:
  level: error
`), 0o644))

	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"--config", path, "--color", "never", "route", "F", "J"})
	require.NoError(t, cmd.Execute())
	assert.Contains(t, out.String(), "steps_enter")
	assert.NotContains(t, out.String(), "elevator_enter")
}

func TestReach(t *testing.T) {
	out, err := run(t, "--format", "json", "reach", "H", "--level", "2", "--flat")
	require.NoError(t, err)

	var rows []struct {
		Node string `json:"node"`
		Hops int    `json:"hops"`
		Via  string `json:"via"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &rows))
	require.Len(t, rows, 3)
	assert.Equal(t, "H", rows[0].Node)
	assert.Empty(t, rows[0].Via)
	for _, r := range rows[1:] {
		assert.Equal(t, 1, r.Hops)
	}

	out, err = run(t, "reach", "F", "--hops", "1")
	require.NoError(t, err)
	assert.Contains(t, out, "NODE")
	assert.Contains(t, out, "FK")
	assert.Regexp(t, `(?m)^K\s+1\s+FK$`, out)
	assert.NotRegexp(t, `(?m)^D\s`, out, "D is two hops away")

	_, err = run(t, "reach", "F", "--hops", "-1")
	assert.Error(t, err)
}

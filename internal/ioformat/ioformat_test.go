package ioformat_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/latticepose/internal/ioformat"
	"github.com/katalvlaran/latticepose/internal/model"
)

const sampleInput = `{
	"hole": [[0,0],[10,0],[10,10],[0,10]],
	"figure": {"vertices": [[1,1],[9,1],[9,9]], "edges": [[0,1],[1,2]]},
	"epsilon": 1000,
	"bonuses": [{"position": [5,5], "bonus": "GLOBALIST", "problem": 3}]
}`

func TestDecodeInputParsesAWellFormedDocument(t *testing.T) {
	require := require.New(t)

	in, err := ioformat.DecodeInput(strings.NewReader(sampleInput))
	require.NoError(err)
	require.Len(in.Hole, 4)
	require.Len(in.Figure.Vertices, 3)
	require.Equal([]model.Edge{{V: 0, W: 1}, {V: 1, W: 2}}, in.Figure.Edges)
	require.EqualValues(1000, in.Epsilon)
	require.Len(in.Bonuses, 1)
	require.Equal(model.Globalist, in.Bonuses[0].Type)
	require.Equal(3, in.Bonuses[0].Problem)
}

func TestDecodeInputRejectsOutOfRangeEdge(t *testing.T) {
	require := require.New(t)

	bad := `{"hole":[[0,0]],"figure":{"vertices":[[0,0]],"edges":[[0,5]]},"epsilon":0}`
	_, err := ioformat.DecodeInput(strings.NewReader(bad))
	require.ErrorIs(err, ioformat.ErrInvalidInput)
}

func TestDecodeInputRejectsUnknownBonus(t *testing.T) {
	require := require.New(t)

	bad := `{"hole":[],"figure":{"vertices":[],"edges":[]},"epsilon":0,"bonuses":[{"position":[0,0],"bonus":"NOPE","problem":1}]}`
	_, err := ioformat.DecodeInput(strings.NewReader(bad))
	require.ErrorIs(err, ioformat.ErrInvalidInput)
}

func TestEncodeOutputIncludesBreakALegEdge(t *testing.T) {
	require := require.New(t)

	pose := model.Pose{{X: 1, Y: 1}, {X: 9, Y: 1}}
	var buf bytes.Buffer
	err := ioformat.EncodeOutput(&buf, pose, model.ActiveBonuses{
		BreakALeg:    true,
		BreakLegEdge: model.Edge{V: 0, W: 1},
	})
	require.NoError(err)
	require.Contains(buf.String(), `"bonus":"BREAK_A_LEG"`)
	require.Contains(buf.String(), `"edge":[0,1]`)
}

func TestEncodeOutputOmitsBonusesWhenNoneActive(t *testing.T) {
	require := require.New(t)

	pose := model.Pose{{X: 1, Y: 1}}
	var buf bytes.Buffer
	err := ioformat.EncodeOutput(&buf, pose, model.ActiveBonuses{})
	require.NoError(err)
	require.NotContains(buf.String(), "bonuses")
}

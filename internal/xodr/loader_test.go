package xodr

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/specialistvlad/opendrivego/internal/model"
	"github.com/specialistvlad/opendrivego/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoader_Load(t *testing.T) {
	testCases := []struct {
		name string
		src  string
		want *model.Document
	}{
		{name: "two roads", src: testutil.TwoRoadXODR, want: testutil.TwoRoadDocument()},
		{name: "junction", src: testutil.JunctionXODR, want: testutil.JunctionDocument()},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctx, _ := testutil.NewContext(t)
			dir := testutil.WriteFiles(t, map[string]string{"net.xodr": tc.src})
			path := filepath.Join(dir, "net.xodr")

			doc, err := NewLoader().Load(ctx, path)
			require.NoError(t, err)

			assert.Equal(t, []string{path}, doc.Sources)
			// Lengths are not part of the in-memory fixtures.
			for i := range doc.Roads {
				doc.Roads[i].Length = 0
			}
			if diff := cmp.Diff(tc.want.Roads, doc.Roads); diff != "" {
				t.Errorf("roads mismatch (-want +got):\n%s", diff)
			}
			if diff := cmp.Diff(tc.want.Junctions, doc.Junctions); diff != "" {
				t.Errorf("junctions mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestLoader_Header(t *testing.T) {
	ctx, _ := testutil.NewContext(t)

	doc, err := NewLoader().Decode(ctx, strings.NewReader(testutil.TwoRoadXODR), "mem")
	require.NoError(t, err)

	assert.Equal(t, model.Header{Name: "two roads", Version: "1.4"}, doc.Header)
	assert.Equal(t, 10.0, doc.Roads[0].Length)
}

func TestLoader_GeometryKinds(t *testing.T) {
	ctx, _ := testutil.NewContext(t)
	src := `<OpenDRIVE>
  <road id="7">
    <planView>
      <geometry s="0" x="1" y="2" hdg="0.1" length="3"><arc curvature="0.05"/></geometry>
      <geometry s="3" x="4" y="5" hdg="0.2" length="6"><spiral curvStart="0.05" curvEnd="0"/></geometry>
      <geometry s="9" x="7" y="8" hdg="0.3" length="1"><paramPoly3 aU="0" bU="1" pRange="normalized"/></geometry>
      <geometry s="10" x="9" y="9" hdg="0.3" length="1"></geometry>
    </planView>
  </road>
</OpenDRIVE>`

	doc, err := NewLoader().Decode(ctx, strings.NewReader(src), "mem")
	require.NoError(t, err)

	require.Len(t, doc.Roads, 1)
	assert.Equal(t, model.NoJunction, doc.Roads[0].Junction)
	want := []model.Geometry{
		model.ArcGeometry{GeometryHeader: model.GeometryHeader{S: 0, X: 1, Y: 2, Hdg: 0.1, Length: 3}, Curvature: 0.05},
		model.SpiralGeometry{GeometryHeader: model.GeometryHeader{S: 3, X: 4, Y: 5, Hdg: 0.2, Length: 6}, CurvStart: 0.05, CurvEnd: 0},
		model.UnknownGeometry{GeometryHeader: model.GeometryHeader{S: 9, X: 7, Y: 8, Hdg: 0.3, Length: 1}, Kind: "paramPoly3"},
		model.UnknownGeometry{GeometryHeader: model.GeometryHeader{S: 10, X: 9, Y: 9, Hdg: 0.3, Length: 1}, Kind: "none"},
	}
	if diff := cmp.Diff(want, doc.Roads[0].Geometries); diff != "" {
		t.Errorf("geometry mismatch (-want +got):\n%s", diff)
	}
}

func TestLoader_FirstLaneSectionOnly(t *testing.T) {
	ctx, logs := testutil.NewContext(t)
	src := `<OpenDRIVE>
  <road id="1" junction="-1">
    <lanes>
      <laneSection s="0">
        <left><lane id="1" type="sidewalk"><width sOffset="0" a="2"/><width sOffset="4" a="2.5"/></lane></left>
        <right><lane id="-1" type="driving"><width sOffset="0" a="3.5" b="0.01"/></lane></right>
      </laneSection>
      <laneSection s="50">
        <right><lane id="-1" type="parking"><width sOffset="0" a="9"/></lane></right>
      </laneSection>
    </lanes>
  </road>
</OpenDRIVE>`

	doc, err := NewLoader().Decode(ctx, strings.NewReader(src), "mem")
	require.NoError(t, err)

	r := doc.Roads[0]
	assert.Equal(t, []model.Lane{{ID: 1, Type: "sidewalk", Widths: []model.Width{{A: 2}, {SOffset: 4, A: 2.5}}}}, r.Left)
	assert.Equal(t, []model.Lane{{ID: -1, Type: "driving", Widths: []model.Width{{A: 3.5, B: 0.01}}}}, r.Right)
	assert.Contains(t, logs.String(), "only the first is used")
}

func TestLoader_ConnectionDefaults(t *testing.T) {
	ctx, _ := testutil.NewContext(t)
	src := `<OpenDRIVE>
  <junction id="3">
    <connection id="0" incomingRoad="1" connectingRoad="2"/>
  </junction>
</OpenDRIVE>`

	doc, err := NewLoader().Decode(ctx, strings.NewReader(src), "mem")
	require.NoError(t, err)

	assert.Empty(t, doc.Roads)
	assert.Equal(t, []model.Connection{{IncomingRoad: 1, ConnectingRoad: 2, ContactPoint: "start"}}, doc.Junctions[0].Connections)
}

func TestLoader_Errors(t *testing.T) {
	testCases := []struct {
		name    string
		src     string
		errPart string
	}{
		{name: "not xml", src: "road {}", errPart: "failed to decode OpenDRIVE file"},
		{name: "wrong root", src: "<Network></Network>", errPart: "failed to decode OpenDRIVE file"},
		{name: "non numeric id", src: `<OpenDRIVE><road id="a"/></OpenDRIVE>`, errPart: "failed to decode OpenDRIVE file"},
		{
			name:    "bad element type",
			src:     `<OpenDRIVE><road id="4"><link><predecessor elementType="tunnel" elementId="1"/></link></road></OpenDRIVE>`,
			errPart: "road 4: predecessor: unknown link element type",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctx, _ := testutil.NewContext(t)

			_, err := NewLoader().Decode(ctx, strings.NewReader(tc.src), "mem")

			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.errPart)
		})
	}
}

func TestLoader_MissingFile(t *testing.T) {
	ctx, _ := testutil.NewContext(t)

	_, err := NewLoader().Load(ctx, filepath.Join(t.TempDir(), "missing.xodr"))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to open OpenDRIVE file")
}

func TestLoader_LeavesAbsentRecordsNil(t *testing.T) {
	ctx, _ := testutil.NewContext(t)

	doc, err := NewLoader().Decode(ctx, strings.NewReader(testutil.TwoRoadXODR), "roads.xodr")
	require.NoError(t, err)
	assert.Nil(t, doc.Junctions)
	assert.Len(t, doc.Roads, 2)

	doc, err = NewLoader().Decode(ctx, strings.NewReader(`<OpenDRIVE><header name="empty"/></OpenDRIVE>`), "empty.xodr")
	require.NoError(t, err)
	assert.Nil(t, doc.Roads)
	assert.Nil(t, doc.Junctions)
}

package app

import (
	"bytes"
	"context"
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/specialistvlad/opendrivego/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestApp writes files to a temp directory and returns an App configured
// to load path (relative to that directory) with debug logging.
func newTestApp(t *testing.T, files map[string]string, path, output string) (*App, *bytes.Buffer, *testutil.SafeBuffer) {
	t.Helper()

	dir := testutil.WriteFiles(t, files)
	cfg, err := NewConfig(Config{
		DocumentPath: filepath.Join(dir, path),
		LogLevel:     "debug",
		LogFormat:    "text",
		Output:       output,
	})
	require.NoError(t, err)

	out := &bytes.Buffer{}
	logs := &testutil.SafeBuffer{}
	return NewApp(out, logs, cfg, nil), out, logs
}

func TestApp_Run_TextSummary(t *testing.T) {
	testCases := []struct {
		name  string
		files map[string]string
		path  string
		want  string
	}{
		{
			name:  "two roads from hcl",
			files: map[string]string{"net.hcl": testutil.TwoRoadHCL},
			path:  "net.hcl",
			want: "road 1 junction=false lanes=1 successors=[2:start] predecessors=[] geometries=1\n" +
				"road 2 junction=false lanes=1 successors=[] predecessors=[] geometries=1\n",
		},
		{
			name:  "junction from xodr",
			files: map[string]string{"net.xodr": testutil.JunctionXODR},
			path:  "net.xodr",
			want: "road 1 junction=false lanes=1 successors=[2:end 3:end] predecessors=[] geometries=1\n" +
				"road 2 junction=true lanes=1 successors=[] predecessors=[] geometries=0\n" +
				"road 3 junction=true lanes=1 successors=[] predecessors=[] geometries=0\n",
		},
		{
			name:  "empty directory",
			files: map[string]string{"readme.txt": "nothing here"},
			path:  ".",
			want:  "",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			a, out, logs := newTestApp(t, tc.files, tc.path, OutputText)

			require.NoError(t, a.Run(context.Background()))
			assert.Equal(t, tc.want, out.String())
			assert.Contains(t, logs.String(), "Road map built.")
			require.NotNil(t, a.Roads())
		})
	}
}

func TestApp_Run_JSONSummary(t *testing.T) {
	a, out, _ := newTestApp(t, map[string]string{"net.hcl": testutil.TwoRoadHCL}, "net.hcl", OutputJSON)

	require.NoError(t, a.Run(context.Background()))

	var got struct {
		Segments []struct {
			ID         int `json:"id"`
			Successors []struct {
				RoadID  int  `json:"road_id"`
				IsStart bool `json:"is_start"`
			} `json:"successors"`
			Geometries []map[string]any `json:"geometries"`
		} `json:"segments"`
	}
	require.NoError(t, json.Unmarshal(out.Bytes(), &got))
	require.Len(t, got.Segments, 2)
	assert.Equal(t, 1, got.Segments[0].ID)
	require.Len(t, got.Segments[0].Successors, 1)
	assert.Equal(t, 2, got.Segments[0].Successors[0].RoadID)
	assert.True(t, got.Segments[0].Successors[0].IsStart)
	require.Len(t, got.Segments[0].Geometries, 1)
	assert.Equal(t, "line", got.Segments[0].Geometries[0]["kind"])
}

func TestApp_Run_Errors(t *testing.T) {
	testCases := []struct {
		name    string
		files   map[string]string
		path    string
		wantErr string
	}{
		{name: "missing path", files: map[string]string{}, path: "absent.hcl", wantErr: "failed to load document"},
		{name: "unsupported format", files: map[string]string{"net.json": "{}"}, path: "net.json", wantErr: "unsupported document format"},
		{name: "invalid hcl", files: map[string]string{"net.hcl": "road {"}, path: "net.hcl", wantErr: "failed to parse HCL file"},
		{
			name:    "lane without width",
			files:   map[string]string{"net.hcl": "road {\n  id = 1\n  lanes {\n    left {\n      lane {\n        id = -1\n      }\n    }\n  }\n}\n"},
			path:    "net.hcl",
			wantErr: "failed to assemble road segments",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			a, out, _ := newTestApp(t, tc.files, tc.path, OutputText)

			err := a.Run(context.Background())
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.wantErr)
			assert.Empty(t, out.String())
			assert.Nil(t, a.Roads())
		})
	}
}

func TestNewConfig(t *testing.T) {
	testCases := []struct {
		name       string
		cfg        Config
		wantErr    bool
		wantOutput string
	}{
		{name: "defaults output to text", cfg: Config{DocumentPath: "net.hcl"}, wantOutput: OutputText},
		{name: "json output", cfg: Config{DocumentPath: "net.hcl", Output: OutputJSON}, wantOutput: OutputJSON},
		{name: "missing path", cfg: Config{}, wantErr: true},
		{name: "bad output", cfg: Config{DocumentPath: "net.hcl", Output: "yaml"}, wantErr: true},
		{name: "bad port", cfg: Config{DocumentPath: "net.hcl", ListenPort: 70000}, wantErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := NewConfig(tc.cfg)
			if tc.wantErr {
				require.Error(t, err)
				assert.Nil(t, got)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.wantOutput, got.Output)
		})
	}
}

func TestNewLogger(t *testing.T) {
	testCases := []struct {
		name      string
		level     string
		format    string
		wantDebug bool
		wantJSON  bool
	}{
		{name: "debug text", level: "debug", format: "text", wantDebug: true},
		{name: "info json", level: "info", format: "json", wantJSON: true},
		{name: "unknown level falls back to info", level: "loud", format: "text"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			buf := &bytes.Buffer{}
			logger := newLogger(tc.level, tc.format, buf)

			logger.Debug("debug line")
			logger.Info("info line")

			assert.Equal(t, tc.wantDebug, bytes.Contains(buf.Bytes(), []byte("debug line")))
			assert.Contains(t, buf.String(), "info line")
			assert.Equal(t, tc.wantJSON, bytes.HasPrefix(buf.Bytes(), []byte("{")))
		})
	}
}

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRun(t *testing.T) {
	rq := require.New(t)

	routingFile := filepath.Join(t.TempDir(), "routing.yaml")
	rq.NoError(os.WriteFile(routingFile, []byte(`
upstreams:
  - key: ases
    base: https://api.asesadmin.com/api/v1
    weight: 1
    agencies:
      - id: 28
        name: Ceti
        weight: 1
        allocation: {api_weight: 1, static_weight: 1}
        static_numbers:
          - number: "5491123456789"
            weight: 1
`), 0o600))

	testCases := []struct {
		name        string
		args        []string
		contains    []string
		notContains []string
		wantErr     bool
	}{
		{
			name:     "Default routing",
			args:     []string{"--runs", "200", "--seed", "1"},
			contains: []string{"OUTCOME", "ases/28/", "foxy/28/api"},
		},
		{
			name:        "Forced upstream",
			args:        []string{"--runs", "10", "--upstream", "foxy"},
			contains:    []string{"foxy/28/api", "100.00%"},
			notContains: []string{"ases"},
		},
		{
			name:     "Invalid override is counted",
			args:     []string{"--runs", "5", "--upstream", "nope"},
			contains: []string{"error/InvalidOverride", "100.00%"},
		},
		{
			name:     "Routing file with static split",
			args:     []string{"--runs", "500", "--seed", "3", "--routing", routingFile},
			contains: []string{"ases/28/api", "ases/28/static"},
		},
		{
			name:    "Missing routing file",
			args:    []string{"--routing", filepath.Join(t.TempDir(), "missing.yaml")},
			wantErr: true,
		},
		{
			name:    "Non positive runs",
			args:    []string{"--runs", "0"},
			wantErr: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(*testing.T) {
			var out bytes.Buffer

			cmd := newRootCmd()
			cmd.SetOut(&out)
			cmd.SetErr(&out)
			cmd.SetArgs(tc.args)

			err := cmd.Execute()
			if tc.wantErr {
				rq.Error(err)
				return
			}

			rq.NoError(err)

			for _, s := range tc.contains {
				rq.Contains(out.String(), s)
			}

			for _, s := range tc.notContains {
				rq.NotContains(out.String(), s)
			}
		})
	}
}

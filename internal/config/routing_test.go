package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"numroute/internal/config"
	"numroute/internal/domain/entity"
)

const routingYAML = `
upstreams:
  - key: ases
    base: https://api.asesadmin.com/api/v1
    weight: 70
    agencies:
      - id: 28
        name: Ceti
        weight: 100
        allocation:
          api_weight: 30
          static_weight: 70
        static_numbers:
          - number: "+54 9 11 2345-6789"
            weight: 1
  - key: foxy
    base: https://api.foxyadminbot.info/api/v1
    weight: 30
    agencies:
      - id: 28
        name: Ceti
        weight: 100
`

func TestParseRouting(t *testing.T) {
	rq := require.New(t)

	testCases := []struct {
		name    string
		data    string
		wantErr bool
	}{
		{name: "Valid", data: routingYAML},
		{name: "Empty", data: "", wantErr: true},
		{name: "No upstreams", data: "upstreams: []", wantErr: true},
		{name: "Unknown field", data: "upstreams:\n  - key: a\n    base: http://a\n    wieght: 1\n", wantErr: true},
		{name: "Missing base", data: "upstreams:\n  - key: a\n    weight: 1\n", wantErr: true},
		{name: "Invalid base", data: "upstreams:\n  - key: a\n    base: not a url\n", wantErr: true},
		{name: "Duplicate key", data: "upstreams:\n  - key: a\n    base: http://a\n  - key: a\n    base: http://b\n", wantErr: true},
		{
			name:    "Agency without id",
			data:    "upstreams:\n  - key: a\n    base: http://a\n    agencies:\n      - name: x\n        weight: 1\n",
			wantErr: true,
		},
		{name: "Negative weights are accepted", data: "upstreams:\n  - key: a\n    base: http://a\n    weight: -1\n"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(*testing.T) {
			_, err := config.ParseRouting([]byte(tc.data))
			if tc.wantErr {
				rq.Error(err)
				return
			}

			rq.NoError(err)
		})
	}
}

func TestRoutingTreeEntities(t *testing.T) {
	rq := require.New(t)

	tree, err := config.ParseRouting([]byte(routingYAML))
	rq.NoError(err)

	upstreams := tree.Entities()
	rq.Len(upstreams, 2)

	ases := upstreams[0]
	rq.Equal("ases", ases.Key)
	rq.InDelta(70, ases.Weight, 0)
	rq.Len(ases.Agencies, 1)
	rq.Equal(&entity.Allocation{APIWeight: 30, StaticWeight: 70}, ases.Agencies[0].Allocation)
	rq.Equal([]entity.StaticNumber{{Number: "+54 9 11 2345-6789", Weight: 1}}, ases.Agencies[0].StaticNumbers)
	rq.True(ases.Agencies[0].SplitsTraffic())

	foxy := upstreams[1]
	rq.Nil(foxy.Agencies[0].Allocation)
	rq.False(foxy.Agencies[0].SplitsTraffic())
}

func TestRoutingLoad(t *testing.T) {
	rq := require.New(t)

	upstreams, err := config.Routing{}.Load()
	rq.NoError(err)
	rq.Len(upstreams, 2)
	rq.Equal("ases", upstreams[0].Key)
	rq.Equal("foxy", upstreams[1].Key)
	rq.Equal("Ceti", upstreams[1].Agencies[0].Name)

	path := filepath.Join(t.TempDir(), "routing.yaml")
	rq.NoError(os.WriteFile(path, []byte(routingYAML), 0o600))

	upstreams, err = config.Routing{File: path}.Load()
	rq.NoError(err)
	rq.True(upstreams[0].Agencies[0].SplitsTraffic())

	_, err = config.Routing{File: filepath.Join(t.TempDir(), "missing.yaml")}.Load()
	rq.Error(err)
}

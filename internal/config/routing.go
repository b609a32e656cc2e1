package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/samber/lo"
	"gopkg.in/yaml.v3"

	"numroute/internal/domain/entity"
	"numroute/internal/domain/value"
)

var validate = validator.New(validator.WithRequiredStructEnabled()) //nolint:gochecknoglobals // skip

// Routing points at the YAML routing tree. Without a file the built-in tree
// is used.
type Routing struct {
	File string `env:"ROUTING_FILE"`
}

type RoutingTree struct {
	Upstreams []UpstreamSpec `yaml:"upstreams" validate:"required,min=1,unique=Key,dive"`
}

type UpstreamSpec struct {
	Key      string       `yaml:"key" validate:"required"`
	Base     string       `yaml:"base" validate:"required,url"`
	Weight   float64      `yaml:"weight"`
	Agencies []AgencySpec `yaml:"agencies" validate:"unique=ID,dive"`
}

type AgencySpec struct {
	ID            int64           `yaml:"id" validate:"required"`
	Name          string          `yaml:"name"`
	Weight        float64         `yaml:"weight"`
	Allocation    *AllocationSpec `yaml:"allocation,omitempty"`
	StaticNumbers []StaticSpec    `yaml:"static_numbers,omitempty" validate:"dive"`
}

type AllocationSpec struct {
	APIWeight    float64 `yaml:"api_weight"`
	StaticWeight float64 `yaml:"static_weight"`
}

type StaticSpec struct {
	Number string  `yaml:"number" validate:"required"`
	Weight float64 `yaml:"weight"`
}

// DefaultRouting is the tree used when ROUTING_FILE is not set.
func DefaultRouting() RoutingTree {
	ceti := AgencySpec{ID: 28, Name: "Ceti", Weight: 100}

	return RoutingTree{
		Upstreams: []UpstreamSpec{
			{
				Key:      "ases",
				Base:     "https://api.asesadmin.com/api/v1",
				Weight:   70,
				Agencies: []AgencySpec{ceti},
			},
			{
				Key:      "foxy",
				Base:     "https://api.foxyadminbot.info/api/v1",
				Weight:   30,
				Agencies: []AgencySpec{ceti},
			},
		},
	}
}

func (r Routing) Load() ([]entity.Upstream, error) {
	if r.File == "" {
		return DefaultRouting().Entities(), nil
	}

	data, err := os.ReadFile(r.File)
	if err != nil {
		return nil, fmt.Errorf("os.ReadFile: %w", err)
	}

	tree, err := ParseRouting(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", r.File, err)
	}

	return tree.Entities(), nil
}

// ParseRouting rejects unknown fields, so a typo in a weight key does not
// silently zero that weight.
func ParseRouting(data []byte) (RoutingTree, error) {
	var tree RoutingTree

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	if err := dec.Decode(&tree); err != nil && !errors.Is(err, io.EOF) {
		return RoutingTree{}, fmt.Errorf("yaml.Decode: %w", err)
	}

	if err := validate.Struct(tree); err != nil {
		return RoutingTree{}, fmt.Errorf("validate.Struct: %w", err)
	}

	return tree, nil
}

// Entities converts the tree. Static numbers are normalized at selection
// time, not here, so a bad entry fails only the requests that pick it.
func (t RoutingTree) Entities() []entity.Upstream {
	return lo.Map(t.Upstreams, func(u UpstreamSpec, _ int) entity.Upstream {
		return entity.Upstream{
			Key:    u.Key,
			Base:   u.Base,
			Weight: u.Weight,
			Agencies: lo.Map(u.Agencies, func(a AgencySpec, _ int) entity.Agency {
				agency := entity.Agency{
					ID:     value.AgencyID(a.ID),
					Name:   a.Name,
					Weight: a.Weight,
					StaticNumbers: lo.Map(a.StaticNumbers, func(s StaticSpec, _ int) entity.StaticNumber {
						return entity.StaticNumber{Number: s.Number, Weight: s.Weight}
					}),
				}

				if a.Allocation != nil {
					agency.Allocation = &entity.Allocation{
						APIWeight:    a.Allocation.APIWeight,
						StaticWeight: a.Allocation.StaticWeight,
					}
				}

				return agency
			}),
		}
	})
}

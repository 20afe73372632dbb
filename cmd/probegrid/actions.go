package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/edaniels/golog"
	"github.com/golang/geo/r3"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"

	"go.viam.com/lightprobe/config"
	"go.viam.com/lightprobe/octree"
)

func loadOctree(c *cli.Context, logger golog.Logger) (*config.Config, *octree.ProbeOctree, error) {
	conf, err := config.Read(c.String(flagConfig), logger)
	if err != nil {
		return nil, nil, err
	}
	oct, err := conf.NewOctree(logger)
	if err != nil {
		return nil, nil, errors.Wrapf(err, "failed to build octree from %s", conf.ConfigFilePath)
	}
	return conf, oct, nil
}

func buildAction(c *cli.Context, logger golog.Logger) error {
	_, oct, err := loadOctree(c, logger)
	if err != nil {
		return err
	}
	s, err := oct.Stats()
	if err != nil {
		return err
	}
	fmt.Fprintln(c.App.Writer, s.String())
	return nil
}

func queryAction(c *cli.Context, logger golog.Logger) error {
	conf, oct, err := loadOctree(c, logger)
	if err != nil {
		return err
	}

	positions := conf.Queries
	if list, ok := c.Generic(flagPosition).(*positionList); ok && len(*list) > 0 {
		positions = *list
	}
	if len(positions) == 0 {
		return errors.New("no positions to query -- pass --position or add queries to the config")
	}

	leaves, err := oct.TestBatch(c.Context, positions, c.Int(flagWorkers))
	if err != nil {
		return err
	}

	t := table.NewWriter()
	t.AppendHeader(table.Row{"Position", "Leaf center", "Half extent", "Depth", "Probes"})
	for i, leaf := range leaves {
		t.AppendRow(table.Row{
			formatVector(positions[i]),
			formatVector(leaf.Position),
			formatVector(leaf.BoundingBox),
			leaf.Depth(),
			formatIndices(leaf.Indices()),
		})
	}
	fmt.Fprintln(c.App.Writer, t.Render())
	return nil
}

// serializedPositionsPrefix marks a whole list written back by the cli when it copies a flag
// value between its names.
const serializedPositionsPrefix = "positions:::"

// positionList collects one "x,y,z" position per flag occurrence. A string slice flag would
// split every position on its commas.
type positionList []r3.Vector

func (l *positionList) Set(s string) error {
	if rest, ok := strings.CutPrefix(s, serializedPositionsPrefix); ok {
		var restored positionList
		if rest != "" {
			for _, part := range strings.Split(rest, ";") {
				p, err := parsePosition(part)
				if err != nil {
					return err
				}
				restored = append(restored, p)
			}
		}
		*l = restored
		return nil
	}
	p, err := parsePosition(s)
	if err != nil {
		return err
	}
	*l = append(*l, p)
	return nil
}

func (l *positionList) String() string {
	strs := make([]string, len(*l))
	for i, p := range *l {
		strs[i] = formatVector(p)
	}
	return strings.Join(strs, "; ")
}

// Serialize writes the list at full precision so it can be restored by Set.
func (l *positionList) Serialize() string {
	strs := make([]string, len(*l))
	for i, p := range *l {
		strs[i] = strings.Join([]string{
			strconv.FormatFloat(p.X, 'g', -1, 64),
			strconv.FormatFloat(p.Y, 'g', -1, 64),
			strconv.FormatFloat(p.Z, 'g', -1, 64),
		}, ",")
	}
	return serializedPositionsPrefix + strings.Join(strs, ";")
}

// parsePosition parses "x,y,z".
func parsePosition(s string) (r3.Vector, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 3 {
		return r3.Vector{}, errors.Errorf("position %q must have the form x,y,z", s)
	}
	var xyz [3]float64
	for i, part := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
		if err != nil {
			return r3.Vector{}, errors.Wrapf(err, "invalid coordinate in position %q", s)
		}
		xyz[i] = v
	}
	return r3.Vector{X: xyz[0], Y: xyz[1], Z: xyz[2]}, nil
}

func formatVector(v r3.Vector) string {
	return fmt.Sprintf("%.3f, %.3f, %.3f", v.X, v.Y, v.Z)
}

func formatIndices(indices []int) string {
	if len(indices) == 0 {
		return "-"
	}
	strs := make([]string, len(indices))
	for i, idx := range indices {
		strs[i] = strconv.Itoa(idx)
	}
	return strings.Join(strs, " ")
}

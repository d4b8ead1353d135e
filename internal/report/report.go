// Package report renders clustering results for people and tools.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/TrevorS/meanshift"
)

// Format selects the output encoding.
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// ParseFormat validates a user-supplied format name.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(s)); f {
	case FormatText, FormatJSON, FormatYAML:
		return f, nil
	default:
		return "", fmt.Errorf("report: unknown format %q (want text, json or yaml)", s)
	}
}

// Summary is the serializable form of a clustering result.
type Summary struct {
	Count       int       `json:"count" yaml:"count"`
	Points      int       `json:"points" yaml:"points"`
	Unconverged int       `json:"unconverged" yaml:"unconverged"`
	Clusters    []Cluster `json:"clusters" yaml:"clusters"`
}

// Cluster is one center in a Summary.
type Cluster struct {
	Label  string    `json:"label" yaml:"label"`
	Size   int       `json:"size" yaml:"size"`
	Center []float64 `json:"center" yaml:"center,flow"`
}

// Summarize converts a result into a Summary.
func Summarize(res *meanshift.Result) Summary {
	s := Summary{
		Count:       len(res.Centers),
		Points:      len(res.Labels),
		Unconverged: res.Unconverged,
		Clusters:    make([]Cluster, len(res.Centers)),
	}
	for j, c := range res.Centers {
		s.Clusters[j] = Cluster{Label: c.Label, Size: res.Sizes[j], Center: c.Coords}
	}
	return s
}

// Write renders res to w in the given format.
func Write(w io.Writer, res *meanshift.Result, format Format) error {
	s := Summarize(res)
	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(s)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(s); err != nil {
			return err
		}
		return enc.Close()
	case FormatText, "":
		return writeText(w, s)
	default:
		return fmt.Errorf("report: unknown format %q", format)
	}
}

func writeText(w io.Writer, s Summary) error {
	if _, err := fmt.Fprintf(w, "clusters: %d\n", s.Count); err != nil {
		return err
	}
	for _, c := range s.Clusters {
		coords := make([]string, len(c.Center))
		for i, v := range c.Center {
			coords[i] = strconv.FormatFloat(v, 'g', -1, 64)
		}
		if _, err := fmt.Fprintf(w, "%s\tsize=%d\t(%s)\n", c.Label, c.Size, strings.Join(coords, ", ")); err != nil {
			return err
		}
	}
	return nil
}

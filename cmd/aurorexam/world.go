package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/nathoo/aurorexam/engine/world"
)

var worldCmd = &cobra.Command{
	Use:   "world",
	Short: "Validate the world definition and print its location graph as YAML",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		m, err := loadWorld(cfg.World)
		if err != nil {
			return err
		}
		out, err := dumpWorld(m)
		if err != nil {
			return err
		}
		_, err = cmd.OutOrStdout().Write(out)
		return err
	},
}

func init() {
	rootCmd.AddCommand(worldCmd)
}

type worldDump struct {
	Title     string       `yaml:"title"`
	Start     string       `yaml:"start"`
	Locations []worldPlace `yaml:"locations"`
}

type worldPlace struct {
	ID          string            `yaml:"id"`
	Name        string            `yaml:"name"`
	Connections map[string]string `yaml:"connections,omitempty"`
	Items       []string          `yaml:"items,omitempty"`
	Challenge   string            `yaml:"challenge,omitempty"`
	Dark        bool              `yaml:"dark,omitempty"`
	Variants    []string          `yaml:"variants,omitempty"`
}

// dumpWorld renders the map in a stable order: the start room first,
// then breadth-first along exits in direction order.
func dumpWorld(m *world.Map) ([]byte, error) {
	d := worldDump{Title: m.Title, Start: string(m.Start)}
	for _, id := range m.Order() {
		loc := m.Locations[id]
		p := worldPlace{
			ID:        string(loc.ID),
			Name:      loc.Name,
			Challenge: string(loc.Challenge),
			Dark:      loc.Dark,
		}
		if len(loc.Connections) > 0 {
			p.Connections = make(map[string]string, len(loc.Connections))
			for dir, to := range loc.Connections {
				p.Connections[string(dir)] = string(to)
			}
		}
		for _, item := range loc.Items {
			p.Items = append(p.Items, string(item))
		}
		p.Variants = world.Variants(loc.ID)
		d.Locations = append(d.Locations, p)
	}

	out, err := yaml.Marshal(d)
	if err != nil {
		return nil, fmt.Errorf("marshaling world: %w", err)
	}
	return out, nil
}

package messmenu

import (
	_ "embed"
	"fmt"
	"time"

	"gopkg.in/yaml.v3"
)

//go:embed menu.yaml
var menuYAML []byte

// Day is one day of the weekly mess menu.
type Day struct {
	Day       string   `yaml:"day"`
	Breakfast []string `yaml:"breakfast"`
	Lunch     []string `yaml:"lunch"`
	Snacks    []string `yaml:"snacks"`
	Dinner    []string `yaml:"dinner"`
}

// Meal is a labelled course list, in serving order.
type Meal struct {
	Name  string
	Items []string
}

func (d Day) Meals() []Meal {
	return []Meal{
		{Name: "Breakfast", Items: d.Breakfast},
		{Name: "Lunch", Items: d.Lunch},
		{Name: "Snacks", Items: d.Snacks},
		{Name: "Dinner", Items: d.Dinner},
	}
}

// Parse reads a weekly menu. Every day must be a weekday name and appear once.
func Parse(data []byte) ([]Day, error) {
	var week []Day
	if err := yaml.Unmarshal(data, &week); err != nil {
		return nil, fmt.Errorf("parse mess menu: %w", err)
	}
	seen := make(map[string]bool, len(week))
	for _, d := range week {
		if _, err := weekday(d.Day); err != nil {
			return nil, err
		}
		if seen[d.Day] {
			return nil, fmt.Errorf("mess menu lists %s twice", d.Day)
		}
		seen[d.Day] = true
	}
	return week, nil
}

func weekday(name string) (time.Weekday, error) {
	for wd := time.Sunday; wd <= time.Saturday; wd++ {
		if wd.String() == name {
			return wd, nil
		}
	}
	return 0, fmt.Errorf("mess menu: unknown day %q", name)
}

// Weekly is the built-in menu.
func Weekly() ([]Day, error) {
	return Parse(menuYAML)
}

package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"restaurant/internal/core/application/usecases/commands"
	"restaurant/internal/core/application/usecases/queries"
	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/menu"
	"restaurant/internal/core/domain/model/staff"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// Seed is the YAML document loaded by the seed command.
type Seed struct {
	Tables []string       `yaml:"tables"`
	Staff  []SeedStaff    `yaml:"staff"`
	Menu   []SeedMenuItem `yaml:"menu"`
}

type SeedStaff struct {
	Name string `yaml:"name"`
	Role string `yaml:"role"`
}

type SeedMenuItem struct {
	Name     string `yaml:"name"`
	Price    string `yaml:"price"`
	Category string `yaml:"category"`
	// Available defaults to true.
	Available *bool `yaml:"available"`
}

// SeedReport counts what a seed run created and what already existed.
type SeedReport struct {
	Tables    int
	Staff     int
	MenuItems int
	Skipped   int
}

// ReadSeedFile parses the seed document at path.
func ReadSeedFile(path string) (Seed, error) {
	f, err := os.Open(path)
	if err != nil {
		return Seed{}, err
	}
	defer f.Close()

	return ParseSeed(f)
}

// ParseSeed decodes a seed document. Unknown keys are rejected.
func ParseSeed(r io.Reader) (Seed, error) {
	var seed Seed

	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&seed); err != nil && !errors.Is(err, io.EOF) {
		return Seed{}, fmt.Errorf("parse seed: %w", err)
	}

	return seed, nil
}

// ApplySeed creates the seed's tables, staff and menu items through the
// regular command handlers. Names that already exist are skipped, so running
// it twice is harmless.
func ApplySeed(ctx context.Context, root *CompositionRoot, seed Seed) (SeedReport, error) {
	var report SeedReport

	existingTables, err := root.CreateListTablesQueryHandler().Handle(ctx, queries.NewListTablesQuery())
	if err != nil {
		return report, err
	}
	tableNames := make(map[string]bool, len(existingTables))
	for _, t := range existingTables {
		tableNames[t.Name] = true
	}

	createTable := root.CreateCreateTableCommandHandler()
	for _, name := range seed.Tables {
		if tableNames[name] {
			report.Skipped++
			continue
		}
		cmd, err := commands.NewCreateTableCommand(kernel.NewUUID(), name)
		if err != nil {
			return report, fmt.Errorf("table %q: %w", name, err)
		}
		if _, err = createTable.Handle(ctx, cmd); err != nil {
			return report, fmt.Errorf("table %q: %w", name, err)
		}
		tableNames[name] = true
		report.Tables++
	}

	existingStaff, err := root.CreateListStaffQueryHandler().Handle(ctx, queries.NewListStaffQuery())
	if err != nil {
		return report, err
	}
	staffNames := make(map[string]bool, len(existingStaff))
	for _, s := range existingStaff {
		staffNames[s.Name] = true
	}

	createStaff := root.CreateCreateStaffCommandHandler()
	for _, s := range seed.Staff {
		if staffNames[s.Name] {
			report.Skipped++
			continue
		}
		role, err := staff.ParseRole(s.Role)
		if err != nil {
			return report, fmt.Errorf("staff %q: %w", s.Name, err)
		}
		cmd, err := commands.NewCreateStaffCommand(kernel.NewUUID(), s.Name, role)
		if err != nil {
			return report, fmt.Errorf("staff %q: %w", s.Name, err)
		}
		if _, err = createStaff.Handle(ctx, cmd); err != nil {
			return report, fmt.Errorf("staff %q: %w", s.Name, err)
		}
		staffNames[s.Name] = true
		report.Staff++
	}

	existingMenu, err := root.CreateListMenuItemsQueryHandler().Handle(ctx, queries.NewListMenuItemsQuery(false))
	if err != nil {
		return report, err
	}
	menuNames := make(map[string]bool, len(existingMenu))
	for _, m := range existingMenu {
		menuNames[m.Name] = true
	}

	createMenuItem := root.CreateCreateMenuItemCommandHandler()
	for _, m := range seed.Menu {
		if menuNames[m.Name] {
			report.Skipped++
			continue
		}
		cmd, err := m.command()
		if err != nil {
			return report, fmt.Errorf("menu item %q: %w", m.Name, err)
		}
		if _, err = createMenuItem.Handle(ctx, cmd); err != nil {
			return report, fmt.Errorf("menu item %q: %w", m.Name, err)
		}
		menuNames[m.Name] = true
		report.MenuItems++
	}

	return report, nil
}

func (m SeedMenuItem) command() (commands.CreateMenuItemCommand, error) {
	price, err := decimal.NewFromString(m.Price)
	if err != nil {
		return commands.CreateMenuItemCommand{}, fmt.Errorf("price %q: %w", m.Price, err)
	}
	category, err := menu.ParseCategory(m.Category)
	if err != nil {
		return commands.CreateMenuItemCommand{}, err
	}
	available := m.Available == nil || *m.Available

	return commands.NewCreateMenuItemCommand(kernel.NewUUID(), m.Name, price, category, available)
}

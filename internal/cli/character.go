package cli

import (
	"fmt"

	"github.com/julianstephens/taskquest/internal/constants"
	"github.com/julianstephens/taskquest/internal/engine"
)

// StatusCmd prints the character sheet.
type StatusCmd struct{}

func (c *StatusCmd) Run(ctx *Context) error {
	character, err := ctx.Store.Character()
	if err != nil {
		return err
	}

	fmt.Printf("%s (level %d)\n", character.Name, character.Level)
	fmt.Printf("XP: %d / %d (lifetime %d)\n", character.XP, engine.XPRequiredForLevel(character.Level), character.TotalXP)
	if character.UnspentPoints > 0 {
		fmt.Printf("Unspent stat points: %d\n", character.UnspentPoints)
	}
	fmt.Println()
	for _, stat := range constants.Stats {
		block := character.Stat(stat)
		fmt.Printf("  %-13s %3d  (progress %d/%d)\n", stat, block.Value, block.Progress, block.Value+1)
	}
	return nil
}

// SpendCmd allocates one unspent stat point.
type SpendCmd struct {
	Stat string `arg:"" help:"Stat to raise (strength|endurance|intelligence|agility|charisma)."`
}

func (c *SpendCmd) Run(ctx *Context) error {
	stat, err := ParseStat(c.Stat)
	if err != nil {
		return err
	}

	character, err := ctx.Store.Character()
	if err != nil {
		return err
	}
	if character.UnspentPoints == 0 {
		fmt.Println("No unspent stat points.")
		return nil
	}

	updated := engine.SpendPoint(character, stat)
	if err := ctx.Store.SaveCharacter(updated); err != nil {
		return err
	}

	fmt.Printf("%s raised to %d (%d points left)\n", stat, updated.Stat(stat).Value, updated.UnspentPoints)
	return nil
}

// RenameCmd renames the character.
type RenameCmd struct {
	Name string `arg:"" help:"New character name."`
}

func (c *RenameCmd) Run(ctx *Context) error {
	character, err := ctx.Store.Character()
	if err != nil {
		return err
	}
	character.Name = c.Name
	if err := ctx.Store.SaveCharacter(character); err != nil {
		return err
	}
	fmt.Printf("Character renamed to %s\n", c.Name)
	return nil
}

package cli

import (
	"fmt"

	"github.com/julianstephens/taskquest/internal/storage"
)

// InitCmd creates the store with a fresh level 1 character.
type InitCmd struct {
	Name string `help:"Character name." default:""`
}

func (c *InitCmd) Run(ctx *Context) error {
	if err := ctx.Store.Init(); err != nil {
		return err
	}

	if c.Name != "" {
		if err := ctx.Store.Load(); err != nil {
			return err
		}
		character, err := ctx.Store.Character()
		if err != nil {
			return err
		}
		character.Name = c.Name
		if err := ctx.Store.SaveCharacter(character); err != nil {
			return err
		}
	}

	name := c.Name
	if name == "" {
		name = storage.DefaultCharacterName
	}
	fmt.Printf("Initialized taskquest at %s. Good luck, %s!\n", ctx.Store.ConfigPath(), name)
	return nil
}

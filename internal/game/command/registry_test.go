package command

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func TestDefaultRegistry(t *testing.T) {
	r := DefaultRegistry()
	assert.NotNil(t, r)
	assert.Len(t, r.Commands(), len(BuiltinCommands()))
}

func TestResolve_CanonicalName(t *testing.T) {
	r := DefaultRegistry()

	cmd, ok := r.Resolve("attack")
	assert.True(t, ok)
	assert.Equal(t, "attack", cmd.Name)
	assert.Equal(t, HandlerAttack, cmd.Handler)
}

func TestResolve_Alias(t *testing.T) {
	r := DefaultRegistry()

	cmd, ok := r.Resolve("a")
	assert.True(t, ok)
	assert.Equal(t, "attack", cmd.Name)
}

func TestResolve_NotFound(t *testing.T) {
	r := DefaultRegistry()

	_, ok := r.Resolve("flee")
	assert.False(t, ok, "there is no fleeing")
}

func TestResolve_EveryHandler(t *testing.T) {
	r := DefaultRegistry()

	tests := []struct {
		input   string
		handler string
	}{
		{"d", HandlerDefend},
		{"cast", HandlerSkill},
		{"throw", HandlerItem},
		{"go", HandlerNext},
		{"drink", HandlerUse},
		{"st", HandlerStatus},
		{"sk", HandlerSkills},
		{"i", HandlerInventory},
		{"shop", HandlerShop},
		{"b", HandlerBuy},
		{"?", HandlerHelp},
		{"exit", HandlerQuit},
	}

	for _, tt := range tests {
		cmd, ok := r.Resolve(tt.input)
		require.True(t, ok, "input %q not found", tt.input)
		assert.Equal(t, tt.handler, cmd.Handler, "input %q wrong handler", tt.input)
	}
}

func TestNewRegistry_DuplicateName(t *testing.T) {
	cmds := []Command{
		{Name: "test", Handler: "a"},
		{Name: "test", Handler: "b"},
	}
	_, err := NewRegistry(cmds)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate command name")
}

func TestNewRegistry_DuplicateAlias(t *testing.T) {
	cmds := []Command{
		{Name: "test1", Aliases: []string{"t"}, Handler: "a"},
		{Name: "test2", Aliases: []string{"t"}, Handler: "b"},
	}
	_, err := NewRegistry(cmds)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate alias")
}

func TestCommandsByCategory(t *testing.T) {
	r := DefaultRegistry()
	cats := r.CommandsByCategory()

	assert.Len(t, cats[CategoryCombat], 4)
	assert.Contains(t, cats, CategoryExplore)
	assert.Contains(t, cats, CategoryShop)
	assert.Contains(t, cats, CategorySystem)
	assert.Equal(t, "attack", cats[CategoryCombat][0].Name)
}

func TestCheck_RequiresArguments(t *testing.T) {
	r := DefaultRegistry()
	cmd, ok := r.Resolve("skill")
	require.True(t, ok)

	err := cmd.Check(Parse("skill"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "skill <id>")
	assert.NoError(t, cmd.Check(Parse("skill raio")))
}

func TestPropertyAllAliasesResolveToCanonical(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		r := DefaultRegistry()
		cmds := r.Commands()
		idx := rapid.IntRange(0, len(cmds)-1).Draw(t, "cmd_idx")
		cmd := cmds[idx]

		// Canonical name should resolve
		resolved, ok := r.Resolve(cmd.Name)
		if !ok {
			t.Fatalf("canonical name %q did not resolve", cmd.Name)
		}
		if resolved.Name != cmd.Name {
			t.Fatalf("canonical name %q resolved to %q", cmd.Name, resolved.Name)
		}

		// All aliases should resolve to same command
		for _, alias := range cmd.Aliases {
			aliasResolved, ok := r.Resolve(alias)
			if !ok {
				t.Fatalf("alias %q did not resolve", alias)
			}
			if aliasResolved.Name != cmd.Name {
				t.Fatalf("alias %q resolved to %q, expected %q", alias, aliasResolved.Name, cmd.Name)
			}
		}
	})
}

func TestIsCombatCommand(t *testing.T) {
	assert.True(t, IsCombatCommand(HandlerAttack))
	assert.True(t, IsCombatCommand(HandlerItem))
	assert.False(t, IsCombatCommand(HandlerNext))
	assert.False(t, IsCombatCommand(HandlerBuy))
}

package registry

import (
	"testing"

	"github.com/vovakirdan/tui-match3/internal/core"
)

type stubGame struct{ id string }

func (g stubGame) ID() string { return g.id }
func (g stubGame) Title() string { return "Stub " + g.id }
func (g stubGame) Reset(core.RuntimeConfig) {}
func (g stubGame) Step(core.InputFrame) core.StepResult { return core.StepResult{} }
func (g stubGame) Render(*core.Screen) {}
func (g stubGame) State() core.GameState { return core.GameState{} }

type describedGame struct{ stubGame }

func (describedGame) Description() string { return "has a blurb" }

func TestRegisterReadsDescription(t *testing.T) {
	Register("described-stub", func() Game { return describedGame{stubGame{id: "described-stub"}} })
	Register("plain-stub", func() Game { return stubGame{id: "plain-stub"} })

	for _, info := range List() {
		switch info.ID {
		case "described-stub":
			if info.Description != "has a blurb" {
				t.Errorf("Description = %q, expected %q", info.Description, "has a blurb")
			}
		case "plain-stub":
			if info.Description != "" {
				t.Errorf("Description = %q, expected empty", info.Description)
			}
		}
	}
}

func TestRegisterListCreate(t *testing.T) {
	Register("zz-stub", func() Game { return stubGame{id: "zz-stub"} })
	Register("aa-stub", func() Game { return stubGame{id: "aa-stub"} })

	if !Exists("aa-stub") || Exists("missing") {
		t.Errorf("Exists() does not match registrations")
	}

	list := List()
	idx := map[string]int{}
	for i, info := range list {
		idx[info.ID] = i
	}
	if idx["aa-stub"] >= idx["zz-stub"] {
		t.Errorf("List() = %v, expected sorted by ID", list)
	}
	if list[idx["aa-stub"]].Title != "Stub aa-stub" {
		t.Errorf("Title = %q, expected %q", list[idx["aa-stub"]].Title, "Stub aa-stub")
	}

	g, err := Create("zz-stub")
	if err != nil || g.ID() != "zz-stub" {
		t.Errorf("Create() = %v, %v", g, err)
	}
	if _, err := Create("missing"); err == nil {
		t.Error("Create(missing) should fail")
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register("dup-stub", func() Game { return stubGame{id: "dup-stub"} })
	defer func() {
		if recover() == nil {
			t.Error("second Register() should panic")
		}
	}()
	Register("dup-stub", func() Game { return stubGame{id: "dup-stub"} })
}

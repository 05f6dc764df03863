package game_object

import (
	"math"
	"testing"

	"github.com/Carmen-Shannon/oxy-sleeve/common"
)

func TestWorldMatrixComposesParents(t *testing.T) {
	group := NewGameObject(WithName("sleeve"), WithRotation(0, math.Pi/2, 0))
	child := NewGameObject(WithName("front"), WithPosition(0, 0, 1))
	group.Add(child)

	m := child.WorldMatrix()
	p := common.TransformPoint(m[:], 0, 0, 0)
	// rotating +Z by 90 degrees about Y lands on +X
	if math.Abs(float64(p[0]-1)) > 1e-5 || math.Abs(float64(p[2])) > 1e-5 {
		t.Fatalf("world origin of child got %v want (1, 0, 0)", p)
	}
	if child.Parent() == nil || child.Parent().ID() != group.ID() {
		t.Fatal("child parent not set")
	}
}

func TestWalkSkipsDisabledSubtrees(t *testing.T) {
	root := NewGameObject(WithName("root"))
	hidden := NewGameObject(WithName("hidden"), WithEnabled(false))
	hidden.Add(NewGameObject(WithName("grandchild")))
	root.Add(hidden)
	root.Add(NewGameObject(WithName("shown")))

	var names []string
	root.Walk(func(g GameObject) { names = append(names, g.Name()) })
	if len(names) != 2 || names[0] != "root" || names[1] != "shown" {
		t.Fatalf("walk order got %v want [root shown]", names)
	}
}

func TestAddReparents(t *testing.T) {
	a := NewGameObject()
	b := NewGameObject()
	c := NewGameObject()
	a.Add(c)
	b.Add(c)
	if len(a.Children()) != 0 || len(b.Children()) != 1 {
		t.Fatalf("children got %d/%d want 0/1", len(a.Children()), len(b.Children()))
	}
}

package engine

import (
	"testing"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/google/uuid"
)

type testComponent struct {
	BaseComponent
	started bool
	updates int
}

func (t *testComponent) Start()                  { t.started = true }
func (t *testComponent) Update(deltaTime float32) { t.updates++ }

func almostEqual(a, b rl.Vector3, eps float32) bool {
	dx := a.X - b.X
	dy := a.Y - b.Y
	dz := a.Z - b.Z
	if dx < 0 {
		dx = -dx
	}
	if dy < 0 {
		dy = -dy
	}
	if dz < 0 {
		dz = -dz
	}
	return dx < eps && dy < eps && dz < eps
}

func TestNewGameObject(t *testing.T) {
	obj := NewGameObject("TestObject")

	if obj.Name != "TestObject" {
		t.Errorf("Expected name 'TestObject', got '%s'", obj.Name)
	}

	if obj.UID == uuid.Nil {
		t.Error("UID should not be nil")
	}

	if obj.components == nil {
		t.Error("components slice should be initialized")
	}

	if obj.Transform.Scale != (rl.Vector3{X: 1, Y: 1, Z: 1}) {
		t.Errorf("Expected identity scale, got %v", obj.Transform.Scale)
	}
}

func TestGameObjectUniqueUIDs(t *testing.T) {
	obj1 := NewGameObject("First")
	obj2 := NewGameObject("Second")

	if obj1.UID == obj2.UID {
		t.Error("GameObjects should have unique UIDs")
	}
}

func TestGameObjectHasTag(t *testing.T) {
	obj := NewGameObject("Test")
	obj.Tags = []string{"enemy", "ai"}

	if !obj.HasTag("enemy") {
		t.Error("HasTag should return true for existing tag")
	}

	if obj.HasTag("player") {
		t.Error("HasTag should return false for non-existent tag")
	}

	obj2 := NewGameObject("Test2")
	if obj2.HasTag("anything") {
		t.Error("HasTag should return false when Tags is nil/empty")
	}
}

func TestGameObjectParentChild(t *testing.T) {
	parent := NewGameObject("Parent")
	child := NewGameObject("Child")

	parent.AddChild(child)

	if child.Parent != parent {
		t.Error("Child.Parent should be set")
	}

	if len(parent.Children) != 1 {
		t.Errorf("Expected 1 child, got %d", len(parent.Children))
	}

	parent.RemoveChild(child)

	if child.Parent != nil {
		t.Error("Child.Parent should be cleared after RemoveChild")
	}
	if len(parent.Children) != 0 {
		t.Errorf("Expected 0 children after removal, got %d", len(parent.Children))
	}
}

func TestGetComponent(t *testing.T) {
	obj := NewGameObject("Test")
	comp := &testComponent{}
	obj.AddComponent(comp)

	if found := GetComponent[*testComponent](obj); found != comp {
		t.Error("GetComponent should return the attached component")
	}

	empty := NewGameObject("Empty")
	if found := GetComponent[*testComponent](empty); found != nil {
		t.Error("GetComponent should return nil when component is missing")
	}

	if comp.GetGameObject() != obj {
		t.Error("AddComponent should back-reference the owner")
	}
}

func TestWorldScaleComposition(t *testing.T) {
	parent := NewGameObject("Parent")
	parent.Transform.Scale = rl.Vector3{X: 2, Y: 3, Z: 4}

	child := NewGameObject("Child")
	child.Transform.Scale = rl.Vector3{X: 0.5, Y: 1, Z: 2}
	parent.AddChild(child)

	got := child.WorldScale()
	want := rl.Vector3{X: 1, Y: 3, Z: 8}
	if !almostEqual(got, want, 1e-5) {
		t.Errorf("WorldScale = %v, want %v", got, want)
	}
}

func TestTransformPointIdentity(t *testing.T) {
	obj := NewGameObject("Test")
	obj.Transform.Position = rl.Vector3{X: 1, Y: 2, Z: 3}

	got := obj.TransformPoint(rl.Vector3{X: 1, Y: 0, Z: 0})
	want := rl.Vector3{X: 2, Y: 2, Z: 3}
	if !almostEqual(got, want, 1e-5) {
		t.Errorf("TransformPoint = %v, want %v", got, want)
	}
}

func TestTransformPointScaled(t *testing.T) {
	obj := NewGameObject("Test")
	obj.Transform.Scale = rl.Vector3{X: 2, Y: 3, Z: 4}

	got := obj.TransformPoint(rl.Vector3{X: 1, Y: 1, Z: 1})
	want := rl.Vector3{X: 2, Y: 3, Z: 4}
	if !almostEqual(got, want, 1e-5) {
		t.Errorf("TransformPoint = %v, want %v", got, want)
	}
}

func TestTransformPointRotated(t *testing.T) {
	obj := NewGameObject("Test")
	obj.Transform.Rotation = rl.Vector3{Y: 180}

	// A half turn about Y mirrors X and Z
	got := obj.TransformPoint(rl.Vector3{X: 1, Y: 0, Z: 2})
	want := rl.Vector3{X: -1, Y: 0, Z: -2}
	if !almostEqual(got, want, 1e-4) {
		t.Errorf("TransformPoint = %v, want %v", got, want)
	}
}

func TestBasisVectorsIdentity(t *testing.T) {
	obj := NewGameObject("Test")

	if !almostEqual(obj.Right(), rl.Vector3{X: 1}, 1e-5) {
		t.Errorf("Right = %v, want +X", obj.Right())
	}
	if !almostEqual(obj.Up(), rl.Vector3{Y: 1}, 1e-5) {
		t.Errorf("Up = %v, want +Y", obj.Up())
	}
	if !almostEqual(obj.Forward(), rl.Vector3{Z: 1}, 1e-5) {
		t.Errorf("Forward = %v, want +Z", obj.Forward())
	}
}

func TestBasisVectorsRotated(t *testing.T) {
	obj := NewGameObject("Test")
	obj.Transform.Rotation = rl.Vector3{Y: 180}

	if !almostEqual(obj.Right(), rl.Vector3{X: -1}, 1e-4) {
		t.Errorf("Right after half turn = %v, want -X", obj.Right())
	}
	if !almostEqual(obj.Up(), rl.Vector3{Y: 1}, 1e-4) {
		t.Errorf("Up after half turn about Y = %v, want +Y", obj.Up())
	}
}

func TestStartAndUpdate(t *testing.T) {
	obj := NewGameObject("Test")
	comp := &testComponent{}
	obj.AddComponent(comp)

	obj.Start()
	obj.Start() // second Start must be a no-op
	if !comp.started {
		t.Error("Start should reach components")
	}

	obj.Update(0.016)
	obj.Active = false
	obj.Update(0.016)
	if comp.updates != 1 {
		t.Errorf("Expected 1 update (inactive objects skip), got %d", comp.updates)
	}
}

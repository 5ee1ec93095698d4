// Package scenefile loads scene definitions from YAML into a Scene and a
// query World.
package scenefile

import (
	"fmt"
	"os"

	rl "github.com/gen2brain/raylib-go/raylib"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"overlap3d/internal/components"
	"overlap3d/internal/engine"
	"overlap3d/internal/physics"
)

type File struct {
	Name    string      `yaml:"name"`
	Objects []ObjectDef `yaml:"objects"`
}

type ObjectDef struct {
	Name      string        `yaml:"name"`
	Tags      []string      `yaml:"tags,omitempty"`
	Position  [3]float32    `yaml:"position,omitempty"`
	Rotation  [3]float32    `yaml:"rotation,omitempty"`
	Scale     [3]float32    `yaml:"scale,omitempty"`
	Colliders []ColliderDef `yaml:"colliders,omitempty"`
}

type ColliderDef struct {
	Shape   string     `yaml:"shape"` // box, sphere, capsule
	Size    [3]float32 `yaml:"size,omitempty"`
	Radius  float32    `yaml:"radius,omitempty"`
	Height  float32    `yaml:"height,omitempty"`
	Axis    string     `yaml:"axis,omitempty"` // x, y, z (default y)
	Offset  [3]float32 `yaml:"offset,omitempty"`
	Layer   uint32     `yaml:"layer,omitempty"`
	Trigger bool       `yaml:"trigger,omitempty"`
}

// Load reads a YAML scene file from disk.
func Load(path string, log *zap.Logger) (*engine.Scene, *physics.World, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("read scene file: %w", err)
	}
	return Parse(data, log)
}

// Parse builds a Scene and a populated World from YAML scene data. Objects
// with unknown collider shapes keep the object but skip the collider; a
// diagnostic names the shape.
func Parse(data []byte, log *zap.Logger) (*engine.Scene, *physics.World, error) {
	if log == nil {
		log = zap.NewNop()
	}

	var file File
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, nil, fmt.Errorf("parse scene file: %w", err)
	}

	name := file.Name
	if name == "" {
		name = "Scene"
	}
	scene := engine.NewScene(name)
	world := physics.NewWorld(log)

	for _, def := range file.Objects {
		obj := engine.NewGameObject(def.Name)
		obj.Tags = def.Tags
		obj.Transform.Position = vec3(def.Position)
		obj.Transform.Rotation = vec3(def.Rotation)
		obj.Transform.Scale = scaleOrIdentity(def.Scale)

		for _, cd := range def.Colliders {
			col, err := buildCollider(cd)
			if err != nil {
				log.Warn("scenefile: skipping collider",
					zap.String("object", def.Name),
					zap.Error(err))
				continue
			}
			obj.AddComponent(col)
		}

		scene.AddGameObject(obj)
		world.AddObject(obj)
	}

	return scene, world, nil
}

func buildCollider(def ColliderDef) (components.Collider, error) {
	switch def.Shape {
	case "box":
		col := components.NewBoxCollider(vec3(def.Size))
		applyBase(&col.ColliderBase, def)
		return col, nil
	case "sphere":
		col := components.NewSphereCollider(def.Radius)
		applyBase(&col.ColliderBase, def)
		return col, nil
	case "capsule":
		col := components.NewCapsuleCollider(def.Radius, def.Height)
		col.Direction = parseAxis(def.Axis)
		applyBase(&col.ColliderBase, def)
		return col, nil
	default:
		return nil, fmt.Errorf("unknown collider shape %q", def.Shape)
	}
}

func applyBase(base *components.ColliderBase, def ColliderDef) {
	base.Offset = vec3(def.Offset)
	base.Layer = def.Layer
	base.IsTrigger = def.Trigger
}

func parseAxis(s string) components.Axis {
	switch s {
	case "x":
		return components.AxisX
	case "z":
		return components.AxisZ
	default:
		return components.AxisY
	}
}

func vec3(v [3]float32) rl.Vector3 {
	return rl.Vector3{X: v[0], Y: v[1], Z: v[2]}
}

// scaleOrIdentity treats an omitted scale as (1,1,1).
func scaleOrIdentity(v [3]float32) rl.Vector3 {
	if v == [3]float32{} {
		return rl.Vector3{X: 1, Y: 1, Z: 1}
	}
	return vec3(v)
}

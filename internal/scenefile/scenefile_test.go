package scenefile

import (
	"os"
	"path/filepath"
	"testing"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"overlap3d/internal/components"
	"overlap3d/internal/engine"
	"overlap3d/internal/physics"
)

const sampleScene = `
name: arena
objects:
  - name: crate
    position: [5, 0, 0]
    scale: [2, 2, 2]
    tags: [prop]
    colliders:
      - shape: box
        size: [1, 1, 1]
  - name: orb
    position: [5, 0, 1.5]
    colliders:
      - shape: sphere
        radius: 0.5
        layer: 4
        trigger: true
  - name: pillar
    position: [-10, 0, 0]
    colliders:
      - shape: capsule
        radius: 0.5
        height: 4
        axis: y
`

func TestParseBuildsSceneAndWorld(t *testing.T) {
	scene, world, err := Parse([]byte(sampleScene), nil)
	require.NoError(t, err)
	require.NotNil(t, scene)
	require.NotNil(t, world)

	assert.Equal(t, "arena", scene.Name)
	assert.Len(t, scene.GameObjects, 3)
	assert.Len(t, world.Colliders(), 3)

	crate := scene.FindByName("crate")
	require.NotNil(t, crate)
	assert.True(t, crate.HasTag("prop"))
	assert.Equal(t, rl.Vector3{X: 2, Y: 2, Z: 2}, crate.Transform.Scale)

	box := engine.GetComponent[*components.BoxCollider](crate)
	require.NotNil(t, box)
	half := box.GetHalfExtents()
	assert.InDelta(t, 1, half.X, 1e-5, "scale doubles the unit box")

	orb := scene.FindByName("orb")
	require.NotNil(t, orb)
	sphere := engine.GetComponent[*components.SphereCollider](orb)
	require.NotNil(t, sphere)
	assert.True(t, sphere.Trigger())
	assert.Equal(t, uint32(4), sphere.LayerBit())

	pillar := scene.FindByName("pillar")
	require.NotNil(t, pillar)
	capsule := engine.GetComponent[*components.CapsuleCollider](pillar)
	require.NotNil(t, capsule)
	assert.Equal(t, components.AxisY, capsule.Direction)
}

func TestParseDefaultsScaleToIdentity(t *testing.T) {
	scene, _, err := Parse([]byte("objects:\n  - name: bare\n"), nil)
	require.NoError(t, err)

	bare := scene.FindByName("bare")
	require.NotNil(t, bare)
	assert.Equal(t, rl.Vector3{X: 1, Y: 1, Z: 1}, bare.Transform.Scale)
}

func TestParseSkipsUnknownShape(t *testing.T) {
	const data = `
objects:
  - name: weird
    colliders:
      - shape: mesh
      - shape: sphere
        radius: 1
`
	core, logs := observer.New(zap.WarnLevel)

	scene, world, err := Parse([]byte(data), zap.New(core))
	require.NoError(t, err, "unknown shape is not a parse error")

	weird := scene.FindByName("weird")
	require.NotNil(t, weird, "object survives its bad collider")
	assert.Len(t, world.Colliders(), 1, "the sphere still registers")

	require.Equal(t, 1, logs.Len())
	assert.Contains(t, logs.All()[0].ContextMap()["error"], "mesh")
}

func TestParseMalformedYAML(t *testing.T) {
	_, _, err := Parse([]byte("objects: [unclosed"), nil)
	assert.Error(t, err)
}

func TestParsedWorldIsQueryable(t *testing.T) {
	_, world, err := Parse([]byte(sampleScene), nil)
	require.NoError(t, err)

	// crate (box at x=5) and orb (sphere at z offset 1.5) sit together,
	// the pillar is far away
	hits := world.OverlapSphere(rl.Vector3{X: 5}, 2, physics.DefaultFilter())
	assert.Len(t, hits, 2)

	hits = world.OverlapSphere(rl.Vector3{X: -10}, 1, physics.DefaultFilter())
	require.Len(t, hits, 1)
	assert.Equal(t, "pillar", hits[0].GetGameObject().Name)
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scene.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sampleScene), 0o644))

	scene, world, err := Load(path, nil)
	require.NoError(t, err)
	assert.Len(t, scene.GameObjects, 3)
	assert.Len(t, world.Colliders(), 3)

	_, _, err = Load(filepath.Join(t.TempDir(), "missing.yaml"), nil)
	assert.Error(t, err)
}

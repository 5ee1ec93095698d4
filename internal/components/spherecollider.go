package components

type SphereCollider struct {
	ColliderBase
	Radius float32
}

func NewSphereCollider(radius float32) *SphereCollider {
	return &SphereCollider{
		Radius: radius,
	}
}

// GetWorldRadius returns the radius scaled by the largest axis of the lossy
// world scale. Spheres don't deform under non-uniform scale, so the largest
// axis is the representative choice.
func (s *SphereCollider) GetWorldRadius() float32 {
	scale := s.GetGameObject().WorldScale()
	return s.Radius * maxf(scale.X, maxf(scale.Y, scale.Z))
}

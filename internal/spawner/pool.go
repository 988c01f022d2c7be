package spawner

import (
	"errors"

	"xr-cubes/internal/xr"

	"github.com/mlange-42/ark/ecs"
)

// ErrPoolFull is returned when a grid would not fit in the pool's marker limit.
var ErrPoolFull = errors.New("spawner: marker limit reached")

// Pool creates and removes marker entities. Despawn is idempotent.
type Pool struct {
	world   *ecs.World
	markers *ecs.Map2[Transform, Marker]
	filter  *ecs.Filter1[Marker]
	limit   int
}

// NewPool returns a pool on w holding at most limit markers (no limit if limit <= 0).
func NewPool(w *ecs.World, limit int) *Pool {
	return &Pool{
		world:   w,
		markers: ecs.NewMap2[Transform, Marker](w),
		filter:  ecs.NewFilter1[Marker](w),
		limit:   limit,
	}
}

// Fits reports whether replacing owned live markers with n new ones stays within the limit.
func (p *Pool) Fits(owned, n int) bool {
	return p.limit <= 0 || p.Live()-owned+n <= p.limit
}

// Spawn creates a cube marker of edge size at pos.
func (p *Pool) Spawn(pos [3]float32, size float32) (ecs.Entity, error) {
	if p.limit > 0 && p.Live() >= p.limit {
		return ecs.Entity{}, ErrPoolFull
	}
	e := p.markers.NewEntity(
		&Transform{Position: pos, Orientation: xr.IdentityPose.Orientation},
		&Marker{Size: size},
	)
	return e, nil
}

// Despawn removes e if it is still alive.
func (p *Pool) Despawn(e ecs.Entity) {
	if e.IsZero() || !p.world.Alive(e) {
		return
	}
	p.world.RemoveEntity(e)
}

// Live counts the marker entities alive in the world, however they were removed.
func (p *Pool) Live() int {
	q := p.filter.Query()
	n := q.Count()
	q.Close()
	return n
}

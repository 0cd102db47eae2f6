package physics

import (
	"math/rand"
	"time"

	"forge3d/internal/components"
	"forge3d/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	// Gravity is the base vertical acceleration; per-body mass scaling is
	// applied on top of it.
	Gravity = -9.81

	// MaxStepDelta caps the integration step so frame hitches cannot blow
	// up the simulation.
	MaxStepDelta = 0.033

	groundY         = 0.0
	pairRestitution = 0.8
	contactSlack    = 0.01
	bounceCutoff    = 0.1
)

// NoiseFunc supplies the random perturbation used by the tipping heuristic
// and player pushes. Values are expected in [-1, 1). Swappable so tests can
// pin or disable the randomness.
type NoiseFunc func() float32

// SeededNoise returns a NoiseFunc backed by its own seeded source.
func SeededNoise(seed int64) NoiseFunc {
	r := rand.New(rand.NewSource(seed))
	return func() float32 {
		return r.Float32()*2 - 1
	}
}

// Body is one entry in the simulation arena. The arena is rebuilt from the
// scene when simulation starts and discarded when it stops; bodies key back
// to their scene objects by UID.
type Body struct {
	UID       uint64
	Kind      components.PhysicsKind
	Shape     components.PhysicsShape
	Mass      float32
	Velocity  rl.Vector3
	Angular   rl.Vector3 // tracked for rolling/tipping, never written to rotation
	Bounds    Bounds
	Stability float32
	Grounded  bool

	obj *engine.GameObject
	rb  *components.Rigidbody
}

func (b *Body) Position() rl.Vector3 {
	return b.obj.Transform.Position
}

// World owns the physics body arena and advances it. Single-threaded by
// design; callers drive Step from the frame loop.
type World struct {
	Bodies []*Body
	Noise  NoiseFunc

	byUID map[uint64]*Body
}

func NewWorld() *World {
	return &World{
		Noise: SeededNoise(time.Now().UnixNano()),
		byUID: make(map[uint64]*Body),
	}
}

// Rebuild deterministically recreates the body arena from the scene,
// in scene-list order, keyed by object UID. Called when simulation starts.
func (w *World) Rebuild(scene *engine.Scene) {
	w.Bodies = w.Bodies[:0]
	w.byUID = make(map[uint64]*Body)

	for _, obj := range scene.GameObjects {
		rb := engine.GetComponent[*components.Rigidbody](obj)
		if rb == nil || rb.Kind == components.KindNone {
			continue
		}
		b := &Body{
			UID:      obj.UID,
			Kind:     rb.Kind,
			Shape:    rb.Shape,
			Mass:     rb.Mass,
			Velocity: rb.Velocity,
			Angular:  rb.AngularVelocity,
			obj:      obj,
			rb:       rb,
		}
		b.refresh()
		w.Bodies = append(w.Bodies, b)
		w.byUID[obj.UID] = b
	}
}

// Clear discards the arena, used when simulation stops.
func (w *World) Clear() {
	w.Bodies = w.Bodies[:0]
	w.byUID = make(map[uint64]*Body)
}

func (w *World) BodyByUID(uid uint64) *Body {
	return w.byUID[uid]
}

func (b *Body) refresh() {
	b.Bounds = ComputeBounds(b.obj)
	b.Stability = stabilityFactor(b.Bounds, b.Mass)
}

// stabilityFactor resists tipping: wide, heavy, low objects are stable.
// Clamped to [0.1, 10]; the floor keeps the divide in the tipping term sane.
func stabilityFactor(bounds Bounds, mass float32) float32 {
	baseArea := (2 * bounds.HalfExtents.X) * (2 * bounds.HalfExtents.Z)
	height := 2 * bounds.HalfExtents.Y
	s := baseArea * mass / (height + 0.1)
	return clamp(s, 0.1, 10)
}

// Step advances every rigid body by dt (clamped to MaxStepDelta):
// integration, tipping, ground response, pairwise collision, then position
// write-back. Rotation and scale are never touched. Non-finite values are
// squashed before they can reach a scene transform.
func (w *World) Step(dt float32) {
	if dt <= 0 {
		return
	}
	if dt > MaxStepDelta {
		dt = MaxStepDelta
	}

	// Bounds must reflect the current scene transforms, which may have
	// changed since the last step (spawns, teleports).
	for _, b := range w.Bodies {
		b.refresh()
	}

	for _, b := range w.Bodies {
		if b.Kind != components.KindRigidBody {
			continue
		}
		prev := b.Position()

		w.integrate(b, dt)
		w.applyTipping(b, dt)
		w.resolveGround(b)

		b.sanitizeMotion(prev)
	}

	// O(n^2) pairwise pass. Fine at scene-editor object counts.
	for i := 0; i < len(w.Bodies); i++ {
		for j := i + 1; j < len(w.Bodies); j++ {
			w.resolvePair(w.Bodies[i], w.Bodies[j])
		}
	}

	for _, b := range w.Bodies {
		if b.Kind != components.KindRigidBody {
			continue
		}
		b.sanitizeMotion(b.Position())
		b.rb.Velocity = b.Velocity
		b.rb.AngularVelocity = b.Angular
	}
}

func (w *World) integrate(b *Body, dt float32) {
	// Heavier bodies accelerate a little faster, converging at mass 5.
	gravityScale := 0.8 + minf(b.Mass, 5)*0.04
	b.Velocity.Y += Gravity * dt * gravityScale

	// Air resistance, lighter bodies lose more speed.
	damp := 0.98 + b.Mass*0.001
	if damp > 0.999 {
		damp = 0.999
	}
	b.Velocity = rl.Vector3Scale(b.Velocity, damp)

	b.move(rl.Vector3Scale(b.Velocity, dt))
}

// move shifts the body and keeps its bounds in step without a full
// recompute.
func (b *Body) move(d rl.Vector3) {
	b.obj.Transform.Position = rl.Vector3Add(b.obj.Transform.Position, d)
	b.Bounds.Center = rl.Vector3Add(b.Bounds.Center, d)
	b.Bounds.Box = b.Bounds.Box.Translate(d)
}

// applyTipping injects angular velocity when a grounded body moves faster
// than its stability allows. Heavy bodies additionally pick up random
// wobble from the noise source.
func (w *World) applyTipping(b *Body, dt float32) {
	if !b.Grounded {
		return
	}

	hSpeed := horizontalLength(b.Velocity)
	if hSpeed > b.Stability*0.1 {
		axis := cross(rl.Vector3{Y: 1}, b.Velocity)
		spin := rl.Vector3Scale(axis, hSpeed/b.Stability*dt*b.Mass)
		b.Angular = rl.Vector3Add(b.Angular, spin)

		if b.Mass > 2 && w.Noise != nil {
			n := (b.Mass - 2) * 0.1
			b.Angular.X += w.Noise() * n
			b.Angular.Y += w.Noise() * n
			b.Angular.Z += w.Noise() * n
		}
	}

	// Rolling resistance
	resist := 1 - 0.02*b.Mass*dt
	if resist < 0 {
		resist = 0
	}
	b.Angular = rl.Vector3Scale(b.Angular, resist)
}

// resolveGround snaps the body's shape bottom to the highest supporting
// surface and applies mass-scaled restitution, friction and rolling.
func (w *World) resolveGround(b *Body) {
	ground := w.supportHeight(b)
	bottom := b.Bounds.BottomY()

	if bottom > ground+contactSlack {
		b.Grounded = false
		return
	}

	if bottom < ground {
		b.move(rl.Vector3{Y: ground - bottom})
	}
	b.Grounded = true

	restitution := maxf(0.1, 0.5-b.Mass*0.05)
	friction := minf(0.9, 0.5+b.Mass*0.05)

	if b.Velocity.Y < 0 {
		b.Velocity.Y = -b.Velocity.Y * restitution
		if b.Velocity.Y < bounceCutoff {
			// Without a cutoff the bounce halves forever and the body
			// never reports at rest.
			b.Velocity.Y = 0
		}

		// Heavy landings kick the body sideways a little.
		if b.Mass > 3 && b.Mass*b.Velocity.Y > 5 && w.Noise != nil {
			b.Velocity.X += w.Noise() * 0.1
			b.Velocity.Z += w.Noise() * 0.1
		}
	}

	if horizontalLength(b.Velocity) > 0.1 {
		b.Velocity.X *= friction
		b.Velocity.Z *= friction

		// Surrendered horizontal momentum becomes rolling.
		roll := (1 - friction) * b.Mass * 0.1
		b.Angular.X += b.Velocity.Z * roll
		b.Angular.Z -= b.Velocity.X * roll
		if b.Mass > 2 {
			enhance := 1 + (b.Mass-2)*0.05
			b.Angular.X *= enhance
			b.Angular.Z *= enhance
		}
	}
}

// supportHeight is the highest surface under the body's footprint: the
// world ground plane or the top of any static body at or below the body's
// center.
func (w *World) supportHeight(b *Body) float32 {
	ground := float32(groundY)
	for _, s := range w.Bodies {
		if s == b || s.Kind != components.KindStatic {
			continue
		}
		top := s.Bounds.TopY()
		if top > b.Bounds.Center.Y || top <= ground {
			continue
		}
		if XZOverlap(b.Bounds.Center, b.Bounds.Radius, s.Bounds) {
			ground = top
		}
	}
	return ground
}

// resolvePair separates two overlapping bodies along their center-to-center
// vector, half the overlap to each rigid body, and swaps 80% of the normal
// velocity components when both are rigid. Statics never move.
func (w *World) resolvePair(a, b *Body) {
	if a.Kind != components.KindRigidBody && b.Kind != components.KindRigidBody {
		return
	}
	if !a.Bounds.Box.Intersects(b.Bounds.Box) {
		return
	}
	// Resting-on-top contacts belong to the ground pass, not separation.
	if restsOn(a, b) || restsOn(b, a) {
		return
	}

	delta := rl.Vector3Subtract(b.Bounds.Center, a.Bounds.Center)
	dist := rl.Vector3Length(delta)

	// Degenerate centers: pick a fixed axis instead of propagating NaN.
	normal := rl.Vector3{X: 1}
	if dist > 1e-6 {
		normal = rl.Vector3Scale(delta, 1/dist)
	} else {
		dist = 1
	}

	penetration := a.collisionRadius() + b.collisionRadius() - dist
	if penetration <= 0 {
		return
	}

	half := rl.Vector3Scale(normal, penetration/2)
	if a.Kind == components.KindRigidBody {
		a.move(rl.Vector3Negate(half))
	}
	if b.Kind == components.KindRigidBody {
		b.move(half)
	}

	if a.Kind == components.KindRigidBody && b.Kind == components.KindRigidBody {
		vaN := rl.Vector3DotProduct(a.Velocity, normal)
		vbN := rl.Vector3DotProduct(b.Velocity, normal)
		a.Velocity = rl.Vector3Add(a.Velocity, rl.Vector3Scale(normal, (vbN-vaN)*pairRestitution))
		b.Velocity = rl.Vector3Add(b.Velocity, rl.Vector3Scale(normal, (vaN-vbN)*pairRestitution))
	}
}

// restsOn reports whether rigid body b is supported from below by static a.
func restsOn(a, b *Body) bool {
	return a.Kind == components.KindStatic &&
		b.Kind == components.KindRigidBody &&
		b.Bounds.BottomY() >= a.Bounds.TopY()-contactSlack
}

// collisionRadius is the coarse radius used for pairwise separation: the
// sphere radius when there is one, otherwise half the largest AABB side.
func (b *Body) collisionRadius() float32 {
	if b.Shape == components.ShapeSphere {
		return b.Bounds.Radius
	}
	size := b.Bounds.Box.Size()
	return maxf(size.X, maxf(size.Y, size.Z)) / 2
}

func (b *Body) sanitizeMotion(prevPos rl.Vector3) {
	b.Velocity = sanitize(b.Velocity, rl.Vector3{})
	b.Angular = sanitize(b.Angular, rl.Vector3{})
	pos := b.obj.Transform.Position
	clean := sanitize(pos, prevPos)
	if clean != pos {
		b.obj.Transform.Position = clean
		b.refresh()
	}
}

// PushBody applies a player push impulse: lighter bodies react more, capped.
// Very light bodies get a small upward kick and every push adds a random
// yaw wobble.
func (w *World) PushBody(b *Body, dir rl.Vector3, pushMass float32) {
	if b == nil || b.Kind != components.KindRigidBody {
		return
	}
	l := rl.Vector3Length(dir)
	if l < 1e-6 {
		return
	}
	dir = rl.Vector3Scale(dir, 1/l)

	impulse := minf(2.0, pushMass/(b.Mass+1)) * 0.1
	b.Velocity.X += dir.X * impulse
	b.Velocity.Z += dir.Z * impulse
	if b.Mass < 5 {
		b.Velocity.Y += 0.05
	}
	if w.Noise != nil {
		b.Angular.Y += w.Noise() * 0.1
	}
	b.rb.Velocity = b.Velocity
	b.rb.AngularVelocity = b.Angular
}

// GroundHeightAt returns the highest standing surface under the circle
// footprint at or below maxY. Statics only; rigid bodies are not stable
// ground.
func (w *World) GroundHeightAt(center rl.Vector3, radius, maxY float32) float32 {
	ground := float32(groundY)
	for _, s := range w.Bodies {
		if s.Kind != components.KindStatic {
			continue
		}
		top := s.Bounds.TopY()
		if top > maxY || top <= ground {
			continue
		}
		if XZOverlap(center, radius, s.Bounds) {
			ground = top
		}
	}
	return ground
}

// BlockedAt reports whether a circle footprint at p collides with any
// static or rigid body. Bodies whose tops are below stepY do not block;
// the walker can step onto them.
func (w *World) BlockedAt(p rl.Vector3, radius, stepY float32, exclude uint64) (*Body, bool) {
	for _, b := range w.Bodies {
		if b.UID == exclude || b.Kind == components.KindNone {
			continue
		}
		if b.Shape == components.ShapePlane2D {
			continue // terrain is ground, not a wall
		}
		if b.Bounds.TopY() <= stepY {
			continue
		}
		if b.Bounds.BottomY() >= p.Y+0.1 {
			continue // obstacle entirely above
		}
		if XZOverlap(p, radius, b.Bounds) {
			return b, true
		}
	}
	return nil, false
}

func minf(a, b float32) float32 {
	if a < b {
		return a
	}
	return b
}

package world

import (
	"fmt"

	"forge3d/internal/components"
	"forge3d/internal/engine"

	"github.com/jinzhu/copier"
)

// Snapshot is the pre-play state of the scene: every object's transform by
// UID plus the editor camera. Restoring it puts the scene back exactly as
// it was before the simulation ran.
type Snapshot struct {
	Transforms map[uint64]engine.Transform
	Camera     CameraRecord
}

// TakeSnapshot captures the current scene state. Called when play mode
// starts, before the physics arena is built.
func (w *World) TakeSnapshot(cam CameraRecord) (*Snapshot, error) {
	snap := &Snapshot{
		Transforms: make(map[uint64]engine.Transform, len(w.Scene.GameObjects)),
		Camera:     cam,
	}
	for _, g := range w.Scene.GameObjects {
		var t engine.Transform
		if err := copier.CopyWithOption(&t, &g.Transform, copier.Option{DeepCopy: true}); err != nil {
			return nil, fmt.Errorf("snapshot %s: %w", g.Name, err)
		}
		snap.Transforms[g.UID] = t
	}
	return snap, nil
}

// RestoreSnapshot puts every surviving object back on its saved transform,
// zeroes accumulated velocities and discards the physics arena. Objects
// spawned during play keep their current transform.
func (w *World) RestoreSnapshot(snap *Snapshot) CameraRecord {
	if snap == nil {
		return CameraRecord{}
	}
	for _, g := range w.Scene.GameObjects {
		if t, ok := snap.Transforms[g.UID]; ok {
			g.Transform = t
		}
		if rb := engine.GetComponent[*components.Rigidbody](g); rb != nil {
			rb.Stop()
		}
	}
	w.Physics.Clear()
	return snap.Camera
}

//go:build !game

package game

import (
	"forge3d/internal/engine"
)

const maxUndoStack = 50

type UndoActionType int

const (
	UndoTransform UndoActionType = iota
	UndoDelete
)

// UndoState is one entry on the undo stack. Transform entries are pushed
// before gizmo drags and inspector edits; delete entries keep the object
// alive so it can be re-added.
type UndoState struct {
	Type      UndoActionType
	Object    *engine.GameObject
	Transform engine.Transform
}

// pushUndo saves the selected object's transform before a modification.
func (e *Editor) pushUndo() {
	if e.Selected == nil {
		return
	}
	e.addUndoState(UndoState{
		Type:      UndoTransform,
		Object:    e.Selected,
		Transform: e.Selected.Transform,
	})
}

// pushDeleteUndo saves a deleted object so undo can restore it.
func (e *Editor) pushDeleteUndo(obj *engine.GameObject) {
	e.addUndoState(UndoState{
		Type:      UndoDelete,
		Object:    obj,
		Transform: obj.Transform,
	})
}

func (e *Editor) addUndoState(state UndoState) {
	if len(e.undoStack) >= maxUndoStack {
		e.undoStack = e.undoStack[1:]
	}
	e.undoStack = append(e.undoStack, state)
}

// undo pops and restores the most recent state.
func (e *Editor) undo() {
	if len(e.undoStack) == 0 {
		return
	}
	state := e.undoStack[len(e.undoStack)-1]
	e.undoStack = e.undoStack[:len(e.undoStack)-1]

	if state.Object == nil {
		return
	}
	switch state.Type {
	case UndoTransform:
		state.Object.Transform = state.Transform
		e.Selected = state.Object
	case UndoDelete:
		state.Object.Transform = state.Transform
		e.world.Scene.AddGameObject(state.Object)
		e.Selected = state.Object
		e.setStatus("Restored %s", state.Object.Name)
	}
}

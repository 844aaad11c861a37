package toolkit

// Command identifies a toolkit operation for dispatch. Callers that used
// to address operators by registration string use this typed enum and
// the handler table instead.
type Command int

const (
	CmdIsolateTris Command = iota
	CmdIsolateNGons
	CmdIsolateNonManifold
	CmdIsolateConcave
	CmdIsolateOverlapVerts
	CmdIsolateOverlapFaces
	CmdTriangulate
	CmdTrisToQuads
	CmdRotateEdge
	CmdFixNgons
	CmdCleanup
	CmdApplyPlanarDecimate
	CmdApplyAllModifiers
	CmdDeleteAllModifiers
)

var handlers = map[Command]func(*Session) Result{
	CmdIsolateTris:         func(s *Session) Result { return s.ToggleIsolate(IsolateTris) },
	CmdIsolateNGons:        func(s *Session) Result { return s.ToggleIsolate(IsolateNGons) },
	CmdIsolateNonManifold:  func(s *Session) Result { return s.ToggleIsolate(IsolateNonManifold) },
	CmdIsolateConcave:      func(s *Session) Result { return s.ToggleIsolate(IsolateConcave) },
	CmdIsolateOverlapVerts: func(s *Session) Result { return s.ToggleIsolate(IsolateOverlapVerts) },
	CmdIsolateOverlapFaces: func(s *Session) Result { return s.ToggleIsolate(IsolateOverlapFaces) },
	CmdTriangulate:         (*Session).Triangulate,
	CmdTrisToQuads:         (*Session).TrisToQuads,
	CmdRotateEdge:          (*Session).RotateEdge,
	CmdFixNgons:            (*Session).FixNgons,
	CmdCleanup:             (*Session).Cleanup,
	CmdApplyPlanarDecimate: (*Session).ApplyPlanarDecimate,
	CmdApplyAllModifiers:   (*Session).ApplyAllModifiers,
	CmdDeleteAllModifiers:  (*Session).DeleteAllModifiers,
}

// Dispatch runs the operation a command names
func (s *Session) Dispatch(cmd Command) Result {
	handler, ok := handlers[cmd]
	if !ok {
		return cancelled("unknown command %d", int(cmd))
	}
	return handler(s)
}

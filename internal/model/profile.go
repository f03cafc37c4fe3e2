package model

// ProfileID is the opaque per-installation identifier partitioning all
// persisted state. The engine never inspects it; it only keys the store.
type ProfileID string

package model

// GroupID uniquely identifies a group
type GroupID string

// Group is a named set of player ids used to filter the roster view.
// Immutable after creation, except that deleting a player removes them
// from every group's member list. Names are not required to be unique.
type Group struct {
	ID        GroupID    `json:"id"`
	Name      string     `json:"name"`
	PlayerIDs []PlayerID `json:"playerIds"`
}

// HasMember reports whether the given player is in the group
func (g *Group) HasMember(id PlayerID) bool {
	for _, pid := range g.PlayerIDs {
		if pid == id {
			return true
		}
	}
	return false
}

package game

import (
	"fmt"

	"github.com/ratel-online/landlord/landlord/faces"
)

// Playable decides whether candidate may be placed on top of last.
// The reason is advisory text for a rejection and empty on acceptance.
func Playable(candidate Play, last LastPlay) (bool, string) {
	if candidate.Pass {
		return true, ""
	}
	current := candidate.Faces()
	if !current.Valid() {
		return false, "not a legal shape"
	}
	if last.Empty() {
		return true, ""
	}
	previous := last.Faces()

	if current.Type == faces.Rocket {
		return true, ""
	}
	switch previous.Type {
	case faces.Rocket:
		return false, "last play is a rocket, nothing beats it"
	case faces.Bomb:
		if current.Type != faces.Bomb {
			return false, "last play is a bomb, play a higher bomb or a rocket"
		}
		if current.Priority > previous.Priority {
			return true, ""
		}
		return false, fmt.Sprintf("bomb too small, need higher than %s", previous.Rank)
	}

	if current.Type == faces.Bomb {
		return true, ""
	}
	if current.Type != previous.Type {
		return false, fmt.Sprintf("last play is a %s, play a %s or a bomb or a rocket", previous.Type, previous.Type)
	}
	if current.Magnitude != previous.Magnitude {
		return false, fmt.Sprintf("last %s has %d %s, play the same number or a bomb or a rocket",
			previous.Type, previous.Magnitude, previous.Type.Unit())
	}
	if current.Priority > previous.Priority {
		return true, ""
	}
	return false, fmt.Sprintf("%s too small, need higher than %s", previous.Type, previous.Rank)
}

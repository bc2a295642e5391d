package services

import "backend/models"

// A user's vote on a comment is a three-state machine: none, liked,
// disliked. Applying an action toggles it off when repeated and switches
// cleanly when opposed, so mutual exclusion holds by construction.

type voteState int

const (
	voteNone voteState = iota
	voteLiked
	voteDisliked
)

func stateOfAction(action string) voteState {
	switch action {
	case models.VoteLike:
		return voteLiked
	case models.VoteDislike:
		return voteDisliked
	}
	return voteNone
}

func actionOfState(s voteState) string {
	switch s {
	case voteLiked:
		return models.VoteLike
	case voteDisliked:
		return models.VoteDislike
	}
	return ""
}

// transition returns the state after applying action to prior.
// Repeating the current state's action clears it (idempotent toggle).
func transition(prior voteState, action string) voteState {
	next := stateOfAction(action)
	if next == prior {
		return voteNone
	}
	return next
}

package model

// ToggleLike adds userID to the like set, or removes it when already
// present. The returned slice keeps set semantics: one entry per user.
func ToggleLike(likes []uint, userID uint) []uint {
	out := make([]uint, 0, len(likes)+1)
	found := false
	for _, id := range likes {
		if id == userID {
			found = true
			continue
		}
		out = append(out, id)
	}
	if !found {
		out = append(out, userID)
	}
	return out
}

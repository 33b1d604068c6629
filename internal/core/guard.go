package core

// Authorize permits an owner-scoped operation only when who is the owner.
// owner must come from the resource being acted on, never from who.
func Authorize(who Identity, owner string) error {
	if !who.Authenticated() {
		return ErrUnauthenticated
	}
	if who.Username != owner {
		return ErrUnauthorized
	}
	return nil
}

package domain

// Owned is implemented by every record that belongs to exactly one user.
// The owner is always assigned from the authenticated identity, never from
// request input.
type Owned interface {
	SetOwner(userID uint)
	Owner() uint
}

package entity

// SlotWithOwner is an Event joined with its owner's display identity,
// used by the marketplace listing.
type SlotWithOwner struct {
	Event
	OwnerName  string `db:"owner_name"`
	OwnerEmail string `db:"owner_email"`
}

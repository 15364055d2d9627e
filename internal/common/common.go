package common

// listing status
const (
	Available = "available"
	Reserved  = "reserved"
)

// listing category
const (
	Veg    = "veg"
	NonVeg = "non-veg"
)

// request status
const (
	Pending  = "pending"
	Accepted = "accepted"
	Rejected = "rejected"
)

// inbox tabs
const (
	ActiveTab  = "active"
	HistoryTab = "history"
)

type Role string

const (
	Anonymous  Role = ""
	Unassigned Role = "unassigned"
	Donor      Role = "donor"
	Receiver   Role = "receiver"
)

func ParseRole(s string) Role {
	switch Role(s) {
	case Donor, Receiver:
		return Role(s)
	default:
		return Unassigned
	}
}

const AnonymousName = "Anonymous"

// Package gate decides what a viewer may do with a listing or a request. Every role check in the
// service goes through here.
package gate

import (
	"foodshare-api/internal/common"
	"foodshare-api/internal/entity"
)

type Action uint8

const (
	View Action = 1 << iota
	Edit
	Delete
	Request
	Accept
	Reject
)

var actionNames = []struct {
	action Action
	name   string
}{
	{View, "view"},
	{Edit, "edit"},
	{Delete, "delete"},
	{Request, "request"},
	{Accept, "accept"},
	{Reject, "reject"},
}

// Actions is a set of allowed actions.
type Actions uint8

func (a Actions) Has(action Action) bool {
	return a&Actions(action) != 0
}

func (a Actions) Names() []string {
	names := make([]string, 0, len(actionNames))
	for _, n := range actionNames {
		if a.Has(n.action) {
			names = append(names, n.name)
		}
	}

	return names
}

func allow(actions ...Action) Actions {
	var set Actions
	for _, a := range actions {
		set |= Actions(a)
	}

	return set
}

func isDonor(v *entity.Viewer) bool {
	return v.Authenticated() && v.Role == common.Donor
}

func isReceiver(v *entity.Viewer) bool {
	return v.Authenticated() && v.Role == common.Receiver
}

func CanCreateListing(v *entity.Viewer) bool {
	return isDonor(v)
}

func CanBrowseAsDonor(v *entity.Viewer) bool {
	return isDonor(v)
}

// ForListing returns what v may do with l.
func ForListing(v *entity.Viewer, l *entity.Listing) Actions {
	if isDonor(v) && l.DonorId == v.Uid {
		return allow(View, Edit, Delete)
	}

	if l.Status != common.Available {
		return 0
	}

	if isReceiver(v) && l.DonorId != v.Uid {
		return allow(View, Request)
	}

	return allow(View)
}

// ForRequest returns what v may do with r. donorId is the owner of the referenced listing, or
// the donor recorded on the request when the listing is gone.
func ForRequest(v *entity.Viewer, r *entity.Request, donorId string) Actions {
	if !v.Authenticated() {
		return 0
	}

	if isDonor(v) && donorId != "" && donorId == v.Uid {
		if r.Status == common.Pending {
			return allow(View, Accept, Reject)
		}

		return allow(View)
	}

	if r.ReceiverId == v.Uid {
		return allow(View)
	}

	return 0
}

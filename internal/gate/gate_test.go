package gate

import (
	"testing"

	"foodshare-api/internal/common"
	"foodshare-api/internal/entity"

	"github.com/stretchr/testify/assert"
)

var (
	donor      = &entity.Viewer{Uid: "donor-1", Role: common.Donor}
	otherDonor = &entity.Viewer{Uid: "donor-2", Role: common.Donor}
	receiver   = &entity.Viewer{Uid: "receiver-1", Role: common.Receiver}
	pending    = &entity.Viewer{Uid: "new-user", Role: common.Unassigned}
	anonymous  = &entity.Viewer{}
)

func TestForListing(t *testing.T) {
	available := &entity.Listing{DonorId: "donor-1", Status: common.Available}
	reserved := &entity.Listing{DonorId: "donor-1", Status: common.Reserved}

	tests := []struct {
		name    string
		viewer  *entity.Viewer
		listing *entity.Listing
		want    []string
	}{
		{"owner", donor, available, []string{"view", "edit", "delete"}},
		{"owner of reserved", donor, reserved, []string{"view", "edit", "delete"}},
		{"other donor", otherDonor, available, []string{"view"}},
		{"receiver", receiver, available, []string{"view", "request"}},
		{"receiver on reserved", receiver, reserved, []string{}},
		{"unassigned", pending, available, []string{"view"}},
		{"anonymous", anonymous, available, []string{"view"}},
		{"nil viewer", nil, available, []string{"view"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ForListing(tt.viewer, tt.listing).Names())
		})
	}
}

func TestReceiverCannotRequestOwnListing(t *testing.T) {
	// a receiver account whose uid also appears as the donor of the listing
	l := &entity.Listing{DonorId: receiver.Uid, Status: common.Available}

	assert.False(t, ForListing(receiver, l).Has(Request))
}

func TestForRequest(t *testing.T) {
	p := &entity.Request{ReceiverId: "receiver-1", Status: common.Pending}
	a := &entity.Request{ReceiverId: "receiver-1", Status: common.Accepted}

	assert.Equal(t, []string{"view", "accept", "reject"}, ForRequest(donor, p, "donor-1").Names())
	assert.Equal(t, []string{"view"}, ForRequest(donor, a, "donor-1").Names())
	assert.Equal(t, []string{}, ForRequest(otherDonor, p, "donor-1").Names())
	assert.Equal(t, []string{"view"}, ForRequest(receiver, p, "donor-1").Names())
	assert.Equal(t, []string{}, ForRequest(donor, p, "").Names())
	assert.Equal(t, []string{}, ForRequest(anonymous, p, "donor-1").Names())
}

func TestCanCreateListing(t *testing.T) {
	assert.True(t, CanCreateListing(donor))
	assert.False(t, CanCreateListing(receiver))
	assert.False(t, CanCreateListing(pending))
	assert.False(t, CanCreateListing(anonymous))
	assert.False(t, CanCreateListing(&entity.Viewer{Role: common.Donor}))
}

package recommend

import (
	"testing"

	"ai-tireshop-be/internal/entity"

	"github.com/google/uuid"
)

func TestFromReply(t *testing.T) {
	michelin := &entity.Product{Id: uuid.New(), Size: "225/65R17", Vendor: "Michelin"}
	bridgestone := &entity.Product{Id: uuid.New(), Size: "225/65R17", Vendor: "Bridgestone"}
	continental := &entity.Product{Id: uuid.New(), Size: "205/55R16", Vendor: "Continental"}
	candidates := []*entity.Product{michelin, bridgestone, continental}

	tests := []struct {
		name  string
		reply string
		want  []*entity.Product
	}{
		{
			name:  "vendor mention",
			reply: "The Michelin Defender is a great all-season choice.",
			want:  []*entity.Product{michelin},
		},
		{
			name:  "size mention matches all of that size",
			reply: "We have several options in 225/65R17 starting at $189.50.",
			want:  []*entity.Product{michelin, bridgestone},
		},
		{
			name:  "case insensitive",
			reply: "the BRIDGESTONE blizzak is our winter pick",
			want:  []*entity.Product{bridgestone},
		},
		{
			name:  "no mention",
			reply: "We're open Monday to Saturday.",
			want:  nil,
		},
		{
			name:  "empty reply",
			reply: "",
			want:  nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FromReply(tt.reply, candidates)
			if len(got) != len(tt.want) {
				t.Fatalf("matched %d products, want %d", len(got), len(tt.want))
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("match %d = %s, want %s", i, got[i].Vendor, tt.want[i].Vendor)
				}
			}
		})
	}
}

func TestIds(t *testing.T) {
	p := &entity.Product{Id: uuid.New()}
	ids := Ids([]*entity.Product{p})
	if len(ids) != 1 || ids[0] != p.Id.String() {
		t.Errorf("got %v", ids)
	}
}

func TestIdsEmpty(t *testing.T) {
	if ids := Ids(nil); len(ids) != 0 {
		t.Errorf("got %v, want empty", ids)
	}
}

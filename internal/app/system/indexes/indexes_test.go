package indexes

import (
	"testing"

	"go.mongodb.org/mongo-driver/bson"
)

func TestKeySig(t *testing.T) {
	tests := []struct {
		name string
		keys bson.D
		want string
	}{
		{
			name: "single ascending",
			keys: bson.D{{Key: "slug", Value: 1}},
			want: "slug:1",
		},
		{
			name: "compound mixed direction",
			keys: bson.D{{Key: "updated_at", Value: -1}, {Key: "_id", Value: 1}},
			want: "updated_at:-1, _id:1",
		},
		{
			name: "order matters",
			keys: bson.D{{Key: "assessment_id", Value: 1}, {Key: "criterion_ref", Value: 1}},
			want: "assessment_id:1, criterion_ref:1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := keySig(tt.keys); got != tt.want {
				t.Errorf("keySig() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestKeySig_DistinguishesFieldOrder(t *testing.T) {
	a := keySig(bson.D{{Key: "a", Value: 1}, {Key: "b", Value: 1}})
	b := keySig(bson.D{{Key: "b", Value: 1}, {Key: "a", Value: 1}})
	if a == b {
		t.Error("signatures for different field orders must differ")
	}
}

func TestSameBoolPtr(t *testing.T) {
	yes, no := true, false
	tests := []struct {
		name string
		a, b *bool
		want bool
	}{
		{"both nil", nil, nil, true},
		{"nil vs false", nil, &no, true},
		{"nil vs true", nil, &yes, false},
		{"true vs true", &yes, &yes, true},
		{"true vs false", &yes, &no, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := sameBoolPtr(tt.a, tt.b); got != tt.want {
				t.Errorf("sameBoolPtr() = %v, want %v", got, tt.want)
			}
		})
	}
}

package txn

import (
	"errors"
	"fmt"
	"testing"

	"go.mongodb.org/mongo-driver/mongo"
)

func TestIsNotSupported(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"nil error", nil, false},
		{"unrelated error", errors.New("connection reset by peer"), false},
		{"code 20 replica set required", mongo.CommandError{Code: 20, Message: "Transaction numbers are only allowed on a replica set member or mongos"}, true},
		{"code 51 illegal operation", mongo.CommandError{Code: 51, Message: "Illegal operation"}, true},
		{"code 263 operation not supported", mongo.CommandError{Code: 263, Message: "Operation not supported in transaction"}, true},
		{"unrelated command error", mongo.CommandError{Code: 11000, Message: "duplicate key error"}, false},
		{"transaction on standalone", errors.New("transaction numbers require a replica set deployment"), true},
		{"sessions unsupported", errors.New("this server does not support sessions: feature not supported"), true},
		{"transaction inside session", errors.New("cannot continue transaction for ended session"), true},
		{"illegal operation in transaction", errors.New("illegal operation attempted inside transaction"), true},
		{"single keyword only", errors.New("transaction aborted"), false},
		{"wrapped command error", fmt.Errorf("copy criteria: %w", mongo.CommandError{Code: 20, Message: "replica set required"}), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsNotSupported(tt.err); got != tt.want {
				t.Errorf("IsNotSupported(%v) = %v, want %v", tt.err, got, tt.want)
			}
		})
	}
}

func TestIsNotSupported_CaseInsensitive(t *testing.T) {
	if !IsNotSupported(errors.New("TRANSACTION requires a REPLICA SET")) {
		t.Error("expected uppercase keywords to match")
	}
	if !IsNotSupported(errors.New("Session feature Not Supported")) {
		t.Error("expected mixed-case keywords to match")
	}
}

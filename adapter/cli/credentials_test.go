package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateRegister(t *testing.T) {
	tests := []struct {
		name    string
		req     RegisterRequest
		wantErr string
	}{
		{name: "valid", req: RegisterRequest{Username: "alice", Password: "abc1"}},
		{name: "shortest password", req: RegisterRequest{Username: "Bob", Password: "a1b"}},
		{name: "empty username", req: RegisterRequest{Password: "abc1"}, wantErr: "Username is required"},
		{name: "empty password", req: RegisterRequest{Username: "alice"}, wantErr: "Password is required"},
		{name: "digits in username", req: RegisterRequest{Username: "alice2", Password: "abc1"}, wantErr: "only contain letters"},
		{name: "space in username", req: RegisterRequest{Username: "al ice", Password: "abc1"}, wantErr: "only contain letters"},
		{name: "long username", req: RegisterRequest{Username: "abcdefghijklmnopqrstuvwxyzabcde", Password: "abc1"}, wantErr: "at most 30"},
		{name: "short password", req: RegisterRequest{Username: "alice", Password: "a1"}, wantErr: "at least 3"},
		{name: "letters only", req: RegisterRequest{Username: "alice", Password: "abcd"}, wantErr: ErrWeakPassword.Error()},
		{name: "digits only", req: RegisterRequest{Username: "alice", Password: "1234"}, wantErr: ErrWeakPassword.Error()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateRegister(tt.req)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			if assert.Error(t, err) {
				assert.Contains(t, err.Error(), tt.wantErr)
			}
		})
	}
}

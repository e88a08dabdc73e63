package web

import (
	"errors"
	"testing"
)

func joinErrs(msgs ...string) error {
	var err error
	for _, m := range msgs {
		err = errors.Join(err, errors.New(m))
	}
	return err
}

func Test_validateEmail(t *testing.T) {
	tests := []struct {
		name    string
		email   string
		wantErr bool
	}{
		{name: "ok", email: "elena.garcia@gmail.com", wantErr: false},
		{name: "empty", email: "", wantErr: true},
		{name: "no at", email: "elena.garcia.gmail.com", wantErr: true},
		{name: "no domain", email: "elena@", wantErr: true},
		{name: "spaces", email: "elena garcia@gmail.com", wantErr: true},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			if err := validateEmail(tt.email); (err != nil) != tt.wantErr {
				t.Errorf("validateEmail() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func Test_validatePassword(t *testing.T) {
	tests := []struct {
		name     string
		password string
		wantErr  bool
	}{
		{name: "ok", password: "secreto123", wantErr: false},
		{name: "exactly six", password: "123456", wantErr: false},
		{name: "too short", password: "12345", wantErr: true},
		{name: "empty", password: "", wantErr: true},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			if err := validatePassword(tt.password); (err != nil) != tt.wantErr {
				t.Errorf("validatePassword() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func Test_parseBirthDate(t *testing.T) {
	tests := []struct {
		name    string
		date    string
		wantErr bool
	}{
		{name: "ok", date: "2015-06-01", wantErr: false},
		{name: "empty", date: "", wantErr: true},
		{name: "wrong layout", date: "01.06.2015", wantErr: true},
		{name: "future", date: "2100-01-01", wantErr: true},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			if _, err := parseBirthDate(tt.date); (err != nil) != tt.wantErr {
				t.Errorf("parseBirthDate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func Test_messages(t *testing.T) {
	err := badRequest(nil)
	if err != nil {
		t.Fatalf("badRequest(nil) = %v, want nil", err)
	}
	err = badRequest(joinErrs("name is required", "category is required"))
	got := messages(err)
	if len(got) != 2 {
		t.Fatalf("messages() = %v, want 2 entries", got)
	}
	if got[0] != "name is required" || got[1] != "category is required" {
		t.Errorf("messages() = %v", got)
	}
}

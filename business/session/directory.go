package session

import (
	"myStore/domain"
	"myStore/pkg/utils"
)

// The fixed mock user directory. Static configuration, not input: the demo
// login picks one of these at random. Hashed emails are precomputed here so
// login never hashes on the hot path.
var directoryEmails = []struct {
	userID string
	email  string
}{
	{"USR-1001", "ava.martinez@example.com"},
	{"USR-1002", "ben.okafor@example.com"},
	{"USR-1003", "chloe.dubois@example.com"},
	{"USR-1004", "dan.kowalski@example.com"},
	{"USR-1005", "erin.tanaka@example.com"},
}

func DefaultDirectory() []domain.DirectoryUser {
	users := make([]domain.DirectoryUser, 0, len(directoryEmails))
	for _, entry := range directoryEmails {
		users = append(users, domain.DirectoryUser{
			UserID:      entry.userID,
			Email:       entry.email,
			HashedEmail: utils.HashEmail(entry.email),
		})
	}

	return users
}

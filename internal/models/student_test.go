package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFullName(t *testing.T) {
	cases := []struct {
		name             string
		first, mid, last string
		want             string
	}{
		{"all parts", "Maria", "L", "Garcia", "Maria L Garcia"},
		{"no middle", "Maria", "", "Garcia", "Maria Garcia"},
		{"first only", "Maria", "", "", "Maria"},
		{"all empty", "", "", "", ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s := Student{FirstName: tc.first, MiddleName: tc.mid, LastName: tc.last}
			assert.Equal(t, tc.want, s.FullName())
		})
	}
}

func TestAddressLine(t *testing.T) {
	assert.Equal(t, "123 Main St 2A", Student{AddressStreet: "123 Main St", AddressApt: "2A"}.AddressLine())
	// No trailing space or joiner artifact when the apartment is empty.
	assert.Equal(t, "123 Main St", Student{AddressStreet: "123 Main St"}.AddressLine())
	assert.Equal(t, "2A", Student{AddressApt: "2A"}.AddressLine())
	assert.Equal(t, "", Student{}.AddressLine())
}

// Package testutil generates fake account data for tests.
package testutil

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"github.com/lucsky/cuid"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/osamigbe/account-service/models"
)

var firstNames = []string{"ada", "bola", "chidi", "dare", "emeka", "funke", "gbenga", "halima"}
var lastNames = []string{"adeyemi", "balogun", "chukwu", "danjuma", "eze", "falana", "garba", "hassan"}
var streets = []string{"Broad Street", "Marina Road", "Allen Avenue", "Awolowo Way", "Unity Close"}

// NewAccount builds an account with randomized fields and no id, mirroring
// a client payload before it has been stored.
func NewAccount() *models.Account {
	title := cases.Title(language.English)
	name := title.String(pick(firstNames) + " " + pick(lastNames))
	phone := fmt.Sprintf("+234%09d", rand.Intn(1_000_000_000))

	return &models.Account{
		Name:        name,
		Email:       cuid.Slug() + "@example.com",
		Address:     fmt.Sprintf("%d %s", 1+rand.Intn(200), pick(streets)),
		PhoneNumber: &phone,
		DateJoined:  models.NewDate(2015+rand.Intn(10), time.Month(1+rand.Intn(12)), 1+rand.Intn(28)),
	}
}

// NewRequestID returns a correlation id in the same shape the request-id
// middleware assigns.
func NewRequestID() string {
	return uuid.NewString()
}

func pick(values []string) string {
	return values[rand.Intn(len(values))]
}

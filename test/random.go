package test

import (
	"math/rand"

	"github.com/jaswdr/faker"
	"github.com/onsi/ginkgo/v2"
)

var (
	Source = rand.NewSource(ginkgo.GinkgoRandomSeed())
	Faker  = faker.NewWithSeed(Source)
	Rand   = rand.New(Source)
)

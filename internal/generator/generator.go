// Package generator synthesizes KDD-style connection records and writes
// them to the headerless delimited file the loader reads back.
package generator

import (
	"encoding/csv"
	"fmt"
	"os"

	"github.com/brianvoe/gofakeit/v7"

	"kdd-pipeline/internal/schema"
)

// attackProbability is the chance a record carries a non-benign label.
const attackProbability = 0.7

type Generator struct {
	faker *gofakeit.Faker
}

func New(faker *gofakeit.Faker) *Generator {
	return &Generator{faker: faker}
}

// Records produces n synthetic records following the per-field policy:
// bounded uniform integers, uniform categorical choices, rates in [0,1),
// and a handful of fields held at zero to mimic benign defaults.
func (g *Generator) Records(n int) []schema.Record {
	records := make([]schema.Record, 0, n)
	for range n {
		records = append(records, g.record())
	}
	return records
}

func (g *Generator) record() schema.Record {
	f := g.faker

	return schema.Record{
		Duration:         f.Number(0, 1000),
		ProtocolType:     f.RandomString(schema.Protocols),
		Service:          f.RandomString(schema.Services),
		Flag:             f.RandomString(schema.Flags),
		SrcBytes:         f.Number(0, 50000),
		DstBytes:         f.Number(0, 50000),
		Land:             0,
		WrongFragment:    0,
		Urgent:           0,
		Hot:              f.Number(0, 10),
		NumFailedLogins:  f.Number(0, 5),
		LoggedIn:         f.Number(0, 1),
		NumCompromised:   f.Number(0, 10),
		RootShell:        f.Number(0, 1),
		SuAttempted:      f.Number(0, 1),
		NumRoot:          f.Number(0, 10),
		NumFileCreations: f.Number(0, 5),
		NumShells:        f.Number(0, 2),
		NumAccessFiles:   f.Number(0, 2),
		NumOutboundCmds:  0,
		IsHostLogin:      0,
		IsGuestLogin:     f.Number(0, 1),
		Count:            f.Number(1, 100),
		SrvCount:         f.Number(1, 100),

		SerrorRate:      g.rate(),
		SrvSerrorRate:   g.rate(),
		RerrorRate:      g.rate(),
		SrvRerrorRate:   g.rate(),
		SameSrvRate:     g.rate(),
		DiffSrvRate:     g.rate(),
		SrvDiffHostRate: g.rate(),

		DstHostCount:    f.Number(1, 255),
		DstHostSrvCount: f.Number(1, 255),

		DstHostSameSrvRate:     g.rate(),
		DstHostDiffSrvRate:     g.rate(),
		DstHostSameSrcPortRate: g.rate(),
		DstHostSrvDiffHostRate: g.rate(),
		DstHostSerrorRate:      g.rate(),
		DstHostSrvSerrorRate:   g.rate(),
		DstHostRerrorRate:      g.rate(),
		DstHostSrvRerrorRate:   g.rate(),

		AttackType: g.attackType(),
	}
}

func (g *Generator) rate() float64 {
	return g.faker.Float64Range(0, 1)
}

func (g *Generator) attackType() string {
	if g.rate() < attackProbability {
		return g.faker.RandomString(schema.AttackLabels)
	}
	return schema.NormalLabel
}

// WriteFile writes the records comma-delimited in schema order, no header
// row, replacing any previous file at path.
func WriteFile(path string, records []schema.Record) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("could not create %s: %w", path, err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	for _, r := range records {
		if err := writer.Write(r.Fields()); err != nil {
			return fmt.Errorf("could not write record: %w", err)
		}
	}
	writer.Flush()

	if err := writer.Error(); err != nil {
		return fmt.Errorf("could not flush %s: %w", path, err)
	}
	if err := file.Close(); err != nil {
		return fmt.Errorf("could not close %s: %w", path, err)
	}
	return nil
}

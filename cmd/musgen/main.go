package main

import (
	"os"
	"reflect"
	"strings"

	musgen "github.com/mus-format/musgen-go/mus"
	genops "github.com/mus-format/musgen-go/options/generate"
	structops "github.com/mus-format/musgen-go/options/struct"
	typeops "github.com/mus-format/musgen-go/options/type"
	"github.com/vidyasetu/scholarrank/core"
)

func main() {
	cwd, err := os.Getwd()
	if err != nil {
		panic(err)
	}
	// If we're in the core subpackage, cd up to project root
	if strings.HasSuffix(cwd, "core") {
		if err := os.Chdir(".."); err != nil {
			panic(err)
		}
	}
	g, err := musgen.NewCodeGenerator(
		genops.WithPkgPath("github.com/vidyasetu/scholarrank/core"),
	)
	if err != nil {
		panic(err)
	}

	g.AddDefinedType(reflect.TypeFor[core.InteractionKind]())
	g.AddDefinedType(reflect.TypeFor[core.ID]())

	// Unix micro timestamps
	opts := typeops.WithTimeUnit(typeops.Micro)
	err = g.AddStruct(reflect.TypeFor[core.CatalogEntry](),
		structops.WithField(), // ID
		structops.WithField(), // Name
		structops.WithField(), // Provider
		structops.WithField(), // ProviderType
		structops.WithField(), // Description
		structops.WithField(), // Amount
		structops.WithField(), // Categories
		structops.WithField(), // MaxIncome
		structops.WithField(), // Regions
		structops.WithField(), // EducationLevels
		structops.WithField(), // Gender
		structops.WithField(), // TrustScore
		structops.WithField(), // Verified
		structops.WithField(), // Deadline
		structops.WithField(), // ApplicationLink
		structops.WithField(), // RequiredDocs
		structops.WithField(), // Keywords
		structops.WithField(), // Vector
		structops.WithField(), // Ordinal
		structops.WithField(opts), // InsertedAt
		structops.WithField(opts)) // UpdatedAt
	if err != nil {
		panic(err)
	}

	err = g.AddStruct(reflect.TypeFor[core.InteractionEvent](),
		structops.WithField(), // ID
		structops.WithField(), // UserID
		structops.WithField(), // EntryID
		structops.WithField(), // Kind
		structops.WithField(), // Vector
		structops.WithField(), // Weight
		structops.WithField(opts), // Timestamp
		structops.WithField(opts)) // InsertedAt
	if err != nil {
		panic(err)
	}

	bs, err := g.Generate()
	if err != nil {
		panic(err)
	}

	err = os.WriteFile("./core/records_mus.gen.go", bs, 0644)
	if err != nil {
		panic(err)
	}
}
